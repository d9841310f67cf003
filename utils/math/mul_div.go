// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package math

import (
	"github.com/holiman/uint256"
)

// MulDiv returns floor(a * b / denominator).
//
// The larger operand is divided first: with hi = q*denominator + r the
// result is q*lo + floor(r*lo/denominator). The quotient term is overflow
// checked in 64 bits and the remainder product, which is strictly smaller
// than denominator*lo, is computed in 256 bits. The result never rounds
// up and does not depend on the order of a and b.
//
// Returns ErrDivideByZero if denominator is 0 and ErrOverflow if the
// result does not fit in a uint64.
func MulDiv(a, b, denominator uint64) (uint64, error) {
	if denominator == 0 {
		return 0, ErrDivideByZero
	}

	hi, lo := max(a, b), min(a, b)
	q, r := hi/denominator, hi%denominator

	whole, err := Mul(q, lo)
	if err != nil {
		return 0, err
	}

	d := uint256.NewInt(denominator)
	frac := new(uint256.Int).Mul(uint256.NewInt(r), uint256.NewInt(lo))
	frac.Div(frac, d)
	// frac < lo, so it always fits in 64 bits.
	return Add(whole, frac.Uint64())
}
