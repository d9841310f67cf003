// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fee resolves, once per operation, which fee a locker operation
// owes and where it must be paid.
package fee

import (
	"encoding"
	"errors"
	"fmt"

	"github.com/luxfi/ids"

	"github.com/luxfi/locker/utils/math"
	"github.com/luxfi/locker/vms/lockervm/config"
)

var (
	ErrInvalidFeeDestination = errors.New("invalid fee destination")
	ErrUnknownMode           = errors.New("unknown fee mode")

	_ encoding.TextMarshaler   = Kind(0)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// Kind tags a Charge.
type Kind uint8

const (
	// None means no fee is owed by this operation.
	None Kind = iota
	// Flat is a fixed amount paid in the native asset.
	Flat
	// Proportional is a fraction of the locked value, paid in the locked
	// asset before the value reaches the vault.
	Proportional
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Flat:
		return "flat"
	case Proportional:
		return "proportional"
	default:
		return "unknown"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "none":
		*k = None
	case "flat":
		*k = Flat
	case "proportional":
		*k = Proportional
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, text)
	}
	return nil
}

// Request describes the fee context of a single operation.
type Request struct {
	Config config.Config
	// FeePaid is the asset's MintInfo flag.
	FeePaid bool
	// Mode is the payment mode chosen by the caller, Flat or Proportional.
	Mode Kind
	// Amount is the pre-fee amount the caller asked to lock.
	Amount uint64
	// Source pays the fee: the native account for Flat, the funding account
	// for Proportional.
	Source ids.ShortID
	// Destination is the fee account supplied by the caller.
	Destination ids.ShortID
	// AssetFeeAccount is the fee account the configured fee destination
	// holds for the locked asset. Proportional fees must go there.
	AssetFeeAccount ids.ShortID
}

// Charge is the fee resolved for one operation.
type Charge struct {
	Kind        Kind        `json:"kind"`
	Amount      uint64      `json:"amount"`
	Source      ids.ShortID `json:"source"`
	Destination ids.ShortID `json:"destination"`
}

// Resolve decides whether a fee is due and, if so, validates its
// destination and computes its amount from the pre-fee request amount.
func Resolve(r Request) (Charge, error) {
	if !r.Config.MintInfoPermissioned && r.FeePaid {
		return Charge{Kind: None}, nil
	}

	switch r.Mode {
	case Flat:
		if r.Destination != r.Config.FeeDestination {
			return Charge{}, fmt.Errorf("%w: flat fee must be paid to %s",
				ErrInvalidFeeDestination, r.Config.FeeDestination)
		}
		return Charge{
			Kind:        Flat,
			Amount:      r.Config.FlatFeeAmount,
			Source:      r.Source,
			Destination: r.Destination,
		}, nil
	case Proportional:
		if r.Destination != r.AssetFeeAccount {
			return Charge{}, fmt.Errorf("%w: proportional fee must be paid to %s",
				ErrInvalidFeeDestination, r.AssetFeeAccount)
		}
		amount, err := math.MulDiv(
			r.Amount,
			r.Config.ProportionalFeeNumerator,
			r.Config.ProportionalFeeDenominator,
		)
		if err != nil {
			return Charge{}, err
		}
		return Charge{
			Kind:        Proportional,
			Amount:      amount,
			Source:      r.Source,
			Destination: r.Destination,
		}, nil
	default:
		return Charge{}, fmt.Errorf("%w: %d", ErrUnknownMode, r.Mode)
	}
}

// Due reports whether value has to move to pay this charge.
func (c Charge) Due() bool {
	return c.Kind != None && c.Amount > 0
}

// Deduction is the part of the requested amount that does not reach the
// vault.
func (c Charge) Deduction() uint64 {
	if c.Kind == Proportional {
		return c.Amount
	}
	return 0
}

// Lockable returns the amount left to lock out of amount.
func (c Charge) Lockable(amount uint64) (uint64, error) {
	return math.Sub(amount, c.Deduction())
}

// Settles reports whether paying this charge marks the asset's fee as
// paid. Only paid-once configurations record it, and only once value
// actually moved.
func (c Charge) Settles(permissioned bool) bool {
	return !permissioned && c.Due()
}
