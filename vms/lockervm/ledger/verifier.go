// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"errors"
	"fmt"

	"github.com/luxfi/ids"
)

var ErrAmountMismatch = errors.New("transferred amount mismatch")

// Verifier wraps a Ledger so that every transfer is checked against the
// source balance: the source must lose exactly the requested amount.
type Verifier struct {
	Ledger Ledger
}

// Transfer moves amount from source to destination and fails with
// ErrAmountMismatch if the source balance did not drop by exactly amount.
// Zero amounts are not sent to the ledger.
func (v Verifier) Transfer(source, destination, authority ids.ShortID, amount uint64) error {
	if amount == 0 {
		return nil
	}

	before, err := v.Ledger.Balance(source)
	if err != nil {
		return err
	}
	if _, err := v.Ledger.Transfer(source, destination, authority, amount); err != nil {
		return err
	}
	after, err := v.Ledger.Balance(source)
	if err != nil {
		return err
	}

	if after > before || before-after != amount {
		return fmt.Errorf("%w: requested %d, source balance went from %d to %d",
			ErrAmountMismatch, amount, before, after)
	}
	return nil
}
