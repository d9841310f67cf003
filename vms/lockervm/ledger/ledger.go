// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:generate go run go.uber.org/mock/mockgen -package=${GOPACKAGE}mock -destination=${GOPACKAGE}mock/ledger.go -mock_names=Ledger=Ledger . Ledger

// Package ledger defines the value store the locker moves funds through,
// the verifier every movement goes through, and Book, a ledger backed by
// a key-value database.
package ledger

import (
	"github.com/luxfi/ids"
)

// Account is a single-asset balance controlled by Owner.
type Account struct {
	Address ids.ShortID `serialize:"true" json:"address"`
	Owner   ids.ShortID `serialize:"true" json:"owner"`
	Asset   ids.ID      `serialize:"true" json:"asset"`
	Balance uint64      `serialize:"true" json:"balance"`
}

// Ledger is the external account store.
//
// Transfer may move less than requested; callers go through Verifier.
type Ledger interface {
	// Account fails with ErrAccountNotFound for unknown addresses.
	Account(address ids.ShortID) (Account, error)
	Balance(address ids.ShortID) (uint64, error)
	// Open creates an empty account for asset controlled by owner.
	Open(address ids.ShortID, asset ids.ID, owner ids.ShortID) error
	// Transfer moves up to amount from source to destination. authority
	// must control source. It returns the amount actually moved.
	Transfer(source, destination, authority ids.ShortID, amount uint64) (uint64, error)
	// CloseAccount deletes a zero-balance account and releases whatever
	// the ledger holds for it to destination.
	CloseAccount(account, destination, authority ids.ShortID) error
}

// Atomic is implemented by ledgers whose changes can be committed or
// discarded together with the locker state.
type Atomic interface {
	Commit() error
	Abort()
}
