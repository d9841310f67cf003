// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/luxfi/database"
	"github.com/luxfi/database/versiondb"
	"github.com/luxfi/ids"

	"github.com/luxfi/locker/utils/math"
)

var (
	_ Ledger = (*Book)(nil)
	_ Atomic = (*Book)(nil)

	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountExists       = errors.New("account already exists")
	ErrWrongAuthority      = errors.New("authority does not own account")
	ErrAssetMismatch       = errors.New("asset mismatch")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNonZeroBalance      = errors.New("account balance is not zero")
	ErrSameAccount         = errors.New("source and destination are the same account")

	prefixAccount = []byte("account:")
)

// Book is a Ledger kept in a database. Writes are buffered until Commit
// and dropped by Abort.
type Book struct {
	mu sync.RWMutex
	db *versiondb.Database

	// limits caps the amount a single transfer of an asset moves, which
	// models assets that fill transfers partially.
	limits map[ids.ID]uint64
}

// NewBook returns a ledger stored in db.
func NewBook(db database.Database) *Book {
	return &Book{
		db:     versiondb.New(db),
		limits: make(map[ids.ID]uint64),
	}
}

// SetTransferLimit makes every later transfer of asset move at most
// limit. A zero limit removes the cap.
func (b *Book) SetTransferLimit(asset ids.ID, limit uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if limit == 0 {
		delete(b.limits, asset)
		return
	}
	b.limits[asset] = limit
}

func (b *Book) Account(address ids.ShortID) (Account, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.getAccount(address)
}

func (b *Book) Balance(address ids.ShortID) (uint64, error) {
	acc, err := b.Account(address)
	if err != nil {
		return 0, err
	}
	return acc.Balance, nil
}

func (b *Book) Open(address ids.ShortID, asset ids.ID, owner ids.ShortID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	has, err := b.db.Has(accountKey(address))
	if err != nil {
		return err
	}
	if has {
		return fmt.Errorf("%w: %s", ErrAccountExists, address)
	}
	return b.putAccount(Account{
		Address: address,
		Owner:   owner,
		Asset:   asset,
	})
}

// Mint credits amount to an existing account out of thin air. It is the
// entry point for value into a Book.
func (b *Book) Mint(address ids.ShortID, amount uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	acc, err := b.getAccount(address)
	if err != nil {
		return err
	}
	acc.Balance, err = math.Add(acc.Balance, amount)
	if err != nil {
		return err
	}
	return b.putAccount(acc)
}

func (b *Book) Transfer(source, destination, authority ids.ShortID, amount uint64) (uint64, error) {
	if source == destination {
		return 0, fmt.Errorf("%w: %s", ErrSameAccount, source)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	from, err := b.getAccount(source)
	if err != nil {
		return 0, err
	}
	to, err := b.getAccount(destination)
	if err != nil {
		return 0, err
	}
	if from.Owner != authority {
		return 0, fmt.Errorf("%w: %s", ErrWrongAuthority, source)
	}
	if from.Asset != to.Asset {
		return 0, fmt.Errorf("%w: %s -> %s", ErrAssetMismatch, from.Asset, to.Asset)
	}
	if from.Balance < amount {
		return 0, fmt.Errorf("%w: have %d, need %d", ErrInsufficientBalance, from.Balance, amount)
	}
	moved := amount
	if limit, ok := b.limits[from.Asset]; ok {
		moved = min(moved, limit)
	}

	from.Balance -= moved
	to.Balance, err = math.Add(to.Balance, moved)
	if err != nil {
		return 0, err
	}
	if err := b.putAccount(from); err != nil {
		return 0, err
	}
	return moved, b.putAccount(to)
}

// CloseAccount deletes an empty account. Book accounts carry no reserve,
// so nothing is released to destination.
func (b *Book) CloseAccount(account, _, authority ids.ShortID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	acc, err := b.getAccount(account)
	if err != nil {
		return err
	}
	if acc.Owner != authority {
		return fmt.Errorf("%w: %s", ErrWrongAuthority, account)
	}
	if acc.Balance != 0 {
		return fmt.Errorf("%w: %s holds %d", ErrNonZeroBalance, account, acc.Balance)
	}
	return b.db.Delete(accountKey(account))
}

// Commit writes all buffered changes to the underlying database.
func (b *Book) Commit() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.db.Commit()
}

// Abort drops all changes since the last Commit.
func (b *Book) Abort() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.db.Abort()
}

func (b *Book) getAccount(address ids.ShortID) (Account, error) {
	data, err := b.db.Get(accountKey(address))
	if errors.Is(err, database.ErrNotFound) {
		return Account{}, fmt.Errorf("%w: %s", ErrAccountNotFound, address)
	}
	if err != nil {
		return Account{}, err
	}

	var acc Account
	if _, err := Codec.Unmarshal(data, &acc); err != nil {
		return Account{}, err
	}
	return acc, nil
}

func (b *Book) putAccount(acc Account) error {
	data, err := Codec.Marshal(codecVersion, &acc)
	if err != nil {
		return err
	}
	return b.db.Put(accountKey(acc.Address), data)
}

func accountKey(address ids.ShortID) []byte {
	key := make([]byte, 0, len(prefixAccount)+len(address))
	key = append(key, prefixAccount...)
	return append(key, address[:]...)
}
