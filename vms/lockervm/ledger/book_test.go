// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/database/memdb"
	"github.com/luxfi/ids"
)

type testAccounts struct {
	asset        ids.ID
	owner, other ids.ShortID
	from, to     ids.ShortID
}

func newTestBook(t *testing.T) (*Book, testAccounts) {
	require := require.New(t)

	accs := testAccounts{
		asset: ids.GenerateTestID(),
		owner: ids.GenerateTestShortID(),
		other: ids.GenerateTestShortID(),
		from:  ids.GenerateTestShortID(),
		to:    ids.GenerateTestShortID(),
	}
	book := NewBook(memdb.New())
	require.NoError(book.Open(accs.from, accs.asset, accs.owner))
	require.NoError(book.Open(accs.to, accs.asset, accs.other))
	require.NoError(book.Mint(accs.from, 1_000))
	return book, accs
}

func TestBookTransfer(t *testing.T) {
	require := require.New(t)

	book, accs := newTestBook(t)

	moved, err := book.Transfer(accs.from, accs.to, accs.owner, 400)
	require.NoError(err)
	require.Equal(uint64(400), moved)

	balance, err := book.Balance(accs.from)
	require.NoError(err)
	require.Equal(uint64(600), balance)

	balance, err = book.Balance(accs.to)
	require.NoError(err)
	require.Equal(uint64(400), balance)
}

func TestBookTransferErrors(t *testing.T) {
	book, accs := newTestBook(t)

	otherAsset := ids.GenerateTestShortID()
	require.NoError(t, book.Open(otherAsset, ids.GenerateTestID(), accs.owner))

	tests := []struct {
		name        string
		source      ids.ShortID
		destination ids.ShortID
		authority   ids.ShortID
		amount      uint64
		expectedErr error
	}{
		{
			name:        "wrong authority",
			source:      accs.from,
			destination: accs.to,
			authority:   accs.other,
			amount:      1,
			expectedErr: ErrWrongAuthority,
		},
		{
			name:        "insufficient balance",
			source:      accs.from,
			destination: accs.to,
			authority:   accs.owner,
			amount:      1_001,
			expectedErr: ErrInsufficientBalance,
		},
		{
			name:        "asset mismatch",
			source:      accs.from,
			destination: otherAsset,
			authority:   accs.owner,
			amount:      1,
			expectedErr: ErrAssetMismatch,
		},
		{
			name:        "unknown destination",
			source:      accs.from,
			destination: ids.GenerateTestShortID(),
			authority:   accs.owner,
			amount:      1,
			expectedErr: ErrAccountNotFound,
		},
		{
			name:        "same account",
			source:      accs.from,
			destination: accs.from,
			authority:   accs.owner,
			amount:      1,
			expectedErr: ErrSameAccount,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := book.Transfer(test.source, test.destination, test.authority, test.amount)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestBookTransferLimit(t *testing.T) {
	require := require.New(t)

	book, accs := newTestBook(t)
	book.SetTransferLimit(accs.asset, 99)

	moved, err := book.Transfer(accs.from, accs.to, accs.owner, 400)
	require.NoError(err)
	require.Equal(uint64(99), moved)

	book.SetTransferLimit(accs.asset, 0)
	moved, err = book.Transfer(accs.from, accs.to, accs.owner, 400)
	require.NoError(err)
	require.Equal(uint64(400), moved)
}

func TestBookOpenTwice(t *testing.T) {
	book, accs := newTestBook(t)

	err := book.Open(accs.from, accs.asset, accs.owner)
	require.ErrorIs(t, err, ErrAccountExists)
}

func TestBookCloseAccount(t *testing.T) {
	require := require.New(t)

	book, accs := newTestBook(t)

	err := book.CloseAccount(accs.from, accs.owner, accs.owner)
	require.ErrorIs(err, ErrNonZeroBalance)

	err = book.CloseAccount(accs.to, accs.other, accs.owner)
	require.ErrorIs(err, ErrWrongAuthority)

	require.NoError(book.CloseAccount(accs.to, accs.other, accs.other))
	_, err = book.Account(accs.to)
	require.ErrorIs(err, ErrAccountNotFound)
}

func TestBookAbort(t *testing.T) {
	require := require.New(t)

	db := memdb.New()
	book := NewBook(db)
	addr := ids.GenerateTestShortID()
	owner := ids.GenerateTestShortID()
	asset := ids.GenerateTestID()

	require.NoError(book.Open(addr, asset, owner))
	require.NoError(book.Mint(addr, 10))
	require.NoError(book.Commit())

	require.NoError(book.Mint(addr, 5))
	balance, err := book.Balance(addr)
	require.NoError(err)
	require.Equal(uint64(15), balance)

	book.Abort()
	balance, err = book.Balance(addr)
	require.NoError(err)
	require.Equal(uint64(10), balance)

	// committed state survives a fresh view of the database
	reopened := NewBook(db)
	acc, err := reopened.Account(addr)
	require.NoError(err)
	require.Equal(Account{Address: addr, Owner: owner, Asset: asset, Balance: 10}, acc)
}
