// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package locker

import (
	"errors"
	"testing"
	"time"

	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/locker/vms/lockervm/ledger"
)

// hookedLedger calls hook after every transfer the book accepted, while
// the operation making it is still running.
type hookedLedger struct {
	*ledger.Book
	hook func() error
}

func (h *hookedLedger) Transfer(source, destination, authority ids.ShortID, amount uint64) (uint64, error) {
	moved, err := h.Book.Transfer(source, destination, authority, amount)
	if err != nil || h.hook == nil {
		return moved, err
	}
	return moved, h.hook()
}

func TestGetAccountWaitsForOperation(t *testing.T) {
	require := require.New(t)
	cfg := defaultConfig()
	env := newTestEnv(t, &cfg)

	l := env.create(t, 1_000, now+100, nil)
	env.clock.SetUnix(now + 100)

	hooked := &hookedLedger{Book: env.book}
	backend := env.engine.Backend
	backend.Ledger = hooked
	env.engine = New(env.engine.db, backend)

	type result struct {
		balance uint64
		err     error
	}
	var (
		errHalt   = errors.New("halt")
		results   = make(chan result, 1)
		readEarly bool
	)
	hooked.hook = func() error {
		go func() {
			acc, err := env.engine.GetAccount(l.Vault)
			results <- result{balance: acc.Balance, err: err}
		}()
		select {
		case <-results:
			readEarly = true
		case <-time.After(50 * time.Millisecond):
		}
		return errHalt
	}

	_, err := env.engine.Withdraw(WithdrawRequest{
		Caller:      env.alice,
		Locker:      l.ID,
		Destination: env.aliceFunds,
		Amount:      1_000,
	})
	require.ErrorIs(err, errHalt)
	require.False(readEarly)

	res := <-results
	require.NoError(res.err)
	require.Equal(uint64(1_000), res.balance)
}

func TestGetAccount(t *testing.T) {
	require := require.New(t)
	env := newTestEnv(t, nil)

	acc, err := env.engine.GetAccount(env.aliceFunds)
	require.NoError(err)
	require.Equal(ledger.Account{
		Address: env.aliceFunds,
		Owner:   env.alice,
		Asset:   env.asset,
		Balance: initialFunds,
	}, acc)

	_, err = env.engine.GetAccount(ids.GenerateTestShortID())
	require.ErrorIs(err, ledger.ErrAccountNotFound)
}
