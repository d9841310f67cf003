// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package locker

import (
	"fmt"

	"github.com/luxfi/ids"
	"github.com/luxfi/log"

	"github.com/luxfi/locker/vms/lockervm/state"
)

type WithdrawRequest struct {
	Caller      ids.ShortID `json:"caller"`
	Locker      ids.ID      `json:"locker"`
	Destination ids.ShortID `json:"destination"`
	Amount      uint64      `json:"amount"`
}

type WithdrawReply struct {
	// Withdrawn is the amount sent to the destination. It may be less
	// than requested.
	Withdrawn uint64 `json:"withdrawn"`
	// Closed reports whether the withdrawal emptied and closed the locker.
	Closed bool `json:"closed"`
}

// Withdraw sends up to Amount of the vested value to Destination.
func (e *Engine) Withdraw(req WithdrawRequest) (WithdrawReply, error) {
	var reply WithdrawReply
	err := e.execute(opWithdraw, func(t *txn) error {
		l, err := e.ownedLocker(t, req.Locker, req.Caller)
		if err != nil {
			return err
		}
		balance, err := e.Ledger.Balance(l.Vault)
		if err != nil {
			return err
		}
		amount, err := l.Schedule().Withdrawable(t.now, balance, req.Amount)
		if err != nil {
			return err
		}
		if err := e.verifier.Transfer(l.Vault, req.Destination, l.VaultAuthority, amount); err != nil {
			return err
		}
		t.released += amount

		if l.HasStartEmission {
			l.HasLastWithdraw = true
			l.LastWithdraw = t.now
		}
		closed, err := e.closeIfEmpty(t, l)
		if err != nil {
			return err
		}
		if !closed {
			if err := t.state.PutLocker(l); err != nil {
				return err
			}
		}

		e.Log.Info("locker withdrawn",
			log.Stringer("lockerID", l.ID),
			log.Stringer("destination", req.Destination),
			log.Uint64("amount", amount),
		)
		reply = WithdrawReply{
			Withdrawn: amount,
			Closed:    closed,
		}
		return nil
	})
	return reply, err
}

type SplitRequest struct {
	Caller   ids.ShortID `json:"caller"`
	Locker   ids.ID      `json:"locker"`
	NewOwner ids.ShortID `json:"newOwner"`
	Amount   uint64      `json:"amount"`
}

// Split moves Amount out of a locker into a new locker with the same
// schedule owned by NewOwner. The new locker starts without withdrawal
// history.
func (e *Engine) Split(req SplitRequest) (*state.Locker, error) {
	var split *state.Locker
	err := e.execute(opSplit, func(t *txn) error {
		l, err := e.ownedLocker(t, req.Locker, req.Caller)
		if err != nil {
			return err
		}
		balance, err := e.Ledger.Balance(l.Vault)
		if err != nil {
			return err
		}
		if req.Amount == 0 || req.Amount > balance || req.Amount > l.DepositedAmount {
			return fmt.Errorf("%w: split %d out of %d", ErrInvalidAmount, req.Amount, balance)
		}

		seq, err := t.state.NextSequence()
		if err != nil {
			return err
		}
		id := e.Deriver.LockerID(l.Owner, l.CurrentUnlockDate, seq)
		has, err := t.state.HasLocker(id)
		if err != nil {
			return err
		}
		if has {
			return fmt.Errorf("%w: %s", ErrLockerExists, id)
		}

		split = &state.Locker{
			ID:                 id,
			Owner:              req.NewOwner,
			Creator:            l.Owner,
			Asset:              l.Asset,
			CountryCode:        l.CountryCode,
			OriginalUnlockDate: l.OriginalUnlockDate,
			CurrentUnlockDate:  l.CurrentUnlockDate,
			HasStartEmission:   l.HasStartEmission,
			StartEmission:      l.StartEmission,
			DepositedAmount:    req.Amount,
			Vault:              e.Deriver.Vault(id),
			VaultAuthority:     e.Deriver.VaultAuthority(id),
		}
		if err := e.Ledger.Open(split.Vault, split.Asset, split.VaultAuthority); err != nil {
			return err
		}
		if err := e.verifier.Transfer(l.Vault, split.Vault, l.VaultAuthority, req.Amount); err != nil {
			return err
		}
		if err := t.state.PutLocker(split); err != nil {
			return err
		}

		l.DepositedAmount -= req.Amount
		closed, err := e.closeIfEmpty(t, l)
		if err != nil {
			return err
		}
		if !closed {
			if err := t.state.PutLocker(l); err != nil {
				return err
			}
		}

		e.Log.Info("locker split",
			log.Stringer("lockerID", l.ID),
			log.Stringer("splitID", split.ID),
			log.Stringer("newOwner", split.Owner),
			log.Uint64("amount", req.Amount),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return split, nil
}

type CloseRequest struct {
	Caller      ids.ShortID `json:"caller"`
	Locker      ids.ID      `json:"locker"`
	Destination ids.ShortID `json:"destination"`
}

// Close sends the whole vault to Destination and removes the locker. A
// vault still holding value can only be closed from the unlock date on.
func (e *Engine) Close(req CloseRequest) (uint64, error) {
	var withdrawn uint64
	err := e.execute(opClose, func(t *txn) error {
		l, err := e.ownedLocker(t, req.Locker, req.Caller)
		if err != nil {
			return err
		}
		balance, err := e.Ledger.Balance(l.Vault)
		if err != nil {
			return err
		}
		if balance != 0 && t.now < l.CurrentUnlockDate {
			return fmt.Errorf("%w: locked until %d", ErrTooEarlyToWithdraw, l.CurrentUnlockDate)
		}
		if err := e.verifier.Transfer(l.Vault, req.Destination, l.VaultAuthority, balance); err != nil {
			return err
		}
		t.released += balance

		closed, err := e.closeIfEmpty(t, l)
		if err != nil {
			return err
		}
		if !closed {
			return fmt.Errorf("%w: vault %s was not emptied", ErrAmountMismatch, l.Vault)
		}
		withdrawn = balance
		return nil
	})
	return withdrawn, err
}
