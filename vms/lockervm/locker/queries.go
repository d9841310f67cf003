// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package locker

import (
	"errors"

	"github.com/luxfi/ids"

	"github.com/luxfi/locker/vms/lockervm/config"
	"github.com/luxfi/locker/vms/lockervm/ledger"
	"github.com/luxfi/locker/vms/lockervm/state"
)

func (e *Engine) GetConfig() (config.Config, error) {
	var cfg config.Config
	err := e.view(func(s *state.State) error {
		var err error
		cfg, err = s.GetConfig()
		return err
	})
	return cfg, err
}

func (e *Engine) GetLocker(id ids.ID) (*state.Locker, error) {
	var l *state.Locker
	err := e.view(func(s *state.State) error {
		var err error
		l, err = s.GetLocker(id)
		return err
	})
	return l, err
}

func (e *Engine) GetLockers() ([]*state.Locker, error) {
	var lockers []*state.Locker
	err := e.view(func(s *state.State) error {
		var err error
		lockers, err = s.Lockers()
		return err
	})
	return lockers, err
}

func (e *Engine) GetLockersOwnedBy(owner ids.ShortID) ([]*state.Locker, error) {
	var lockers []*state.Locker
	err := e.view(func(s *state.State) error {
		var err error
		lockers, err = s.LockersOwnedBy(owner)
		return err
	})
	return lockers, err
}

// GetAccount returns a ledger account as of the last completed operation.
func (e *Engine) GetAccount(address ids.ShortID) (ledger.Account, error) {
	var acc ledger.Account
	err := e.view(func(*state.State) error {
		var err error
		acc, err = e.Ledger.Account(address)
		return err
	})
	return acc, err
}

// IsMintWhitelisted reports whether the fee for asset has been paid, so
// that paid-once deposits of it are no longer charged. Unknown assets are
// not whitelisted.
func (e *Engine) IsMintWhitelisted(asset ids.ID) (bool, error) {
	var paid bool
	err := e.view(func(s *state.State) error {
		info, err := s.GetMintInfo(asset)
		switch {
		case errors.Is(err, state.ErrMintInfoNotFound):
			return nil
		case err != nil:
			return err
		}
		paid = info.FeePaid
		return nil
	})
	return paid, err
}

// Withdrawable returns what the owner could withdraw from a locker now.
func (e *Engine) Withdrawable(id ids.ID) (uint64, error) {
	var amount uint64
	err := e.view(func(s *state.State) error {
		l, err := s.GetLocker(id)
		if err != nil {
			return err
		}
		balance, err := e.Ledger.Balance(l.Vault)
		if err != nil {
			return err
		}
		now := e.Clock.Unix()
		if balance == 0 || (now < l.CurrentUnlockDate && !l.HasStartEmission) {
			return nil
		}
		amount, err = l.Schedule().Withdrawable(now, balance, balance)
		if errors.Is(err, ErrInvalidAmount) {
			return nil
		}
		return err
	})
	return amount, err
}
