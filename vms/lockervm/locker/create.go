// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package locker

import (
	"fmt"

	"github.com/luxfi/ids"
	"github.com/luxfi/log"

	"github.com/luxfi/locker/utils/math"
	"github.com/luxfi/locker/vms/lockervm/config"
	"github.com/luxfi/locker/vms/lockervm/countries"
	"github.com/luxfi/locker/vms/lockervm/fee"
	"github.com/luxfi/locker/vms/lockervm/state"
)

// Payment describes how the caller pays the fee of a deposit.
type Payment struct {
	Mode fee.Kind `json:"mode"`
	// Source pays a flat fee. It must hold the native asset. Proportional
	// fees are paid out of the deposit's source.
	Source ids.ShortID `json:"source"`
	// Destination receives the fee.
	Destination ids.ShortID `json:"destination"`
}

type CreateRequest struct {
	// Caller creates the locker and controls Source.
	Caller ids.ShortID `json:"caller"`
	Owner  ids.ShortID `json:"owner"`
	// Source funds the locker. The locked asset is the asset of Source.
	Source ids.ShortID `json:"source"`
	// Amount is the pre-fee amount.
	Amount      uint64         `json:"amount"`
	UnlockDate  uint64         `json:"unlockDate"`
	CountryCode countries.Code `json:"countryCode"`
	// StartEmission makes the locker vest linearly from StartEmission to
	// UnlockDate.
	StartEmission *uint64 `json:"startEmission,omitempty"`
	Fee           Payment `json:"fee"`
}

// Create locks Amount less the fee into a new vault.
func (e *Engine) Create(req CreateRequest) (*state.Locker, error) {
	var l *state.Locker
	err := e.execute(opCreate, func(t *txn) error {
		cfg, err := t.state.GetConfig()
		if err != nil {
			return err
		}

		switch {
		case req.UnlockDate <= t.now:
			return fmt.Errorf("%w: %d <= %d", ErrUnlockInThePast, req.UnlockDate, t.now)
		case req.UnlockDate > e.Params.MaxUnlockDate:
			return fmt.Errorf("%w: unlock date %d exceeds %d",
				ErrInvalidTimestamp, req.UnlockDate, e.Params.MaxUnlockDate)
		}
		if req.StartEmission != nil {
			if !cfg.LinearEmissionEnabled {
				return ErrLinearEmissionDisabled
			}
			if *req.StartEmission >= req.UnlockDate {
				return fmt.Errorf("%w: start %d, unlock %d",
					ErrInvalidPeriod, *req.StartEmission, req.UnlockDate)
			}
		}
		if !e.Countries.IsCountryAllowed(req.CountryCode) {
			return fmt.Errorf("%w: %s", ErrInvalidCountry, req.CountryCode)
		}

		source, err := e.Ledger.Account(req.Source)
		if err != nil {
			return err
		}

		seq, err := t.state.NextSequence()
		if err != nil {
			return err
		}
		id := e.Deriver.LockerID(req.Caller, req.UnlockDate, seq)
		has, err := t.state.HasLocker(id)
		if err != nil {
			return err
		}
		if has {
			return fmt.Errorf("%w: %s", ErrLockerExists, id)
		}

		l = &state.Locker{
			ID:                 id,
			Owner:              req.Owner,
			Creator:            req.Caller,
			Asset:              source.Asset,
			CountryCode:        req.CountryCode,
			OriginalUnlockDate: req.UnlockDate,
			CurrentUnlockDate:  req.UnlockDate,
			Vault:              e.Deriver.Vault(id),
			VaultAuthority:     e.Deriver.VaultAuthority(id),
		}
		if req.StartEmission != nil {
			l.HasStartEmission = true
			l.StartEmission = *req.StartEmission
		}
		if err := e.Ledger.Open(l.Vault, l.Asset, l.VaultAuthority); err != nil {
			return err
		}

		locked, err := e.deposit(t, cfg, l, req.Caller, req.Source, req.Amount, req.Fee)
		if err != nil {
			return err
		}
		if err := t.state.PutLocker(l); err != nil {
			return err
		}

		e.Log.Info("locker created",
			log.Stringer("lockerID", l.ID),
			log.Stringer("owner", l.Owner),
			log.Stringer("asset", l.Asset),
			log.Uint64("locked", locked),
			log.Uint64("unlockDate", l.CurrentUnlockDate),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

type IncrementLockRequest struct {
	// Caller is the locker owner or controls Source.
	Caller ids.ShortID `json:"caller"`
	Locker ids.ID      `json:"locker"`
	Source ids.ShortID `json:"source"`
	Amount uint64      `json:"amount"`
	Fee    Payment     `json:"fee"`
}

// IncrementLock adds Amount less the fee to an existing locker. The
// withdrawal checkpoint is kept.
func (e *Engine) IncrementLock(req IncrementLockRequest) (*state.Locker, error) {
	var l *state.Locker
	err := e.execute(opIncrementLock, func(t *txn) error {
		cfg, err := t.state.GetConfig()
		if err != nil {
			return err
		}
		l, err = t.state.GetLocker(req.Locker)
		if err != nil {
			return err
		}
		source, err := e.Ledger.Account(req.Source)
		if err != nil {
			return err
		}
		if req.Caller != l.Owner && req.Caller != source.Owner {
			return ErrUnauthorized
		}

		locked, err := e.deposit(t, cfg, l, req.Caller, req.Source, req.Amount, req.Fee)
		if err != nil {
			return err
		}
		if err := t.state.PutLocker(l); err != nil {
			return err
		}

		e.Log.Info("locker incremented",
			log.Stringer("lockerID", l.ID),
			log.Uint64("locked", locked),
			log.Uint64("deposited", l.DepositedAmount),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

// deposit charges the fee owed on amount and moves the rest from source
// into the locker's vault. It returns the amount locked.
func (e *Engine) deposit(
	t *txn,
	cfg config.Config,
	l *state.Locker,
	authority ids.ShortID,
	source ids.ShortID,
	amount uint64,
	payment Payment,
) (uint64, error) {
	acc, err := e.Ledger.Account(source)
	if err != nil {
		return 0, err
	}
	if acc.Asset != l.Asset {
		return 0, fmt.Errorf("%w: source holds %s, locker holds %s", ErrAssetMismatch, acc.Asset, l.Asset)
	}
	info, err := e.mintInfo(t, cfg, l.Asset)
	if err != nil {
		return 0, err
	}

	feeSource := source
	if payment.Mode == fee.Flat {
		feeSource = payment.Source
	}
	charge, err := fee.Resolve(fee.Request{
		Config:          cfg,
		FeePaid:         info.FeePaid,
		Mode:            payment.Mode,
		Amount:          amount,
		Source:          feeSource,
		Destination:     payment.Destination,
		AssetFeeAccount: e.Deriver.FeeAccount(cfg.FeeDestination, l.Asset),
	})
	if err != nil {
		return 0, err
	}
	locked, err := charge.Lockable(amount)
	if err != nil {
		return 0, err
	}
	if locked == 0 {
		return 0, ErrNothingToLock
	}

	if err := e.payFee(cfg, charge, l.Asset, authority); err != nil {
		return 0, err
	}
	if err := e.verifier.Transfer(source, l.Vault, authority, locked); err != nil {
		return 0, err
	}
	l.DepositedAmount, err = math.Add(l.DepositedAmount, locked)
	if err != nil {
		return 0, err
	}

	if charge.Settles(cfg.MintInfoPermissioned) {
		info.FeePaid = true
	}
	if err := t.state.PutMintInfo(info); err != nil {
		return 0, err
	}

	t.fees = append(t.fees, charge)
	t.locked += locked
	return locked, nil
}

// payFee moves a due fee to its destination. The per-asset fee account is
// opened on first use.
func (e *Engine) payFee(cfg config.Config, c fee.Charge, asset ids.ID, authority ids.ShortID) error {
	if !c.Due() {
		return nil
	}

	switch c.Kind {
	case fee.Flat:
		acc, err := e.Ledger.Account(c.Source)
		if err != nil {
			return err
		}
		if acc.Asset != e.Params.NativeAsset {
			return fmt.Errorf("%w: flat fee must be paid in %s", ErrAssetMismatch, e.Params.NativeAsset)
		}
	case fee.Proportional:
		_, err := e.Ledger.Account(c.Destination)
		switch {
		case isNotFound(err):
			if err := e.Ledger.Open(c.Destination, asset, cfg.FeeDestination); err != nil {
				return err
			}
		case err != nil:
			return err
		}
	}
	return e.verifier.Transfer(c.Source, c.Destination, authority, c.Amount)
}
