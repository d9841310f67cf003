// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package locker

import (
	"errors"

	"github.com/luxfi/ids"
	"github.com/luxfi/log"

	"github.com/luxfi/locker/vms/lockervm/config"
	"github.com/luxfi/locker/vms/lockervm/state"
)

type InitConfigRequest struct {
	// Caller becomes the admin.
	Caller ids.ShortID   `json:"caller"`
	Config config.Config `json:"config"`
}

// InitConfig creates the config. It can only succeed once.
func (e *Engine) InitConfig(req InitConfigRequest) (config.Config, error) {
	var cfg config.Config
	err := e.execute(opInitConfig, func(t *txn) error {
		has, err := t.state.HasConfig()
		if err != nil {
			return err
		}
		if has {
			return ErrConfigAlreadyInitialized
		}

		cfg = req.Config
		cfg.Admin = req.Caller
		cfg.Version = 0
		if err := cfg.Verify(); err != nil {
			return err
		}
		if err := t.state.PutConfig(cfg); err != nil {
			return err
		}

		e.Log.Info("config initialized",
			log.Stringer("admin", cfg.Admin),
			log.Stringer("feeDestination", cfg.FeeDestination),
			log.Bool("mintInfoPermissioned", cfg.MintInfoPermissioned),
		)
		return nil
	})
	return cfg, err
}

type UpdateConfigRequest struct {
	Caller ids.ShortID   `json:"caller"`
	Update config.Update `json:"update"`
}

// UpdateConfig applies a partial update. Only the admin may update.
func (e *Engine) UpdateConfig(req UpdateConfigRequest) (config.Config, error) {
	var cfg config.Config
	err := e.execute(opUpdateConfig, func(t *txn) error {
		current, err := t.state.GetConfig()
		if err != nil {
			return err
		}
		if current.Admin != req.Caller {
			return ErrUnauthorized
		}

		cfg, err = req.Update.Apply(current)
		if err != nil {
			return err
		}
		if err := t.state.PutConfig(cfg); err != nil {
			return err
		}

		e.Log.Info("config updated",
			log.Stringer("admin", cfg.Admin),
			log.Uint64("version", cfg.Version),
		)
		return nil
	})
	return cfg, err
}

type InitMintInfoRequest struct {
	Caller ids.ShortID `json:"caller"`
	Asset  ids.ID      `json:"asset"`
}

// InitMintInfo registers an asset. When mint info is permissioned only
// the admin may register assets.
func (e *Engine) InitMintInfo(req InitMintInfoRequest) error {
	return e.execute(opInitMintInfo, func(t *txn) error {
		cfg, err := t.state.GetConfig()
		if err != nil {
			return err
		}
		if cfg.MintInfoPermissioned && cfg.Admin != req.Caller {
			return ErrUnauthorized
		}

		has, err := t.state.HasMintInfo(req.Asset)
		if err != nil {
			return err
		}
		if has {
			return ErrMintInfoExists
		}
		if err := t.state.PutMintInfo(state.MintInfo{Asset: req.Asset}); err != nil {
			return err
		}

		e.Log.Info("mint info initialized",
			log.Stringer("asset", req.Asset),
		)
		return nil
	})
}

// mintInfo returns the asset's mint info. Without permissioning unknown
// assets are registered on first use.
func (*Engine) mintInfo(t *txn, cfg config.Config, asset ids.ID) (state.MintInfo, error) {
	info, err := t.state.GetMintInfo(asset)
	switch {
	case err == nil:
		return info, nil
	case !errors.Is(err, state.ErrMintInfoNotFound), cfg.MintInfoPermissioned:
		return state.MintInfo{}, err
	default:
		return state.MintInfo{Asset: asset}, nil
	}
}
