// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config defines the admin-owned fee configuration of the locker
// and the static parameters of the locker engine.
package config

import (
	"errors"
	"fmt"

	"github.com/luxfi/ids"
)

const (
	// DefaultFeeNumerator and DefaultFeeDenominator charge 0.35% of the
	// locked value.
	DefaultFeeNumerator   = 35
	DefaultFeeDenominator = 10_000

	// DefaultMaxUnlockDate is the largest accepted unix timestamp in
	// seconds. Millisecond timestamps are several orders of magnitude
	// larger and are rejected.
	DefaultMaxUnlockDate = 10_000_000_000
)

var (
	ErrZeroDenominator = errors.New("proportional fee denominator is zero")
	ErrFeeAboveOne     = errors.New("proportional fee numerator exceeds denominator")
)

// Config is the process-wide fee configuration. It is created once by the
// admin and afterwards only changed through Update.
type Config struct {
	// Admin may update the config and, when MintInfoPermissioned is set,
	// register new assets.
	Admin ids.ShortID `serialize:"true" json:"admin"`

	// FlatFeeAmount is charged in the native asset.
	FlatFeeAmount uint64 `serialize:"true" json:"flatFeeAmount"`

	ProportionalFeeNumerator   uint64 `serialize:"true" json:"proportionalFeeNumerator"`
	ProportionalFeeDenominator uint64 `serialize:"true" json:"proportionalFeeDenominator"`

	// MintInfoPermissioned charges the fee on every operation and restricts
	// asset registration to the admin. Otherwise the fee is charged once
	// per asset and anyone may register one.
	MintInfoPermissioned bool `serialize:"true" json:"mintInfoPermissioned"`

	// LinearEmissionEnabled allows lockers to carry a vesting start.
	LinearEmissionEnabled bool `serialize:"true" json:"linearEmissionEnabled"`

	// FeeDestination owns the accounts receiving fees.
	FeeDestination ids.ShortID `serialize:"true" json:"feeDestination"`

	// CountryListRef identifies the ban list consulted at creation.
	CountryListRef ids.ID `serialize:"true" json:"countryListRef"`

	// Version is bumped by every applied update.
	Version uint64 `serialize:"true" json:"version"`
}

// Verify checks the fee rate is a fraction in [0, 1].
func (c *Config) Verify() error {
	switch {
	case c.ProportionalFeeDenominator == 0:
		return ErrZeroDenominator
	case c.ProportionalFeeNumerator > c.ProportionalFeeDenominator:
		return fmt.Errorf("%w: %d/%d", ErrFeeAboveOne,
			c.ProportionalFeeNumerator, c.ProportionalFeeDenominator)
	default:
		return nil
	}
}

// Update is a partial config change. Nil fields keep their current value.
type Update struct {
	Admin                      *ids.ShortID `json:"admin,omitempty"`
	FlatFeeAmount              *uint64      `json:"flatFeeAmount,omitempty"`
	ProportionalFeeNumerator   *uint64      `json:"proportionalFeeNumerator,omitempty"`
	ProportionalFeeDenominator *uint64      `json:"proportionalFeeDenominator,omitempty"`
	MintInfoPermissioned       *bool        `json:"mintInfoPermissioned,omitempty"`
	LinearEmissionEnabled      *bool        `json:"linearEmissionEnabled,omitempty"`
	FeeDestination             *ids.ShortID `json:"feeDestination,omitempty"`
	CountryListRef             *ids.ID      `json:"countryListRef,omitempty"`
}

// Apply returns a copy of c with u applied and the version bumped. The
// result is verified before it is returned.
func (u *Update) Apply(c Config) (Config, error) {
	if u.Admin != nil {
		c.Admin = *u.Admin
	}
	if u.FlatFeeAmount != nil {
		c.FlatFeeAmount = *u.FlatFeeAmount
	}
	if u.ProportionalFeeNumerator != nil {
		c.ProportionalFeeNumerator = *u.ProportionalFeeNumerator
	}
	if u.ProportionalFeeDenominator != nil {
		c.ProportionalFeeDenominator = *u.ProportionalFeeDenominator
	}
	if u.MintInfoPermissioned != nil {
		c.MintInfoPermissioned = *u.MintInfoPermissioned
	}
	if u.LinearEmissionEnabled != nil {
		c.LinearEmissionEnabled = *u.LinearEmissionEnabled
	}
	if u.FeeDestination != nil {
		c.FeeDestination = *u.FeeDestination
	}
	if u.CountryListRef != nil {
		c.CountryListRef = *u.CountryListRef
	}
	if err := c.Verify(); err != nil {
		return Config{}, err
	}
	c.Version++
	return c, nil
}

// Params are static engine parameters, fixed at construction.
type Params struct {
	// MaxUnlockDate bounds unlock dates from above.
	MaxUnlockDate uint64 `json:"maxUnlockDate"`
	// NativeAsset is the asset flat fees are paid in.
	NativeAsset ids.ID `json:"nativeAsset"`
}

// DefaultParams returns the default engine parameters.
func DefaultParams() Params {
	return Params{
		MaxUnlockDate: DefaultMaxUnlockDate,
		NativeAsset:   ids.Empty,
	}
}
