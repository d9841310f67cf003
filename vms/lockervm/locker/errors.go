// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package locker

import (
	"errors"

	"github.com/luxfi/locker/utils/math"
	"github.com/luxfi/locker/vms/lockervm/fee"
	"github.com/luxfi/locker/vms/lockervm/ledger"
	"github.com/luxfi/locker/vms/lockervm/state"
	"github.com/luxfi/locker/vms/lockervm/vesting"
)

var (
	ErrUnlockInThePast          = errors.New("unlock date is in the past")
	ErrInvalidTimestamp         = errors.New("invalid timestamp")
	ErrNothingToLock            = errors.New("nothing to lock")
	ErrCannotUnlockEarlier      = errors.New("cannot unlock earlier")
	ErrInvalidCountry           = errors.New("country is not allowed")
	ErrUnauthorized             = errors.New("unauthorized")
	ErrConfigAlreadyInitialized = errors.New("config already initialized")
	ErrLinearEmissionDisabled   = errors.New("linear emission is disabled")
	ErrMintInfoExists           = errors.New("mint info already exists")
	ErrLockerExists             = errors.New("locker already exists")

	ErrInvalidPeriod         = vesting.ErrInvalidPeriod
	ErrTooEarlyToWithdraw    = vesting.ErrTooEarlyToWithdraw
	ErrInvalidAmount         = vesting.ErrInvalidAmount
	ErrInvalidFeeDestination = fee.ErrInvalidFeeDestination
	ErrIntegerOverflow       = math.ErrOverflow
	ErrAmountMismatch        = ledger.ErrAmountMismatch
	ErrAssetMismatch         = ledger.ErrAssetMismatch
	ErrSameAccount           = ledger.ErrSameAccount
	ErrConfigNotInitialized  = state.ErrConfigNotFound
	ErrMintInfoNotFound      = state.ErrMintInfoNotFound
	ErrLockerNotFound        = state.ErrLockerNotFound
)
