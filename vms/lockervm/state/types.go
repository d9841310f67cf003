// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"github.com/luxfi/ids"

	"github.com/luxfi/locker/vms/lockervm/countries"
	"github.com/luxfi/locker/vms/lockervm/vesting"
)

// MintInfo records the fee status of an asset. It is created once per
// asset and never removed.
type MintInfo struct {
	Asset   ids.ID `serialize:"true" json:"asset"`
	FeePaid bool   `serialize:"true" json:"feePaid"`
}

// Locker is a single locked position. Timestamps are unix seconds.
type Locker struct {
	ID ids.ID `serialize:"true" json:"id"`

	// Owner alone may relock, transfer, withdraw, split and close.
	Owner ids.ShortID `serialize:"true" json:"owner"`
	// Creator only seeds the locker id.
	Creator ids.ShortID `serialize:"true" json:"creator"`

	Asset       ids.ID         `serialize:"true" json:"asset"`
	CountryCode countries.Code `serialize:"true" json:"countryCode"`

	OriginalUnlockDate uint64 `serialize:"true" json:"originalUnlockDate"`
	CurrentUnlockDate  uint64 `serialize:"true" json:"currentUnlockDate"`

	HasStartEmission bool   `serialize:"true" json:"hasStartEmission"`
	StartEmission    uint64 `serialize:"true" json:"startEmission"`

	// DepositedAmount is everything locked so far, net of fees, less
	// what was split off.
	DepositedAmount uint64 `serialize:"true" json:"depositedAmount"`

	HasLastWithdraw bool   `serialize:"true" json:"hasLastWithdraw"`
	LastWithdraw    uint64 `serialize:"true" json:"lastWithdraw"`

	Vault          ids.ShortID `serialize:"true" json:"vault"`
	VaultAuthority ids.ShortID `serialize:"true" json:"vaultAuthority"`
}

// Schedule returns the release schedule of the locker.
func (l *Locker) Schedule() vesting.Schedule {
	return vesting.Schedule{
		Deposited:        l.DepositedAmount,
		UnlockDate:       l.CurrentUnlockDate,
		HasStartEmission: l.HasStartEmission,
		StartEmission:    l.StartEmission,
		HasLastWithdraw:  l.HasLastWithdraw,
		LastWithdraw:     l.LastWithdraw,
	}
}
