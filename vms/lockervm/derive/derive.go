// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package derive computes the deterministic addresses of lockers, their
// vaults and fee accounts from seeds.
package derive

import (
	"encoding/binary"

	"github.com/luxfi/crypto/hash"
	"github.com/luxfi/ids"
)

var _ Deriver = Hasher{}

// Domain tags keep addresses of different kinds from colliding.
const (
	tagLocker byte = iota + 1
	tagVault
	tagVaultAuthority
	tagFeeAccount
)

// Deriver maps seeds to addresses.
type Deriver interface {
	// LockerID is the id of the seq'th locker created by creator with the
	// given original unlock date.
	LockerID(creator ids.ShortID, unlockDate uint64, seq uint64) ids.ID
	Vault(locker ids.ID) ids.ShortID
	// VaultAuthority controls the vault on behalf of the locker.
	VaultAuthority(locker ids.ID) ids.ShortID
	// FeeAccount is the account owner holds for asset.
	FeeAccount(owner ids.ShortID, asset ids.ID) ids.ShortID
}

// Hasher derives addresses with SHA-256 over tagged seeds.
type Hasher struct{}

func (Hasher) LockerID(creator ids.ShortID, unlockDate uint64, seq uint64) ids.ID {
	seeds := make([]byte, 0, len(creator)+2*8)
	seeds = append(seeds, creator[:]...)
	seeds = binary.BigEndian.AppendUint64(seeds, unlockDate)
	seeds = binary.BigEndian.AppendUint64(seeds, seq)
	return ids.ID(sum(tagLocker, seeds))
}

func (Hasher) Vault(locker ids.ID) ids.ShortID {
	return short(sum(tagVault, locker[:]))
}

func (Hasher) VaultAuthority(locker ids.ID) ids.ShortID {
	return short(sum(tagVaultAuthority, locker[:]))
}

func (Hasher) FeeAccount(owner ids.ShortID, asset ids.ID) ids.ShortID {
	seeds := make([]byte, 0, len(owner)+len(asset))
	seeds = append(seeds, owner[:]...)
	seeds = append(seeds, asset[:]...)
	return short(sum(tagFeeAccount, seeds))
}

func sum(tag byte, seeds []byte) [32]byte {
	return hash.ComputeHash256Array(append([]byte{tag}, seeds...))
}

func short(h [32]byte) ids.ShortID {
	var id ids.ShortID
	copy(id[:], h[:])
	return id
}
