// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"testing"

	"github.com/luxfi/database/memdb"
	"github.com/luxfi/database/versiondb"
	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/locker/vms/lockervm/config"
	"github.com/luxfi/locker/vms/lockervm/countries"
)

func newTestLocker(owner ids.ShortID) *Locker {
	return &Locker{
		ID:                 ids.GenerateTestID(),
		Owner:              owner,
		Creator:            owner,
		Asset:              ids.GenerateTestID(),
		CountryCode:        countries.Code{'F', 'R'},
		OriginalUnlockDate: 1_000,
		CurrentUnlockDate:  2_000,
		HasStartEmission:   true,
		StartEmission:      500,
		DepositedAmount:    42,
		Vault:              ids.GenerateTestShortID(),
		VaultAuthority:     ids.GenerateTestShortID(),
	}
}

func TestConfig(t *testing.T) {
	require := require.New(t)
	s := New(memdb.New())

	_, err := s.GetConfig()
	require.ErrorIs(err, ErrConfigNotFound)
	has, err := s.HasConfig()
	require.NoError(err)
	require.False(has)

	cfg := config.Config{
		Admin:                      ids.GenerateTestShortID(),
		FlatFeeAmount:              7,
		ProportionalFeeNumerator:   config.DefaultFeeNumerator,
		ProportionalFeeDenominator: config.DefaultFeeDenominator,
		LinearEmissionEnabled:      true,
		FeeDestination:             ids.GenerateTestShortID(),
		Version:                    3,
	}
	require.NoError(s.PutConfig(cfg))

	got, err := s.GetConfig()
	require.NoError(err)
	require.Equal(cfg, got)
}

func TestMintInfo(t *testing.T) {
	require := require.New(t)
	s := New(memdb.New())
	asset := ids.GenerateTestID()

	_, err := s.GetMintInfo(asset)
	require.ErrorIs(err, ErrMintInfoNotFound)

	require.NoError(s.PutMintInfo(MintInfo{Asset: asset}))
	has, err := s.HasMintInfo(asset)
	require.NoError(err)
	require.True(has)

	require.NoError(s.PutMintInfo(MintInfo{Asset: asset, FeePaid: true}))
	info, err := s.GetMintInfo(asset)
	require.NoError(err)
	require.True(info.FeePaid)
}

func TestLockerOwnerIndex(t *testing.T) {
	require := require.New(t)
	s := New(memdb.New())

	alice := ids.GenerateTestShortID()
	bob := ids.GenerateTestShortID()

	l := newTestLocker(alice)
	require.NoError(s.PutLocker(l))
	require.NoError(s.PutLocker(newTestLocker(bob)))

	got, err := s.GetLocker(l.ID)
	require.NoError(err)
	require.Equal(l, got)

	owned, err := s.LockersOwnedBy(alice)
	require.NoError(err)
	require.Len(owned, 1)

	l.Owner = bob
	require.NoError(s.PutLocker(l))

	owned, err = s.LockersOwnedBy(alice)
	require.NoError(err)
	require.Empty(owned)
	owned, err = s.LockersOwnedBy(bob)
	require.NoError(err)
	require.Len(owned, 2)

	all, err := s.Lockers()
	require.NoError(err)
	require.Len(all, 2)

	require.NoError(s.DeleteLocker(l.ID))
	_, err = s.GetLocker(l.ID)
	require.ErrorIs(err, ErrLockerNotFound)
	owned, err = s.LockersOwnedBy(bob)
	require.NoError(err)
	require.Len(owned, 1)

	require.ErrorIs(s.DeleteLocker(l.ID), ErrLockerNotFound)
}

func TestNextSequence(t *testing.T) {
	require := require.New(t)
	s := New(memdb.New())

	for want := uint64(0); want < 3; want++ {
		seq, err := s.NextSequence()
		require.NoError(err)
		require.Equal(want, seq)
	}
}

func TestAbortDiscardsWrites(t *testing.T) {
	require := require.New(t)
	base := memdb.New()

	vdb := versiondb.New(base)
	l := newTestLocker(ids.GenerateTestShortID())
	require.NoError(New(vdb).PutLocker(l))
	vdb.Abort()

	_, err := New(base).GetLocker(l.ID)
	require.ErrorIs(err, ErrLockerNotFound)

	vdb = versiondb.New(base)
	require.NoError(New(vdb).PutLocker(l))
	require.NoError(vdb.Commit())

	got, err := New(base).GetLocker(l.ID)
	require.NoError(err)
	require.Equal(l, got)
}
