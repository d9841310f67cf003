// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vesting

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const now = 1_700_000_000

func TestCliff(t *testing.T) {
	require := require.New(t)

	s := Schedule{
		Deposited:  9_965,
		UnlockDate: now + 100,
	}

	_, err := s.Withdrawable(now, 9_965, 9_965)
	require.ErrorIs(err, ErrTooEarlyToWithdraw)

	_, err = s.Withdrawable(now+99, 9_965, 9_965)
	require.ErrorIs(err, ErrTooEarlyToWithdraw)

	amount, err := s.Withdrawable(now+100, 9_965, 9_965)
	require.NoError(err)
	require.Equal(uint64(9_965), amount)

	amount, err = s.Withdrawable(now+5_000, 9_965, 1_000)
	require.NoError(err)
	require.Equal(uint64(1_000), amount)
}

func TestLinearCheckpoint(t *testing.T) {
	require := require.New(t)

	s := Schedule{
		Deposited:        1_000,
		UnlockDate:       now + 1_000,
		HasStartEmission: true,
		StartEmission:    now,
	}

	amount, err := s.Withdrawable(now+250, 1_000, 1_000)
	require.NoError(err)
	require.Equal(uint64(250), amount)

	s.HasLastWithdraw = true
	s.LastWithdraw = now + 250

	// elapsed 250 over the remaining 750
	amount, err = s.Withdrawable(now+500, 750, 1_000)
	require.NoError(err)
	require.Equal(uint64(333), amount)
}

func TestLinearBeforeStart(t *testing.T) {
	require := require.New(t)

	s := Schedule{
		Deposited:        1_000,
		UnlockDate:       now + 1_000,
		HasStartEmission: true,
		StartEmission:    now + 100,
	}

	_, err := s.Withdrawable(now, 1_000, 1_000)
	require.ErrorIs(err, ErrInvalidAmount)
}

func TestAfterUnlockReleasesWholeBalance(t *testing.T) {
	require := require.New(t)

	// the vault grew past the deposit the schedule was computed for
	s := Schedule{
		Deposited:        1_000,
		UnlockDate:       now + 1_000,
		HasStartEmission: true,
		StartEmission:    now,
		HasLastWithdraw:  true,
		LastWithdraw:     now + 900,
	}

	amount, err := s.Withdrawable(now+1_001, 5_000, 10_000)
	require.NoError(err)
	require.Equal(uint64(5_000), amount)
}

func TestCapsAtRequestedAndBalance(t *testing.T) {
	require := require.New(t)

	s := Schedule{
		Deposited:        1_000,
		UnlockDate:       now + 1_000,
		HasStartEmission: true,
		StartEmission:    now,
	}

	amount, err := s.Withdrawable(now+500, 1_000, 100)
	require.NoError(err)
	require.Equal(uint64(100), amount)

	amount, err = s.Withdrawable(now+500, 42, 1_000)
	require.NoError(err)
	require.Equal(uint64(42), amount)
}

func TestZeroRequestIsInvalid(t *testing.T) {
	require := require.New(t)

	for _, s := range []Schedule{
		{Deposited: 1, UnlockDate: now},
		{Deposited: 1, UnlockDate: now + 10, HasStartEmission: true, StartEmission: now},
	} {
		_, err := s.Withdrawable(now+100, 1, 0)
		require.ErrorIs(err, ErrInvalidAmount)
	}
}

func TestInvalidPeriod(t *testing.T) {
	require := require.New(t)

	s := Schedule{
		Deposited:        1_000,
		UnlockDate:       now + 10,
		HasStartEmission: true,
		StartEmission:    now + 10,
	}
	_, err := s.Withdrawable(now, 1_000, 1_000)
	require.ErrorIs(err, ErrInvalidPeriod)

	_, err = s.Released(now)
	require.ErrorIs(err, ErrInvalidPeriod)
}

// For a fixed deposit the released amount never decreases with time, with
// or without a checkpoint.
func TestReleasedMonotonic(t *testing.T) {
	schedules := map[string]Schedule{
		"cliff": {
			Deposited:  777,
			UnlockDate: now + 300,
		},
		"linear": {
			Deposited:        1_000_003,
			UnlockDate:       now + 997,
			HasStartEmission: true,
			StartEmission:    now,
		},
		"linear from checkpoint": {
			Deposited:        1_000_003,
			UnlockDate:       now + 997,
			HasStartEmission: true,
			StartEmission:    now,
			HasLastWithdraw:  true,
			LastWithdraw:     now + 431,
		},
	}
	for name, s := range schedules {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			var prev uint64
			for ts := uint64(now - 10); ts <= now+1_100; ts++ {
				released, err := s.Released(ts)
				require.NoError(err)
				require.GreaterOrEqual(released, prev, "time %d", ts)
				require.LessOrEqual(released, s.Deposited)
				prev = released
			}
			require.Equal(s.Deposited, prev)
		})
	}
}
