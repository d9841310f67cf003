// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package vesting computes how much of a locker's vault may be withdrawn
// at a given time.
//
// A schedule without a start is a cliff: nothing is released before the
// unlock date and everything is released from it on. A schedule with a
// start releases the deposit linearly until the unlock date. Each partial
// withdrawal records a checkpoint and the next release is measured from
// the checkpoint over the period that remains, so value released by an
// earlier withdrawal is never counted again.
package vesting

import (
	"errors"

	"github.com/luxfi/locker/utils/math"
)

var (
	ErrInvalidPeriod      = errors.New("invalid vesting period")
	ErrTooEarlyToWithdraw = errors.New("too early to withdraw")
	ErrInvalidAmount      = errors.New("invalid amount")
)

// Schedule is the release state of a locker.
type Schedule struct {
	Deposited  uint64
	UnlockDate uint64

	HasStartEmission bool
	StartEmission    uint64

	HasLastWithdraw bool
	LastWithdraw    uint64
}

// Linear reports whether the schedule releases value over time.
func (s Schedule) Linear() bool {
	return s.HasStartEmission
}

// start is the point the next linear release is measured from.
func (s Schedule) start() uint64 {
	if s.HasLastWithdraw {
		return s.LastWithdraw
	}
	return s.StartEmission
}

// Released returns the uncapped linear release at now:
//
//	Deposited * (clamp(now, start, UnlockDate) - start) / (UnlockDate - start)
//
// Cliff schedules release Deposited once now reaches UnlockDate.
func (s Schedule) Released(now uint64) (uint64, error) {
	if !s.Linear() {
		if now < s.UnlockDate {
			return 0, nil
		}
		return s.Deposited, nil
	}

	start := s.start()
	if s.UnlockDate <= start {
		return 0, ErrInvalidPeriod
	}
	fullPeriod := s.UnlockDate - start
	elapsed := min(max(now, start), s.UnlockDate) - start
	return math.MulDiv(s.Deposited, elapsed, fullPeriod)
}

// Withdrawable returns the amount to transfer out of a vault holding
// balance when the owner requests requested at now.
//
// From the unlock date on the whole balance is withdrawable, which also
// covers deposits added after the schedule's nominal end. The result is
// capped at min(requested, balance) and is never zero on success.
func (s Schedule) Withdrawable(now, balance, requested uint64) (uint64, error) {
	if requested == 0 {
		return 0, ErrInvalidAmount
	}

	var amount uint64
	switch {
	case now >= s.UnlockDate:
		amount = balance
	case !s.Linear():
		return 0, ErrTooEarlyToWithdraw
	default:
		released, err := s.Released(now)
		if err != nil {
			return 0, err
		}
		amount = released
	}

	amount = min(amount, requested, balance)
	if amount == 0 {
		return 0, ErrInvalidAmount
	}
	return amount, nil
}
