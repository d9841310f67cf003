// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package locker

import (
	"fmt"

	"github.com/luxfi/ids"
	"github.com/luxfi/log"

	"github.com/luxfi/locker/vms/lockervm/state"
)

type RelockRequest struct {
	Caller     ids.ShortID `json:"caller"`
	Locker     ids.ID      `json:"locker"`
	UnlockDate uint64      `json:"unlockDate"`
}

// Relock moves the unlock date of a locker later.
func (e *Engine) Relock(req RelockRequest) (*state.Locker, error) {
	var l *state.Locker
	err := e.execute(opRelock, func(t *txn) error {
		var err error
		l, err = e.ownedLocker(t, req.Locker, req.Caller)
		if err != nil {
			return err
		}

		switch {
		case req.UnlockDate <= l.CurrentUnlockDate:
			return fmt.Errorf("%w: %d <= %d", ErrCannotUnlockEarlier, req.UnlockDate, l.CurrentUnlockDate)
		case req.UnlockDate > e.Params.MaxUnlockDate:
			return fmt.Errorf("%w: unlock date %d exceeds %d",
				ErrInvalidTimestamp, req.UnlockDate, e.Params.MaxUnlockDate)
		}

		l.CurrentUnlockDate = req.UnlockDate
		if err := t.state.PutLocker(l); err != nil {
			return err
		}

		e.Log.Info("locker relocked",
			log.Stringer("lockerID", l.ID),
			log.Uint64("unlockDate", l.CurrentUnlockDate),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

type TransferOwnershipRequest struct {
	Caller   ids.ShortID `json:"caller"`
	Locker   ids.ID      `json:"locker"`
	NewOwner ids.ShortID `json:"newOwner"`
}

// TransferOwnership hands a locker to a new owner.
func (e *Engine) TransferOwnership(req TransferOwnershipRequest) (*state.Locker, error) {
	var l *state.Locker
	err := e.execute(opTransferOwnership, func(t *txn) error {
		var err error
		l, err = e.ownedLocker(t, req.Locker, req.Caller)
		if err != nil {
			return err
		}

		l.Owner = req.NewOwner
		if err := t.state.PutLocker(l); err != nil {
			return err
		}

		e.Log.Info("locker ownership transferred",
			log.Stringer("lockerID", l.ID),
			log.Stringer("from", req.Caller),
			log.Stringer("to", l.Owner),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}
