// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package locker implements the locker state machine: creating lockers,
// topping them up, extending and transferring them, and releasing their
// value as it vests.
//
// Every operation runs as one unit. The state writes of an operation are
// buffered and committed only when every step, including every ledger
// transfer, succeeded. When the ledger implements ledger.Atomic its
// changes are committed or aborted together with the state.
package locker

import (
	"errors"
	"sync"

	"github.com/luxfi/database"
	"github.com/luxfi/database/versiondb"
	"github.com/luxfi/ids"
	"github.com/luxfi/log"

	"github.com/luxfi/locker/utils/timer/mockable"
	"github.com/luxfi/locker/vms/lockervm/config"
	"github.com/luxfi/locker/vms/lockervm/countries"
	"github.com/luxfi/locker/vms/lockervm/derive"
	"github.com/luxfi/locker/vms/lockervm/fee"
	"github.com/luxfi/locker/vms/lockervm/ledger"
	"github.com/luxfi/locker/vms/lockervm/metrics"
	"github.com/luxfi/locker/vms/lockervm/state"
)

const (
	opInitConfig        = "init_config"
	opUpdateConfig      = "update_config"
	opInitMintInfo      = "init_mint_info"
	opCreate            = "create"
	opRelock            = "relock"
	opTransferOwnership = "transfer_ownership"
	opIncrementLock     = "increment_lock"
	opWithdraw          = "withdraw"
	opSplit             = "split"
	opClose             = "close"
)

// CountryChecker decides whether lockers may be created for a country.
type CountryChecker interface {
	IsCountryAllowed(code countries.Code) bool
}

// Backend holds the collaborators of an Engine.
type Backend struct {
	Clock     *mockable.Clock
	Ledger    ledger.Ledger
	Countries CountryChecker
	Deriver   derive.Deriver
	Log       log.Logger
	Metrics   metrics.Metrics
	Params    config.Params
}

// Engine executes locker operations against a database. Operations are
// serialized.
type Engine struct {
	Backend

	lock     sync.RWMutex
	db       database.Database
	verifier ledger.Verifier
}

// New returns an engine keeping its records in db.
func New(db database.Database, backend Backend) *Engine {
	return &Engine{
		Backend:  backend,
		db:       db,
		verifier: ledger.Verifier{Ledger: backend.Ledger},
	}
}

// txn is the scope of a single operation.
type txn struct {
	state *state.State
	// now is read once per operation.
	now uint64

	// effects are reported once the operation committed.
	fees     []fee.Charge
	locked   uint64
	released uint64
}

func (e *Engine) execute(op string, f func(t *txn) error) error {
	e.lock.Lock()
	defer e.lock.Unlock()

	vdb := versiondb.New(e.db)
	t := &txn{
		state: state.New(vdb),
		now:   e.Clock.Unix(),
	}

	if err := f(t); err != nil {
		e.abort(vdb)
		e.Metrics.MarkFailed(op)
		e.Log.Debug("operation rejected",
			log.String("op", op),
			log.Err(err),
		)
		return err
	}

	if err := e.commit(vdb); err != nil {
		e.Metrics.MarkFailed(op)
		e.Log.Error("failed to commit operation",
			log.String("op", op),
			log.Err(err),
		)
		return err
	}

	e.Metrics.MarkSucceeded(op)
	for _, c := range t.fees {
		e.Metrics.AddFee(c)
	}
	e.Metrics.AddLocked(t.locked)
	e.Metrics.AddReleased(t.released)
	return nil
}

// commit writes the ledger before the state, so a failed ledger commit
// leaves both untouched.
func (e *Engine) commit(vdb *versiondb.Database) error {
	if a, ok := e.Ledger.(ledger.Atomic); ok {
		if err := a.Commit(); err != nil {
			vdb.Abort()
			a.Abort()
			return err
		}
	}
	return vdb.Commit()
}

func (e *Engine) abort(vdb *versiondb.Database) {
	vdb.Abort()
	if a, ok := e.Ledger.(ledger.Atomic); ok {
		a.Abort()
	}
}

// view runs a read-only query against the committed state.
func (e *Engine) view(f func(s *state.State) error) error {
	e.lock.RLock()
	defer e.lock.RUnlock()

	return f(state.New(e.db))
}

// ownedLocker loads a locker and checks caller owns it.
func (*Engine) ownedLocker(t *txn, id ids.ID, caller ids.ShortID) (*state.Locker, error) {
	l, err := t.state.GetLocker(id)
	if err != nil {
		return nil, err
	}
	if l.Owner != caller {
		return nil, ErrUnauthorized
	}
	return l, nil
}

// closeIfEmpty removes the locker and its vault once the vault holds
// nothing. It reports whether the locker was closed.
func (e *Engine) closeIfEmpty(t *txn, l *state.Locker) (bool, error) {
	balance, err := e.Ledger.Balance(l.Vault)
	if err != nil {
		return false, err
	}
	if balance != 0 {
		return false, nil
	}
	if err := e.Ledger.CloseAccount(l.Vault, l.Owner, l.VaultAuthority); err != nil {
		return false, err
	}
	if err := t.state.DeleteLocker(l.ID); err != nil {
		return false, err
	}
	e.Log.Info("locker closed",
		log.Stringer("lockerID", l.ID),
		log.Stringer("owner", l.Owner),
	)
	return true, nil
}

// isNotFound reports whether err says an account does not exist.
func isNotFound(err error) bool {
	return errors.Is(err, ledger.ErrAccountNotFound)
}
