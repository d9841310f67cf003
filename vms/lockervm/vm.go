// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lockervm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/rpc/v2"
	"github.com/gorilla/rpc/v2/json2"
	"github.com/luxfi/database"
	"github.com/luxfi/database/prefixdb"
	"github.com/luxfi/log"
	"github.com/luxfi/metric"

	"github.com/luxfi/locker/utils/timer/mockable"
	"github.com/luxfi/locker/vms/lockervm/api"
	"github.com/luxfi/locker/vms/lockervm/config"
	"github.com/luxfi/locker/vms/lockervm/countries"
	"github.com/luxfi/locker/vms/lockervm/derive"
	"github.com/luxfi/locker/vms/lockervm/genesis"
	"github.com/luxfi/locker/vms/lockervm/ledger"
	"github.com/luxfi/locker/vms/lockervm/locker"
	"github.com/luxfi/locker/vms/lockervm/metrics"
)

const (
	Name    = "locker"
	Version = "1.0.0"
)

var (
	errNotInitialized = errors.New("VM is not initialized")

	statePrefix  = []byte("state")
	ledgerPrefix = []byte("ledger")
	vmPrefix     = []byte("vm")

	initializedKey = []byte("initialized")
)

type VM struct {
	params config.Params
	log    log.Logger
	clock  mockable.Clock

	db     database.Database
	book   *ledger.Book
	engine *locker.Engine
}

// Initialize opens the VM over db. The genesis allocations are applied
// the first time db is used.
func (vm *VM) Initialize(
	_ context.Context,
	db database.Database,
	genesisBytes []byte,
	bans *countries.BanList,
	registerer metric.Registerer,
) error {
	vm.log.Info("initializing locker VM",
		log.String("version", Version),
	)

	g, err := genesis.Parse(genesisBytes)
	if err != nil {
		return fmt.Errorf("failed to parse genesis bytes: %w", err)
	}

	vm.db = db
	vm.book = ledger.NewBook(prefixdb.New(ledgerPrefix, db))
	if err := vm.applyGenesis(g); err != nil {
		return fmt.Errorf("failed to initialize genesis state: %w", err)
	}

	m, err := metrics.New(registerer)
	if err != nil {
		return err
	}

	params := vm.params
	if params.MaxUnlockDate == 0 {
		params = config.DefaultParams()
	}
	params.NativeAsset = g.NativeAsset

	vm.engine = locker.New(prefixdb.New(statePrefix, db), locker.Backend{
		Clock:     &vm.clock,
		Ledger:    vm.book,
		Countries: bans,
		Deriver:   derive.Hasher{},
		Log:       vm.log,
		Metrics:   m,
		Params:    params,
	})

	vm.log.Info("initialized locker VM",
		log.Stringer("nativeAsset", params.NativeAsset),
		log.Int("allocations", len(g.Allocations)),
	)
	return nil
}

func (vm *VM) applyGenesis(g *genesis.Genesis) error {
	vmDB := prefixdb.New(vmPrefix, vm.db)
	initialized, err := vmDB.Has(initializedKey)
	if err != nil || initialized {
		return err
	}

	if err := g.Apply(vm.book); err != nil {
		vm.book.Abort()
		return err
	}
	if err := vm.book.Commit(); err != nil {
		return err
	}
	return vmDB.Put(initializedKey, nil)
}

// Engine returns the locker engine.
func (vm *VM) Engine() *locker.Engine {
	return vm.engine
}

// Ledger returns the ledger lockers are funded from.
func (vm *VM) Ledger() *ledger.Book {
	return vm.book
}

func (vm *VM) CreateHandlers(context.Context) (map[string]http.Handler, error) {
	if vm.engine == nil {
		return nil, errNotInitialized
	}

	server := rpc.NewServer()
	codec := json2.NewCodec()
	server.RegisterCodec(codec, "application/json")
	server.RegisterCodec(codec, "application/json;charset=UTF-8")
	return map[string]http.Handler{
		"": server,
	}, server.RegisterService(api.NewService(vm.engine), Name)
}

func (*VM) Version(context.Context) (string, error) {
	return Version, nil
}

func (vm *VM) HealthCheck(context.Context) (interface{}, error) {
	if vm.engine == nil {
		return nil, errNotInitialized
	}
	_, err := vm.engine.GetConfig()
	return map[string]interface{}{
		"version":           Version,
		"configInitialized": err == nil,
	}, nil
}

func (vm *VM) Shutdown(context.Context) error {
	if vm.db == nil {
		return nil
	}
	return vm.db.Close()
}
