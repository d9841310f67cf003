// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package api provides the JSON-RPC API of the locker VM.
package api

import (
	"net/http"

	"github.com/luxfi/ids"

	"github.com/luxfi/locker/vms/lockervm/config"
	"github.com/luxfi/locker/vms/lockervm/ledger"
	"github.com/luxfi/locker/vms/lockervm/locker"
	"github.com/luxfi/locker/vms/lockervm/state"
)

// Service provides the RPC API of the locker VM.
type Service struct {
	engine *locker.Engine
}

// NewService creates a new API service.
func NewService(engine *locker.Engine) *Service {
	return &Service{engine: engine}
}

type EmptyArgs struct{}

type EmptyReply struct{}

// ============================================
// Config APIs
// ============================================

type ConfigReply struct {
	Config config.Config `json:"config"`
}

func (s *Service) InitConfig(_ *http.Request, args *locker.InitConfigRequest, reply *ConfigReply) error {
	cfg, err := s.engine.InitConfig(*args)
	reply.Config = cfg
	return err
}

func (s *Service) UpdateConfig(_ *http.Request, args *locker.UpdateConfigRequest, reply *ConfigReply) error {
	cfg, err := s.engine.UpdateConfig(*args)
	reply.Config = cfg
	return err
}

func (s *Service) GetConfig(_ *http.Request, _ *EmptyArgs, reply *ConfigReply) error {
	cfg, err := s.engine.GetConfig()
	reply.Config = cfg
	return err
}

func (s *Service) InitMintInfo(_ *http.Request, args *locker.InitMintInfoRequest, _ *EmptyReply) error {
	return s.engine.InitMintInfo(*args)
}

type AssetArgs struct {
	Asset ids.ID `json:"asset"`
}

type IsMintWhitelistedReply struct {
	Whitelisted bool `json:"whitelisted"`
}

func (s *Service) IsMintWhitelisted(_ *http.Request, args *AssetArgs, reply *IsMintWhitelistedReply) error {
	whitelisted, err := s.engine.IsMintWhitelisted(args.Asset)
	reply.Whitelisted = whitelisted
	return err
}

// ============================================
// Locker APIs
// ============================================

type LockerReply struct {
	Locker *state.Locker `json:"locker"`
}

func (s *Service) Create(_ *http.Request, args *locker.CreateRequest, reply *LockerReply) error {
	l, err := s.engine.Create(*args)
	reply.Locker = l
	return err
}

func (s *Service) Relock(_ *http.Request, args *locker.RelockRequest, reply *LockerReply) error {
	l, err := s.engine.Relock(*args)
	reply.Locker = l
	return err
}

func (s *Service) TransferOwnership(_ *http.Request, args *locker.TransferOwnershipRequest, reply *LockerReply) error {
	l, err := s.engine.TransferOwnership(*args)
	reply.Locker = l
	return err
}

func (s *Service) IncrementLock(_ *http.Request, args *locker.IncrementLockRequest, reply *LockerReply) error {
	l, err := s.engine.IncrementLock(*args)
	reply.Locker = l
	return err
}

func (s *Service) Withdraw(_ *http.Request, args *locker.WithdrawRequest, reply *locker.WithdrawReply) error {
	r, err := s.engine.Withdraw(*args)
	*reply = r
	return err
}

func (s *Service) Split(_ *http.Request, args *locker.SplitRequest, reply *LockerReply) error {
	l, err := s.engine.Split(*args)
	reply.Locker = l
	return err
}

type CloseReply struct {
	Withdrawn uint64 `json:"withdrawn"`
}

func (s *Service) Close(_ *http.Request, args *locker.CloseRequest, reply *CloseReply) error {
	withdrawn, err := s.engine.Close(*args)
	reply.Withdrawn = withdrawn
	return err
}

type LockerArgs struct {
	Locker ids.ID `json:"locker"`
}

func (s *Service) GetLocker(_ *http.Request, args *LockerArgs, reply *LockerReply) error {
	l, err := s.engine.GetLocker(args.Locker)
	reply.Locker = l
	return err
}

type WithdrawableReply struct {
	Amount uint64 `json:"amount"`
}

func (s *Service) Withdrawable(_ *http.Request, args *LockerArgs, reply *WithdrawableReply) error {
	amount, err := s.engine.Withdrawable(args.Locker)
	reply.Amount = amount
	return err
}

type LockersReply struct {
	Lockers []*state.Locker `json:"lockers"`
}

func (s *Service) GetLockers(_ *http.Request, _ *EmptyArgs, reply *LockersReply) error {
	lockers, err := s.engine.GetLockers()
	reply.Lockers = lockers
	return err
}

type OwnerArgs struct {
	Owner ids.ShortID `json:"owner"`
}

func (s *Service) GetLockersOwnedBy(_ *http.Request, args *OwnerArgs, reply *LockersReply) error {
	lockers, err := s.engine.GetLockersOwnedBy(args.Owner)
	reply.Lockers = lockers
	return err
}

// ============================================
// Ledger APIs
// ============================================

type AccountArgs struct {
	Address ids.ShortID `json:"address"`
}

type AccountReply struct {
	Account ledger.Account `json:"account"`
}

func (s *Service) GetAccount(_ *http.Request, args *AccountArgs, reply *AccountReply) error {
	acc, err := s.engine.GetAccount(args.Address)
	reply.Account = acc
	return err
}
