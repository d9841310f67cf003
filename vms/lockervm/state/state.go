// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/luxfi/database"
	"github.com/luxfi/ids"

	"github.com/luxfi/locker/utils/math"
	"github.com/luxfi/locker/vms/lockervm/config"
)

var (
	ErrConfigNotFound   = errors.New("config not initialized")
	ErrMintInfoNotFound = errors.New("mint info not found")
	ErrLockerNotFound   = errors.New("locker not found")

	// Database prefixes
	keyConfig      = []byte("config")
	keySequence    = []byte("sequence")
	prefixMintInfo = []byte("mint:")
	prefixLocker   = []byte("locker:")
	prefixOwner    = []byte("owner:")
)

// State reads and writes locker records. It does not buffer: callers that
// need all-or-nothing writes hand it a versiondb.
type State struct {
	db database.Database
}

// New returns the state kept in db.
func New(db database.Database) *State {
	return &State{db: db}
}

func (s *State) GetConfig() (config.Config, error) {
	var cfg config.Config
	if err := s.get(keyConfig, &cfg); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return config.Config{}, ErrConfigNotFound
		}
		return config.Config{}, err
	}
	return cfg, nil
}

func (s *State) HasConfig() (bool, error) {
	return s.db.Has(keyConfig)
}

func (s *State) PutConfig(cfg config.Config) error {
	return s.put(keyConfig, &cfg)
}

func (s *State) GetMintInfo(asset ids.ID) (MintInfo, error) {
	var info MintInfo
	if err := s.get(join(prefixMintInfo, asset[:]), &info); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return MintInfo{}, fmt.Errorf("%w: %s", ErrMintInfoNotFound, asset)
		}
		return MintInfo{}, err
	}
	return info, nil
}

func (s *State) HasMintInfo(asset ids.ID) (bool, error) {
	return s.db.Has(join(prefixMintInfo, asset[:]))
}

func (s *State) PutMintInfo(info MintInfo) error {
	return s.put(join(prefixMintInfo, info.Asset[:]), &info)
}

func (s *State) GetLocker(id ids.ID) (*Locker, error) {
	l := &Locker{}
	if err := s.get(join(prefixLocker, id[:]), l); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrLockerNotFound, id)
		}
		return nil, err
	}
	return l, nil
}

func (s *State) HasLocker(id ids.ID) (bool, error) {
	return s.db.Has(join(prefixLocker, id[:]))
}

// PutLocker writes l and keeps the owner index in step with its owner.
func (s *State) PutLocker(l *Locker) error {
	prev, err := s.GetLocker(l.ID)
	switch {
	case errors.Is(err, ErrLockerNotFound):
	case err != nil:
		return err
	case prev.Owner != l.Owner:
		if err := s.db.Delete(ownerKey(prev.Owner, l.ID)); err != nil {
			return err
		}
	}

	if err := s.put(join(prefixLocker, l.ID[:]), l); err != nil {
		return err
	}
	return s.db.Put(ownerKey(l.Owner, l.ID), nil)
}

// DeleteLocker removes the locker and its owner index entry.
func (s *State) DeleteLocker(id ids.ID) error {
	l, err := s.GetLocker(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(ownerKey(l.Owner, id)); err != nil {
		return err
	}
	return s.db.Delete(join(prefixLocker, id[:]))
}

// Lockers returns every locker, ordered by id.
func (s *State) Lockers() ([]*Locker, error) {
	iter := s.db.NewIteratorWithPrefix(prefixLocker)
	defer iter.Release()

	var lockers []*Locker
	for iter.Next() {
		l := &Locker{}
		if _, err := Codec.Unmarshal(iter.Value(), l); err != nil {
			return nil, err
		}
		lockers = append(lockers, l)
	}
	return lockers, iter.Error()
}

// LockersOwnedBy returns the lockers of owner, ordered by id.
func (s *State) LockersOwnedBy(owner ids.ShortID) ([]*Locker, error) {
	prefix := join(prefixOwner, owner[:])
	iter := s.db.NewIteratorWithPrefix(prefix)
	defer iter.Release()

	var lockers []*Locker
	for iter.Next() {
		id, err := ids.ToID(iter.Key()[len(prefix):])
		if err != nil {
			return nil, err
		}
		l, err := s.GetLocker(id)
		if err != nil {
			return nil, err
		}
		lockers = append(lockers, l)
	}
	return lockers, iter.Error()
}

// NextSequence returns the current sequence number and advances it.
func (s *State) NextSequence() (uint64, error) {
	var seq uint64
	b, err := s.db.Get(keySequence)
	switch {
	case errors.Is(err, database.ErrNotFound):
	case err != nil:
		return 0, err
	case len(b) != 8:
		return 0, fmt.Errorf("malformed sequence of %d bytes", len(b))
	default:
		seq = binary.BigEndian.Uint64(b)
	}

	next, err := math.Add(seq, 1)
	if err != nil {
		return 0, err
	}
	if err := s.db.Put(keySequence, binary.BigEndian.AppendUint64(nil, next)); err != nil {
		return 0, err
	}
	return seq, nil
}

func (s *State) get(key []byte, v any) error {
	data, err := s.db.Get(key)
	if err != nil {
		return err
	}
	_, err = Codec.Unmarshal(data, v)
	return err
}

func (s *State) put(key []byte, v any) error {
	data, err := Codec.Marshal(CodecVersion, v)
	if err != nil {
		return err
	}
	return s.db.Put(key, data)
}

func ownerKey(owner ids.ShortID, id ids.ID) []byte {
	return join(prefixOwner, owner[:], id[:])
}

func join(parts ...[]byte) []byte {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	key := make([]byte, 0, n)
	for _, p := range parts {
		key = append(key, p...)
	}
	return key
}
