// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"errors"
	"fmt"
	"math"

	"github.com/luxfi/codec"
	"github.com/luxfi/codec/linearcodec"
	"github.com/luxfi/ids"

	"github.com/luxfi/locker/vms/lockervm/ledger"
)

const CodecVersion = 0

var (
	Codec codec.Manager

	ErrDuplicateAccount = errors.New("duplicate genesis account")
)

func init() {
	Codec = codec.NewManager(math.MaxInt32)
	lc := linearcodec.NewDefault()

	err := errors.Join(
		lc.RegisterType(&Genesis{}),
		Codec.RegisterCodec(CodecVersion, lc),
	)
	if err != nil {
		panic(err)
	}
}

// Allocation is an account funded at genesis.
type Allocation struct {
	Address ids.ShortID `serialize:"true" json:"address"`
	Owner   ids.ShortID `serialize:"true" json:"owner"`
	Asset   ids.ID      `serialize:"true" json:"asset"`
	Balance uint64      `serialize:"true" json:"balance"`
}

type Genesis struct {
	// NativeAsset is the asset flat fees are paid in.
	NativeAsset ids.ID       `serialize:"true" json:"nativeAsset"`
	Allocations []Allocation `serialize:"true" json:"allocations"`
}

func Parse(bytes []byte) (*Genesis, error) {
	genesis := &Genesis{}
	_, err := Codec.Unmarshal(bytes, genesis)
	return genesis, err
}

func (g *Genesis) Bytes() ([]byte, error) {
	return Codec.Marshal(CodecVersion, g)
}

// Apply opens and funds every allocation in l.
func (g *Genesis) Apply(l Ledger) error {
	seen := make(map[ids.ShortID]struct{}, len(g.Allocations))
	for _, a := range g.Allocations {
		if _, ok := seen[a.Address]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateAccount, a.Address)
		}
		seen[a.Address] = struct{}{}

		if err := l.Open(a.Address, a.Asset, a.Owner); err != nil {
			return err
		}
		if err := l.Mint(a.Address, a.Balance); err != nil {
			return err
		}
	}
	return nil
}

// Ledger is a ledger that can be funded.
type Ledger interface {
	ledger.Ledger
	Mint(address ids.ShortID, amount uint64) error
}
