// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/luxfi/ids"

	"github.com/luxfi/locker/vms/lockervm/genesis"
)

const (
	NativeAssetKey = "native-asset"
	AllocationKey  = "alloc"
	OutputKey      = "output"
)

var errInvalidAllocation = errors.New("invalid allocation")

func AddFlags(flags *pflag.FlagSet) {
	flags.String(NativeAssetKey, ids.Empty.String(), "Asset flat fees are paid in")
	flags.StringArray(AllocationKey, nil, "Funded account as address:owner:asset:balance (repeatable)")
	flags.String(OutputKey, "genesis.bin", "File to write the genesis to")
}

type Config struct {
	Genesis genesis.Genesis
	Output  string
}

func ParseFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	nativeAssetStr, err := flags.GetString(NativeAssetKey)
	if err != nil {
		return nil, err
	}
	nativeAsset, err := ids.FromString(nativeAssetStr)
	if err != nil {
		return nil, err
	}

	allocStrs, err := flags.GetStringArray(AllocationKey)
	if err != nil {
		return nil, err
	}
	allocs := make([]genesis.Allocation, len(allocStrs))
	for i, s := range allocStrs {
		allocs[i], err = parseAllocation(s)
		if err != nil {
			return nil, err
		}
	}

	output, err := flags.GetString(OutputKey)
	if err != nil {
		return nil, err
	}

	return &Config{
		Genesis: genesis.Genesis{
			NativeAsset: nativeAsset,
			Allocations: allocs,
		},
		Output: output,
	}, nil
}

func parseAllocation(s string) (genesis.Allocation, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 4 {
		return genesis.Allocation{}, fmt.Errorf("%w: %q", errInvalidAllocation, s)
	}

	address, err := ids.ShortFromString(parts[0])
	if err != nil {
		return genesis.Allocation{}, err
	}
	owner, err := ids.ShortFromString(parts[1])
	if err != nil {
		return genesis.Allocation{}, err
	}
	asset, err := ids.FromString(parts[2])
	if err != nil {
		return genesis.Allocation{}, err
	}
	balance, err := strconv.ParseUint(parts[3], 10, 64)
	if err != nil {
		return genesis.Allocation{}, err
	}
	return genesis.Allocation{
		Address: address,
		Owner:   owner,
		Asset:   asset,
		Balance: balance,
	}, nil
}
