// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lockervm

import (
	"github.com/luxfi/log"

	"github.com/luxfi/locker/vms/lockervm/config"
)

// Factory creates locker VM instances.
type Factory struct {
	Params config.Params
}

// New creates a new locker VM instance.
func (f *Factory) New(logger log.Logger) (interface{}, error) {
	return &VM{
		params: f.Params,
		log:    logger,
	}, nil
}
