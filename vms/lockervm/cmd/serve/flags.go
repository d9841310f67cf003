// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package serve

import (
	"errors"
	"time"

	"github.com/spf13/pflag"
)

const (
	HTTPAddrKey        = "http-addr"
	GenesisKey         = "genesis"
	CountriesFileKey   = "countries-file"
	ShutdownTimeoutKey = "shutdown-timeout"
)

var errMissingGenesis = errors.New("missing genesis file")

func AddFlags(flags *pflag.FlagSet) {
	flags.String(HTTPAddrKey, "127.0.0.1:9650", "Address to serve the JSON-RPC API on")
	flags.String(GenesisKey, "", "Genesis file written by the genesis command (required)")
	flags.String(CountriesFileKey, "country_list.json", "Ban list file written by the countries command")
	flags.Duration(ShutdownTimeoutKey, 5*time.Second, "Time allowed for in-flight requests on shutdown")
}

type Config struct {
	HTTPAddr        string
	Genesis         string
	CountriesFile   string
	ShutdownTimeout time.Duration
}

func ParseFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	httpAddr, err := flags.GetString(HTTPAddrKey)
	if err != nil {
		return nil, err
	}
	genesis, err := flags.GetString(GenesisKey)
	if err != nil {
		return nil, err
	}
	if genesis == "" {
		return nil, errMissingGenesis
	}
	countriesFile, err := flags.GetString(CountriesFileKey)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := flags.GetDuration(ShutdownTimeoutKey)
	if err != nil {
		return nil, err
	}

	return &Config{
		HTTPAddr:        httpAddr,
		Genesis:         genesis,
		CountriesFile:   countriesFile,
		ShutdownTimeout: shutdownTimeout,
	}, nil
}
