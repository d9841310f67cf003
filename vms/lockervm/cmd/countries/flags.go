// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package countries

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/luxfi/locker/vms/lockervm/countries"
)

const (
	FileKey      = "file"
	CountriesKey = "countries"
	CountryKey   = "country"
	BanKey       = "ban"

	defaultFile = "country_list.json"
)

var errMissingFlag = errors.New("missing required flag")

func addFileFlag(flags *pflag.FlagSet) {
	flags.String(FileKey, defaultFile, "Ban list file")
}

func AddInitFlags(flags *pflag.FlagSet) {
	addFileFlag(flags)
	flags.String(CountriesKey, "", "CSV country table to build the ban list from (required)")
}

func AddShowFlags(flags *pflag.FlagSet) {
	addFileFlag(flags)
	flags.String(CountryKey, "", "Only show this country")
}

func AddFlipFlags(flags *pflag.FlagSet) {
	addFileFlag(flags)
	flags.String(CountryKey, "", "Country to update (required)")
	flags.Bool(BanKey, false, "Ban the country instead of allowing it")
}

type Config struct {
	File      string
	Countries string
	// Country is set when HasCountry is.
	Country    countries.Code
	HasCountry bool
	Ban        bool
}

func ParseInitFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	file, err := flags.GetString(FileKey)
	if err != nil {
		return nil, err
	}
	csvFile, err := flags.GetString(CountriesKey)
	if err != nil {
		return nil, err
	}
	if csvFile == "" {
		return nil, fmt.Errorf("%w: --%s", errMissingFlag, CountriesKey)
	}
	return &Config{
		File:      file,
		Countries: csvFile,
	}, nil
}

func ParseShowFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	file, err := flags.GetString(FileKey)
	if err != nil {
		return nil, err
	}
	config := &Config{File: file}
	return config, parseCountry(flags, config)
}

func ParseFlipFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	config, err := ParseShowFlags(flags, args)
	if err != nil {
		return nil, err
	}
	if !config.HasCountry {
		return nil, fmt.Errorf("%w: --%s", errMissingFlag, CountryKey)
	}
	config.Ban, err = flags.GetBool(BanKey)
	return config, err
}

func parseCountry(flags *pflag.FlagSet, config *Config) error {
	code, err := flags.GetString(CountryKey)
	if err != nil || code == "" {
		return err
	}
	config.Country, err = countries.ParseCode(code)
	config.HasCountry = err == nil
	return err
}
