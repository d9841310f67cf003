// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package countries

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/luxfi/locker/vms/lockervm/countries"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "countries",
		Short: "Manages the country ban list",
	}
	c.AddCommand(
		initCommand(),
		showCommand(),
		flipCommand(),
	)
	return c
}

func initCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "init",
		Short: "Creates a ban list from a CSV country table",
		RunE:  initFunc,
	}
	AddInitFlags(c.Flags())
	return c
}

func initFunc(c *cobra.Command, args []string) error {
	config, err := ParseInitFlags(c.Flags(), args)
	if err != nil {
		return err
	}

	f, err := os.Open(config.Countries)
	if err != nil {
		return err
	}
	defer f.Close()

	list, err := countries.FromCSV(f)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", config.Countries, err)
	}
	if err := countries.Save(config.File, list); err != nil {
		return err
	}
	fmt.Fprintf(c.OutOrStdout(), "wrote %d countries to %s\n", len(list.Countries()), config.File)
	return nil
}

func showCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "show",
		Short: "Prints the ban list",
		RunE:  showFunc,
	}
	AddShowFlags(c.Flags())
	return c
}

func showFunc(c *cobra.Command, args []string) error {
	config, err := ParseShowFlags(c.Flags(), args)
	if err != nil {
		return err
	}

	list, err := countries.Load(config.File)
	if err != nil {
		return err
	}

	var v interface{} = list
	if config.HasCountry {
		country, ok := list.Lookup(config.Country)
		if !ok {
			return fmt.Errorf("%w: %s", countries.ErrUnknownCountry, config.Country)
		}
		v = country
	}

	enc := json.NewEncoder(c.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func flipCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "flip",
		Short: "Bans or allows a country",
		RunE:  flipFunc,
	}
	AddFlipFlags(c.Flags())
	return c
}

func flipFunc(c *cobra.Command, args []string) error {
	config, err := ParseFlipFlags(c.Flags(), args)
	if err != nil {
		return err
	}

	list, err := countries.Load(config.File)
	if err != nil {
		return err
	}
	if err := list.Flip(config.Country, config.Ban); err != nil {
		return err
	}
	if err := countries.Save(config.File, list); err != nil {
		return err
	}
	fmt.Fprintf(c.OutOrStdout(), "%s banned: %t\n", config.Country, config.Ban)
	return nil
}
