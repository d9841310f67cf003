// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"fmt"

	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "genesis",
		Short: "Writes a genesis funding the given accounts",
		RunE:  genesisFunc,
	}
	flags := c.Flags()
	AddFlags(flags)
	return c
}

func genesisFunc(c *cobra.Command, args []string) error {
	config, err := ParseFlags(c.Flags(), args)
	if err != nil {
		return err
	}

	genesisBytes, err := config.Genesis.Bytes()
	if err != nil {
		return err
	}
	if err := renameio.WriteFile(config.Output, genesisBytes, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(c.OutOrStdout(), "wrote genesis with %d allocations to %s\n",
		len(config.Genesis.Allocations), config.Output)
	return nil
}
