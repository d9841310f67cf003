// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/luxfi/locker/vms/lockervm/cmd/countries"
	"github.com/luxfi/locker/vms/lockervm/cmd/genesis"
	"github.com/luxfi/locker/vms/lockervm/cmd/serve"
)

func init() {
	cobra.EnablePrefixMatching = true
}

func main() {
	cmd := &cobra.Command{
		Use:   "lockerctl",
		Short: "Administers and serves the locker VM",
	}
	cmd.AddCommand(
		countries.Command(),
		genesis.Command(),
		serve.Command(),
	)
	ctx := context.Background()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "command failed %v\n", err)
		os.Exit(1)
	}
}
