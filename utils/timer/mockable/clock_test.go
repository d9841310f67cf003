// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mockable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClockSetAdvance(t *testing.T) {
	require := require.New(t)

	var clk Clock
	clk.SetUnix(1_000)
	require.Equal(uint64(1_000), clk.Unix())

	clk.Advance(250 * time.Second)
	require.Equal(uint64(1_250), clk.Unix())

	clk.Set(time.Unix(-5, 0))
	require.Zero(clk.Unix())
}

func TestClockSync(t *testing.T) {
	require := require.New(t)

	var clk Clock
	clk.SetUnix(1)
	clk.Sync()
	require.Greater(clk.Unix(), uint64(1))

	clk.Advance(time.Hour)
	require.Greater(clk.Unix(), uint64(time.Now().Unix()))
}
