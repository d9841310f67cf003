// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"testing"

	"github.com/luxfi/metric"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/locker/vms/lockervm/fee"
)

func TestNew(t *testing.T) {
	require := require.New(t)

	m, err := New(metric.NewRegistry())
	require.NoError(err)

	m.MarkSucceeded("create")
	m.MarkFailed("withdraw")
	m.AddFee(fee.Charge{Kind: fee.Proportional, Amount: 35})
	m.AddFee(fee.Charge{Kind: fee.None})
	m.AddLocked(9_965)
	m.AddReleased(9_965)
}
