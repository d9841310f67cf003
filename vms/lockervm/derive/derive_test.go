// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package derive

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/ids"
)

func TestHasherDeterministic(t *testing.T) {
	require := require.New(t)

	var (
		h       Hasher
		creator = ids.GenerateTestShortID()
		asset   = ids.GenerateTestID()
	)

	id := h.LockerID(creator, 1_700_000_000, 0)
	require.Equal(id, h.LockerID(creator, 1_700_000_000, 0))
	require.NotEqual(id, h.LockerID(creator, 1_700_000_000, 1))
	require.NotEqual(id, h.LockerID(creator, 1_700_000_001, 0))
	require.NotEqual(id, h.LockerID(ids.GenerateTestShortID(), 1_700_000_000, 0))

	require.Equal(h.Vault(id), h.Vault(id))
	require.NotEqual(h.Vault(id), h.VaultAuthority(id))

	require.Equal(h.FeeAccount(creator, asset), h.FeeAccount(creator, asset))
	require.NotEqual(h.FeeAccount(creator, asset), h.FeeAccount(creator, ids.GenerateTestID()))
}
