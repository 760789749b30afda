// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package branch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenesisIsGenesis(t *testing.T) {
	require.True(t, Genesis.IsGenesis())
	require.False(t, Branch{ID: 1, Base: 0}.IsGenesis())
}

func TestRegistryVerifyRejectsGenesisKey(t *testing.T) {
	reg := NewRegistry(1)
	reg.Add(Branch{ID: GenesisBranchID, Base: GenesisBranchID})
	err := reg.Verify()
	require.ErrorIs(t, err, ErrGenesisRegistered)
}

func TestRegistryVerifyAcceptsCleanRegistry(t *testing.T) {
	reg := NewRegistry(2)
	reg.Add(Branch{ID: 1, Base: 0})
	reg.Add(Branch{ID: 2, Base: 1})
	require.NoError(t, reg.Verify())
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry(1)
	b := Branch{ID: 7, Base: 0}
	reg.Add(b)

	got, ok := reg.Lookup(7)
	require.True(t, ok)
	require.Equal(t, b, got)

	_, ok = reg.Lookup(GenesisBranchID)
	require.False(t, ok)
}
