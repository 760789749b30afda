// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vote

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/locktower/branch"
)

func TestNewHasInitialLockout(t *testing.T) {
	v := New(branch.Genesis, 5)
	require.Equal(t, InitialLockout, v.Lockout)
	require.Equal(t, uint64(5), v.Slot)
}

func TestExpiry(t *testing.T) {
	v := New(branch.Genesis, 10)
	require.Equal(t, uint64(12), v.Expiry())
}

func TestIsAncestorOf(t *testing.T) {
	reg := branch.NewRegistry(2)
	b1 := branch.Branch{ID: 1, Base: branch.GenesisBranchID}
	b2 := branch.Branch{ID: 2, Base: 1}
	reg.Add(b1)
	reg.Add(b2)

	v1 := New(b1, 0)
	v2 := New(b2, 1)
	require.True(t, v1.IsAncestorOf(v2, reg))
	require.False(t, v2.IsAncestorOf(v1, reg))
}
