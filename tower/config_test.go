// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tower_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/locktower/tower"
)

func TestDefaultConfigVerifies(t *testing.T) {
	require.NoError(t, tower.DefaultConfig().Verify())
}

func TestDefaultConfigMatchesCanonicalConstants(t *testing.T) {
	cfg := tower.DefaultConfig()
	require.Equal(t, tower.Capacity, cfg.Capacity)
	require.Equal(t, uint64(tower.InitialLockout), cfg.InitialLockout)
	require.Equal(t, tower.NetworkSize, cfg.NetworkSize)
	require.Equal(t, tower.ConvergenceThreshold, cfg.ConvergenceThreshold)
	require.Equal(t, 51, cfg.ConvergenceThreshold)
}

func TestConfigVerifyAggregatesAllViolations(t *testing.T) {
	cfg := tower.Config{
		Capacity:             0,
		InitialLockout:       0,
		NetworkSize:          0,
		ConvergenceThreshold: -1,
		Depth:                -1,
	}
	err := cfg.Verify()
	require.Error(t, err)
	require.ErrorIs(t, err, tower.ErrInvalidCapacity)
	require.ErrorIs(t, err, tower.ErrInvalidLockout)
	require.ErrorIs(t, err, tower.ErrInvalidNetworkSize)
	require.ErrorIs(t, err, tower.ErrInvalidThreshold)
	require.ErrorIs(t, err, tower.ErrInvalidDepth)
}

func TestConfigVerifyRejectsThresholdAboveNetworkSize(t *testing.T) {
	cfg := tower.DefaultConfig()
	cfg.ConvergenceThreshold = cfg.NetworkSize + 1
	require.ErrorIs(t, cfg.Verify(), tower.ErrInvalidThreshold)
}
