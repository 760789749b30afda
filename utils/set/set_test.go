// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package set

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOfAndContains(t *testing.T) {
	s := Of[uint64](1, 2, 3)
	require.Equal(t, 3, s.Len())
	require.True(t, s.Contains(2))
	require.False(t, s.Contains(4))
}

func TestAddIsIdempotent(t *testing.T) {
	s := NewSet[uint64](0)
	s.Add(1, 1, 1)
	require.Equal(t, 1, s.Len())
}

func TestUnionAndDifference(t *testing.T) {
	a := Of[uint64](1, 2)
	b := Of[uint64](2, 3)
	a.Union(b)
	require.Equal(t, 3, a.Len())

	a.Difference(b)
	require.Equal(t, 1, a.Len())
	require.True(t, a.Contains(1))
}

func TestPopEmptiesTheSet(t *testing.T) {
	s := Of[uint64](1)
	elt, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, uint64(1), elt)
	require.Equal(t, 0, s.Len())

	_, ok = s.Pop()
	require.False(t, ok)
}
