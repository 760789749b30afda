// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wrappers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrsErrNilWhenEmpty(t *testing.T) {
	var e Errs
	require.NoError(t, e.Err())
	require.False(t, e.Errored())
}

func TestErrsErrReturnsSingleErrorUnwrapped(t *testing.T) {
	var e Errs
	sentinel := errors.New("boom")
	e.Add(sentinel)
	require.Equal(t, sentinel, e.Err())
}

func TestErrsErrJoinsMultipleAndPreservesIs(t *testing.T) {
	var e Errs
	first := errors.New("first")
	second := errors.New("second")
	e.Add(first)
	e.Add(second)

	err := e.Err()
	require.ErrorIs(t, err, first)
	require.ErrorIs(t, err, second)
	require.Equal(t, 2, e.Len())
}

func TestErrsAddIgnoresNil(t *testing.T) {
	var e Errs
	e.Add(nil)
	require.False(t, e.Errored())
}
