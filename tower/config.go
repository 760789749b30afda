// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tower

import (
	"errors"
	"fmt"

	"github.com/luxfi/locktower/utils/wrappers"
)

// Canonical numeric constants for a reference-sized network.
const (
	// Capacity is the canonical bound on a tower's depth.
	Capacity = 32
	// InitialLockout is the lockout assigned to a freshly cast vote.
	InitialLockout = 2
	// NetworkSize is the reference network size used to derive
	// ConvergenceThreshold.
	NetworkSize = 100
	// ConvergenceThreshold is floor(NetworkSize/2) + 1: a strict majority
	// of NetworkSize participants.
	ConvergenceThreshold = NetworkSize/2 + 1
	// DefaultDepth is the canonical warm-up height used to bootstrap
	// agreement.
	DefaultDepth = 8
)

var (
	ErrInvalidCapacity    = errors.New("tower: capacity must be positive")
	ErrInvalidLockout     = errors.New("tower: initial lockout must be positive")
	ErrInvalidNetworkSize = errors.New("tower: network size must be positive")
	ErrInvalidThreshold   = errors.New("tower: convergence threshold must be in (0, networkSize]")
	ErrInvalidDepth       = errors.New("tower: depth must be non-negative")
)

// Config carries the canonical constants a LockTower is parameterized by.
// It is the tower-specific analogue of a consensus parameters struct: a
// plain value with a Verify method, constructed via DefaultConfig and
// overridden field-by-field by callers with non-reference-network needs.
type Config struct {
	// Capacity bounds |votes|; canonical value 32.
	Capacity int `json:"capacity" yaml:"capacity"`
	// InitialLockout is the lockout a freshly cast vote starts with.
	InitialLockout uint64 `json:"initialLockout" yaml:"initialLockout"`
	// NetworkSize is the fixed participant count the convergence check is
	// evaluated against.
	NetworkSize int `json:"networkSize" yaml:"networkSize"`
	// ConvergenceThreshold is the strict majority count required to pass
	// the convergence check: > NetworkSize/2.
	ConvergenceThreshold int `json:"convergenceThreshold" yaml:"convergenceThreshold"`
	// Depth is the default index from the top of the tower the
	// convergence check is evaluated at.
	Depth int `json:"depth" yaml:"depth"`
}

// DefaultConfig returns the canonical reference-network constants.
func DefaultConfig() Config {
	return Config{
		Capacity:             Capacity,
		InitialLockout:       InitialLockout,
		NetworkSize:          NetworkSize,
		ConvergenceThreshold: ConvergenceThreshold,
		Depth:                DefaultDepth,
	}
}

// Verify checks every field of Config and returns a single aggregated
// error naming every violation found, rather than stopping at the first.
func (c Config) Verify() error {
	var errs wrappers.Errs
	if c.Capacity <= 0 {
		errs.Add(fmt.Errorf("%w: capacity=%d", ErrInvalidCapacity, c.Capacity))
	}
	if c.InitialLockout == 0 {
		errs.Add(fmt.Errorf("%w: initialLockout=%d", ErrInvalidLockout, c.InitialLockout))
	}
	if c.NetworkSize <= 0 {
		errs.Add(fmt.Errorf("%w: networkSize=%d", ErrInvalidNetworkSize, c.NetworkSize))
	}
	if c.ConvergenceThreshold <= 0 || c.ConvergenceThreshold > c.NetworkSize {
		errs.Add(fmt.Errorf("%w: convergenceThreshold=%d, networkSize=%d", ErrInvalidThreshold, c.ConvergenceThreshold, c.NetworkSize))
	}
	if c.Depth < 0 {
		errs.Add(fmt.Errorf("%w: depth=%d", ErrInvalidDepth, c.Depth))
	}
	return errs.Err()
}
