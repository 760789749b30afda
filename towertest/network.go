// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package towertest builds fork trees and simulated peer networks for
// exercising package tower, the way the reference consensus stack's
// *test packages (consensustest, chaintest, enginetest) build fixtures
// for their respective engines, and the way its cmd/sim simulator builds
// a population of voting nodes.
package towertest

import (
	"github.com/luxfi/locktower/branch"
)

// Chain builds a linear chain of n branches off genesis: branch i has id
// i+1 and base i (base 0 is genesis). It returns the populated registry
// and the branches in order, branches[0] being the first branch off
// genesis.
func Chain(n int) (branch.Registry, []branch.Branch) {
	reg := branch.NewRegistry(n)
	branches := make([]branch.Branch, n)
	base := uint64(branch.GenesisBranchID)
	for i := 0; i < n; i++ {
		b := branch.Branch{ID: uint64(i) + 1, Base: base}
		reg.Add(b)
		branches[i] = b
		base = b.ID
	}
	return reg, branches
}

// Fork extends an existing registry with a new branch forking off parent.
// It is the building block for ancestry-reject scenarios: construct a
// Chain, then Fork off some branch other than its tip.
func Fork(reg branch.Registry, id uint64, parent branch.Branch) branch.Branch {
	b := branch.Branch{ID: id, Base: parent.ID}
	reg.Add(b)
	return b
}
