// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package branch models the fork tree a LockTower votes against: a
// read-only mapping from branch id to parent branch id, owned and supplied
// by the caller on every tower operation.
package branch

import "fmt"

// GenesisBranchID is the implicit root of every fork tree. It is never a
// key in a Registry.
const GenesisBranchID uint64 = 0

// Branch is a single lineage in the fork tree.
type Branch struct {
	// ID is a non-negative identifier; 0 denotes genesis.
	ID uint64
	// Base is the id of the parent branch. Genesis is conventionally its
	// own base; it has no parent.
	Base uint64
}

// Genesis is the well-known root branch.
var Genesis = Branch{ID: GenesisBranchID, Base: GenesisBranchID}

// IsGenesis reports whether b is the genesis branch.
func (b Branch) IsGenesis() bool {
	return b.ID == GenesisBranchID
}

func (b Branch) String() string {
	if b.IsGenesis() {
		return "genesis"
	}
	return fmt.Sprintf("%d<-%d", b.ID, b.Base)
}
