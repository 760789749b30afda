// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package branch

import (
	"errors"
	"fmt"
)

// ErrGenesisRegistered is returned by Verify when a Registry illegally maps
// the genesis id to a Branch. Genesis is implicit and must never appear as
// a key.
var ErrGenesisRegistered = errors.New("branch: genesis id registered as a branch")

// ErrUnknownBranch is returned by Resolve when id is neither genesis nor
// present in the registry.
var ErrUnknownBranch = errors.New("branch: unknown branch id")

// Registry is a read-only mapping from branch id to Branch. It models the
// fork tree; the tower never owns it, only reads it on each operation.
type Registry map[uint64]Branch

// NewRegistry returns an empty Registry with room for size entries.
func NewRegistry(size int) Registry {
	return make(Registry, size)
}

// Add inserts or overwrites the Branch keyed by branch.ID. Add does not
// validate base; use Verify once the registry is fully populated.
func (r Registry) Add(b Branch) {
	r[b.ID] = b
}

// Lookup returns the Branch for id and whether it was present. Genesis is
// never present; callers that need genesis should special-case
// GenesisBranchID before calling Lookup.
func (r Registry) Lookup(id uint64) (Branch, bool) {
	b, ok := r[id]
	return b, ok
}

// Resolve is Lookup with genesis special-cased and a wrapped
// ErrUnknownBranch instead of a bare ok=false, for callers that need to
// report *why* a branch id couldn't be resolved (e.g. a corrupt or
// lagging fork tree) rather than just the bool AncestorOf is content with.
func (r Registry) Resolve(id uint64) (Branch, error) {
	if id == GenesisBranchID {
		return Genesis, nil
	}
	b, ok := r[id]
	if !ok {
		return Branch{}, fmt.Errorf("%w: id=%d", ErrUnknownBranch, id)
	}
	return b, nil
}

// Verify checks that genesis is never a key. It does not (and cannot, in
// general) detect cycles — cycle-freedom is the caller's responsibility,
// and AncestorOf bounds its walk defensively instead of assuming an
// acyclic registry.
func (r Registry) Verify() error {
	if _, ok := r[GenesisBranchID]; ok {
		return fmt.Errorf("%w (registry has %d entries)", ErrGenesisRegistered, len(r))
	}
	return nil
}
