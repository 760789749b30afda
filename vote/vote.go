// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package vote defines the immutable record a LockTower stacks: a branch,
// the slot it was cast at, and the lockout it imposes on the participant.
package vote

import (
	"fmt"

	"github.com/luxfi/locktower/branch"
)

// InitialLockout is the lockout assigned to a freshly cast vote, before
// any doubling.
const InitialLockout uint64 = 2

// Vote is an immutable record of a single vote cast by the participant.
type Vote struct {
	Branch  branch.Branch
	Slot    uint64
	Lockout uint64
}

// New returns a Vote on b at slot with the initial lockout of 2.
func New(b branch.Branch, slot uint64) Vote {
	return Vote{Branch: b, Slot: slot, Lockout: InitialLockout}
}

// Expiry is the first slot at which this vote no longer locks the
// participant: slot + lockout.
func (v Vote) Expiry() uint64 {
	return v.Slot + v.Lockout
}

// IsAncestorOf reports whether v's branch is an ancestor of (or equal to)
// w's branch on forest.
func (v Vote) IsAncestorOf(w Vote, forest branch.Registry) bool {
	return branch.AncestorOf(v.Branch, w.Branch, forest)
}

func (v Vote) String() string {
	return fmt.Sprintf("vote{branch=%s slot=%d lockout=%d expiry=%d}", v.Branch, v.Slot, v.Lockout, v.Expiry())
}
