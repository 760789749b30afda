// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package branch

// AncestorOf reports whether a is b, or an ancestor of b, on the fork tree
// described by forest. Genesis is an ancestor of every branch, but
// genesis itself is a descendant of no branch other than itself.
//
// The walk starts at b and follows Base toward the root. It never
// recurses and never mutates forest. A registry with a cycle would make
// the walk loop forever; to keep that the caller's bug rather than ours,
// the walk is capped at len(forest)+1 hops (more than enough to reach
// genesis in an acyclic registry) and returns false if the cap is hit.
func AncestorOf(a, b Branch, forest Registry) bool {
	if a.ID == b.ID {
		return true
	}

	cur := b
	for hops := 0; hops <= len(forest); hops++ {
		if cur.ID == a.ID {
			return true
		}
		if cur.IsGenesis() {
			// Reached the root without matching a non-genesis a.
			return a.IsGenesis()
		}

		next, ok := forest.Lookup(cur.Base)
		if !ok {
			if cur.Base == GenesisBranchID {
				next = Genesis
			} else {
				// cur.Base is neither genesis nor a known branch.
				return false
			}
		}
		cur = next
	}
	return false
}

// AncestorOfChecked behaves exactly like AncestorOf, except that hitting a
// branch id absent from forest (and not genesis) returns ErrUnknownBranch
// instead of silently reporting false. Use this where the caller needs to
// tell "b's lineage disagrees with a" apart from "forest doesn't know b's
// lineage at all" — a registry lagging behind the branches it's asked
// about, rather than a real ancestry violation.
func AncestorOfChecked(a, b Branch, forest Registry) (bool, error) {
	if a.ID == b.ID {
		return true, nil
	}

	cur := b
	for hops := 0; hops <= len(forest); hops++ {
		if cur.ID == a.ID {
			return true, nil
		}
		if cur.IsGenesis() {
			return a.IsGenesis(), nil
		}

		next, err := forest.Resolve(cur.Base)
		if err != nil {
			return false, err
		}
		cur = next
	}
	return false, nil
}
