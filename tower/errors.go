// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tower

import (
	"errors"
	"fmt"
)

// Proposal-rejection sentinels. Rejection is an expected outcome under
// contention, never retried by the tower itself.
var (
	// ErrAncestryViolation means some un-expired vote in the tower is not
	// an ancestor of the proposed vote's branch.
	ErrAncestryViolation = errors.New("tower: ancestry violation")
	// ErrConvergenceInsufficient means the vote at the checked depth is
	// not held by more than half the network.
	ErrConvergenceInsufficient = errors.New("tower: convergence insufficient")
)

// InvariantError reports a programming error: an internal invariant
// (A1-A5, or the capacity bound) was violated. The tower panics with an InvariantError rather
// than returning it, since these are treated as fatal rather than
// recoverable.
type InvariantError struct {
	// Invariant is the violated invariant's short name, e.g. "A3".
	Invariant string
	// Reason describes what was observed.
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("tower: invariant %s violated: %s", e.Invariant, e.Reason)
}

// invariantf logs the violation at Error level through t's logger, then
// panics with an *InvariantError. t.logger is always non-nil (New installs
// a no-op default), so this never needs its own nil guard.
func (t *LockTower) invariantf(name, format string, args ...any) {
	reason := fmt.Sprintf(format, args...)
	t.logger.Error("invariant violated", "invariant", name, "reason", reason)
	panic(&InvariantError{Invariant: name, Reason: reason})
}
