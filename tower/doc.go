// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package tower implements LockTower, the per-participant vote-tower at
// the heart of a leader-based BFT consensus protocol: a bounded stack of
// prior votes, each annotated with an exponentially growing lockout
// period during which the participant has committed not to vote on a
// conflicting fork.
//
// LockTower is a pure, synchronous state machine. It performs no I/O, no
// signing, and no network exchange; the fork registry (package branch)
// and the convergence tally are both supplied by reference on every call.
package tower
