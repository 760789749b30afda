// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tower

import (
	"github.com/luxfi/locktower/branch"
	"github.com/luxfi/locktower/vote"
	"github.com/luxfi/log"
)

// ConvergenceMap reports, per branch id, how many participants are
// currently rooted on a branch descending from it. Absent entries are
// treated as zero.
type ConvergenceMap map[uint64]int

// LockTower is not safe for concurrent use: all operations run
// synchronously to completion with no suspension points, and the
// surrounding node is responsible for serializing access to a given
// instance, typically via its per-tower event loop.
type LockTower struct {
	// votes is ordered newest-first: votes[0] is the top of the tower,
	// votes[len-1] the bottom.
	votes []vote.Vote

	config Config

	// trunk is the most recently finalized branch, and trunkSlot the slot
	// of the vote that was finalized into it. trunk starts at the branch
	// passed to New, trunkSlot at 0.
	trunk     branch.Branch
	trunkSlot uint64

	logger  log.Logger
	metrics *Metrics
}

// Option configures a LockTower at construction time.
type Option func(*LockTower)

// WithConfig overrides the default canonical Config.
func WithConfig(cfg Config) Option {
	return func(t *LockTower) { t.config = cfg }
}

// WithLogger installs a logger for accepted/rejected proposals and fatal
// invariant violations. Defaults to a no-op logger.
func WithLogger(l log.Logger) Option {
	return func(t *LockTower) { t.logger = l }
}

// WithMetrics installs Prometheus instrumentation. Defaults to nil, under
// which all metrics calls are no-ops.
func WithMetrics(m *Metrics) Option {
	return func(t *LockTower) { t.metrics = m }
}

// New returns an empty LockTower rooted at trunk (conventionally
// branch.Genesis for a fresh participant), bounded to capacity votes.
// capacity overrides DefaultConfig's canonical Capacity; a WithConfig
// option applied after New builds its Config wins over capacity instead,
// since options are applied in order after the capacity-seeded default.
func New(capacity int, trunk branch.Branch, opts ...Option) *LockTower {
	cfg := DefaultConfig()
	cfg.Capacity = capacity
	t := &LockTower{
		config: cfg,
		trunk:  trunk,
		logger: log.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Config returns the tower's configuration.
func (t *LockTower) Config() Config {
	return t.config
}

// Tip returns the branch the tower would next build on: the top vote's
// branch, or trunk if the tower is empty. It is never a branch unknown to
// the caller's fork registry so long as the tower's own proposals were
// validated against that registry.
func (t *LockTower) Tip() branch.Branch {
	if len(t.votes) == 0 {
		return t.trunk
	}
	return t.votes[0].Branch
}

// Bottom returns the deepest, most-locked vote currently held, and false
// if the tower is empty.
func (t *LockTower) Bottom() (vote.Vote, bool) {
	if len(t.votes) == 0 {
		return vote.Vote{}, false
	}
	return t.votes[len(t.votes)-1], true
}

// VoteAt returns the vote depth positions from the top (0 is the top
// vote), and false if the tower does not hold that many votes. Exposed so a caller computing its
// own convergence map can see what it last reported at a given depth.
func (t *LockTower) VoteAt(depth int) (vote.Vote, bool) {
	if depth < 0 || depth >= len(t.votes) {
		return vote.Vote{}, false
	}
	return t.votes[depth], true
}

// Depth returns the current number of votes held.
func (t *LockTower) Depth() int {
	return len(t.votes)
}

// Snapshot is the state worth persisting: votes, trunk, and capacity.
// Persistence itself remains the caller's responsibility.
type Snapshot struct {
	Votes    []vote.Vote
	Trunk    branch.Branch
	Capacity int
}

// Snapshot returns a copy of the tower's persistable state.
func (t *LockTower) Snapshot() Snapshot {
	votes := make([]vote.Vote, len(t.votes))
	copy(votes, t.votes)
	return Snapshot{Votes: votes, Trunk: t.trunk, Capacity: t.config.Capacity}
}

// Propose attempts to cast v. It returns true if v was accepted and
// appended to the tower; false with a non-nil error if v was rejected as
// an expected outcome of contention (errors.Is(err, ErrAncestryViolation)
// or errors.Is(err, ErrConvergenceInsufficient)), or if forest could not
// resolve v's lineage (errors.Is(err, branch.ErrUnknownBranch) — a stale
// or incomplete forest, not a rejection). A violated internal invariant
// panics with *InvariantError instead of returning, since the tower
// treats those as programming errors, not recoverable outcomes.
// v.Lockout is ignored on acceptance: an accepted vote always starts at
// t.Config().InitialLockout, since only v.Branch and v.Slot describe what
// is actually being proposed.
//
// forest and convergence must be stable for the duration of this call;
// depth selects which held vote the convergence check is evaluated
// against, falling back to t.config.Depth when depth < 0.
func (t *LockTower) Propose(v vote.Vote, forest branch.Registry, convergence ConvergenceMap, depth int) (bool, error) {
	if depth < 0 {
		depth = t.config.Depth
	}

	t.checkSlotMonotonicity(v)

	t.rollback(v.Slot)

	holds, err := t.ancestryHolds(v, forest)
	if err != nil {
		t.logger.Debug("proposal not evaluated: branch lineage unresolvable", "branch", v.Branch.ID, "slot", v.Slot, "err", err)
		return false, err
	}
	if !holds {
		t.metrics.recordRejectedAncestry()
		t.logger.Debug("proposal rejected: ancestry violation", "branch", v.Branch.ID, "slot", v.Slot)
		return false, ErrAncestryViolation
	}

	if !t.convergenceHolds(depth, convergence) {
		t.metrics.recordRejectedConvergence()
		t.logger.Debug("proposal rejected: convergence insufficient", "branch", v.Branch.ID, "slot", v.Slot, "depth", depth)
		return false, ErrConvergenceInsufficient
	}

	t.insert(v)
	t.finalizeIfFull()

	t.metrics.recordAccepted()
	t.metrics.setDepth(len(t.votes))
	t.logger.Debug("proposal accepted", "branch", v.Branch.ID, "slot", v.Slot, "depth", len(t.votes))
	return true, nil
}

// checkSlotMonotonicity enforces A4 and the supplemented root-slot check:
// a proposed slot may never regress below the tower's top vote, nor below
// the slot of the vote last finalized into the trunk when the tower is
// empty.
func (t *LockTower) checkSlotMonotonicity(v vote.Vote) {
	if len(t.votes) > 0 && v.Slot < t.votes[0].Slot {
		t.invariantf("A4", "proposed slot %d is below top vote slot %d", v.Slot, t.votes[0].Slot)
	}
	if len(t.votes) == 0 && v.Slot < t.trunkSlot {
		t.invariantf("A4", "proposed slot %d is below finalized trunk slot %d", v.Slot, t.trunkSlot)
	}
}

// rollback finds the deepest vote whose expiry has already passed at
// slot and evicts it along with everything below it.
func (t *LockTower) rollback(slot uint64) {
	k := -1
	for i, v := range t.votes {
		if v.Expiry() < slot {
			k = i
		}
	}
	if k >= 0 {
		t.votes = t.votes[:k]
	}
}

// ancestryHolds checks that every remaining vote is an ancestor of v; by
// A2 this is equivalent to, and cheaper than, checking only the top vote
// (or trunk when the tower is empty). It reports ErrUnknownBranch rather
// than false if the walk runs off the edge of forest.
func (t *LockTower) ancestryHolds(v vote.Vote, forest branch.Registry) (bool, error) {
	if len(t.votes) == 0 {
		return branch.AncestorOfChecked(t.trunk, v.Branch, forest)
	}
	return branch.AncestorOfChecked(t.votes[0].Branch, v.Branch, forest)
}

// convergenceHolds checks that the vote held at depth is rooted by at
// least the configured threshold of the network. If the tower does not
// hold a vote at depth, the check trivially passes.
func (t *LockTower) convergenceHolds(depth int, convergence ConvergenceMap) bool {
	w, ok := t.VoteAt(depth)
	if !ok {
		return true
	}
	return convergence[w.Branch.ID] >= t.config.ConvergenceThreshold
}

// insert normalizes v's lockout to the configured initial value (a freshly
// cast vote always starts there, regardless of what the caller's vote.New
// happened to set), pushes it onto the top, then doubles lockouts
// top-to-bottom only where a vote's lockout equals the lockout immediately
// above it.
func (t *LockTower) insert(v vote.Vote) {
	v.Lockout = t.config.InitialLockout
	t.votes = append([]vote.Vote{v}, t.votes...)

	for i := 1; i < len(t.votes); i++ {
		if t.votes[i].Lockout == t.votes[i-1].Lockout {
			t.votes[i].Lockout *= 2
		}
		if bound := uint64(1) << uint(i+1); t.votes[i].Lockout > bound {
			t.invariantf("A3", "vote at depth %d has lockout %d exceeding bound %d", i, t.votes[i].Lockout, bound)
		}
	}
}

// finalizeIfFull evicts the bottom vote into the trunk once the tower
// reaches its configured capacity.
func (t *LockTower) finalizeIfFull() {
	if len(t.votes) < t.config.Capacity {
		return
	}
	if len(t.votes) > t.config.Capacity {
		t.invariantf("capacity", "tower holds %d votes, exceeding capacity %d", len(t.votes), t.config.Capacity)
	}

	popped := t.votes[len(t.votes)-1]
	t.votes = t.votes[:len(t.votes)-1]
	t.trunk = popped.Branch
	t.trunkSlot = popped.Slot
	t.metrics.recordFinalization()
	t.logger.Debug("vote finalized", "branch", t.trunk.ID, "slot", t.trunkSlot)
}
