// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package towertest

import (
	"github.com/luxfi/locktower/branch"
	"github.com/luxfi/locktower/tower"
	"github.com/luxfi/locktower/utils/set"
)

// Peer is a single simulated participant: its own LockTower, grounded on
// cmd/sim's Node{ID, Byzantine, Choice} simulated-node shape.
type Peer struct {
	ID        int
	Byzantine bool
	Tower     *tower.LockTower
}

// Network is a fixed-size population of peers, each running an
// independent LockTower rooted at the same trunk. It exists to build the
// convergence tallies and finality diagnostics a tower's convergence
// check, and callers choosing a fork, need — not to exercise any real
// gossip or transport.
type Network struct {
	Peers []*Peer
}

// NewNetwork builds a Network of n peers, every tower constructed with
// capacity and opts (e.g. a shared Config, which takes priority over
// capacity — see tower.New).
func NewNetwork(n, capacity int, trunk branch.Branch, opts ...tower.Option) *Network {
	peers := make([]*Peer, n)
	for i := range peers {
		peers[i] = &Peer{ID: i, Tower: tower.New(capacity, trunk, opts...)}
	}
	return &Network{Peers: peers}
}

// Convergence tallies how many peers' tower.Tip() currently sits on each
// branch id — the shape a surrounding network layer would compute by
// aggregating peer tower tips over gossip, for feeding back into each
// peer's next Propose call as a ConvergenceMap.
func (n *Network) Convergence() map[uint64]int {
	tally := make(map[uint64]int, len(n.Peers))
	for _, p := range n.Peers {
		tally[p.Tower.Tip().ID]++
	}
	return tally
}

// Forks returns the distinct branch ids the network's peers currently sit
// on. A size-1 result past the tower's convergence threshold is the
// network-level signal that the population has settled on one fork.
func (n *Network) Forks() set.Set[uint64] {
	forks := set.NewSet[uint64](len(n.Peers))
	for _, p := range n.Peers {
		forks.Add(p.Tower.Tip().ID)
	}
	return forks
}

// FinalityFraction reports, for each depth 0..Capacity-1, the fraction of
// total network lockout-weight at that depth currently rooted on
// branchID. It supplements the network's plain per-branch convergence
// count with a finer per-depth view, useful to a node weighing which
// fork to build on next even when the single-depth pass/fail check
// already passed.
func (n *Network) FinalityFraction(branchID uint64) []float64 {
	capacity := tower.DefaultConfig().Capacity
	if len(n.Peers) > 0 {
		capacity = n.Peers[0].Tower.Config().Capacity
	}

	totals := make([]uint64, capacity)
	branchTotals := make([]uint64, capacity)

	for _, p := range n.Peers {
		for depth := 0; depth < capacity; depth++ {
			v, ok := p.Tower.VoteAt(depth)
			if !ok {
				break
			}
			totals[depth] += v.Lockout
			if v.Branch.ID == branchID {
				branchTotals[depth] += v.Lockout
			}
		}
	}

	fractions := make([]float64, capacity)
	for i := range fractions {
		if totals[i] == 0 {
			fractions[i] = 1.0
			continue
		}
		fractions[i] = float64(branchTotals[i]) / float64(totals[i])
	}
	return fractions
}
