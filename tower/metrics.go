// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tower

import "github.com/prometheus/client_golang/prometheus"

// Metrics instruments a LockTower's proposal outcomes and current depth.
// It registers against a caller-supplied prometheus.Registerer, the same
// convention poll.DefaultFactory and metrics.NewAverager use in the
// reference consensus stack.
type Metrics struct {
	accepted            prometheus.Counter
	rejectedAncestry    prometheus.Counter
	rejectedConvergence prometheus.Counter
	finalizations       prometheus.Counter
	depth               prometheus.Gauge
}

// NewMetrics registers and returns a new Metrics under the given
// namespace. A nil Registerer yields a Metrics that updates in-memory
// counters only (no registration, no error), useful for tests.
func NewMetrics(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		accepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "proposals_accepted_total",
			Help:      "Total proposals accepted onto the tower.",
		}),
		rejectedAncestry: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "proposals_rejected_ancestry_total",
			Help:      "Total proposals rejected for violating an active lockout.",
		}),
		rejectedConvergence: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "proposals_rejected_convergence_total",
			Help:      "Total proposals rejected for insufficient network convergence.",
		}),
		finalizations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "finalizations_total",
			Help:      "Total votes finalized by eviction from the bottom of the tower.",
		}),
		depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "depth",
			Help:      "Current number of votes held on the tower.",
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.accepted, m.rejectedAncestry, m.rejectedConvergence, m.finalizations, m.depth} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) recordAccepted() {
	if m == nil {
		return
	}
	m.accepted.Inc()
}

func (m *Metrics) recordRejectedAncestry() {
	if m == nil {
		return
	}
	m.rejectedAncestry.Inc()
}

func (m *Metrics) recordRejectedConvergence() {
	if m == nil {
		return
	}
	m.rejectedConvergence.Inc()
}

func (m *Metrics) recordFinalization() {
	if m == nil {
		return
	}
	m.finalizations.Inc()
}

func (m *Metrics) setDepth(depth int) {
	if m == nil {
		return
	}
	m.depth.Set(float64(depth))
}
