// Package metrics exposes Prometheus counters and gauges for the
// board engine and implements board.Observer so a running board wires
// straight into them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/memoryscramble/board-engine/board"
)

var (
	flipsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "board_flips_total",
			Help: "Total flip operations by outcome",
		},
		[]string{"outcome"},
	)
	waitersBlocked = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "board_waiters_blocked_total",
			Help: "Total times a flip call blocked on a controlled cell",
		},
	)
	waitersWoken = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "board_waiters_woken_total",
			Help: "Total times a blocked flip call was woken",
		},
	)
	watchersActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "board_watchers_active",
			Help: "Watchers currently suspended waiting for a change",
		},
	)
	watchersWokenTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "board_watchers_woken_total",
			Help: "Total watchers woken across all change broadcasts",
		},
	)
	changesSignaledTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "board_changes_signaled_total",
			Help: "Total state-observable changes on the board",
		},
	)
)

func init() {
	prometheus.MustRegister(
		flipsTotal,
		waitersBlocked,
		waitersWoken,
		watchersActive,
		watchersWokenTotal,
		changesSignaledTotal,
	)
}

// Observer collects board.Observer callbacks into the package's
// Prometheus registrations. It carries no state of its own; multiple
// Observers backed by the same board would double-count, so a process
// should construct exactly one per board.
type Observer struct{}

// NewObserver returns a board.Observer that records to Prometheus.
func NewObserver() *Observer {
	return &Observer{}
}

func (o *Observer) FlipOutcome(outcome string) {
	flipsTotal.WithLabelValues(outcome).Inc()
}

func (o *Observer) WaiterBlocked(_ board.CellPosition) {
	waitersBlocked.Inc()
}

func (o *Observer) WaiterWoken(_ board.CellPosition) {
	waitersWoken.Inc()
}

func (o *Observer) WatcherRegistered() {
	watchersActive.Inc()
}

func (o *Observer) WatchersWoken(n int) {
	watchersActive.Sub(float64(n))
	watchersWokenTotal.Add(float64(n))
}

func (o *Observer) ChangeSignaled() {
	changesSignaledTotal.Inc()
}
