package board

// Observer receives best-effort notifications of engine activity. It is
// used to feed metrics (see the metrics package and cmd/simulate)
// without coupling the core engine to any third-party dependency.
// FlipOutcome is called after the board lock is released; every other
// method is called with the board lock held, so calling back into the
// Board from one of them deadlocks.
type Observer interface {
	// FlipOutcome is called once per completed Flip call, after the
	// board lock has been released, with one of "ok", "no_card",
	// "controlled", "out_of_range", or "canceled".
	FlipOutcome(outcome string)
	// WaiterBlocked is called each time a Flip call enqueues itself on
	// a contended cell.
	WaiterBlocked(pos CellPosition)
	// WaiterWoken is called each time a queued waiter is released,
	// successfully or into a NoCard re-check.
	WaiterWoken(pos CellPosition)
	// WatcherRegistered is called each time Watch suspends.
	WatcherRegistered()
	// WatchersWoken is called with the number of watchers released by a
	// single change signal.
	WatchersWoken(n int)
	// ChangeSignaled is called each time the board emits a change event.
	ChangeSignaled()
}

type noopObserver struct{}

func (noopObserver) FlipOutcome(string)          {}
func (noopObserver) WaiterBlocked(CellPosition)  {}
func (noopObserver) WaiterWoken(CellPosition)    {}
func (noopObserver) WatcherRegistered()          {}
func (noopObserver) WatchersWoken(int)           {}
func (noopObserver) ChangeSignaled()             {}
