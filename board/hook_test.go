package board_test

import "github.com/memoryscramble/board-engine/board"

// hookObserver lets tests synchronize with internal engine events
// (waiter enqueue, change broadcast) instead of sleeping and hoping.
type hookObserver struct {
	onFlipOutcome     func(string)
	onWaiterBlocked   func(board.CellPosition)
	onWaiterWoken     func(board.CellPosition)
	onWatcherRegistered func()
	onWatchersWoken   func(int)
	onChangeSignaled  func()
}

func (h *hookObserver) FlipOutcome(o string) {
	if h.onFlipOutcome != nil {
		h.onFlipOutcome(o)
	}
}

func (h *hookObserver) WaiterBlocked(pos board.CellPosition) {
	if h.onWaiterBlocked != nil {
		h.onWaiterBlocked(pos)
	}
}

func (h *hookObserver) WaiterWoken(pos board.CellPosition) {
	if h.onWaiterWoken != nil {
		h.onWaiterWoken(pos)
	}
}

func (h *hookObserver) WatcherRegistered() {
	if h.onWatcherRegistered != nil {
		h.onWatcherRegistered()
	}
}

func (h *hookObserver) WatchersWoken(n int) {
	if h.onWatchersWoken != nil {
		h.onWatchersWoken(n)
	}
}

func (h *hookObserver) ChangeSignaled() {
	if h.onChangeSignaled != nil {
		h.onChangeSignaled()
	}
}
