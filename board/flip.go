package board

import "context"

// Flip is the entry point for moves. Its behavior depends on the
// calling player's current turn phase:
//
//   - first == nil: starting a new turn. Runs previous-move cleanup, then
//     first-card acquisition.
//   - first set, second == nil: completing a pair. Runs second-card
//     resolution. Never suspends.
//   - first and second both set: starting a new turn after a completed
//     pair. Runs cleanup, clears first/second, then first-card
//     acquisition.
//
// On success it returns the player's own Look snapshot taken immediately
// after the operation. On failure (ErrNoCard, ErrControlled,
// ErrOutOfRange, or ctx cancellation) the board and the player's turn
// state are left consistent; the caller may retry.
func (b *Board) Flip(ctx context.Context, player string, r, c int) (string, error) {
	if !b.inBounds(r, c) {
		b.obs.FlipOutcome("out_of_range")
		return "", ErrOutOfRange
	}
	pos := CellPosition{Row: r, Col: c}

	b.mu.Lock()
	ps := b.ensurePlayer(player)

	switch {
	case ps.first == nil:
		b.cleanupLocked(ps)
		return b.finishFlip(b.acquireFirst(ctx, player, ps, pos))

	case ps.second == nil:
		snap, err := b.resolveSecond(player, ps, pos)
		b.mu.Unlock()
		return b.finishFlip(snap, err)

	default:
		b.cleanupLocked(ps)
		ps.first, ps.second = nil, nil
		return b.finishFlip(b.acquireFirst(ctx, player, ps, pos))
	}
}

// finishFlip records the outcome with the observer and passes the result
// through unchanged; it exists purely to keep Flip's call sites terse.
func (b *Board) finishFlip(snap string, err error) (string, error) {
	switch {
	case err == nil:
		b.obs.FlipOutcome("ok")
	case err == ErrNoCard:
		b.obs.FlipOutcome("no_card")
	case err == ErrControlled:
		b.obs.FlipOutcome("controlled")
	default:
		b.obs.FlipOutcome("canceled")
	}
	return snap, err
}

// acquireFirst implements first-card acquisition: take control of the
// target cell if it is uncontrolled or already ours, otherwise queue
// on it and wait for it to free up. The caller must hold b.mu on
// entry; acquireFirst always releases it before returning, including
// across suspension.
func (b *Board) acquireFirst(ctx context.Context, player string, ps *playerState, pos CellPosition) (string, error) {
	for {
		cl := &b.cells[b.index(pos.Row, pos.Col)]

		if cl.removed {
			b.mu.Unlock()
			return "", ErrNoCard
		}

		if cl.controller == "" || cl.controller == player {
			cl.controller = player
			if !cl.faceUp {
				cl.faceUp = true
				b.signalChangeLocked()
			}
			p := pos
			ps.first = &p
			snap := b.snapshotLocked(player)
			b.mu.Unlock()
			return snap, nil
		}

		// Controlled by another player: enqueue and suspend.
		elem, entry := b.enqueueWaiterLocked(pos)
		b.mu.Unlock()

		select {
		case <-entry.ch:
			b.mu.Lock()
			// Loop: re-read the cell before concluding anything.
		case <-ctx.Done():
			b.mu.Lock()
			select {
			case <-entry.ch:
				// Woken and canceled at once: pass the wakeup on to
				// the next waiter instead of dropping it.
				b.wakeOneLocked(pos)
			default:
				b.removeWaiterLocked(pos, elem)
			}
			b.mu.Unlock()
			return "", ctx.Err()
		}
	}
}

// resolveSecond implements second-card resolution: if the target is
// gone or already controlled (by anyone, including the caller), the
// held first card is relinquished and the pair fails; otherwise the
// target is flipped face up and compared against the first card,
// completing either a match (both cards stay controlled by the
// player) or a miss (the first card is released and its waiter
// queue woken). The caller must hold b.mu on entry and continues to
// hold it on return; it never suspends.
func (b *Board) resolveSecond(player string, ps *playerState, pos CellPosition) (string, error) {
	firstPos := *ps.first
	firstCell := &b.cells[b.index(firstPos.Row, firstPos.Col)]
	target := &b.cells[b.index(pos.Row, pos.Col)]

	if target.removed {
		b.relinquishFirstLocked(ps, firstPos, firstCell)
		return "", ErrNoCard
	}

	if target.controller != "" { // includes target.controller == player
		b.relinquishFirstLocked(ps, firstPos, firstCell)
		return "", ErrControlled
	}

	if !target.faceUp {
		target.faceUp = true
		b.signalChangeLocked()
	}

	p := pos
	ps.second = &p

	if target.value == firstCell.value { // match: both cards stay controlled
		target.controller = player
		ps.previous = []CellPosition{firstPos, pos}
		ps.previousMatched = true
	} else { // miss: release the first card and wake its queue
		firstCell.controller = ""
		b.wakeOneLocked(firstPos)
		ps.previous = []CellPosition{firstPos, pos}
		ps.previousMatched = false
	}

	return b.snapshotLocked(player), nil
}

// relinquishFirstLocked releases the player's held first card and
// records the aborted-flip lineage that the next turn's cleanup will
// consume. Callers must hold b.mu.
func (b *Board) relinquishFirstLocked(ps *playerState, firstPos CellPosition, firstCell *cell) {
	firstCell.controller = ""
	ps.previous = []CellPosition{firstPos}
	ps.previousMatched = false
	ps.first = nil
	ps.second = nil
	b.wakeOneLocked(firstPos)
}

// cleanupLocked implements previous-move cleanup, run at the top of
// every new turn: a completed match removes both cards and wakes the
// longest-queued waiter on each, while an aborted or unmatched pair simply turns any
// still-present, uncontrolled cards back face down. Callers must hold
// b.mu; cleanupLocked never suspends and never unlocks.
func (b *Board) cleanupLocked(ps *playerState) {
	defer func() {
		ps.previous = nil
		ps.previousMatched = false
	}()

	if ps.previousMatched && len(ps.previous) == 2 {
		for _, pos := range ps.previous {
			b.cells[b.index(pos.Row, pos.Col)] = cell{removed: true}
			b.wakeOneLocked(pos)
		}
		b.signalChangeLocked()
		return
	}

	changed := false
	for _, pos := range ps.previous {
		cl := &b.cells[b.index(pos.Row, pos.Col)]
		if !cl.removed && cl.faceUp && cl.controller == "" {
			cl.faceUp = false
			changed = true
		}
	}
	if changed {
		b.signalChangeLocked()
	}
}
