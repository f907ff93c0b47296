package board

import "context"

// signalChangeLocked wakes every currently-registered watcher at once:
// the set is drained atomically and a fresh, empty set takes its
// place, so watchers registered after this call are unaffected by it.
// Callers must hold b.mu.
func (b *Board) signalChangeLocked() {
	b.obs.ChangeSignaled()
	if len(b.watch) == 0 {
		return
	}
	woken := b.watch
	b.watch = make(map[*watcherEntry]struct{})
	for w := range woken {
		close(w.ch)
	}
	b.obs.WatchersWoken(len(woken))
}

// Watch suspends until some state-observable change occurs anywhere on
// the board, then returns player's own post-event Look snapshot. Watch
// itself never fails except via ctx cancellation, in which case the
// caller's registration is removed before returning.
func (b *Board) Watch(ctx context.Context, player string) (string, error) {
	b.mu.Lock()
	b.ensurePlayer(player)
	entry := &watcherEntry{ch: make(chan struct{})}
	b.watch[entry] = struct{}{}
	b.obs.WatcherRegistered()
	b.mu.Unlock()

	select {
	case <-entry.ch:
	case <-ctx.Done():
		b.mu.Lock()
		delete(b.watch, entry)
		b.mu.Unlock()
		return "", ctx.Err()
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked(player), nil
}
