package board_test

import (
	"context"
	"testing"
	"time"

	"github.com/memoryscramble/board-engine/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFlipCancellationRemovesWaiter checks that a suspended Flip whose
// context is canceled does not leave a phantom entry in the cell's
// waiter queue.
func TestFlipCancellationRemovesWaiter(t *testing.T) {
	blocked := make(chan board.CellPosition, 2)
	b := checkerboardWithObserver(t, 2, 2, &hookObserver{
		onWaiterBlocked: func(pos board.CellPosition) { blocked <- pos },
	})
	bg := context.Background()

	_, err := b.Flip(bg, "alice", 0, 0)
	require.NoError(t, err)

	bobCtx, cancelBob := context.WithCancel(bg)
	bobDone := make(chan error, 1)
	go func() {
		_, err := b.Flip(bobCtx, "bob", 0, 0)
		bobDone <- err
	}()
	waitForBlocked(t, blocked, board.CellPosition{Row: 0, Col: 0})
	cancelBob()

	select {
	case err := <-bobDone:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(waitTimeout):
		t.Fatal("bob's canceled flip never returned")
	}

	// charlie must still be able to queue and be the sole, correctly
	// woken waiter: bob's cancellation must have removed him from the
	// FIFO instead of leaving a dead entry ahead of charlie.
	charlieDone := make(chan struct {
		snap string
		err  error
	}, 1)
	go func() {
		snap, err := b.Flip(bg, "charlie", 0, 0)
		charlieDone <- struct {
			snap string
			err  error
		}{snap, err}
	}()
	waitForBlocked(t, blocked, board.CellPosition{Row: 0, Col: 0})

	_, err = b.Flip(bg, "alice", 0, 1) // non-match, releases (0,0)
	require.NoError(t, err)

	select {
	case res := <-charlieDone:
		require.NoError(t, res.err)
		assert.Equal(t, "my A", snapLines(t, res.snap)[1])
	case <-time.After(waitTimeout):
		t.Fatal("charlie never woke up")
	}
}
