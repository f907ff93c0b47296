package board_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMapPreservesMatching checks that mapping a value transform over
// the board keeps previously-equal cells equal, so a match still
// succeeds afterward.
func TestMapPreservesMatching(t *testing.T) {
	ctx := context.Background()
	b := checkerboard(t, 5, 5) // (0,0)=A (0,2)=A

	_, err := b.Map(ctx, "referee", func(_ context.Context, v string) (string, error) {
		return strings.ToLower(v), nil
	})
	require.NoError(t, err)

	view := snapLines(t, b.Look("referee"))
	assert.Equal(t, "down", view[1])

	_, err = b.Flip(ctx, "alice", 0, 0)
	require.NoError(t, err)
	snap, err := b.Flip(ctx, "alice", 0, 2)
	require.NoError(t, err)
	lines := snapLines(t, snap)
	assert.Equal(t, "my a", lines[1])
	assert.Equal(t, "my a", lines[3])
}

// TestMapIdentityIsNoOp checks the law: map(p, identity) changes no
// cell's value.
func TestMapIdentityIsNoOp(t *testing.T) {
	ctx := context.Background()
	b := checkerboard(t, 3, 3)

	before := b.Look("p")
	_, err := b.Map(ctx, "p", func(_ context.Context, v string) (string, error) {
		return v, nil
	})
	require.NoError(t, err)
	after := b.Look("p")

	assert.Equal(t, before, after)
}

// TestMapSkipsRemovedCells ensures cells removed before Map runs stay
// removed after it.
func TestMapSkipsRemovedCells(t *testing.T) {
	ctx := context.Background()
	b := checkerboard(t, 5, 5)

	_, err := b.Flip(ctx, "alice", 0, 0)
	require.NoError(t, err)
	_, err = b.Flip(ctx, "alice", 0, 2)
	require.NoError(t, err)
	_, err = b.Flip(ctx, "alice", 1, 0) // cleanup removes (0,0),(0,2)
	require.NoError(t, err)

	_, err = b.Map(ctx, "p", func(_ context.Context, v string) (string, error) {
		return v + "!", nil
	})
	require.NoError(t, err)

	view := snapLines(t, b.Look("p"))
	assert.Equal(t, "none", view[1])
	assert.Equal(t, "none", view[3])
}

// TestMapPropagatesTransformError checks that groups already committed
// before a failing group stay committed.
func TestMapPropagatesTransformError(t *testing.T) {
	ctx := context.Background()
	b := checkerboard(t, 2, 2) // values A, B, B, A

	boom := assert.AnError
	_, err := b.Map(ctx, "p", func(_ context.Context, v string) (string, error) {
		if v == "B" {
			return "", boom
		}
		return strings.ToLower(v), nil
	})
	assert.ErrorIs(t, err, boom)

	// "A" sorts before "B", so its group already committed when "B"
	// failed; that commit must survive the error.
	view := snapLines(t, b.Look("p"))
	assert.Equal(t, "down", view[1]) // value changed but faceUp untouched
	_, err = b.Flip(ctx, "checker", 0, 0)
	require.NoError(t, err)
	snap := b.Look("checker")
	assert.Equal(t, "my a", snapLines(t, snap)[1])
}
