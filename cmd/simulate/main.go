// Command simulate hammers a fresh board with concurrent players to
// exercise the flip coordinator, waiter queues, and change broadcast
// under real contention.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/memoryscramble/board-engine/board"
)

func main() {
	rows := flag.Int("rows", 4, "board rows")
	cols := flag.Int("cols", 4, "board cols")
	players := flag.Int("players", 8, "concurrent simulated players")
	duration := flag.Duration("duration", 5*time.Second, "how long to run")
	flag.Parse()

	values := checkerboardValues(*rows, *cols)
	var flips, matches, blocked uint64
	obs := &countingObserver{flips: &flips, matches: &matches, blocked: &blocked}

	b, err := board.New(*rows, *cols, values, board.WithObserver(obs))
	if err != nil {
		fmt.Printf("failed to build board: %v\n", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < *players; i++ {
		wg.Add(1)
		go simulatePlayer(ctx, &wg, b, *rows, *cols, fmt.Sprintf("sim-%d", i))
	}
	wg.Wait()

	fmt.Printf("flips=%d ok=%d blocked=%d\n",
		atomic.LoadUint64(&flips), atomic.LoadUint64(&matches), atomic.LoadUint64(&blocked))
}

func simulatePlayer(ctx context.Context, wg *sync.WaitGroup, b *board.Board, rows, cols int, name string) {
	defer wg.Done()
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		r, c := rnd.Intn(rows), rnd.Intn(cols)
		_, err := b.Flip(ctx, name, r, c)
		if err != nil {
			continue
		}
		r, c = rnd.Intn(rows), rnd.Intn(cols)
		_, _ = b.Flip(ctx, name, r, c)
	}
}

func checkerboardValues(rows, cols int) []string {
	values := make([]string, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if (r+c)%2 == 0 {
				values[r*cols+c] = "A"
			} else {
				values[r*cols+c] = "B"
			}
		}
	}
	return values
}

type countingObserver struct {
	flips   *uint64
	matches *uint64
	blocked *uint64
}

func (o *countingObserver) FlipOutcome(outcome string) {
	atomic.AddUint64(o.flips, 1)
	if outcome == "ok" {
		atomic.AddUint64(o.matches, 1)
	}
}

func (o *countingObserver) WaiterBlocked(_ board.CellPosition) { atomic.AddUint64(o.blocked, 1) }
func (o *countingObserver) WaiterWoken(_ board.CellPosition)   {}
func (o *countingObserver) WatcherRegistered()                 {}
func (o *countingObserver) WatchersWoken(_ int)                {}
func (o *countingObserver) ChangeSignaled()                    {}
