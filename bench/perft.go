package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/chesscore/board"
	"github.com/daystram/chesscore/position"
)

// Perft counts the move sequences of the given depth reachable from
// placement, the sides alternating from turn. The tally is sent to out.
func Perft(depth int, placement string, turn board.Side, parallel, verbose bool, out chan string) error {
	var nodes, cap uint64
	b, err := board.NewBoard(
		board.WithPlacement(placement),
	)
	if err != nil {
		return err
	}

	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	start := time.Now()
	run(b, turn, depth, true, verbose, out, &nodes, &cap)
	end := time.Now()

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d (%.3fs elapsed)",
			depth, nodes, int(float64(nodes)/end.Sub(start).Seconds()), cap, end.Sub(start).Seconds())

	return nil
}

// ValidMoves tries every active piece of side s against every cell of b.
// SideUnknown selects both sides.
func ValidMoves(b *board.Board, s board.Side) []*board.Move {
	var mvs []*board.Move
	cells := b.Cells()
	for _, pc := range b.Pieces() {
		if !pc.IsActive() || (s != board.SideUnknown && pc.Side != s) {
			continue
		}
		for x := range cells {
			for y := range cells[x] {
				mv, err := b.ValidMove(pc.ID, position.New(x, y))
				if err != nil {
					continue
				}
				mvs = append(mvs, mv)
			}
		}
	}
	return mvs
}

type perftFunc func(b *board.Board, s board.Side, d int, root, verbose bool, out chan string, nodes, cap *uint64) uint64

func runPerft(b *board.Board, s board.Side, d int, root, verbose bool, out chan string, nodes, cap *uint64) uint64 {
	if d == 0 {
		*nodes++
		return 1
	}

	var sum uint64
	for _, mv := range ValidMoves(b, s) {
		var child uint64
		bb := b.Clone()
		if _, err := bb.Move(mv.Piece, mv.To); err != nil {
			panic(err)
		}
		if d != 1 {
			child = runPerft(bb, s.Opposite(), d-1, false, verbose, out, nodes, cap)
		} else {
			child = 1
			*nodes++
			if mv.IsCapture {
				*cap++
			}
		}
		if verbose && root {
			out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
		}
		sum += child
	}
	return sum
}

func runPerftParallel(b *board.Board, s board.Side, d int, root, verbose bool, out chan string, nodes, cap *uint64) uint64 {
	if d == 0 {
		atomic.AddUint64(nodes, 1)
		return 1
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, mv := range ValidMoves(b, s) {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			var child uint64
			bb := b.Clone()
			if _, err := bb.Move(mv.Piece, mv.To); err != nil {
				panic(err)
			}
			if d != 1 {
				child = runPerftParallel(bb, s.Opposite(), d-1, false, verbose, out, nodes, cap)
			} else {
				child = 1
				atomic.AddUint64(nodes, 1)
				if mv.IsCapture {
					atomic.AddUint64(cap, 1)
				}
			}
			if verbose && root {
				out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}
