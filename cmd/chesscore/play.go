package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/daystram/chesscore/board"
	"github.com/daystram/chesscore/position"
)

// play applies moves in coordinate form (e2e3) in order, stopping at the
// first rejected one.
func play(b *board.Board, moves []string, render func() string, out io.Writer) error {
	log.Println("============ play")
	fmt.Fprintln(out, render())
	for i, m := range moves {
		from, to, err := parseMove(m)
		if err != nil {
			return fmt.Errorf("move %d %q: %w", i+1, m, err)
		}
		id, err := b.Cell(from)
		if err != nil {
			return fmt.Errorf("move %d %q: %w", i+1, m, err)
		}
		if id == board.NoPiece {
			return fmt.Errorf("move %d %q: no piece on %s", i+1, m, from)
		}

		mv, err := b.Move(id, to)
		if err != nil {
			return fmt.Errorf("move %d %q: %w", i+1, m, err)
		}
		fmt.Fprintf(out, "\n===== [#%d] %s: %s\n", i+1, mv.IsTurn, mv)
		if mv.IsCapture {
			fmt.Fprintf(out, "captured: %s\n", b.Piece(mv.Victim).Kind)
		}
		fmt.Fprintln(out, render())
		fmt.Fprintln(out, b.Placement())
	}
	return nil
}

func parseMove(m string) (position.Pos, position.Pos, error) {
	split := strings.IndexFunc(m[min(1, len(m)):], func(r rune) bool {
		return 'a' <= r && r <= 'z'
	})
	if split < 0 {
		return position.Unset, position.Unset, position.ErrInvalidNotation
	}
	split++
	from, err := position.NewPosFromNotation(m[:split])
	if err != nil {
		return position.Unset, position.Unset, err
	}
	to, err := position.NewPosFromNotation(m[split:])
	if err != nil {
		return position.Unset, position.Unset, err
	}
	return from, to, nil
}
