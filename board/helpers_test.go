package board

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/daystram/chesscore/position"
)

type snapshot struct {
	Cells  [][]PieceID
	Pieces []Info
}

func takeSnapshot(b *Board) snapshot {
	return snapshot{Cells: b.Cells(), Pieces: b.Pieces()}
}

func assertUnchanged(t *testing.T, before snapshot, b *Board) {
	t.Helper()
	after := takeSnapshot(b)
	if !reflect.DeepEqual(before, after) {
		t.Errorf("board mutated by failed operation:\nbefore=%s\nafter=%s", spew.Sdump(before), spew.Sdump(after))
	}
}

func newTestBoard(t *testing.T, opts ...BoardOption) *Board {
	t.Helper()
	b, err := NewBoard(opts...)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	return b
}

func mustAdd(t *testing.T, b *Board, s Side, k Kind, x, y int) PieceID {
	t.Helper()
	id, err := b.Add(s, k, position.New(x, y))
	if err != nil {
		t.Fatalf("unexpected error adding %s %s at (%d, %d): %v", s, k, x, y, err)
	}
	return id
}

func assertPos(t *testing.T, b *Board, id PieceID, want position.Pos) {
	t.Helper()
	if got := b.Piece(id).Pos; got != want {
		t.Errorf("unexpected position: got=%v want=%v", got, want)
	}
}
