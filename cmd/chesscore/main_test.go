package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/daystram/chesscore/board"
	"github.com/daystram/chesscore/position"
)

func TestParseMove(t *testing.T) {
	t.Parallel()
	tests := []struct {
		move     string
		wantFrom position.Pos
		wantTo   position.Pos
		wantErr  bool
	}{
		{move: "e2e3", wantFrom: position.New(4, 1), wantTo: position.New(4, 2)},
		{move: "h7g6", wantFrom: position.New(7, 6), wantTo: position.New(6, 5)},
		{move: "j10j11", wantFrom: position.New(9, 9), wantTo: position.New(9, 10)},
		{move: "", wantErr: true},
		{move: "e2", wantErr: true},
		{move: "e2e", wantErr: true},
		{move: "22e3", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.move, func(t *testing.T) {
			t.Parallel()
			from, to, err := parseMove(tt.move)
			if tt.wantErr {
				if err == nil {
					t.Error("error expected: got=nil")
				}
				return
			}
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if from != tt.wantFrom || to != tt.wantTo {
				t.Errorf("unexpected move: got=%v%v want=%v%v", from, to, tt.wantFrom, tt.wantTo)
			}
		})
	}
}

func TestRealMain(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		cfg       config
		moves     []string
		wantErr   error
		wantLines []string
	}{
		{
			name:      "pawn moves",
			cfg:       config{placement: board.DefaultStartingPlacement},
			moves:     []string{"e2e3", "d7d6", "e3e4"},
			wantLines: []string{"===== [#3] white: e4", "rnbqkbnr/ppp1pppp/3p4/8/4P3/8/PPPP1PPP/RNBQKBNR"},
		},
		{
			name:      "capture",
			cfg:       config{placement: "8/8/8/8/8/5p2/4P3/8"},
			moves:     []string{"e2f3"},
			wantLines: []string{"===== [#1] white: exf3", "captured: Pawn", "8/8/8/8/8/5P2/8/8"},
		},
		{
			name:    "backwards",
			cfg:     config{placement: "8/8/8/8/8/4P3/8/8"},
			moves:   []string{"e3e2"},
			wantErr: board.ErrIllegalPattern,
		},
		{
			name:    "friendly",
			cfg:     config{placement: "8/8/8/8/8/4P3/4P3/8"},
			moves:   []string{"e2e3"},
			wantErr: board.ErrFriendlyCapture,
		},
		{
			name:    "off board",
			cfg:     config{placement: "8/8/8/8/8/8/8/8"},
			moves:   []string{"i1i2"},
			wantErr: board.ErrOutOfBounds,
		},
		{
			name:    "bad placement",
			cfg:     config{placement: "8/8"},
			wantErr: board.ErrInvalidPlacement,
		},
		{
			name:      "movegen",
			cfg:       config{placement: "8/8/8/8/8/3p1p2/4P3/8", movegen: true},
			wantLines: []string{"[d3e2] [dxe2] black Pawn d3 => e2 (cap=true)", "[e2d3] [exd3] white Pawn e2 => d3 (cap=true)", "moves=7 captures=4"},
		},
		{
			name:      "perft",
			cfg:       config{placement: "8/4p3/8/8/8/8/4P3/8", perft: 2, turn: board.SideWhite},
			moves:     []string{"e2e3"},
			wantLines: []string{"e3e4: 1", "d=2 nodes=1 "},
		},
		{
			name:      "perft black",
			cfg:       config{placement: "8/4p3/8/8/8/8/4P3/8", perft: 1, turn: board.SideBlack},
			wantLines: []string{"e7e6: 1", "d=1 nodes=1 "},
		},
		{
			name:      "draw",
			cfg:       config{placement: "8/8/8/8/8/8/8/4K3", draw: true},
			wantLines: []string{"♔"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := &bytes.Buffer{}
			err := realMain(tt.cfg, tt.moves, out)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			for _, line := range tt.wantLines {
				if !strings.Contains(out.String(), line) {
					t.Errorf("missing output %q in:\n%s", line, out.String())
				}
			}
		})
	}
}
