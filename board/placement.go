package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/daystram/chesscore/position"
)

// DefaultStartingPlacement is the piece placement field of the standard
// starting position.
const DefaultStartingPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// UnmarshalPlacement adds the pieces described by a FEN piece placement field
// to b. Ranks are listed from the highest down, runs of empty cells as
// decimal counts. The board must be rectangular and match the field's
// dimensions.
func UnmarshalPlacement(placement string, b *Board) error {
	if b == nil {
		return fmt.Errorf("%w: invalid board", ErrInvalidPlacement)
	}
	width, height, ok := b.rectangle()
	if !ok {
		return fmt.Errorf("%w: board is not rectangular", ErrInvalidPlacement)
	}

	rows := strings.Split(placement, "/")
	if len(rows) != height {
		return fmt.Errorf("%w: want %d ranks, got %d", ErrInvalidPlacement, height, len(rows))
	}

	staged := b.Clone()
	for i, row := range rows {
		y := height - i - 1
		x := 0
		for ptr := 0; ptr < len(row); ptr++ {
			if '0' <= row[ptr] && row[ptr] <= '9' {
				end := ptr
				for end < len(row) && '0' <= row[end] && row[end] <= '9' {
					end++
				}
				n, err := strconv.Atoi(row[ptr:end])
				if err != nil || n == 0 || row[ptr] == '0' {
					return fmt.Errorf("%w: bad empty count %q", ErrInvalidPlacement, row[ptr:end])
				}
				x += n
				ptr = end - 1
				continue
			}
			s, k := kindFromFEN(rune(row[ptr]))
			if k == KindUnknown {
				return fmt.Errorf("%w: unknown piece %q", ErrInvalidPlacement, row[ptr])
			}
			if _, err := staged.Add(s, k, position.New(x, y)); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidPlacement, err)
			}
			x++
		}
		if x != width {
			return fmt.Errorf("%w: rank %d has %d cells, want %d", ErrInvalidPlacement, y+1, x, width)
		}
	}

	*b = *staged
	return nil
}

// MarshalPlacement writes the active pieces of a rectangular board as a FEN
// piece placement field.
func MarshalPlacement(b *Board) (string, error) {
	width, height, ok := b.rectangle()
	if !ok {
		return "", fmt.Errorf("%w: board is not rectangular", ErrInvalidPlacement)
	}

	builder := strings.Builder{}
	for y := height - 1; y >= 0; y-- {
		empty := 0
		for x := 0; x < width; x++ {
			id := b.cells[x][y]
			if id == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				_, _ = builder.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			pc := b.pieces[id]
			_, _ = builder.WriteString(pc.kind.SymbolFEN(pc.side))
		}
		if empty > 0 {
			_, _ = builder.WriteString(strconv.Itoa(empty))
		}
		if y > 0 {
			_, _ = builder.WriteString("/")
		}
	}
	return builder.String(), nil
}

func (b *Board) Placement() string {
	placement, _ := MarshalPlacement(b)
	return placement
}

func (b *Board) rectangle() (int, int, bool) {
	width, height := b.SquareDimensions()
	for x := range b.cells {
		if len(b.cells[x]) != height {
			return 0, 0, false
		}
	}
	return width, height, true
}
