package board

import "github.com/daystram/chesscore/position"

// validPattern only checks the shape of the move: direction and distance.
// occupant is the side holding the destination, SideUnknown if it is empty;
// pawns need it to tell an advance from a capture.
func (k Kind) validPattern(s Side, from, to position.Pos, occupant Side) bool {
	dx, dy := to.X-from.X, to.Y-from.Y
	if dx == 0 && dy == 0 {
		return false
	}
	adx, ady := absInt(dx), absInt(dy)

	switch k {
	case KindPawn:
		if dy != s.forward() {
			return false
		}
		switch adx {
		case 0:
			return occupant != s.Opposite()
		case 1:
			return occupant != SideUnknown
		default:
			return false
		}
	case KindKnight:
		return (adx == 1 && ady == 2) || (adx == 2 && ady == 1)
	case KindBishop:
		return adx == ady
	case KindRook:
		return adx == 0 || ady == 0
	case KindQueen:
		return adx == ady || adx == 0 || ady == 0
	case KindKing:
		return adx <= 1 && ady <= 1
	default:
		return false
	}
}

// validPath checks that the cells strictly between from and to exist and are
// empty. The destination itself is not inspected.
func (k Kind) validPath(b *Board, from, to position.Pos) bool {
	switch k {
	case KindBishop, KindRook, KindQueen:
	default:
		// single steps and jumps have no path
		return true
	}

	stepX, stepY := sign(to.X-from.X), sign(to.Y-from.Y)
	for pos := from.Offset(stepX, stepY); pos != to; pos = pos.Offset(stepX, stepY) {
		if !b.IsLegalPosition(pos) || b.cells[pos.X][pos.Y] != NoPiece {
			return false
		}
	}
	return true
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
