package board

import (
	"fmt"

	"github.com/daystram/chesscore/position"
)

type Kind uint8

const (
	KindUnknown Kind = iota
	KindPawn
	KindBishop
	KindKnight
	KindRook
	KindQueen
	KindKing
)

// PieceID addresses a piece within the board that placed it.
type PieceID int

// NoPiece marks an empty cell.
const NoPiece PieceID = -1

func (k Kind) String() string {
	return k.Name()
}

func (k Kind) Name() string {
	switch k {
	case KindPawn:
		return "Pawn"
	case KindBishop:
		return "Bishop"
	case KindKnight:
		return "Knight"
	case KindRook:
		return "Rook"
	case KindQueen:
		return "Queen"
	case KindKing:
		return "King"
	default:
		return ""
	}
}

func (k Kind) IsValid() bool {
	return KindPawn <= k && k <= KindKing
}

func (k Kind) SymbolAlgebra(s Side) string {
	if k == KindPawn {
		return ""
	}
	return k.SymbolFEN(s)
}

func (k Kind) SymbolFEN(s Side) string {
	var sym rune
	switch k {
	case KindPawn:
		sym = 'P'
	case KindBishop:
		sym = 'B'
	case KindKnight:
		sym = 'N'
	case KindRook:
		sym = 'R'
	case KindQueen:
		sym = 'Q'
	case KindKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (k Kind) SymbolUnicode(s Side, invert bool) string {
	if invert {
		s = s.Opposite()
	}
	switch s {
	case SideWhite:
		switch k {
		case KindPawn:
			return "♙"
		case KindBishop:
			return "♗"
		case KindKnight:
			return "♘"
		case KindRook:
			return "♖"
		case KindQueen:
			return "♕"
		case KindKing:
			return "♔"
		default:
			return ""
		}
	case SideBlack:
		switch k {
		case KindPawn:
			return "♟"
		case KindBishop:
			return "♝"
		case KindKnight:
			return "♞"
		case KindRook:
			return "♜"
		case KindQueen:
			return "♛"
		case KindKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}

func kindFromFEN(sym rune) (Side, Kind) {
	s := SideWhite
	if 'a' <= sym && sym <= 'z' {
		s, sym = SideBlack, sym&^0x20
	}
	switch sym {
	case 'P':
		return s, KindPawn
	case 'B':
		return s, KindBishop
	case 'N':
		return s, KindKnight
	case 'R':
		return s, KindRook
	case 'Q':
		return s, KindQueen
	case 'K':
		return s, KindKing
	default:
		return SideUnknown, KindUnknown
	}
}

// Info is a read-only view of a piece.
type Info struct {
	ID    PieceID
	Side  Side
	Kind  Kind
	Pos   position.Pos
	State State
}

func (i Info) IsActive() bool {
	return i.State.IsActive()
}

func (i Info) IsFriendly(o Info) bool {
	return i.Side == o.Side
}

func (i Info) String() string {
	return fmt.Sprintf("%s %s @%s", i.Side, i.Kind, i.Pos)
}

type piece struct {
	side  Side
	kind  Kind
	pos   position.Pos
	state State
}
