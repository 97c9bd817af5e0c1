package position

import (
	"errors"
	"strconv"
)

const (
	// MaxComponentScalar is the board edge length the notation defaults to.
	MaxComponentScalar = 8

	maxNotationX = 'z' - 'a' + 1
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")

	// Unset is the position of a piece that is not on a board.
	Unset = Pos{X: -1, Y: -1}
)

// Pos is a zero-based (file, rank) coordinate. X grows towards the h-file,
// Y grows towards White's opponent.
type Pos struct {
	X, Y int
}

func New(x, y int) Pos {
	return Pos{X: x, Y: y}
}

func NewPosFromNotation(n string) (Pos, error) {
	x, y, err := notationToXY(n)
	if err != nil {
		return Unset, err
	}
	return Pos{X: x, Y: y}, nil
}

func (p Pos) IsUnset() bool {
	return p == Unset
}

func (p Pos) Offset(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

func (p Pos) String() string {
	if n := p.Notation(); n != "" {
		return n
	}
	return "(" + strconv.Itoa(p.X) + ", " + strconv.Itoa(p.Y) + ")"
}

func (p Pos) Notation() string {
	x, y := p.NotationComponentX(), p.NotationComponentY()
	if x == "" || y == "" {
		return ""
	}
	return x + y
}

func (p Pos) NotationComponentX() string {
	if p.X < 0 || maxNotationX <= p.X {
		return ""
	}
	return string(rune('a' + p.X))
}

func (p Pos) NotationComponentY() string {
	if p.Y < 0 || 99 <= p.Y {
		return ""
	}
	return strconv.Itoa(p.Y + 1)
}

func notationToXY(n string) (int, int, error) {
	if len(n) < 2 {
		return 0, 0, ErrInvalidNotation
	}
	pX, err := notationToX(n[0])
	if err != nil {
		return 0, 0, err
	}
	pY, err := notationToY(n[1:])
	if err != nil {
		return 0, 0, err
	}
	return pX, pY, nil
}

func notationToX(x byte) (int, error) {
	if x < 'a' || 'z' < x {
		return 0, ErrInvalidNotation
	}
	return int(x - 'a'), nil
}

func notationToY(y string) (int, error) {
	if len(y) > 2 || y[0] == '0' {
		return 0, ErrInvalidNotation
	}
	for i := 0; i < len(y); i++ {
		if y[i] < '0' || '9' < y[i] {
			return 0, ErrInvalidNotation
		}
	}
	pY, err := strconv.Atoi(y)
	if err != nil {
		return 0, ErrInvalidNotation
	}
	return pY - 1, nil
}
