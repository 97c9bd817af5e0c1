package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/daystram/chesscore/position"
)

var (
	ErrOutOfBounds         = errors.New("out of bounds")
	ErrCellOccupied        = errors.New("cell occupied")
	ErrInactivePiece       = errors.New("inactive piece")
	ErrIllegalPattern      = errors.New("illegal moving pattern")
	ErrBlockedPath         = errors.New("blocked path")
	ErrFriendlyCapture     = errors.New("friendly capture")
	ErrInvalidConstruction = errors.New("invalid construction")
	ErrInvalidPlacement    = errors.New("invalid placement")
)

// MoveError is returned by every failing board operation. Err holds one of
// the sentinel errors above.
type MoveError struct {
	Err   error
	Piece PieceID
	Side  Side
	Kind  Kind
	From  position.Pos
	To    position.Pos
}

func (e *MoveError) Error() string {
	builder := strings.Builder{}
	_, _ = builder.WriteString(e.Err.Error())
	_, _ = builder.WriteString(":")
	if e.Piece != NoPiece {
		_, _ = builder.WriteString(fmt.Sprintf(" %s %s #%d", e.Side, e.Kind, e.Piece))
	} else if e.Kind != KindUnknown {
		_, _ = builder.WriteString(fmt.Sprintf(" %s %s", e.Side, e.Kind))
	}
	if !e.From.IsUnset() {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ->", e.From))
	}
	_, _ = builder.WriteString(fmt.Sprintf(" [%d, %d]", e.To.X, e.To.Y))
	return builder.String()
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
