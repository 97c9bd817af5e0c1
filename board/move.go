package board

import "github.com/daystram/chesscore/position"

type Move struct {
	From, To position.Pos
	Piece    PieceID
	Kind     Kind

	IsTurn    Side
	IsCapture bool
	Victim    PieceID
}

func (m Move) String() string {
	return m.Algebra()
}

func (m Move) Algebra() string {
	nt := m.Kind.SymbolAlgebra(SideWhite) // SideWhite because it returns capital symbols
	if m.IsCapture {
		if m.Kind == KindPawn {
			nt += m.From.NotationComponentX()
		} else {
			nt += m.From.Notation()
		}
		nt += "x"
	}
	return nt + m.To.Notation()
}

func (m Move) UCI() string {
	return m.From.Notation() + m.To.Notation()
}

// Move moves id to the destination. Either the move is applied completely or
// an error is returned and the board is left untouched.
func (b *Board) Move(id PieceID, to position.Pos) (*Move, error) {
	mv, err := b.ValidMove(id, to)
	if err != nil {
		return nil, err
	}

	b.pieces[id].pos = to
	b.handleMove(id, mv.Victim, mv.From)
	// TODO: promotions
	return mv, nil
}

// ValidMove runs every check Move does without mutating the board. The
// returned move reports the piece that would be captured, if any.
func (b *Board) ValidMove(id PieceID, to position.Pos) (*Move, error) {
	pc := b.Piece(id)
	fail := func(err error) (*Move, error) {
		return nil, &MoveError{Err: err, Piece: id, Side: pc.Side, Kind: pc.Kind, From: pc.Pos, To: to}
	}

	if !pc.IsActive() {
		return fail(ErrInactivePiece)
	}
	if !b.IsLegalPosition(to) {
		return fail(ErrOutOfBounds)
	}

	target := b.cells[to.X][to.Y]
	occupant := SideUnknown
	if target != NoPiece {
		occupant = b.pieces[target].side
	}
	if !pc.Kind.validPattern(pc.Side, pc.Pos, to, occupant) {
		return fail(ErrIllegalPattern)
	}
	if !pc.Kind.validPath(b, pc.Pos, to) {
		return fail(ErrBlockedPath)
	}

	mv := &Move{
		From:   pc.Pos,
		To:     to,
		Piece:  id,
		Kind:   pc.Kind,
		IsTurn: pc.Side,
		Victim: NoPiece,
	}
	if target == NoPiece {
		return mv, nil
	}
	if occupant == pc.Side {
		return fail(ErrFriendlyCapture)
	}
	mv.IsCapture, mv.Victim = true, target
	return mv, nil
}
