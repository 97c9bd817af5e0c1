package board

import (
	"github.com/daystram/chesscore/position"
)

const (
	Width  = position.MaxComponentScalar
	Height = position.MaxComponentScalar
)

// Board holds the cell grid and every piece ever placed on it. Cells are
// stored column-major, cells[x][y]. The grid is the authority on which piece
// stands where; a piece's recorded position is only written together with
// the cell that references it.
type Board struct {
	cells  [][]PieceID
	pieces []piece
}

type boardConfig struct {
	columns   []int
	placement string
}

type BoardOption func(*boardConfig)

// WithSize builds a rectangular board of w columns and h rows.
func WithSize(w, h int) BoardOption {
	return func(cfg *boardConfig) {
		if w < 0 {
			w = 0
		}
		cfg.columns = make([]int, w)
		for x := range cfg.columns {
			cfg.columns[x] = h
		}
	}
}

// WithColumns builds a board whose column x has heights[x] cells.
func WithColumns(heights ...int) BoardOption {
	return func(cfg *boardConfig) {
		cfg.columns = append([]int(nil), heights...)
	}
}

// WithPlacement populates the board from the piece placement field of a FEN
// record.
func WithPlacement(placement string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.placement = placement
	}
}

func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{}
	WithSize(Width, Height)(cfg)
	for _, f := range opts {
		f(cfg)
	}
	if len(cfg.columns) == 0 || cfg.columns[0] <= 0 {
		return nil, &MoveError{Err: ErrInvalidConstruction, Piece: NoPiece, From: position.Unset, To: position.New(len(cfg.columns), 0)}
	}

	b := &Board{
		cells: make([][]PieceID, len(cfg.columns)),
	}
	for x, h := range cfg.columns {
		if h < 0 {
			return nil, &MoveError{Err: ErrInvalidConstruction, Piece: NoPiece, From: position.Unset, To: position.New(x, h)}
		}
		b.cells[x] = make([]PieceID, h)
		for y := range b.cells[x] {
			b.cells[x][y] = NoPiece
		}
	}

	if cfg.placement != "" {
		if err := UnmarshalPlacement(cfg.placement, b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// IsLegalPosition reports whether pos addresses a cell that exists in the
// grid. Columns may differ in height.
func (b *Board) IsLegalPosition(pos position.Pos) bool {
	if pos.X < 0 || pos.X >= len(b.cells) {
		return false
	}
	return pos.Y >= 0 && pos.Y < len(b.cells[pos.X])
}

func (b *Board) IsEmpty(pos position.Pos) (bool, error) {
	id, err := b.Cell(pos)
	if err != nil {
		return false, err
	}
	return id == NoPiece, nil
}

// Cell returns the piece standing on pos, or NoPiece.
func (b *Board) Cell(pos position.Pos) (PieceID, error) {
	if !b.IsLegalPosition(pos) {
		return NoPiece, &MoveError{Err: ErrOutOfBounds, Piece: NoPiece, From: position.Unset, To: pos}
	}
	return b.cells[pos.X][pos.Y], nil
}

// Cells returns a copy of the grid, indexed [x][y].
func (b *Board) Cells() [][]PieceID {
	cells := make([][]PieceID, len(b.cells))
	for x := range b.cells {
		cells[x] = append([]PieceID(nil), b.cells[x]...)
	}
	return cells
}

// SquareDimensions returns the board size assuming it is rectangular.
func (b *Board) SquareDimensions() (int, int) {
	return len(b.cells), len(b.cells[0])
}

// Add places a new piece of the given side and kind on pos. It is used to
// set up a position; in-play movement goes through Move.
func (b *Board) Add(s Side, k Kind, pos position.Pos) (PieceID, error) {
	if !s.IsValid() || !k.IsValid() || pos.IsUnset() {
		return NoPiece, &MoveError{Err: ErrInvalidConstruction, Piece: NoPiece, Side: s, Kind: k, From: position.Unset, To: pos}
	}
	empty, err := b.IsEmpty(pos)
	if err != nil {
		return NoPiece, &MoveError{Err: ErrOutOfBounds, Piece: NoPiece, Side: s, Kind: k, From: position.Unset, To: pos}
	}
	if !empty {
		return NoPiece, &MoveError{Err: ErrCellOccupied, Piece: NoPiece, Side: s, Kind: k, From: position.Unset, To: pos}
	}

	id := PieceID(len(b.pieces))
	b.pieces = append(b.pieces, piece{side: s, kind: k, pos: pos, state: StatePlaced})
	b.cells[pos.X][pos.Y] = id
	return id, nil
}

// Piece returns a view of id. Ids the board never handed out report
// StateDetached.
func (b *Board) Piece(id PieceID) Info {
	if id < 0 || int(id) >= len(b.pieces) {
		return Info{ID: id, Pos: position.Unset, State: StateDetached}
	}
	pc := b.pieces[id]
	return Info{ID: id, Side: pc.side, Kind: pc.kind, Pos: pc.pos, State: pc.state}
}

// Pieces returns every piece in placement order, captured ones included.
func (b *Board) Pieces() []Info {
	infos := make([]Info, 0, len(b.pieces))
	for id := range b.pieces {
		infos = append(infos, b.Piece(PieceID(id)))
	}
	return infos
}

func (b *Board) Clone() *Board {
	return &Board{
		cells:  b.Cells(),
		pieces: append([]piece(nil), b.pieces...),
	}
}

// handleMove applies an already validated move. The mover's position must
// already hold its destination.
func (b *Board) handleMove(id, victim PieceID, from position.Pos) {
	b.cells[from.X][from.Y] = NoPiece
	if victim != NoPiece {
		b.pieces[victim].state = StateCaptured
		b.pieces[victim].pos = position.Unset
	}
	to := b.pieces[id].pos
	b.cells[to.X][to.Y] = id
}
