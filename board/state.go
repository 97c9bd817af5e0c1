package board

type State uint8

const (
	// StateDetached is when a piece has not been placed on the board.
	StateDetached State = iota

	// StatePlaced is when a piece is on the board and may move.
	StatePlaced

	// StateCaptured is when a piece has been taken. Captured pieces never return.
	StateCaptured
)

func (s State) IsActive() bool {
	return s == StatePlaced
}

func (s State) String() string {
	switch s {
	case StateDetached:
		return "StateDetached"
	case StatePlaced:
		return "StatePlaced"
	case StateCaptured:
		return "StateCaptured"
	default:
		return ""
	}
}
