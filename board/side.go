package board

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "white"
	case SideBlack:
		return "black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

func (s Side) IsValid() bool {
	return s == SideWhite || s == SideBlack
}

// forward is the rank delta of a single pawn advance.
func (s Side) forward() int {
	switch s {
	case SideWhite:
		return 1
	case SideBlack:
		return -1
	default:
		return 0
	}
}
