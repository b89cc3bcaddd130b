package game

// ActionType represents the kind of move a player can perform.
type ActionType int

const (
	DropAction     ActionType = iota // Place a new piece (drop phase)
	RelocateAction                   // Move a piece to an adjacent empty cell (move phase)
)

func (a ActionType) String() string {
	switch a {
	case DropAction:
		return "drop"
	case RelocateAction:
		return "relocate"
	default:
		return "unknown"
	}
}
