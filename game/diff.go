package game

import "fmt"

// MoveTranslationError reports that no destination for piece could be found
// between two boards.
type MoveTranslationError struct {
	Before Board
	After  Board
	Piece  Cell
}

func (e *MoveTranslationError) Error() string {
	return fmt.Sprintf("cannot determine destination of %s between %s and %s", e.Piece, e.Before, e.After)
}

// Diff recovers the move piece made to turn before into after. A cell that
// went from empty to piece is the destination, one that went from piece to
// empty is the source.
func Diff(before, after Board, piece Cell) (Move, error) {
	var to, from Position
	foundTo, foundFrom := false, false

	for i := range before {
		for j := range before[i] {
			old, cur := before[i][j], after[i][j]
			switch {
			case old == Empty && cur == piece:
				to, foundTo = Position{Row: i, Col: j}, true
			case old == piece && cur == Empty:
				from, foundFrom = Position{Row: i, Col: j}, true
			}
		}
	}

	if !foundTo {
		return Move{}, &MoveTranslationError{Before: before, After: after, Piece: piece}
	}
	if foundFrom {
		return Relocate(to, from), nil
	}
	return Drop(to), nil
}

// Diff translates a board the agent moved into back into the agent's move.
func (p Perspective) Diff(before, after Board) (Move, error) {
	return Diff(before, after, p.Me)
}
