package game

import "teeko/meta"

// Perspective fixes which piece the agent plays. Search, evaluation and move
// translation are all computed relative to it.
type Perspective struct {
	Me  Cell
	Opp Cell
}

func NewPerspective(me Cell) Perspective {
	return Perspective{Me: me, Opp: me.Other()}
}

// Mover returns the side the search believes acts next: Me when the number of
// occupied cells is even, Opp when it is odd. It holds regardless of which
// side actually moves first in the outer game.
func (p Perspective) Mover(b Board) Cell {
	if b.Occupied()%2 == 0 {
		return p.Me
	}
	return p.Opp
}

// Successors returns every board reachable by one move of the side to act.
func (p Perspective) Successors(b Board) []Board {
	return Successors(b, p.Mover(b))
}

// Evaluates the board to a score between -1 and 1 indicating how favorable
// the position is to the agent (positive) or to its opponent (negative).
type Evaluate func(Perspective, Board) float64

// Phase is derived from the occupied cell count, never stored.
type Phase int

const (
	DropPhase Phase = iota
	MovePhase
)

func (p Phase) String() string {
	if p == DropPhase {
		return "drop"
	}
	return "move"
}

func PhaseOf(occupied int) Phase {
	if occupied < meta.MAX_PIECES {
		return DropPhase
	}
	return MovePhase
}
