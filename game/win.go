package game

import "teeko/meta"

// Outcome is a win result from the agent's point of view.
type Outcome int

const (
	OpponentWins Outcome = -1
	NoWinner     Outcome = 0
	AgentWins    Outcome = 1
)

func (o Outcome) String() string {
	switch o {
	case AgentWins:
		return "agent wins"
	case OpponentWins:
		return "opponent wins"
	default:
		return "no winner"
	}
}

// patterns holds every winning set of four cells: horizontal, vertical, both
// diagonals and 2x2 boxes, each at every valid offset.
var patterns = buildPatterns()

func buildPatterns() [][4]Position {
	var ps [][4]Position
	line := func(r, c, dr, dc int) [4]Position {
		var p [4]Position
		for k := range p {
			p[k] = Position{Row: r + k*dr, Col: c + k*dc}
		}
		return p
	}
	span := meta.SIZE - meta.PIECES + 1
	for r := 0; r < meta.SIZE; r++ {
		for c := 0; c < span; c++ {
			ps = append(ps, line(r, c, 0, 1))
		}
	}
	for c := 0; c < meta.SIZE; c++ {
		for r := 0; r < span; r++ {
			ps = append(ps, line(r, c, 1, 0))
		}
	}
	for r := 0; r < span; r++ {
		for c := 0; c < span; c++ {
			ps = append(ps, line(r, c, 1, 1))
		}
		for c := meta.PIECES - 1; c < meta.SIZE; c++ {
			ps = append(ps, line(r, c, 1, -1))
		}
	}
	for r := 0; r < meta.SIZE-1; r++ {
		for c := 0; c < meta.SIZE-1; c++ {
			ps = append(ps, [4]Position{{r, c}, {r, c + 1}, {r + 1, c}, {r + 1, c + 1}})
		}
	}
	return ps
}

// Winner returns the piece that completed a line or box of four, or Empty.
func Winner(b Board) Cell {
	for _, p := range patterns {
		first := b.At(p[0])
		if first == Empty {
			continue
		}
		if b.At(p[1]) == first && b.At(p[2]) == first && b.At(p[3]) == first {
			return first
		}
	}
	return Empty
}

// Value reports the win result relative to the agent.
func (p Perspective) Value(b Board) Outcome {
	switch Winner(b) {
	case p.Me:
		return AgentWins
	case p.Opp:
		return OpponentWins
	default:
		return NoWinner
	}
}
