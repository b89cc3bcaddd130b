package player

import (
	"golang.org/x/exp/rand"

	"teeko/agent"
	"teeko/experiments/metrics"
	"teeko/game"
)

// RandomPlayer plays a uniformly random legal move. It is the baseline
// opponent in experiments.
type RandomPlayer struct {
	piece game.Cell
	rng   *rand.Rand
}

// NewRandomPlayer creates a RandomPlayer seeded for reproducible games.
func NewRandomPlayer(piece game.Cell, seed uint64) *RandomPlayer {
	return &RandomPlayer{
		piece: piece,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (p *RandomPlayer) Piece() game.Cell {
	return p.piece
}

// FindMove picks among the legal moves of the player's own piece. A board
// with no legal move yields a fallback decision on the first empty cell.
func (p *RandomPlayer) FindMove(board game.Board) (agent.Decision, metrics.SearchMetric) {
	moves := game.LegalMoves(board, p.piece)
	if len(moves) == 0 {
		pos, _ := board.FirstEmpty()
		return agent.Decision{Move: game.Drop(pos), Fallback: true}, metrics.SearchMetric{}
	}

	// Placeholder search metric: one node, every move a leaf
	metric := metrics.SearchMetric{Nodes: 1, Leaves: len(moves)}
	return agent.Decision{Move: moves[p.rng.Intn(len(moves))]}, metric
}
