package agent

import (
	"teeko/experiments/metrics"
	"teeko/game"
)

type Agent interface {
	// Piece returns the piece this agent plays
	Piece() game.Cell
	// FindMove returns the decision for board and search metrics (if collected)
	FindMove(board game.Board) (Decision, metrics.SearchMetric)
}
