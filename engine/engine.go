package engine

import (
	"teeko/experiments/metrics"
	"teeko/game"
)

type Engine interface {
	// Run plays a game till there's a winner or a max number of turns is reached
	Run() (winner game.Cell, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
