package engine

import (
	"slices"
	"time"

	"github.com/rs/zerolog/log"

	"teeko/agent"
	"teeko/experiments/metrics"
	"teeko/game"
	"teeko/meta"
)

// Local holds the authoritative board. Agents only ever see copies of it.
type Local struct {
	Board    game.Board
	Agents   map[game.Cell]agent.Agent
	MaxTurns int
}

// LocalEngine sets up a game on an empty board. Black moves first.
func LocalEngine(black, red agent.Agent) *Local {
	if black.Piece() != game.Black || red.Piece() != game.Red {
		panic("agents do not match their pieces")
	}

	return &Local{
		Agents:   map[game.Cell]agent.Agent{game.Black: black, game.Red: red},
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run executes the game loop until a winner is found, the turn cap is hit,
// or the side to move has no legal move.
func (e *Local) Run() (game.Cell, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: game.Black,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %s is starting", game.Black)

	mover := game.Black
	for turn := 1; game.Winner(e.Board) == game.Empty && turn <= e.MaxTurns; turn++ {
		decision, searchMetric := e.Agents[mover].FindMove(e.Board)
		move := decision.Move

		legal := game.LegalMoves(e.Board, mover)
		if !slices.Contains(legal, move) {
			if len(legal) == 0 {
				log.Warn().Msgf("player %s has no legal move on %s", mover, e.Board)
				break
			}
			log.Warn().Msgf("player %s returned illegal move %s for the %s phase, forcing %s", mover, move, e.Board.Phase(), legal[0])
			move = legal[0]
			decision.Fallback = true
		}

		e.Board = e.Board.Apply(move, mover)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       mover,
			Move:         move,
			Fallback:     decision.Fallback,
			SearchMetric: searchMetric,
		})
		log.Debug().Int("turn", turn).Str("board", e.Board.String()).Msgf("player %s played %s", mover, move)

		mover = mover.Other()
	}

	winner := game.Winner(e.Board)
	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if winner != game.Empty {
		log.Info().Msgf("game ended after %d moves with winner %s", len(moveMetrics), winner)
	} else {
		log.Info().Msgf("game stopped after %d moves without a winner", len(moveMetrics))
	}

	return winner, gameMetric, moveMetrics
}
