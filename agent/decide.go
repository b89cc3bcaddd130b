package agent

import (
	"errors"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"teeko/experiments/metrics"
	"teeko/game"
	"teeko/searcher"
)

var ErrNoEmptyCell = errors.New("no empty cell for a fallback move")

// Decision is the outcome of one call to Decide. When Fallback is set, Move
// is the first empty cell and Reason says why the search result was unusable.
type Decision struct {
	Move     game.Move
	Value    float64
	Fallback bool
	Reason   error
}

// MinimaxAgent plays one fixed piece using a depth-limited minimax search.
type MinimaxAgent struct {
	search *searcher.Minimax
}

func NewMinimaxAgent(piece game.Cell, options ...searcher.Option) *MinimaxAgent {
	return &MinimaxAgent{search: searcher.NewMinimax(piece, options...)}
}

func (a *MinimaxAgent) Piece() game.Cell {
	return a.search.Perspective().Me
}

func (a *MinimaxAgent) FindMove(board game.Board) (Decision, metrics.SearchMetric) {
	decision := a.Decide(board)
	return decision, a.search.LastMetric()
}

// Decide searches board and translates the chosen successor into a move. Any
// failure degrades to the first empty cell so a move is always returned.
func (a *MinimaxAgent) Decide(board game.Board) Decision {
	drop := board.Phase() == game.DropPhase

	value, best, err := a.search.Search(board)
	if err != nil {
		return fallback(board, err)
	}
	move, err := a.search.Perspective().Diff(board, best)
	if err != nil {
		return fallback(board, err)
	}

	if drop {
		move = move.AsDrop()
	}
	return Decision{Move: move, Value: value}
}

func fallback(board game.Board, reason error) Decision {
	pos, ok := board.FirstEmpty()
	if !ok {
		reason = errors.Join(reason, ErrNoEmptyCell)
	}
	log.Warn().Err(reason).Str("board", board.String()).Msgf("falling back to first empty cell %s", pos)
	return Decision{Move: game.Drop(pos), Fallback: true, Reason: reason}
}

// RandomPiece picks the agent's colour the way a new player does at the start of a game.
func RandomPiece(rng *rand.Rand) game.Cell {
	if rng.Intn(2) == 0 {
		return game.Black
	}
	return game.Red
}
