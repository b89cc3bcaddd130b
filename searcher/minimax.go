package searcher

import (
	"fmt"

	"teeko/experiments/metrics"
	"teeko/game"
	"teeko/meta"
)

type Option func(m *Minimax)

// Minimax is a depth-limited minimax search for one fixed agent piece. Every
// node works on its own copy of the board.
type Minimax struct {
	perspective game.Perspective
	depth       int
	alphaBeta   bool
	evaluate    game.Evaluate
	metrics     metrics.Collector
	last        metrics.SearchMetric
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithAlphaBeta enables pruning. The chosen board and its value are the same
// as without pruning; only fewer nodes are visited.
func WithAlphaBeta(enabled bool) Option {
	return func(m *Minimax) {
		m.alphaBeta = enabled
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

// ConfigOptions translates configuration values into options. Metrics are
// always collected.
func ConfigOptions(depth int, alphaBeta bool, evaluation string) []Option {
	options := []Option{WithDepth(depth), WithAlphaBeta(alphaBeta), WithMetrics()}
	if evaluation == "material" {
		options = append(options, WithEvaluationFn(game.EvaluateMaterial))
	}
	return options
}

func NewMinimax(me game.Cell, options ...Option) *Minimax {
	m := &Minimax{ // Default values
		perspective: game.NewPerspective(me),
		depth:       meta.MAX_DEPTH,
		evaluate:    game.EvaluateHeuristic,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Perspective() game.Perspective {
	return m.perspective
}

func (m *Minimax) Depth() int {
	return m.depth
}

// LastMetric returns the statistics of the most recent search. It is empty
// unless the searcher was built WithMetrics.
func (m *Minimax) LastMetric() metrics.SearchMetric {
	return m.last
}

// Search returns the value of board for the agent and the successor the agent
// should move into. When the board is already decided, or nobody can move,
// the board itself is returned. Among equally valued successors the first in
// enumeration order wins.
func (m *Minimax) Search(board game.Board) (float64, game.Board, error) {
	m.last = metrics.SearchMetric{}
	if err := board.Validate(); err != nil {
		return 0, board, fmt.Errorf("search: %w", err)
	}

	m.metrics.Start(m.depth, m.alphaBeta)
	value, best := m.maxValue(board, 0, negInf, posInf)
	m.last = m.metrics.Complete()

	return value, best, nil
}

func (m *Minimax) maxValue(board game.Board, depth int, alpha, beta float64) (float64, game.Board) {
	if m.isLeaf(board, depth) {
		return m.evaluateLeaf(board), board
	}
	successors := m.perspective.Successors(board)
	if len(successors) == 0 {
		return m.evaluateLeaf(board), board
	}
	m.metrics.AddNode()

	value, best := negInf, board
	for i, successor := range successors {
		v, _ := m.minValue(successor, depth+1, alpha, beta)
		if v > value {
			value, best = v, successor
		}
		if m.alphaBeta {
			if value >= beta {
				m.metrics.AddPruned(len(successors) - i - 1)
				break
			}
			alpha = max(alpha, value)
		}
	}
	return value, best
}

func (m *Minimax) minValue(board game.Board, depth int, alpha, beta float64) (float64, game.Board) {
	if m.isLeaf(board, depth) {
		return m.evaluateLeaf(board), board
	}
	successors := m.perspective.Successors(board)
	if len(successors) == 0 {
		return m.evaluateLeaf(board), board
	}
	m.metrics.AddNode()

	value, best := posInf, board
	for i, successor := range successors {
		v, _ := m.maxValue(successor, depth+1, alpha, beta)
		if v < value {
			value, best = v, successor
		}
		if m.alphaBeta {
			if value <= alpha {
				m.metrics.AddPruned(len(successors) - i - 1)
				break
			}
			beta = min(beta, value)
		}
	}
	return value, best
}

// isLeaf cuts a branch at the depth limit or once someone has won.
func (m *Minimax) isLeaf(board game.Board, depth int) bool {
	return depth == m.depth || m.perspective.Value(board) != game.NoWinner
}

func (m *Minimax) evaluateLeaf(board game.Board) float64 {
	m.metrics.AddLeaf(m.perspective.Value(board) != game.NoWinner)
	return m.evaluate(m.perspective, board)
}
