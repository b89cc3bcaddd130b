package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"teeko/game"
)

/*
- cutoff:
	- happy path: depth limit reached -> heuristic value of the board
	- edge case: board already decided at the root -> same board, exact win value
- choice:
	- happy path: one ply from a win -> winning successor with value 1
	- happy path: opponent one ply from a win -> blocking successor
	- tie-break: equal values -> first successor in enumeration order
- alpha-beta: same value and successor as plain minimax on random boards, fewer nodes
*/

func TestMinimaxSearch(t *testing.T) {
	t.Run("selecting the winning successor one ply from a win", func(t *testing.T) {
		board := game.MustParseBoard("..bbb/rr.../...../r..../.....")
		m := NewMinimax(game.Black)

		value, best, err := m.Search(board)

		require.NoError(t, err)
		require.Equal(t, WIN, value, "Winning successor should carry the exact win value")
		require.Equal(t, game.Black, best[0][1], "Agent should complete the row")
		require.Equal(t, game.Black, game.Winner(best))
	})

	t.Run("blocking the opponent's immediate win", func(t *testing.T) {
		board := game.MustParseBoard("rrr../bb.../...../b..../.....")
		m := NewMinimax(game.Black)

		value, best, err := m.Search(board)

		require.NoError(t, err)
		require.Equal(t, game.Black, best[0][3], "Agent should block the open end of the row")
		require.Greater(t, value, LOSS, "Blocking should avoid a forced loss")
	})

	t.Run("breaking ties by enumeration order", func(t *testing.T) {
		m := NewMinimax(game.Black, WithDepth(1))

		value, best, err := m.Search(game.Board{})

		require.NoError(t, err)
		require.InDelta(t, 0.1, value, 1e-9)
		require.Equal(t, game.Black, best[0][0], "First of the equally valued drops should win")
	})

	t.Run("returning a decided root unchanged", func(t *testing.T) {
		board := game.MustParseBoard("rrrr./bbb../...../...../.....")
		m := NewMinimax(game.Black)

		value, best, err := m.Search(board)

		require.NoError(t, err)
		require.Equal(t, LOSS, value)
		require.Equal(t, board, best)
	})

	t.Run("rejecting an invalid board", func(t *testing.T) {
		var board game.Board
		for j := 0; j < 5; j++ {
			board[0][j] = game.Red
		}
		m := NewMinimax(game.Black)

		_, _, err := m.Search(board)
		require.ErrorIs(t, err, game.ErrInvalidBoard)
	})

	t.Run("using a custom evaluation function at the leaves", func(t *testing.T) {
		calls := 0
		evaluate := func(p game.Perspective, b game.Board) float64 {
			calls++
			return 0
		}
		m := NewMinimax(game.Red, WithDepth(1), WithEvaluationFn(evaluate))

		_, _, err := m.Search(game.Board{})

		require.NoError(t, err)
		require.Equal(t, 25, calls, "Every drop should be scored once at depth 1")
	})
}

func TestMinimaxMetrics(t *testing.T) {
	t.Run("counting nodes and leaves", func(t *testing.T) {
		m := NewMinimax(game.Black, WithDepth(1), WithMetrics())

		_, _, err := m.Search(game.Board{})
		require.NoError(t, err)

		metric := m.LastMetric()
		require.Equal(t, 1, metric.Depth)
		require.Equal(t, 1, metric.Nodes, "Only the root should be expanded")
		require.Equal(t, 25, metric.Leaves)
		require.Zero(t, metric.Terminals)
		require.Zero(t, metric.Pruned)
	})

	t.Run("leaving metrics empty by default", func(t *testing.T) {
		m := NewMinimax(game.Black, WithDepth(1))

		_, _, err := m.Search(game.Board{})
		require.NoError(t, err)

		require.Zero(t, m.LastMetric().Nodes)
	})
}

func TestMinimaxAlphaBeta(t *testing.T) {
	rng := rand.New(rand.NewSource(17))

	for i := 0; i < 20; i++ {
		board := randomBoard(rng, 4+rng.Intn(16))
		for _, piece := range []game.Cell{game.Black, game.Red} {
			plain := NewMinimax(piece, WithMetrics())
			pruned := NewMinimax(piece, WithAlphaBeta(true), WithMetrics())

			plainValue, plainBest, err := plain.Search(board)
			require.NoError(t, err)
			prunedValue, prunedBest, err := pruned.Search(board)
			require.NoError(t, err)

			require.Equal(t, plainValue, prunedValue, "Pruning should not change the value of %s", board)
			require.Equal(t, plainBest, prunedBest, "Pruning should not change the choice for %s", board)
			require.LessOrEqual(t, pruned.LastMetric().Leaves, plain.LastMetric().Leaves)
		}
	}
}

func randomBoard(rng *rand.Rand, plies int) game.Board {
	var b game.Board
	piece := game.Black
	for i := 0; i < plies && game.Winner(b) == game.Empty; i++ {
		moves := game.LegalMoves(b, piece)
		if len(moves) == 0 {
			break
		}
		b = b.Apply(moves[rng.Intn(len(moves))], piece)
		piece = piece.Other()
	}
	return b
}
