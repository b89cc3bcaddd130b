package player

import (
	"testing"

	"github.com/stretchr/testify/require"

	"teeko/game"
)

func TestRandomPlayerFindMove(t *testing.T) {
	t.Run("choosing a legal drop", func(t *testing.T) {
		board := game.MustParseBoard("b..../.r.../...../...../.....")
		p := NewRandomPlayer(game.Black, 1)

		for i := 0; i < 20; i++ {
			decision, _ := p.FindMove(board)
			require.False(t, decision.Fallback)
			require.Contains(t, game.LegalMoves(board, game.Black), decision.Move)
		}
	})

	t.Run("choosing a legal relocation of its own piece", func(t *testing.T) {
		board := game.MustParseBoard("b...r/.r.b./..b../.r.r./b....")
		p := NewRandomPlayer(game.Red, 2)

		decision, metric := p.FindMove(board)

		require.Equal(t, game.RelocateAction, decision.Move.Action)
		require.Equal(t, game.Red, board.At(decision.Move.From))
		require.Equal(t, len(game.LegalMoves(board, game.Red)), metric.Leaves)
	})

	t.Run("repeating choices for the same seed", func(t *testing.T) {
		first := NewRandomPlayer(game.Black, 42)
		second := NewRandomPlayer(game.Black, 42)

		for i := 0; i < 10; i++ {
			a, _ := first.FindMove(game.Board{})
			b, _ := second.FindMove(game.Board{})
			require.Equal(t, a.Move, b.Move)
		}
	})
}
