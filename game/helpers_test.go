package game

import "golang.org/x/exp/rand"

// randomBoard plays plies random legal moves from the empty board, Black
// first, stopping early if someone wins.
func randomBoard(rng *rand.Rand, plies int) Board {
	var b Board
	piece := Black
	for i := 0; i < plies && Winner(b) == Empty; i++ {
		moves := LegalMoves(b, piece)
		if len(moves) == 0 {
			break
		}
		b = b.Apply(moves[rng.Intn(len(moves))], piece)
		piece = piece.Other()
	}
	return b
}

func swapLabels(b Board) Board {
	for i := range b {
		for j := range b[i] {
			b[i][j] = b[i][j].Other()
		}
	}
	return b
}

func changedCells(a, b Board) int {
	n := 0
	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				n++
			}
		}
	}
	return n
}
