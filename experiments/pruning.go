package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"teeko/config"
	"teeko/experiments/metrics"
	"teeko/game"
	"teeko/searcher"
)

// RunPruningExperiment searches the same random positions with and without
// alpha-beta at every configured depth and records how much work pruning
// saves. Every pruned search must agree with the plain one.
func RunPruningExperiment(cfg config.Config) (Results, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	results := Results{}
	disagreements := 0

	log.Info().Msg("starting pruning experiment...")

	for i := 0; i < cfg.Experiment.Positions; i++ {
		board := randomPosition(rng, rng.Intn(24))
		me := game.Black
		if rng.Intn(2) == 1 {
			me = game.Red
		}

		for _, depth := range cfg.Experiment.Depths {
			plain := searcher.NewMinimax(me, searcher.WithDepth(depth), searcher.WithMetrics())
			pruned := searcher.NewMinimax(me, searcher.WithDepth(depth), searcher.WithAlphaBeta(true), searcher.WithMetrics())

			plainValue, plainBest, err := plain.Search(board)
			if err != nil {
				return results, fmt.Errorf("position %d: %w", i, err)
			}
			prunedValue, prunedBest, err := pruned.Search(board)
			if err != nil {
				return results, fmt.Errorf("position %d: %w", i, err)
			}

			agrees := plainValue == prunedValue && plainBest == prunedBest
			if !agrees {
				disagreements++
				log.Error().Str("board", board.String()).Int("depth", depth).Msg("pruned search disagrees with plain search")
			}
			results.Searches = append(results.Searches,
				metrics.SearchRecord{Position: i, Board: board.String(), Agrees: true, SearchMetric: plain.LastMetric()},
				metrics.SearchRecord{Position: i, Board: board.String(), Agrees: agrees, SearchMetric: pruned.LastMetric()},
			)
		}
	}

	writer, err := metrics.NewWriter(cfg.Experiment.OutputDir, "pruning")
	if err != nil {
		return results, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	results.Dir = writer.Dir()
	if err := writer.WriteSearchRecords(results.Searches); err != nil {
		return results, fmt.Errorf("failed to write search records: %w", err)
	}

	log.Info().Msgf("completed pruning experiment with %d disagreements", disagreements)
	if disagreements > 0 {
		return results, fmt.Errorf("pruned search disagreed on %d searches", disagreements)
	}
	return results, nil
}

// randomPosition plays random legal moves from the empty board, stopping
// before a move that would decide the game.
func randomPosition(rng *rand.Rand, plies int) game.Board {
	var b game.Board
	piece := game.Black
	for i := 0; i < plies; i++ {
		moves := game.LegalMoves(b, piece)
		if len(moves) == 0 {
			break
		}
		next := b.Apply(moves[rng.Intn(len(moves))], piece)
		if game.Winner(next) != game.Empty {
			break
		}
		b = next
		piece = piece.Other()
	}
	return b
}
