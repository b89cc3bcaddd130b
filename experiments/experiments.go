package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"teeko/agent"
	"teeko/config"
	"teeko/engine"
	"teeko/experiments/metrics"
	"teeko/game"
	"teeko/player"
	"teeko/searcher"
)

// Results holds everything an experiment recorded.
type Results struct {
	Dir      string
	Configs  []metrics.AgentConfig
	Games    []metrics.GameRecord
	Moves    []metrics.MoveRecord
	Searches []metrics.SearchRecord
}

// RunDepthExperiment plays each configured depth against the random baseline
// and against the next depth up. Colours alternate between games.
func RunDepthExperiment(cfg config.Config) (Results, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: "random"}
	configs := []metrics.AgentConfig{baseline}
	for i, depth := range cfg.Experiment.Depths {
		configs = append(configs, metrics.AgentConfig{
			ID:         i + 1,
			Kind:       "minimax",
			Depth:      depth,
			AlphaBeta:  cfg.Agent.AlphaBeta,
			Evaluation: cfg.Agent.Evaluation,
		})
	}

	matchUps := [][]metrics.AgentConfig{}
	for i, config := range configs[1:] {
		matchUps = append(matchUps, []metrics.AgentConfig{config, baseline})
		if i+2 < len(configs) {
			matchUps = append(matchUps, []metrics.AgentConfig{config, configs[i+2]})
		}
	}

	return runExperiment(cfg, configs, matchUps)
}

func runExperiment(cfg config.Config, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (Results, error) {
	name := cfg.Experiment.Name
	games := cfg.Experiment.Games
	results := Results{Configs: configs}
	rng := rand.New(rand.NewSource(cfg.Seed))

	log.Info().Msgf("starting %s experiment...", name)

	count := 0
	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		for i := 0; i < games; i++ {
			// Alternate who plays Black, and therefore who moves first
			black, red := matchUp[0], matchUp[1]
			if i%2 == 1 {
				black, red = red, black
			}

			winner, gameMetric, moveMetrics := runGame(black, red, cfg.Play.MaxTurns, rng.Uint64())
			count++
			results.Games = append(results.Games, metrics.GameRecord{
				ID:         count,
				Black:      black.ID,
				Red:        red.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				results.Moves = append(results.Moves, metrics.MoveRecord{Game: count, MoveMetric: mm})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(cfg.Experiment.OutputDir, name)
	if err != nil {
		return results, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	results.Dir = writer.Dir()

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return results, fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(results.Games); err != nil {
		return results, fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(results.Moves); err != nil {
		return results, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", results.Dir)

	return results, nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(black, red metrics.AgentConfig, maxTurns int, seed uint64) (game.Cell, metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.LocalEngine(createAgent(black, game.Black, seed), createAgent(red, game.Red, seed+1))
	e.MaxTurns = maxTurns
	return e.Run()
}

func createAgent(config metrics.AgentConfig, piece game.Cell, seed uint64) agent.Agent {
	if config.Kind == "random" {
		return player.NewRandomPlayer(piece, seed)
	}
	return agent.NewMinimaxAgent(piece, searcher.ConfigOptions(config.Depth, config.AlphaBeta, config.Evaluation)...)
}
