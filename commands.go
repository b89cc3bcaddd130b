package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"teeko/agent"
	"teeko/config"
	"teeko/engine"
	"teeko/experiments"
	"teeko/game"
	"teeko/player"
	"teeko/searcher"
)

var (
	boardFlag string
	pieceFlag string
	depthFlag int

	decideCmd = &cobra.Command{
		Use:   "decide",
		Short: "Print the agent's move for a board",
		Long: `Reads a board in compact notation (five rows of '.', 'b' or 'r' separated
by '/') and prints the move the agent would play, as a destination followed by
a source during the move phase.`,
		Example: `  teeko decide --board "b..../.r.../...../...../....." --piece b`,
		RunE:    runDecide,
	}

	selfPlayCmd = &cobra.Command{
		Use:   "selfplay",
		Short: "Play one game between the configured agent and an opponent",
		RunE:  runSelfPlay,
	}

	experimentCmd = &cobra.Command{
		Use:   "experiment",
		Short: "Run experiments and write CSV records",
	}
	depthExperimentCmd = &cobra.Command{
		Use:   "depth",
		Short: "Play agents of different search depths against each other",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := experiments.RunDepthExperiment(cfg)
			if err != nil {
				return err
			}
			fmt.Println(results.Dir)
			return nil
		},
	}
	pruningExperimentCmd = &cobra.Command{
		Use:   "pruning",
		Short: "Compare search work with and without alpha-beta pruning",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := experiments.RunPruningExperiment(cfg)
			if err != nil {
				return err
			}
			fmt.Println(results.Dir)
			return nil
		},
	}
)

func init() {
	decideCmd.Flags().StringVar(&boardFlag, "board", "", "board in compact notation")
	decideCmd.Flags().StringVar(&pieceFlag, "piece", "", "agent piece, b or r (overrides config)")
	decideCmd.Flags().IntVar(&depthFlag, "depth", 0, "search depth (overrides config)")
	_ = decideCmd.MarkFlagRequired("board")
}

func runDecide(cmd *cobra.Command, args []string) error {
	board, err := game.ParseBoard(boardFlag)
	if err != nil {
		return err
	}
	if pieceFlag != "" {
		cfg.Agent.Piece = pieceFlag
	}
	if depthFlag > 0 {
		cfg.Agent.Depth = depthFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	a := agent.NewMinimaxAgent(agentPiece(cfg.Agent, rng), agentOptions(cfg.Agent)...)
	decision := a.Decide(board)

	log.Info().Str("board", board.String()).Str("phase", board.Phase().String()).
		Float64("value", decision.Value).Bool("fallback", decision.Fallback).
		Msgf("player %s plays %s", a.Piece(), decision.Move)
	fmt.Println(formatPositions(decision.Move.Positions()))
	return nil
}

func runSelfPlay(cmd *cobra.Command, args []string) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	me := agentPiece(cfg.Agent, rng)

	agents := map[game.Cell]agent.Agent{
		me: agent.NewMinimaxAgent(me, agentOptions(cfg.Agent)...),
	}
	if cfg.Play.Opponent == "random" {
		agents[me.Other()] = player.NewRandomPlayer(me.Other(), rng.Uint64())
	} else {
		agents[me.Other()] = agent.NewMinimaxAgent(me.Other(), agentOptions(cfg.Agent)...)
	}

	e := engine.LocalEngine(agents[game.Black], agents[game.Red])
	e.MaxTurns = cfg.Play.MaxTurns
	winner, gameMetric, _ := e.Run()

	switch winner {
	case me:
		fmt.Printf("AI (%s) wins after %d moves\n", me, gameMetric.TotalMoves)
	case game.Empty:
		fmt.Printf("No winner after %d moves\n", gameMetric.TotalMoves)
	default:
		fmt.Printf("Opponent (%s) wins after %d moves\n", winner, gameMetric.TotalMoves)
	}
	fmt.Println(e.Board)
	return nil
}

func agentPiece(c config.AgentConfig, rng *rand.Rand) game.Cell {
	switch c.Piece {
	case "b":
		return game.Black
	case "r":
		return game.Red
	default:
		return agent.RandomPiece(rng)
	}
}

func agentOptions(c config.AgentConfig) []searcher.Option {
	return searcher.ConfigOptions(c.Depth, c.AlphaBeta, c.Evaluation)
}

// formatPositions prints positions as (row, col) pairs.
func formatPositions(positions []game.Position) string {
	s := "["
	for i, p := range positions {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("(%d, %d)", p.Row, p.Col)
	}
	return s + "]"
}
