package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"teeko/meta"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the top-level configuration loaded from a YAML file. Fields left
// out of the file keep their DefaultConfig values.
type Config struct {
	// Seed drives piece selection, random players and experiment positions.
	Seed uint64 `yaml:"seed"`

	Agent      AgentConfig      `yaml:"agent"`
	Play       PlayConfig       `yaml:"play"`
	Experiment ExperimentConfig `yaml:"experiment"`
	Log        LogConfig        `yaml:"log"`
}

type AgentConfig struct {
	// Piece is "b", "r" or "random".
	Piece     string `yaml:"piece"`
	Depth     int    `yaml:"depth"`
	AlphaBeta bool   `yaml:"alpha_beta"`
	// Evaluation is "heuristic" or "material".
	Evaluation string `yaml:"evaluation"`
}

type PlayConfig struct {
	MaxTurns int `yaml:"max_turns"`
	// Opponent is "minimax" or "random".
	Opponent string `yaml:"opponent"`
}

type ExperimentConfig struct {
	Name      string `yaml:"name"`
	Games     int    `yaml:"games"`
	Depths    []int  `yaml:"depths"`
	Positions int    `yaml:"positions"`
	OutputDir string `yaml:"output_dir"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// Format is "console", "json" or "auto" (console on a terminal).
	Format string `yaml:"format"`
}

func DefaultConfig() Config {
	return Config{
		Seed: 1,
		Agent: AgentConfig{
			Piece:      "random",
			Depth:      meta.MAX_DEPTH,
			AlphaBeta:  false,
			Evaluation: "heuristic",
		},
		Play: PlayConfig{
			MaxTurns: meta.MAX_TURNS,
			Opponent: "minimax",
		},
		Experiment: ExperimentConfig{
			Name:      "depth",
			Games:     10,
			Depths:    []int{1, 2, 3},
			Positions: 20,
			OutputDir: "experiments",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Agent.Piece {
	case "b", "r", "random":
	default:
		return fmt.Errorf("%w: agent.piece %q", ErrInvalidConfig, c.Agent.Piece)
	}
	if c.Agent.Depth < 1 {
		return fmt.Errorf("%w: agent.depth must be positive, got %d", ErrInvalidConfig, c.Agent.Depth)
	}
	switch c.Agent.Evaluation {
	case "heuristic", "material":
	default:
		return fmt.Errorf("%w: agent.evaluation %q", ErrInvalidConfig, c.Agent.Evaluation)
	}
	if c.Play.MaxTurns < 1 {
		return fmt.Errorf("%w: play.max_turns must be positive, got %d", ErrInvalidConfig, c.Play.MaxTurns)
	}
	switch c.Play.Opponent {
	case "minimax", "random":
	default:
		return fmt.Errorf("%w: play.opponent %q", ErrInvalidConfig, c.Play.Opponent)
	}
	if c.Experiment.Games < 1 {
		return fmt.Errorf("%w: experiment.games must be positive, got %d", ErrInvalidConfig, c.Experiment.Games)
	}
	if len(c.Experiment.Depths) == 0 {
		return fmt.Errorf("%w: experiment.depths is empty", ErrInvalidConfig)
	}
	for _, d := range c.Experiment.Depths {
		if d < 1 {
			return fmt.Errorf("%w: experiment depth %d", ErrInvalidConfig, d)
		}
	}
	switch c.Log.Format {
	case "console", "json", "auto":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}
