package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("overriding defaults from yaml", func(t *testing.T) {
		cfg, err := Parse([]byte(`
seed: 9
agent:
  piece: r
  depth: 2
  alpha_beta: true
experiment:
  depths: [1, 2]
`))

		require.NoError(t, err)
		require.Equal(t, uint64(9), cfg.Seed)
		require.Equal(t, "r", cfg.Agent.Piece)
		require.Equal(t, 2, cfg.Agent.Depth)
		require.True(t, cfg.Agent.AlphaBeta)
		require.Equal(t, "heuristic", cfg.Agent.Evaluation, "Unset fields should keep their defaults")
		require.Equal(t, []int{1, 2}, cfg.Experiment.Depths)
		require.Equal(t, DefaultConfig().Play, cfg.Play)
	})

	t.Run("rejecting invalid values", func(t *testing.T) {
		for _, doc := range []string{
			"agent: {piece: x}",
			"agent: {depth: 0}",
			"agent: {evaluation: random}",
			"play: {opponent: human}",
			"play: {max_turns: 0}",
			"experiment: {depths: [0]}",
			"log: {format: xml}",
		} {
			_, err := Parse([]byte(doc))
			require.ErrorIs(t, err, ErrInvalidConfig, doc)
		}
	})

	t.Run("rejecting malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("agent: ["))
		require.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("reading a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "teeko.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log: {level: debug}\n"), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	require.NoError(t, DefaultConfig().Validate())
}
