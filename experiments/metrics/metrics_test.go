package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"teeko/game"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(3, true)
	c.AddNode()
	c.AddLeaf(false)
	c.AddLeaf(true)
	c.AddPruned(4)

	metric := c.Complete()
	require.Equal(t, 3, metric.Depth)
	require.True(t, metric.AlphaBeta)
	require.Equal(t, 1, metric.Nodes)
	require.Equal(t, 2, metric.Leaves)
	require.Equal(t, 1, metric.Terminals)
	require.Equal(t, 4, metric.Pruned)

	c.Start(1, false)
	require.Zero(t, c.Complete().Nodes, "Start should reset the counters")

	require.Equal(t, SearchMetric{}, NewDummyCollector().Complete())
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "depth")
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Kind: "minimax", Depth: 3, Evaluation: "heuristic"}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{ID: 1, Black: 1, Red: 0, GameMetric: GameMetric{Winner: game.Black, TotalMoves: 9}}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: game.Black, Move: game.Drop(game.Position{Row: 2, Col: 2})}}}))
	require.NoError(t, w.WriteSearchRecords(nil))

	rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, "b", rows[1][4], "Winner should be written with its symbol")

	rows = readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Equal(t, "C2", rows[1][3])

	rows = readCSV(t, filepath.Join(w.Dir(), "search_records.csv"))
	require.Len(t, rows, 1, "Empty records should still get a header")
}

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
