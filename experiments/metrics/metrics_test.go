package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting search events", func(t *testing.T) {
		c := NewCollector()
		c.Start("alphabeta", 3)
		for i := 0; i < 5; i++ {
			c.AddNode()
		}
		c.AddEvaluation()
		c.AddEvaluation()
		c.AddPrune()

		got := c.Complete()

		require.Equal(t, "alphabeta", got.Strategy)
		require.Equal(t, 3, got.Depth)
		require.Equal(t, 5, got.Nodes)
		require.Equal(t, 2, got.Evaluations)
		require.Equal(t, 1, got.Prunes)
		require.GreaterOrEqual(t, got.Duration, time.Duration(0))
	})

	t.Run("restarting resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start("minimax", 1)
		c.AddNode()
		c.AddPrune()
		c.Start("minimax", 2)

		got := c.Complete()

		require.Zero(t, got.Nodes)
		require.Zero(t, got.Prunes)
		require.Equal(t, 2, got.Depth)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start("minimax", 1)
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestSummarize(t *testing.T) {
	t.Run("ignoring moves without a search", func(t *testing.T) {
		got := Summarize([]MoveMetric{
			{Agent: 1},
			{Agent: 0, SearchMetric: SearchMetric{Nodes: 10, Prunes: 2, Duration: time.Second}},
		})

		require.Equal(t, 1, got.Moves)
		require.Equal(t, 10.0, got.MeanNodes)
		require.Zero(t, got.StdDevNodes)
		require.Equal(t, time.Second, got.MeanDuration)
		require.Equal(t, 2, got.TotalPrunes)
	})

	t.Run("averaging several searches", func(t *testing.T) {
		got := Summarize([]MoveMetric{
			{SearchMetric: SearchMetric{Nodes: 2, Duration: 2 * time.Millisecond}},
			{SearchMetric: SearchMetric{Nodes: 4, Duration: 4 * time.Millisecond}},
			{SearchMetric: SearchMetric{Nodes: 6, Duration: 6 * time.Millisecond}},
		})

		require.Equal(t, 3, got.Moves)
		require.InDelta(t, 4.0, got.MeanNodes, 1e-9)
		require.InDelta(t, 2.0, got.StdDevNodes, 1e-9, "Sample standard deviation")
		require.Equal(t, 4*time.Millisecond, got.MeanDuration)
	})

	t.Run("empty input", func(t *testing.T) {
		require.Equal(t, Summary{}, Summarize(nil))
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "compare")
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Strategy: "expectimax", Depth: 2, Evaluation: "better"}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{ID: 1, Agent: 1, GameMetric: GameMetric{Layout: "smallClassic", Outcome: "win", Score: 1234.5, TotalMoves: 80}}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{Game: 1, MoveMetric: MoveMetric{Step: 1, Agent: 0, Action: "West", SearchMetric: SearchMetric{Strategy: "expectimax", Depth: 2, Nodes: 30}}}}))

	read := func(name string) [][]string {
		f, err := os.Open(filepath.Join(w.Dir(), name))
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		return rows
	}

	configs := read("agent_configs.csv")
	require.Equal(t, []string{"id", "strategy", "depth", "evaluation"}, configs[0])
	require.Equal(t, []string{"1", "expectimax", "2", "better"}, configs[1])

	games := read("game_records.csv")
	require.Len(t, games, 2)
	require.Equal(t, "smallClassic", games[1][2])
	require.Equal(t, "1234.5", games[1][4])

	moves := read("move_records.csv")
	require.Len(t, moves, 2)
	require.Equal(t, []string{"1", "1", "0", "West", "expectimax", "2", "30", "0", "0", "0s"}, moves[1])
}
