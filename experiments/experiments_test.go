package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"multiagent/experiments/metrics"
	"multiagent/maze"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	configs := []metrics.AgentConfig{
		{ID: 1, Strategy: "minimax", Depth: 1, Evaluation: "better"},
		{ID: 2, Strategy: "alphabeta", Depth: 2, Evaluation: "better"},
	}

	t.Run("playing every game of every config", func(t *testing.T) {
		report, err := Run(Experiment{
			Name:      "comparison",
			Layout:    "testClassic",
			Games:     2,
			MaxRounds: 60,
			Seed:      11,
			Configs:   configs,
		})

		require.NoError(t, err)
		require.Len(t, report.Games, 4)
		require.Empty(t, report.Dir)
		for i, record := range report.Games {
			require.Equal(t, i+1, record.ID)
			require.Equal(t, configs[i/2].ID, record.Agent)
			require.Equal(t, "testClassic", record.Layout)
		}
		for _, config := range configs {
			require.Contains(t, report.Summaries, config.ID)
			require.Positive(t, report.Summaries[config.ID].Moves)
			require.LessOrEqual(t, report.Wins[config.ID], 2)
		}
		require.Zero(t, report.Summaries[1].TotalPrunes, "Minimax never prunes")
	})

	t.Run("writing the records when asked to", func(t *testing.T) {
		dir := t.TempDir()

		report, err := Run(Experiment{
			Name:      "stored",
			Layout:    "testClassic",
			Games:     1,
			MaxRounds: 20,
			Seed:      3,
			Configs:   configs[:1],
			OutputDir: dir,
		})

		require.NoError(t, err)
		require.DirExists(t, report.Dir)
		require.Equal(t, filepath.Join(dir, "stored"), filepath.Dir(report.Dir))
		for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			info, err := os.Stat(filepath.Join(report.Dir, name))
			require.NoError(t, err)
			require.Positive(t, info.Size())
		}
	})

	t.Run("rejecting an experiment without configs", func(t *testing.T) {
		_, err := Run(Experiment{Name: "empty", Layout: "testClassic", Games: 1})
		require.ErrorIs(t, err, ErrNoConfigs)
	})

	t.Run("rejecting an unknown layout", func(t *testing.T) {
		_, err := Run(Experiment{Name: "nowhere", Layout: "atlantis", Games: 1, Configs: configs})
		require.ErrorIs(t, err, maze.ErrBadLayout)
	})

	t.Run("reporting a broken config", func(t *testing.T) {
		_, err := Run(Experiment{
			Name:    "broken",
			Layout:  "testClassic",
			Games:   1,
			Configs: []metrics.AgentConfig{{ID: 9, Strategy: "greedy", Depth: 1}},
		})
		require.ErrorContains(t, err, "config 9 game 1")
	})
}
