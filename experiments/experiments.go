package experiments

import (
	"errors"
	"fmt"

	"multiagent/engine"
	"multiagent/experiments/metrics"
	"multiagent/game"
	"multiagent/maze"
	"multiagent/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var ErrNoConfigs = errors.New("experiment has no agent configs")

// Experiment plays Games games on a layout for every config, the controlled
// agent searching with that config against random adversaries.
type Experiment struct {
	Name      string
	Layout    string
	Games     int
	MaxRounds int
	Seed      uint64
	Configs   []metrics.AgentConfig
	OutputDir string // Empty skips writing CSV files
}

type Report struct {
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
	Wins      map[int]int // By AgentConfig.ID
	Summaries map[int]metrics.Summary
	Dir       string // Where the CSV files went, if anywhere
}

func Run(exp Experiment) (Report, error) {
	if len(exp.Configs) == 0 {
		return Report{}, ErrNoConfigs
	}
	if exp.Games < 1 {
		return Report{}, fmt.Errorf("experiment %s: games must be positive, got %d", exp.Name, exp.Games)
	}
	layout, err := maze.LoadLayout(exp.Layout)
	if err != nil {
		return Report{}, fmt.Errorf("experiment %s: %w", exp.Name, err)
	}

	report := Report{
		Wins:      map[int]int{},
		Summaries: map[int]metrics.Summary{},
	}
	count := 0

	log.Info().Msgf("starting %s experiment on %s...", exp.Name, exp.Layout)

	for ci, config := range exp.Configs {
		log.Info().Msgf("starting config %d of %d: %+v", ci+1, len(exp.Configs), config)

		var configMoves []metrics.MoveMetric
		for i := 0; i < exp.Games; i++ {
			// Game i sees the same adversary seed under every config
			rng := rand.New(rand.NewSource(exp.Seed + uint64(i)))

			gameMetric, moveMetrics, err := runGame(maze.NewState(layout), config, rng, exp.MaxRounds, exp.Layout)
			if err != nil {
				return report, fmt.Errorf("config %d game %d: %w", config.ID, i+1, err)
			}

			count++
			report.Games = append(report.Games, metrics.GameRecord{
				ID:         count,
				Agent:      config.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				report.Moves = append(report.Moves, metrics.MoveRecord{Game: count, MoveMetric: mm})
				if mm.Agent == game.Controlled {
					configMoves = append(configMoves, mm)
				}
			}
			if gameMetric.Outcome == engine.Win {
				report.Wins[config.ID]++
			}

			log.Info().Msgf("completed config %d game %d of %d: %s with score %.0f", config.ID, i+1, exp.Games, gameMetric.Outcome, gameMetric.Score)
		}

		summary := metrics.Summarize(configMoves)
		report.Summaries[config.ID] = summary
		log.Info().
			Int("config", config.ID).
			Str("strategy", config.Strategy).
			Int("depth", config.Depth).
			Int("wins", report.Wins[config.ID]).
			Float64("mean_nodes", summary.MeanNodes).
			Float64("stddev_nodes", summary.StdDevNodes).
			Dur("mean_duration", summary.MeanDuration).
			Int("prunes", summary.TotalPrunes).
			Msg("config summary")
	}

	log.Info().Msgf("completed %s experiment", exp.Name)

	if exp.OutputDir == "" {
		return report, nil
	}
	dir, err := store(exp, report)
	if err != nil {
		return report, err
	}
	report.Dir = dir
	return report, nil
}

func runGame(state game.State, config metrics.AgentConfig, rng *rand.Rand, maxRounds int, name string) (metrics.GameMetric, []metrics.MoveMetric, error) {
	controlled, err := agent.NewSearchAgent(agent.Config{
		Strategy:   config.Strategy,
		Depth:      config.Depth,
		Evaluation: config.Evaluation,
	}, true)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	agents := []agent.Agent{controlled}
	for i := 1; i < state.NumAgents(); i++ {
		agents = append(agents, agent.NewRandomAgent(i, rng))
	}

	e, err := engine.NewLocal(state, agents, engine.WithMaxRounds(maxRounds), engine.WithName(name))
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	return e.Run()
}

func store(exp Experiment, report Report) (string, error) {
	writer, err := metrics.NewWriter(exp.OutputDir, exp.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(exp.Configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(report.Games)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(report.Moves)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
