package agent

import (
	"fmt"

	"multiagent/experiments/metrics"
	"multiagent/game"
	"multiagent/searcher"
)

type searchAgent struct {
	searcher *searcher.Searcher
}

// NewSearchAgent returns the controlled agent playing the action chosen by a
// tree search. Misconfiguration is reported here, before any search runs.
func NewSearchAgent(config Config, collectMetrics bool) (Agent, error) {
	strategy, err := searcher.ParseStrategy(config.Strategy)
	if err != nil {
		return nil, err
	}

	name := config.Evaluation
	if name == "" {
		name = "score"
	}
	evaluate, err := game.LookupEvaluation(name)
	if err != nil {
		return nil, err
	}

	options := []searcher.Option{
		searcher.WithDepth(config.Depth),
		searcher.WithEvaluationFn(evaluate),
	}
	if collectMetrics {
		options = append(options, searcher.WithMetrics(metrics.NewCollector()))
	}

	s, err := searcher.New(strategy, options...)
	if err != nil {
		return nil, fmt.Errorf("configuring %s agent: %w", strategy, err)
	}
	return NewSearcherAgent(s), nil
}

// NewSearcherAgent wraps an already configured searcher.
func NewSearcherAgent(s *searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindAction(state game.State) (game.Action, metrics.SearchMetric, error) {
	result, err := a.searcher.Search(state)
	if err != nil {
		return game.NoAction, metrics.SearchMetric{}, err
	}
	return result.Action, result.Metric, nil
}
