package agent

import (
	"multiagent/experiments/metrics"
	"multiagent/game"
	"multiagent/utils"

	"golang.org/x/exp/rand"
)

type reflexAgent struct {
	evaluate game.ActionEvaluate
	rng      *rand.Rand
}

// NewReflexAgent returns a controlled agent that scores each legal action one
// move ahead and picks uniformly among the best.
func NewReflexAgent(evaluate game.ActionEvaluate, rng *rand.Rand) Agent {
	return reflexAgent{evaluate: evaluate, rng: rng}
}

func (a reflexAgent) FindAction(state game.State) (game.Action, metrics.SearchMetric, error) {
	actions := state.LegalActions(game.Controlled)
	if len(actions) == 0 {
		return game.NoAction, metrics.SearchMetric{}, nil
	}

	scores := make([]float64, len(actions))
	for i, action := range actions {
		scores[i] = a.evaluate(state, action)
	}
	best := utils.MaxIndices(scores)
	return actions[best[a.rng.Intn(len(best))]], metrics.SearchMetric{}, nil
}

type randomAgent struct {
	index int
	rng   *rand.Rand
}

// NewRandomAgent returns an agent choosing uniformly among its legal actions,
// the behaviour expectimax assumes of adversaries.
func NewRandomAgent(index int, rng *rand.Rand) Agent {
	return randomAgent{index: index, rng: rng}
}

func (a randomAgent) FindAction(state game.State) (game.Action, metrics.SearchMetric, error) {
	actions := state.LegalActions(a.index)
	if len(actions) == 0 {
		return game.NoAction, metrics.SearchMetric{}, nil
	}
	return actions[a.rng.Intn(len(actions))], metrics.SearchMetric{}, nil
}
