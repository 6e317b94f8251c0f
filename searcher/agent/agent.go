package agent

import (
	"multiagent/experiments/metrics"
	"multiagent/game"
)

type Agent interface {
	// FindAction returns the action to play and performance metrics (if
	// collected) from the search. It returns game.NoAction when the agent
	// cannot move.
	FindAction(state game.State) (game.Action, metrics.SearchMetric, error)
}

// Config describes a search agent. Names are resolved once, when the agent is
// built.
type Config struct {
	Strategy   string `yaml:"strategy"`
	Depth      int    `yaml:"depth"`
	Evaluation string `yaml:"evaluation"`
}
