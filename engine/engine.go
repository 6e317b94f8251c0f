package engine

import (
	"errors"

	"multiagent/experiments/metrics"
	"multiagent/meta"
)

const MaxRounds = meta.MAX_ROUNDS

// Outcomes recorded in metrics.GameMetric
const (
	Win        = "win"
	Lose       = "lose"
	Unfinished = "unfinished"
)

var (
	ErrTooFewAgents = errors.New("a game needs the controlled agent and at least one other agent")
	ErrAgentCount   = errors.New("number of agents does not match the game")
)

type Engine interface {
	// Run plays a game till it is won, lost, or a max number of rounds is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
