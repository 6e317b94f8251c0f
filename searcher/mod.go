package searcher

import (
	"errors"
	"fmt"
	"strings"

	"multiagent/experiments/metrics"
	"multiagent/game"
)

// Strategy selects how non-controlled agents are modelled.
type Strategy int

const (
	Minimax    Strategy = iota // Adversaries minimize
	AlphaBeta                  // Minimax with alpha-beta pruning
	Expectimax                 // Adversaries choose uniformly at random
)

const DefaultDepth = 2

var strategyNames = []string{
	Minimax:    "minimax",
	AlphaBeta:  "alphabeta",
	Expectimax: "expectimax",
}

var (
	ErrInvalidDepth    = errors.New("search depth must be at least 1")
	ErrTooFewAgents    = errors.New("search needs the controlled agent and at least one other agent")
	ErrUnknownStrategy = errors.New("unknown search strategy")
)

func (s Strategy) String() string {
	if !s.valid() {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

func (s Strategy) valid() bool {
	return s >= Minimax && int(s) < len(strategyNames)
}

// ParseStrategy resolves a strategy by name, ignoring case and dashes.
func ParseStrategy(name string) (Strategy, error) {
	normalized := strings.ReplaceAll(strings.ToLower(name), "-", "")
	for s, n := range strategyNames {
		if n == normalized {
			return Strategy(s), nil
		}
	}
	return 0, fmt.Errorf("%w %q (known: %s)", ErrUnknownStrategy, name, strings.Join(strategyNames, ", "))
}

// Result of a search from the controlled agent's perspective. Action is
// game.NoAction when the root was a cutoff.
type Result struct {
	Utility float64
	Action  game.Action
	Metric  metrics.SearchMetric
}
