package searcher

import (
	"fmt"

	"multiagent/experiments/metrics"
	"multiagent/game"

	"github.com/rs/zerolog/log"
)

type Option func(s *Searcher)

// Searcher runs a depth-bounded tree search for the controlled agent. The
// depth counts rounds: every agent moves once per unit of depth.
type Searcher struct {
	strategy Strategy
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		s.depth = depth
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *Searcher) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

func New(strategy Strategy, options ...Option) (*Searcher, error) {
	s := &Searcher{ // Default values
		strategy: strategy,
		depth:    DefaultDepth,
		evaluate: game.EvaluateScore,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if !strategy.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, strategy)
	}
	if s.depth < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDepth, s.depth)
	}
	return s, nil
}

func (s *Searcher) Strategy() Strategy {
	return s.strategy
}

func (s *Searcher) Depth() int {
	return s.depth
}

// Search evaluates state for the controlled agent. Oracle failures abort the
// search and are returned wrapped with the agent and action that failed.
func (s *Searcher) Search(state game.State) (Result, error) {
	if n := state.NumAgents(); n < 2 {
		return Result{}, fmt.Errorf("%w: got %d", ErrTooFewAgents, n)
	}

	s.metrics.Start(s.strategy.String(), s.depth)
	utility, action, err := s.value(state, 0, game.Controlled, fullWindow)
	if err != nil {
		return Result{}, err
	}
	metric := s.metrics.Complete()

	log.Debug().
		Stringer("strategy", s.strategy).
		Int("depth", s.depth).
		Float64("utility", utility).
		Str("action", string(action)).
		Int("nodes", metric.Nodes).
		Int("prunes", metric.Prunes).
		Msg("search complete")

	return Result{Utility: utility, Action: action, Metric: metric}, nil
}

// ChooseAction returns the controlled agent's best action, or game.NoAction
// if the state is terminal or the agent cannot move.
func (s *Searcher) ChooseAction(state game.State) (game.Action, error) {
	result, err := s.Search(state)
	return result.Action, err
}

// ChooseAction runs a single search with the given configuration.
func ChooseAction(state game.State, strategy Strategy, depth int, evaluate game.Evaluate) (game.Action, error) {
	s, err := New(strategy, WithDepth(depth), WithEvaluationFn(evaluate))
	if err != nil {
		return game.NoAction, err
	}
	return s.ChooseAction(state)
}

// value is shared by every strategy: only the node that combines children
// differs. The action is only meaningful for the controlled agent.
func (s *Searcher) value(state game.State, depth, agent int, w window) (float64, game.Action, error) {
	s.metrics.AddNode()

	if depth >= s.depth || game.Terminal(state) {
		return s.leaf(state), game.NoAction, nil
	}
	actions := state.LegalActions(agent)
	if len(actions) == 0 { // Agent is stuck, same as terminal
		return s.leaf(state), game.NoAction, nil
	}

	n := s.newNode(agent, w)
	nextDepth, nextAgent := advance(depth, agent, state.NumAgents())
	for _, action := range actions {
		successor, err := state.Successor(agent, action)
		if err != nil {
			return 0, game.NoAction, fmt.Errorf("agent %d playing %q: %w", agent, action, err)
		}
		v, _, err := s.value(successor, nextDepth, nextAgent, n.window())
		if err != nil {
			return 0, game.NoAction, err
		}
		if n.add(v, action) {
			s.metrics.AddPrune()
			break
		}
	}

	utility, best := n.result()
	return utility, best, nil
}

func (s *Searcher) leaf(state game.State) float64 {
	s.metrics.AddEvaluation()
	return s.evaluate(state)
}

// advance returns the depth and agent of the next ply. Depth only grows once
// the last agent of a round has moved.
func advance(depth, agent, agents int) (int, int) {
	if agent == agents-1 {
		return depth + 1, game.Controlled
	}
	return depth, agent + 1
}
