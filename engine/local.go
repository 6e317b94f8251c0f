package engine

import (
	"fmt"
	"time"

	"multiagent/experiments/metrics"
	"multiagent/game"
	"multiagent/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Option func(e *Local)

// Local plays a game in-process, asking each agent for its action in index
// order every round.
type Local struct {
	State     game.State
	Agents    []agent.Agent
	name      string
	maxRounds int
}

func WithMaxRounds(rounds int) Option {
	return func(e *Local) {
		if rounds > 0 {
			e.maxRounds = rounds
		}
	}
}

// WithName labels the game in logs and metrics, e.g. with its layout.
func WithName(name string) Option {
	return func(e *Local) {
		e.name = name
	}
}

func NewLocal(state game.State, agents []agent.Agent, options ...Option) (*Local, error) {
	if len(agents) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewAgents, len(agents))
	}
	if n := state.NumAgents(); n != len(agents) {
		return nil, fmt.Errorf("%w: game has %d, got %d", ErrAgentCount, n, len(agents))
	}

	e := &Local{
		State:     state,
		Agents:    agents,
		maxRounds: MaxRounds,
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Run executes the game loop until the game is over. An agent failing to
// find an action, or the game rejecting it, aborts the game.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		Layout:    e.name,
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Str("game", e.name).Int("agents", len(e.Agents)).Msg("game starting")

	round := 0
	for !game.Terminal(e.State) && round < e.maxRounds {
		round++
		for i, a := range e.Agents {
			if game.Terminal(e.State) {
				break
			}

			action, searchMetric, err := a.FindAction(e.State)
			if err != nil {
				return e.complete(gameMetric, round), moveMetrics, fmt.Errorf("round %d: agent %d: %w", round, i, err)
			}
			if action == game.NoAction { // Agent cannot move this round
				continue
			}

			next, err := e.State.Successor(i, action)
			if err != nil {
				return e.complete(gameMetric, round), moveMetrics, fmt.Errorf("round %d: agent %d: %w", round, i, err)
			}
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:         round,
				Agent:        i,
				Action:       string(action),
				SearchMetric: searchMetric,
			})
			e.State = next
		}
	}

	gameMetric = e.complete(gameMetric, round)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().
		Str("game", e.name).
		Str("outcome", gameMetric.Outcome).
		Float64("score", gameMetric.Score).
		Int("rounds", round).
		Dur("duration", gameMetric.Duration).
		Msg("game over")

	return gameMetric, moveMetrics, nil
}

func (e *Local) complete(m metrics.GameMetric, rounds int) metrics.GameMetric {
	m.EndTime = time.Now()
	m.Duration = m.EndTime.Sub(m.StartTime)
	m.Score = e.State.Score()
	switch {
	case e.State.IsWin():
		m.Outcome = Win
	case e.State.IsLose():
		m.Outcome = Lose
	default:
		m.Outcome = Unfinished
	}
	if rounds >= e.maxRounds && m.Outcome == Unfinished {
		log.Warn().Str("game", e.name).Msgf("stopped after %d rounds without a result", rounds)
	}
	return m
}
