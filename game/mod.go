package game

import "errors"

// Action is an opaque move symbol drawn from a state's legal set.
type Action string

// NoAction is returned when no decision exists, e.g. at a terminal state.
const NoAction Action = ""

// Index of the controlled (maximizing) agent. Every other index is an
// adversary or a chance agent, cycled in index order within a round.
const Controlled = 0

var (
	ErrInvalidAction = errors.New("invalid action")
	ErrTerminalState = errors.New("terminal state has no successors")
)

// State should be immutable - Successor always returns a new copy
type State interface {
	// LegalActions returns the ordered legal actions of agent, empty if it
	// cannot move or the game is over
	LegalActions(agent int) []Action
	// Successor returns the state after agent plays action. It fails with
	// ErrInvalidAction if action is not currently legal.
	Successor(agent int, action Action) (State, error)
	NumAgents() int
	IsWin() bool
	IsLose() bool
	// Score is the static utility of the state for the controlled agent
	Score() float64
}

// Terminal reports whether the game is over.
func Terminal(s State) bool {
	return s.IsWin() || s.IsLose()
}
