package searcher

import (
	"math"

	"multiagent/game"

	"gonum.org/v1/gonum/stat"
)

// window holds the alpha-beta bounds on the path from the root: alpha is what
// the controlled agent can already guarantee, beta what the adversaries can.
type window struct {
	alpha, beta float64
}

var fullWindow = window{alpha: math.Inf(-1), beta: math.Inf(1)}

// node folds the values of its children, in action order, into its own value.
type node interface {
	// add records a child's value and reports whether the remaining children
	// can be skipped
	add(value float64, action game.Action) (cutoff bool)
	// window returns the bounds to search the next child with
	window() window
	result() (float64, game.Action)
}

type role int

const (
	maximizer role = iota
	minimizer
	averager
)

func (s *Searcher) role(agent int) role {
	switch {
	case agent == game.Controlled:
		return maximizer
	case s.strategy == Expectimax:
		return averager
	default:
		return minimizer
	}
}

func (s *Searcher) newNode(agent int, w window) node {
	prune := s.strategy == AlphaBeta
	switch s.role(agent) {
	case maximizer:
		return &maxNode{best: math.Inf(-1), bounds: w, prune: prune}
	case minimizer:
		return &minNode{best: math.Inf(1), bounds: w, prune: prune}
	case averager:
		return &chanceNode{}
	default:
		panic("unexpected node role")
	}
}

type maxNode struct {
	best   float64
	action game.Action
	seen   bool // Any action is kept over none, even a losing one
	bounds window
	prune  bool
}

func (n *maxNode) add(value float64, action game.Action) bool {
	// Strictly greater keeps the first of equal children
	if value > n.best || !n.seen {
		n.best = value
		n.action = action
		n.seen = true
	}
	if !n.prune {
		return false
	}
	if n.best > n.bounds.beta {
		return true
	}
	n.bounds.alpha = max(n.bounds.alpha, n.best)
	return false
}

func (n *maxNode) window() window {
	return n.bounds
}

func (n *maxNode) result() (float64, game.Action) {
	return n.best, n.action
}

type minNode struct {
	best   float64
	bounds window
	prune  bool
}

func (n *minNode) add(value float64, _ game.Action) bool {
	n.best = min(n.best, value)
	if !n.prune {
		return false
	}
	if n.best < n.bounds.alpha {
		return true
	}
	n.bounds.beta = min(n.bounds.beta, n.best)
	return false
}

func (n *minNode) window() window {
	return n.bounds
}

func (n *minNode) result() (float64, game.Action) {
	return n.best, game.NoAction
}

// chanceNode weighs every child equally. Its value depends on all children,
// so it never prunes and searches each child with an open window.
type chanceNode struct {
	values []float64
}

func (n *chanceNode) add(value float64, _ game.Action) bool {
	n.values = append(n.values, value)
	return false
}

func (n *chanceNode) window() window {
	return fullWindow
}

func (n *chanceNode) result() (float64, game.Action) {
	return stat.Mean(n.values, nil), game.NoAction
}
