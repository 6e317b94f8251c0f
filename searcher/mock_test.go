package searcher

import (
	"fmt"
	"slices"

	"multiagent/game"
)

// tree is a hand-built game tree. A node's children are reached by playing
// their labels; whoever moves, the same children are offered.
type tree struct {
	label    string
	value    float64
	children []*tree
	agents   int
	win      bool
	lose     bool
	broken   bool // Successor fails
}

func leaf(label string, value float64) *tree {
	return &tree{label: label, value: value}
}

func branch(label string, children ...*tree) *tree {
	return &tree{label: label, children: children}
}

// withAgents sets the number of agents on every node of the tree.
func withAgents(root *tree, agents int) *tree {
	root.agents = agents
	for _, child := range root.children {
		withAgents(child, agents)
	}
	return root
}

func (t *tree) LegalActions(agent int) []game.Action {
	actions := make([]game.Action, len(t.children))
	for i, child := range t.children {
		actions[i] = game.Action(child.label)
	}
	return actions
}

func (t *tree) Successor(agent int, action game.Action) (game.State, error) {
	if t.broken {
		return nil, fmt.Errorf("oracle rejected %q: %w", action, game.ErrInvalidAction)
	}
	for _, child := range t.children {
		if game.Action(child.label) == action {
			return child, nil
		}
	}
	return nil, game.ErrInvalidAction
}

func (t *tree) NumAgents() int { return t.agents }
func (t *tree) IsWin() bool    { return t.win }
func (t *tree) IsLose() bool   { return t.lose }
func (t *tree) Score() float64 { return t.value }

// recordingEvaluation returns an evaluation of tree nodes that logs which
// labels it evaluated.
func recordingEvaluation(evaluated *[]string) game.Evaluate {
	return func(s game.State) float64 {
		t := s.(*tree)
		*evaluated = append(*evaluated, t.label)
		return t.value
	}
}

// synthetic is a procedurally generated game: branching factor, leaf values
// and terminal states are derived from the sequence of moves played.
type synthetic struct {
	seed      uint64
	agents    int
	branching int  // Fixed branching factor, 0 for 1 to 3 actions per node
	terminals bool // Whether some states end the game
	moves     []int
	movers    []int
	trace     *trace
}

type trace struct {
	expanded  int
	evaluated []string
	movers    [][]int
}

func newSynthetic(seed uint64, agents, branching int, terminals bool) *synthetic {
	return &synthetic{seed: seed, agents: agents, branching: branching, terminals: terminals, trace: &trace{}}
}

func (s *synthetic) hash() uint64 {
	h := s.seed*0x9E3779B97F4A7C15 + 1
	for _, m := range s.moves {
		h ^= uint64(m) + 0x9E3779B97F4A7C15 + (h << 6) + (h >> 2)
		h *= 0xBF58476D1CE4E5B9
	}
	return h ^ (h >> 31)
}

func (s *synthetic) LegalActions(agent int) []game.Action {
	if s.IsWin() || s.IsLose() {
		return nil
	}
	n := s.branching
	if n == 0 {
		n = 1 + int(s.hash()%3)
	}
	actions := make([]game.Action, n)
	for i := range actions {
		actions[i] = game.Action(fmt.Sprintf("a%d", i))
	}
	return actions
}

func (s *synthetic) Successor(agent int, action game.Action) (game.State, error) {
	i := slices.Index(s.LegalActions(agent), action)
	if i < 0 {
		return nil, game.ErrInvalidAction
	}
	s.trace.expanded++
	next := *s
	next.moves = append(slices.Clone(s.moves), i)
	next.movers = append(slices.Clone(s.movers), agent)
	return &next, nil
}

func (s *synthetic) terminal() bool {
	return s.terminals && len(s.moves) > 0 && s.hash()%11 == 0
}

func (s *synthetic) NumAgents() int { return s.agents }
func (s *synthetic) IsWin() bool    { return s.terminal() && s.hash()%2 == 0 }
func (s *synthetic) IsLose() bool   { return s.terminal() && s.hash()%2 == 1 }

func (s *synthetic) Score() float64 {
	return float64(s.hash()%200) - 100
}

func evaluateSynthetic(s game.State) float64 {
	st := s.(*synthetic)
	st.trace.evaluated = append(st.trace.evaluated, fmt.Sprint(st.moves))
	st.trace.movers = append(st.trace.movers, st.movers)
	return st.Score()
}
