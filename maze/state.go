package maze

import (
	"fmt"
	"slices"

	"multiagent/game"
	"multiagent/utils"
)

const (
	North game.Action = "North"
	South game.Action = "South"
	East  game.Action = "East"
	West  game.Action = "West"
	Stop  game.Action = "Stop"
)

// Scoring and timing rules
const (
	TimePenalty    = 1
	FoodReward     = 10
	ClearReward    = 500
	CaptureReward  = 200
	CaughtPenalty  = 500
	ScaredDuration = 40
)

var directions = []game.Action{North, South, East, West}

var vectors = map[game.Action]Position{
	North: {X: 0, Y: -1},
	South: {X: 0, Y: 1},
	East:  {X: 1, Y: 0},
	West:  {X: -1, Y: 0},
	Stop:  {X: 0, Y: 0},
}

var reverse = map[game.Action]game.Action{
	North: South,
	South: North,
	East:  West,
	West:  East,
	Stop:  Stop,
}

type adversary struct {
	position Position
	heading  game.Action
	scared   int
}

// State is an immutable snapshot of a game on a Layout. Agent 0 collects food,
// agents 1..n are the adversaries chasing it.
type State struct {
	layout      *Layout
	agent       Position
	adversaries []adversary
	food        []bool // Shared between states until food is eaten
	foodLeft    int
	capsules    []Position
	score       float64
	win         bool
	lose        bool
}

// NewState returns the initial state of a layout.
func NewState(l *Layout) *State {
	s := &State{
		layout:      l,
		agent:       l.Start,
		adversaries: make([]adversary, len(l.AdversaryStarts)),
		food:        l.food,
		foodLeft:    l.foodCount,
		capsules:    slices.Clone(l.Capsules),
	}
	for i, start := range l.AdversaryStarts {
		s.adversaries[i] = adversary{position: start, heading: Stop}
	}
	return s
}

func (s *State) NumAgents() int {
	return 1 + len(s.adversaries)
}

func (s *State) IsWin() bool {
	return s.win
}

func (s *State) IsLose() bool {
	return s.lose
}

func (s *State) Score() float64 {
	return s.score
}

func (s *State) Layout() *Layout {
	return s.layout
}

// AgentPosition returns where the controlled agent stands.
func (s *State) AgentPosition() Position {
	return s.agent
}

// AdversaryPositions returns the adversaries' positions in agent order.
func (s *State) AdversaryPositions() []Position {
	positions := make([]Position, len(s.adversaries))
	for i, a := range s.adversaries {
		positions[i] = a.position
	}
	return positions
}

// ScaredTimers returns how many more moves each adversary remains harmless.
func (s *State) ScaredTimers() []int {
	timers := make([]int, len(s.adversaries))
	for i, a := range s.adversaries {
		timers[i] = a.scared
	}
	return timers
}

// Food returns the positions of the remaining food in row order.
func (s *State) Food() []Position {
	positions := make([]Position, 0, s.foodLeft)
	for i, ok := range s.food {
		if ok {
			positions = append(positions, Position{X: i % s.layout.Width, Y: i / s.layout.Width})
		}
	}
	return positions
}

func (s *State) FoodCount() int {
	return s.foodLeft
}

func (s *State) Capsules() []Position {
	return slices.Clone(s.capsules)
}

func (s *State) LegalActions(agent int) []game.Action {
	if s.win || s.lose || agent < 0 || agent >= s.NumAgents() {
		return nil
	}

	if agent == game.Controlled {
		return append(s.possible(s.agent), Stop)
	}

	a := s.adversaries[agent-1]
	actions := s.possible(a.position)
	// Adversaries never stop and only turn back at dead ends
	if back := reverse[a.heading]; len(actions) > 1 {
		if i := slices.Index(actions, back); i >= 0 && back != Stop {
			actions = slices.Delete(actions, i, i+1)
		}
	}
	return actions
}

func (s *State) possible(from Position) []game.Action {
	actions := make([]game.Action, 0, len(directions)+1)
	for _, d := range directions {
		if !s.layout.IsWall(step(from, d)) {
			actions = append(actions, d)
		}
	}
	return actions
}

func (s *State) Successor(agent int, action game.Action) (game.State, error) {
	if s.win || s.lose {
		return nil, game.ErrTerminalState
	}
	if !slices.Contains(s.LegalActions(agent), action) {
		return nil, fmt.Errorf("agent %d cannot play %q: %w", agent, action, game.ErrInvalidAction)
	}

	next := *s
	next.adversaries = slices.Clone(s.adversaries)
	if agent == game.Controlled {
		next.moveAgent(action)
	} else {
		next.moveAdversary(agent-1, action)
	}
	return &next, nil
}

func (s *State) moveAgent(action game.Action) {
	s.agent = step(s.agent, action)
	s.score -= TimePenalty

	if i := s.layout.index(s.agent); s.food[i] {
		s.food = slices.Clone(s.food)
		s.food[i] = false
		s.foodLeft--
		s.score += FoodReward
		if s.foodLeft == 0 {
			s.score += ClearReward
			s.win = true
		}
	}

	if i := slices.Index(s.capsules, s.agent); i >= 0 {
		s.capsules = slices.Delete(slices.Clone(s.capsules), i, i+1)
		for j := range s.adversaries {
			s.adversaries[j].scared = ScaredDuration
		}
	}

	for j := range s.adversaries {
		s.collide(j)
	}
}

func (s *State) moveAdversary(j int, action game.Action) {
	a := &s.adversaries[j]
	a.position = step(a.position, action)
	a.heading = action
	a.scared = max(0, a.scared-1)
	s.collide(j)
}

func (s *State) collide(j int) {
	a := &s.adversaries[j]
	if a.position != s.agent {
		return
	}
	if a.scared > 0 {
		s.score += CaptureReward
		*a = adversary{position: s.layout.AdversaryStarts[j], heading: Stop}
		return
	}
	if !s.win {
		s.score -= CaughtPenalty
		s.lose = true
	}
}

func step(p Position, action game.Action) Position {
	v := vectors[action]
	return Position{X: p.X + v.X, Y: p.Y + v.Y}
}

// Distance is the Manhattan distance between two cells.
func Distance(a, b Position) int {
	return utils.Abs(a.X-b.X) + utils.Abs(a.Y-b.Y)
}
