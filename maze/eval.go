package maze

import (
	"fmt"
	"math"

	"multiagent/game"
)

// Heuristic weights
const (
	FoodWeight      = 5.0
	FoodCountWeight = 4.0
	ThreatWeight    = 10.0
	DangerRadius    = 2
	DangerPenalty   = 500.0
	// Adversaries scared for longer than this are worth chasing
	HuntThreshold = 2
)

func init() {
	game.RegisterEvaluation("better", EvaluateBetter)
}

// EvaluateBetter scores a state by its utility adjusted for the nearest food,
// the amount of food left and the nearest adversary. Terminal states map to
// the win and lose sentinels.
func EvaluateBetter(s game.State) float64 {
	st := asState(s)
	if st.IsWin() {
		return game.WinUtility
	}
	if st.IsLose() {
		return game.LoseUtility
	}
	return proximity(st) - FoodCountWeight*float64(st.FoodCount())
}

// EvaluateReflex scores the state reached by the controlled agent playing
// action, looking a single move ahead.
func EvaluateReflex(s game.State, action game.Action) float64 {
	successor, err := s.Successor(game.Controlled, action)
	if err != nil {
		panic(fmt.Sprintf("evaluating reflex action %q: %v", action, err))
	}
	return proximity(asState(successor))
}

func proximity(st *State) float64 {
	score := st.Score()

	// Without food the food term vanishes rather than dividing by zero
	if nearest, ok := nearestFood(st); ok {
		score += FoodWeight / float64(max(nearest, 1))
	}

	threat, scared := nearestAdversary(st)
	switch {
	case threat < DangerRadius && scared <= 0:
		score -= DangerPenalty
	case scared > HuntThreshold:
		score += ThreatWeight / float64(max(threat, 1))
	default:
		score -= ThreatWeight / float64(max(threat, 1))
	}
	return score
}

func nearestFood(st *State) (int, bool) {
	nearest := math.MaxInt
	for _, p := range st.Food() {
		nearest = min(nearest, Distance(st.agent, p))
	}
	return nearest, nearest != math.MaxInt
}

// nearestAdversary returns the distance to the closest adversary and the
// shortest scared timer among all adversaries.
func nearestAdversary(st *State) (distance int, scared int) {
	distance, scared = math.MaxInt, math.MaxInt
	for _, a := range st.adversaries {
		distance = min(distance, Distance(st.agent, a.position))
		scared = min(scared, a.scared)
	}
	return distance, scared
}

func asState(s game.State) *State {
	st, ok := s.(*State)
	if !ok {
		panic(fmt.Sprintf("unexpected state type %T", s))
	}
	return st
}
