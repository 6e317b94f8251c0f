package game

import (
	"fmt"
	"slices"
	"sync"
)

// Utilities that dominate any heuristic score. They are finite so that chance
// nodes averaging a win with a loss still produce an ordered value.
const (
	WinUtility  = 1e9
	LoseUtility = -WinUtility
)

// Evaluates a (possibly non-terminal) state to a score where higher is better
// for the controlled agent.
type Evaluate func(State) float64

// Evaluates a state together with a candidate action of the controlled agent.
type ActionEvaluate func(State, Action) float64

// EvaluateScore returns the static utility of the state.
func EvaluateScore(s State) float64 {
	return s.Score()
}

var registry = struct {
	sync.RWMutex
	byName map[string]Evaluate
}{
	byName: map[string]Evaluate{"score": EvaluateScore},
}

// RegisterEvaluation makes an evaluation function available by name to agent
// configuration. Registering the same name twice panics.
func RegisterEvaluation(name string, evaluate Evaluate) {
	if evaluate == nil {
		panic("game: nil evaluation function " + name)
	}

	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.byName[name]; ok {
		panic("game: evaluation function registered twice: " + name)
	}
	registry.byName[name] = evaluate
}

// LookupEvaluation resolves a registered evaluation function.
func LookupEvaluation(name string) (Evaluate, error) {
	registry.RLock()
	defer registry.RUnlock()

	evaluate, ok := registry.byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown evaluation function %q (known: %v)", name, evaluationNames())
	}
	return evaluate, nil
}

// EvaluationNames lists the registered evaluation functions in sorted order.
func EvaluationNames() []string {
	registry.RLock()
	defer registry.RUnlock()

	return evaluationNames()
}

func evaluationNames() []string {
	names := make([]string, 0, len(registry.byName))
	for name := range registry.byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
