package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy    string
	Depth       int
	Nodes       int // Recursive value calls, root included
	Evaluations int // Leaves handed to the evaluation function
	Prunes      int // Nodes whose remaining children were skipped
	Duration    time.Duration
}

type MoveMetric struct {
	Step   int // Round number, starting at 1
	Agent  int // Agent index
	Action string
	SearchMetric
}

type GameMetric struct {
	Layout     string
	Outcome    string
	Score      float64
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(strategy string, depth int)
	AddNode()
	AddEvaluation()
	AddPrune()
	Complete() SearchMetric
}

type collector struct {
	strategy    string
	depth       int
	startTime   time.Time
	nodes       atomic.Int64
	evaluations atomic.Int64
	prunes      atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(strategy string, depth int) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.depth = depth
	m.nodes.Store(0)
	m.evaluations.Store(0)
	m.prunes.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddPrune() {
	m.prunes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:    m.strategy,
		Depth:       m.depth,
		Nodes:       int(m.nodes.Load()),
		Evaluations: int(m.evaluations.Load()),
		Prunes:      int(m.prunes.Load()),
		Duration:    time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, depth int) {}
func (m *dummyCollector) AddNode()                         {}
func (m *dummyCollector) AddEvaluation()                   {}
func (m *dummyCollector) AddPrune()                        {}
func (m *dummyCollector) Complete() SearchMetric           { return SearchMetric{} }
