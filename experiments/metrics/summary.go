package metrics

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the search cost of a series of moves.
type Summary struct {
	Moves        int
	MeanNodes    float64
	StdDevNodes  float64
	MeanDuration time.Duration
	TotalPrunes  int
}

// Summarize aggregates the moves that ran a search. Moves by agents without
// a search (zero nodes) are ignored.
func Summarize(moves []MoveMetric) Summary {
	var nodes, durations []float64
	prunes := 0
	for _, m := range moves {
		if m.Nodes == 0 {
			continue
		}
		nodes = append(nodes, float64(m.Nodes))
		durations = append(durations, float64(m.Duration))
		prunes += m.Prunes
	}

	summary := Summary{Moves: len(nodes), TotalPrunes: prunes}
	switch len(nodes) {
	case 0:
	case 1:
		summary.MeanNodes = nodes[0]
		summary.MeanDuration = time.Duration(durations[0])
	default:
		summary.MeanNodes, summary.StdDevNodes = stat.MeanStdDev(nodes, nil)
		summary.MeanDuration = time.Duration(stat.Mean(durations, nil))
	}
	return summary
}
