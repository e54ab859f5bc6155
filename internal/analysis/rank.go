package analysis

import (
	"sort"

	"github.com/demmerichs/trading-strategies/internal/model"
)

type RankedStrategy struct {
	Strategy       string  `json:"strategy"`
	MeanTotalValue float64 `json:"mean_total_value"`
}

// RankByMeanTotalValue sorts strategies descending by lane-mean total value.
func RankByMeanTotalValue(names []string, totals []model.Vector) []RankedStrategy {
	out := make([]RankedStrategy, 0, len(names))
	for i, name := range names {
		out = append(out, RankedStrategy{Strategy: name, MeanTotalValue: totals[i].Mean()})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].MeanTotalValue > out[j].MeanTotalValue
	})
	return out
}
