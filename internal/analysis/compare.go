package analysis

import "github.com/demmerichs/trading-strategies/internal/model"

// WinLoss tallies, lane by lane, which of two strategies ended with the
// higher total value. Lanes where the totals are exactly equal count for
// neither side, so AWins + BWins can be less than the lane count.
type WinLoss struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	AWins int     `json:"a_wins"`
	BWins int     `json:"b_wins"`
	ARate float64 `json:"a_rate"`
	BRate float64 `json:"b_rate"`
}

// Compare tallies per-lane wins between two equal-length total-value vectors.
func Compare(nameA string, a model.Vector, nameB string, b model.Vector) WinLoss {
	w := WinLoss{A: nameA, B: nameB}
	for i := range a {
		switch {
		case a[i] > b[i]:
			w.AWins++
		case a[i] < b[i]:
			w.BWins++
		}
	}
	if n := len(a); n > 0 {
		w.ARate = float64(w.AWins) / float64(n)
		w.BRate = float64(w.BWins) / float64(n)
	}
	return w
}

// Pairwise compares every unordered pair of strategies, preserving the
// given order (pair i<j is reported as names[i] vs names[j]).
func Pairwise(names []string, totals []model.Vector) []WinLoss {
	var out []WinLoss
	for i := range names {
		for j := i + 1; j < len(names); j++ {
			out = append(out, Compare(names[i], totals[i], names[j], totals[j]))
		}
	}
	return out
}
