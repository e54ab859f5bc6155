package analysis

import (
	"math"
	"sort"

	"github.com/demmerichs/trading-strategies/internal/model"
)

// Distribution summarizes how a per-lane quantity (typically an agent's
// total value) is spread across the Monte-Carlo lanes.
type Distribution struct {
	Name  string `json:"name"`
	Count int    `json:"count"`

	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
	P05  float64 `json:"p05"`
	P50  float64 `json:"p50"`
	P95  float64 `json:"p95"`

	SpreadP95P05 float64 `json:"spread_p95_p05"`
}

// Describe computes distribution statistics for v across lanes.
func Describe(name string, v model.Vector) Distribution {
	d := Distribution{Name: name, Count: len(v)}
	if len(v) == 0 {
		return d
	}

	minv := math.Inf(1)
	maxv := math.Inf(-1)
	vals := make([]float64, 0, len(v))
	for _, x := range v {
		vals = append(vals, x)
		if x < minv {
			minv = x
		}
		if x > maxv {
			maxv = x
		}
	}
	sort.Float64s(vals)

	d.Min = minv
	d.Max = maxv
	d.Mean = v.Mean()
	d.Std = v.Std()
	d.P05 = percentileSorted(vals, 0.05)
	d.P50 = percentileSorted(vals, 0.50)
	d.P95 = percentileSorted(vals, 0.95)
	d.SpreadP95P05 = d.P95 - d.P05
	return d
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
