package analysis

import (
	"math"
	"testing"

	"github.com/demmerichs/trading-strategies/internal/model"
)

func TestCompareCountsWinsAndTies(t *testing.T) {
	a := model.Vector{3, 1, 2, 5}
	b := model.Vector{1, 2, 2, 4}

	w := Compare("a", a, "b", b)
	if w.AWins != 2 || w.BWins != 1 {
		t.Fatalf("wins = %d-%d, want 2-1", w.AWins, w.BWins)
	}
	if w.ARate != 0.5 || w.BRate != 0.25 {
		t.Fatalf("rates = %v-%v, want 0.5-0.25", w.ARate, w.BRate)
	}
}

func TestPairwiseOrdering(t *testing.T) {
	names := []string{"x", "y", "z"}
	totals := []model.Vector{{1}, {2}, {3}}

	out := Pairwise(names, totals)
	if len(out) != 3 {
		t.Fatalf("got %d pairs, want 3", len(out))
	}
	want := [][2]string{{"x", "y"}, {"x", "z"}, {"y", "z"}}
	for i, w := range out {
		if w.A != want[i][0] || w.B != want[i][1] {
			t.Fatalf("pair %d = %s vs %s, want %s vs %s", i, w.A, w.B, want[i][0], want[i][1])
		}
		if w.AWins != 0 || w.BWins != 1 {
			t.Fatalf("pair %d wins = %d-%d, want 0-1", i, w.AWins, w.BWins)
		}
	}
}

func TestRankByMeanTotalValue(t *testing.T) {
	names := []string{"low", "high", "mid"}
	totals := []model.Vector{{1, 1}, {10, 20}, {5, 5}}

	ranked := RankByMeanTotalValue(names, totals)
	if ranked[0].Strategy != "high" || ranked[1].Strategy != "mid" || ranked[2].Strategy != "low" {
		t.Fatalf("ranking order = %+v", ranked)
	}
	if ranked[0].MeanTotalValue != 15 {
		t.Fatalf("top mean = %v, want 15", ranked[0].MeanTotalValue)
	}
}

func TestDescribe(t *testing.T) {
	v := model.Vector{1, 2, 3, 4, 5}
	d := Describe("test", v)

	if d.Count != 5 || d.Min != 1 || d.Max != 5 || d.Mean != 3 {
		t.Fatalf("unexpected stats: %+v", d)
	}
	if d.P50 != 3 {
		t.Fatalf("P50 = %v, want 3", d.P50)
	}
	// Interpolated order stats at the tails.
	if math.Abs(d.P05-1.2) > 1e-12 {
		t.Fatalf("P05 = %v, want 1.2", d.P05)
	}
	if math.Abs(d.P95-4.8) > 1e-12 {
		t.Fatalf("P95 = %v, want 4.8", d.P95)
	}
	if math.Abs(d.SpreadP95P05-3.6) > 1e-12 {
		t.Fatalf("Spread = %v, want 3.6", d.SpreadP95P05)
	}

	empty := Describe("empty", nil)
	if empty.Count != 0 || empty.Mean != 0 {
		t.Fatalf("unexpected empty stats: %+v", empty)
	}
}
