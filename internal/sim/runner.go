package sim

import (
	"errors"

	"github.com/demmerichs/trading-strategies/internal/analysis"
	"github.com/demmerichs/trading-strategies/internal/model"
)

// Runner drives a market in year-sized batches and records a yearly ledger.
type Runner struct {
	market       *Market
	ticksPerYear int
	year         int
}

func NewRunner(m *Market, ticksPerYear int) (*Runner, error) {
	if m == nil {
		return nil, errors.New("market is nil")
	}
	if ticksPerYear < 1 {
		return nil, errors.New("ticksPerYear must be >= 1")
	}
	return &Runner{market: m, ticksPerYear: ticksPerYear}, nil
}

// Market exposes the underlying market for read access.
func (r *Runner) Market() *Market { return r.market }

// RunYear advances the market by one simulated year and returns its row.
func (r *Runner) RunYear() YearRow {
	for i := 0; i < r.ticksPerYear; i++ {
		r.market.Tick()
	}
	r.year++
	return r.snapshot()
}

// Run advances the market by the given number of years.
func (r *Runner) Run(years int) []YearRow {
	rows := make([]YearRow, 0, years)
	for y := 0; y < years; y++ {
		rows = append(rows, r.RunYear())
	}
	return rows
}

// Summarize assembles a Result from an already-produced ledger and the
// market's current (final) state.
func (r *Runner) Summarize(ledger []YearRow) Result {
	mv := r.market.MarketValue()
	names, totals := r.totals(mv)

	res := Result{
		Ledger:               ledger,
		FinalMeanMarketValue: mv.Mean(),
		Rankings:             analysis.RankByMeanTotalValue(names, totals),
		Pairwise:             analysis.Pairwise(names, totals),
	}
	for i, a := range r.market.Agents() {
		res.FinalPortfolios = append(res.FinalPortfolios, AgentYear{
			Strategy:  a.Name(),
			Portfolio: a.Portfolio(mv),
		})
		res.Distributions = append(res.Distributions, analysis.Describe(names[i], totals[i]))
	}
	return res
}

func (r *Runner) snapshot() YearRow {
	mv := r.market.MarketValue()
	row := YearRow{
		Year:            r.year,
		MeanMarketValue: mv.Mean(),
	}
	names, totals := r.totals(mv)
	for _, a := range r.market.Agents() {
		row.Agents = append(row.Agents, AgentYear{
			Strategy:  a.Name(),
			Portfolio: a.Portfolio(mv),
		})
	}
	row.Pairwise = analysis.Pairwise(names, totals)
	return row
}

func (r *Runner) totals(mv model.Vector) ([]string, []model.Vector) {
	agents := r.market.Agents()
	names := make([]string, len(agents))
	totals := make([]model.Vector, len(agents))
	for i, a := range agents {
		names[i] = a.Name()
		totals[i] = a.TotalValue(mv)
	}
	return names, totals
}
