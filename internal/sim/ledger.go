package sim

import (
	"github.com/demmerichs/trading-strategies/internal/analysis"
	"github.com/demmerichs/trading-strategies/internal/model"
)

// AgentYear is one agent's snapshot at a year boundary.
type AgentYear struct {
	Strategy  string
	Portfolio model.Portfolio
}

// YearRow is one simulated year of output. This is the primary artifact for
// "what happened" in a run: the mean price level plus every agent's
// portfolio and the pairwise win/loss tallies across lanes.
type YearRow struct {
	Year int

	MeanMarketValue float64

	Agents   []AgentYear
	Pairwise []analysis.WinLoss
}

// Result is a full run: the yearly ledger plus final-state summaries.
type Result struct {
	Ledger []YearRow

	FinalMeanMarketValue float64
	FinalPortfolios      []AgentYear
	Rankings             []analysis.RankedStrategy
	Pairwise             []analysis.WinLoss
	Distributions        []analysis.Distribution
}
