package sim

import (
	"github.com/demmerichs/trading-strategies/internal/model"
	"github.com/demmerichs/trading-strategies/internal/strategy"
)

// Agent pairs a strategy with its per-lane holdings. The engine owns the
// holdings for the lifetime of a run: it credits injections and settles
// trades, and nothing else mutates Cash or Depot.
type Agent struct {
	Strategy strategy.Strategy

	Cash  model.Vector
	Depot model.Vector
}

// NewAgent creates an agent with zero cash and zero holdings in every lane.
func NewAgent(strat strategy.Strategy, lanes int) *Agent {
	return &Agent{
		Strategy: strat,
		Cash:     model.Zeros(lanes),
		Depot:    model.Zeros(lanes),
	}
}

// Name returns the strategy's stable display tag.
func (a *Agent) Name() string { return a.Strategy.Name() }

// TotalValue returns the per-lane mark-to-market net worth,
// cash + depot * market value.
func (a *Agent) TotalValue(marketValue model.Vector) model.Vector {
	total := model.Mul(a.Depot, marketValue)
	total.Add(a.Cash)
	return total
}

// Portfolio returns the lane-mean snapshot of the agent's state.
func (a *Agent) Portfolio(marketValue model.Vector) model.Portfolio {
	return model.Portfolio{
		Cash:       a.Cash.Mean(),
		Depot:      a.Depot.Mean(),
		TotalValue: a.TotalValue(marketValue).Mean(),
	}
}
