package sim

import (
	"errors"

	"github.com/demmerichs/trading-strategies/internal/market"
	"github.com/demmerichs/trading-strategies/internal/model"
	"github.com/demmerichs/trading-strategies/internal/strategy"
)

// Market owns the simulation clock, the per-lane price vector, and the
// agents. Each Tick it sequences cash injection, trading, and price
// evolution, in that order, across all lanes at once.
//
// Agents trade in registration order. With private cash per agent the order
// has no economic effect, but it must stay fixed so a run is reproducible
// for a given seed.
type Market struct {
	agents     []*Agent
	schedule   market.Schedule
	priceModel market.PriceModel

	tickCount   int
	marketValue model.Vector
}

// New builds a market with one agent per strategy, all starting at zero cash
// and zero holdings, and the price at 1.0 in every lane.
func New(strategies []strategy.Strategy, schedule market.Schedule, priceModel market.PriceModel, lanes int) (*Market, error) {
	if lanes < 1 {
		return nil, errors.New("lanes must be >= 1")
	}
	if len(strategies) == 0 {
		return nil, errors.New("at least one strategy is required")
	}
	if schedule == nil {
		return nil, errors.New("schedule is nil")
	}
	if priceModel == nil {
		return nil, errors.New("price model is nil")
	}

	agents := make([]*Agent, 0, len(strategies))
	for _, s := range strategies {
		if s == nil {
			return nil, errors.New("strategy is nil")
		}
		agents = append(agents, NewAgent(s, lanes))
	}

	return &Market{
		agents:      agents,
		schedule:    schedule,
		priceModel:  priceModel,
		marketValue: model.Ones(lanes),
	}, nil
}

// Tick advances the simulation by exactly one step:
// inject cash, let each agent trade, advance the price, increment the clock.
func (m *Market) Tick() {
	injection := m.schedule.Amount(m.tickCount)
	for _, a := range m.agents {
		a.Cash.AddScalar(injection)
	}
	for _, a := range m.agents {
		m.trade(a)
	}
	m.marketValue = m.priceModel.Next(m.marketValue, m.tickCount)
	m.tickCount++
}

// trade settles one agent's order against the market. The requested notional
// is clamped per lane to the agent's cash (partial fill, never rejection),
// and the executed quantity is re-derived from the clamped notional.
func (m *Market) trade(a *Agent) {
	order := a.Strategy.Order(strategy.Context{
		Tick:        m.tickCount,
		MarketValue: m.marketValue,
		Cash:        a.Cash,
		Depot:       a.Depot,
	})
	orderValue := model.Min(model.Mul(m.marketValue, order), a.Cash)
	order = model.Div(orderValue, m.marketValue)
	a.Cash.Sub(orderValue)
	a.Depot.Add(order)
}

// TickCount returns the number of completed ticks.
func (m *Market) TickCount() int { return m.tickCount }

// MarketValue returns the live per-lane price vector. Callers must treat it
// as read-only.
func (m *Market) MarketValue() model.Vector { return m.marketValue }

// Agents returns the agents in registration order.
func (m *Market) Agents() []*Agent { return m.agents }

// Lanes returns the number of Monte-Carlo lanes.
func (m *Market) Lanes() int { return len(m.marketValue) }
