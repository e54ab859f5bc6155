package strategy

import "github.com/demmerichs/trading-strategies/internal/model"

// FullyInvested converts all available cash to asset units every tick.
// Since prior ticks already zeroed its cash, in practice it spends exactly
// what was injected that tick.
type FullyInvested struct{}

func (FullyInvested) Name() string { return "fully-invested" }

func (FullyInvested) Order(ctx Context) model.Vector {
	return model.Div(ctx.Cash, ctx.MarketValue)
}
