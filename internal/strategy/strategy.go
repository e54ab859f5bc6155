package strategy

import "github.com/demmerichs/trading-strategies/internal/model"

// Context is the read-only view a strategy sees when deciding an order.
// MarketValue, Cash, and Depot are per-lane vectors owned by the engine;
// strategies must not modify them.
type Context struct {
	Tick        int
	MarketValue model.Vector
	Cash        model.Vector
	Depot       model.Vector
}

// Strategy decides, per lane, how many asset units to try to buy this tick.
// Orders are conventionally non-negative; the engine clamps the notional to
// the agent's available cash, so over-asking is harmless.
type Strategy interface {
	Name() string
	Order(ctx Context) model.Vector
}
