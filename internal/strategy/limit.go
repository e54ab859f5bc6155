package strategy

import "github.com/demmerichs/trading-strategies/internal/model"

// LimitOrderParams tunes the limit-order strategy.
type LimitOrderParams struct {
	// WaitTicks is how often the limit price is re-checkpointed.
	WaitTicks int
	// LimitRatio scales the market value at the checkpoint into the limit.
	LimitRatio float64
}

// LimitOrder buys only while the price has not risen above a stale limit.
// Every WaitTicks ticks it re-checkpoints a per-lane limit price as
// LimitRatio * market value; between checkpoints the limit is retained as
// persistent state, so lanes whose price climbed past it sit out until the
// next checkpoint.
type LimitOrder struct {
	Params LimitOrderParams

	limit model.Vector
}

// NewLimitOrder applies defaults for unset params: WaitTicks 10,
// LimitRatio 0.9999.
func NewLimitOrder(params LimitOrderParams) *LimitOrder {
	if params.WaitTicks <= 0 {
		params.WaitTicks = 10
	}
	if params.LimitRatio <= 0 {
		params.LimitRatio = 0.9999
	}
	return &LimitOrder{Params: params}
}

func (s *LimitOrder) Name() string { return "limit-order" }

func (s *LimitOrder) Order(ctx Context) model.Vector {
	if ctx.Tick%s.Params.WaitTicks == 0 || s.limit == nil {
		limit := make(model.Vector, len(ctx.MarketValue))
		for i, v := range ctx.MarketValue {
			limit[i] = v * s.Params.LimitRatio
		}
		s.limit = limit
	}

	order := model.Div(ctx.Cash, ctx.MarketValue)
	for i, v := range ctx.MarketValue {
		if v > s.limit[i] {
			order[i] = 0
		}
	}
	return order
}
