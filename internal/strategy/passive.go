package strategy

import "github.com/demmerichs/trading-strategies/internal/model"

// PassiveHolder never invests. Cash accumulates with no market exposure,
// which makes it the baseline every other strategy is compared against.
type PassiveHolder struct{}

func (PassiveHolder) Name() string { return "passive-holder" }

func (PassiveHolder) Order(ctx Context) model.Vector {
	return model.Zeros(len(ctx.Cash))
}
