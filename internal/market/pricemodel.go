package market

import (
	"errors"
	"math"
	"math/rand"

	"github.com/demmerichs/trading-strategies/internal/model"
)

// PriceModel advances the per-lane market price by one tick.
type PriceModel interface {
	Name() string
	// Next returns the price vector for the next tick. Implementations must
	// not mutate values and must return a vector of the same lane count.
	Next(values model.Vector, tick int) model.Vector
}

// IdentityModel leaves the price unchanged every tick. Useful for
// deterministic runs and for isolating strategy behavior in tests.
type IdentityModel struct{}

func (IdentityModel) Name() string { return "identity" }

func (IdentityModel) Next(values model.Vector, _ int) model.Vector {
	return values.Clone()
}

// GeometricModel applies geometric growth with independent additive-normal
// per-tick shocks, one draw per lane per tick.
//
// Annual parameters are converted to per-tick equivalents at construction:
// the per-tick growth g solves (1+g)^ticksPerYear - 1 = annualGrowth (exact
// compounding), and the per-tick volatility is annualVolatility scaled by
// 1/sqrt(ticksPerYear).
//
// Known limitation: returns are additive-normal, not log-normal, so an
// extreme tail draw can push a lane's price to zero or below. Order sizing
// divides by the price, so such a run is economically meaningless from that
// tick on. This matches the reference model and is intentionally not clamped.
type GeometricModel struct {
	annualGrowth     float64
	annualVolatility float64
	tickGrowth       float64
	tickVolatility   float64
	rng              *rand.Rand
}

// NewGeometricModel converts the annual parameters to per-tick equivalents
// and seeds the model's random source. The same seed, lane count, and agent
// registration order reproduce a run exactly.
func NewGeometricModel(annualGrowth, annualVolatility float64, ticksPerYear int, seed int64) (*GeometricModel, error) {
	if ticksPerYear < 1 {
		return nil, errors.New("ticksPerYear must be >= 1")
	}
	if annualGrowth <= -1 {
		return nil, errors.New("annualGrowth must be > -1")
	}
	if annualVolatility < 0 {
		return nil, errors.New("annualVolatility must be >= 0")
	}
	return &GeometricModel{
		annualGrowth:     annualGrowth,
		annualVolatility: annualVolatility,
		tickGrowth:       math.Pow(1+annualGrowth, 1/float64(ticksPerYear)) - 1,
		tickVolatility:   annualVolatility / math.Sqrt(float64(ticksPerYear)),
		rng:              rand.New(rand.NewSource(seed)),
	}, nil
}

func (m *GeometricModel) Name() string { return "geometric" }

// TickGrowth returns the per-tick growth rate derived from the annual rate.
func (m *GeometricModel) TickGrowth() float64 { return m.tickGrowth }

// TickVolatility returns the per-tick standard deviation of the return.
func (m *GeometricModel) TickVolatility() float64 { return m.tickVolatility }

func (m *GeometricModel) Next(values model.Vector, _ int) model.Vector {
	out := make(model.Vector, len(values))
	for i := range values {
		r := m.tickGrowth + m.tickVolatility*m.rng.NormFloat64()
		out[i] = values[i] * (1 + r)
	}
	return out
}
