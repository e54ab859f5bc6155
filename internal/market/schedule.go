package market

import (
	"fmt"
	"strings"
)

// Schedule yields the cash credited to every agent at a given tick.
// The same amount goes to every agent in every lane.
type Schedule interface {
	Name() string
	Amount(tick int) float64
}

// PeriodicSchedule pays a flat amount at a fixed tick interval, modeling
// lump-sum periodic income (e.g. wages) rather than a continuous drip.
type PeriodicSchedule struct {
	cashPerYear    float64
	payoutsPerYear int
	payoutEvery    int
	payout         float64
}

// NewPeriodicSchedule splits cashPerYear into payoutsPerYear equal payouts.
// ticksPerYear must be evenly divisible by payoutsPerYear; anything else
// would silently shift payout timing, so it fails at construction instead.
func NewPeriodicSchedule(cashPerYear float64, payoutsPerYear, ticksPerYear int) (*PeriodicSchedule, error) {
	if cashPerYear < 0 {
		return nil, fmt.Errorf("cashPerYear must be >= 0, got %v", cashPerYear)
	}
	if payoutsPerYear < 1 {
		return nil, fmt.Errorf("payoutsPerYear must be >= 1, got %d", payoutsPerYear)
	}
	if ticksPerYear < 1 {
		return nil, fmt.Errorf("ticksPerYear must be >= 1, got %d", ticksPerYear)
	}
	if ticksPerYear%payoutsPerYear != 0 {
		return nil, fmt.Errorf("ticksPerYear (%d) must be divisible by payoutsPerYear (%d)", ticksPerYear, payoutsPerYear)
	}
	return &PeriodicSchedule{
		cashPerYear:    cashPerYear,
		payoutsPerYear: payoutsPerYear,
		payoutEvery:    ticksPerYear / payoutsPerYear,
		payout:         cashPerYear / float64(payoutsPerYear),
	}, nil
}

func (s *PeriodicSchedule) Name() string { return "periodic" }

// Amount returns the payout at ticks 0, payoutEvery, 2*payoutEvery, ...
// and zero at every other tick.
func (s *PeriodicSchedule) Amount(tick int) float64 {
	if tick%s.payoutEvery == 0 {
		return s.payout
	}
	return 0
}

// Describe returns a human-readable summary of the schedule parameters.
func (s *PeriodicSchedule) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "cash per year\t%v\n", s.cashPerYear)
	fmt.Fprintf(&b, "payouts per year\t%d\n", s.payoutsPerYear)
	fmt.Fprintf(&b, "regular payout\t%v\n", s.payout)
	return b.String()
}
