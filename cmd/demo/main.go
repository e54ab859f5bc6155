package main

import (
	"flag"
	"fmt"

	"github.com/demmerichs/trading-strategies/internal/market"
	"github.com/demmerichs/trading-strategies/internal/model"
	"github.com/demmerichs/trading-strategies/internal/sim"
	"github.com/demmerichs/trading-strategies/internal/strategy"
)

// Demo:
// - Build a 1-lane market with an identity price model, so every number is
//   exactly predictable.
// - Pay out 100 cash every tick and let a passive holder and a fully
//   invested agent trade side by side to show how the pieces fit together.
func main() {
	ticks := flag.Int("n", 5, "Number of ticks to simulate")
	flag.Parse()

	// ticksPerYear == payoutsPerYear makes the schedule fire every tick.
	sched, err := market.NewPeriodicSchedule(100*float64(*ticks), *ticks, *ticks)
	if err != nil {
		panic(err)
	}

	m, err := sim.New(
		[]strategy.Strategy{strategy.PassiveHolder{}, strategy.FullyInvested{}},
		sched,
		market.IdentityModel{},
		1,
	)
	if err != nil {
		panic(err)
	}

	fmt.Printf("1-lane market, identity price model, payout 100 per tick\n")
	for i := 0; i < *ticks; i++ {
		before := make([]float64, len(m.Agents()))
		for j, a := range m.Agents() {
			before[j] = a.Cash[0]
		}

		m.Tick()

		fmt.Printf("\ntick %d\tmarket value: %.4f\n", m.TickCount(), m.MarketValue()[0])
		for j, a := range m.Agents() {
			spent := before[j] + sched.Amount(m.TickCount()-1) - a.Cash[0]
			// spent is the executed notional this tick; label it for readability.
			fmt.Printf("%s\t%-4s\tcash=%.2f depot=%.2f total=%.2f\n",
				a.Name(),
				model.ActionFromNotional(spent),
				a.Cash[0], a.Depot[0], a.TotalValue(m.MarketValue())[0])
		}
	}

	fmt.Println()
	for _, a := range m.Agents() {
		p := a.Portfolio(m.MarketValue())
		fmt.Printf("%s final portfolio: cash=%.2f depot=%.2f total_value=%.2f\n",
			a.Name(), p.Cash, p.Depot, p.TotalValue)
	}
}
