package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/demmerichs/trading-strategies/internal/market"
	"github.com/demmerichs/trading-strategies/internal/sim"
	"github.com/demmerichs/trading-strategies/internal/strategy"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Lanes        int   `yaml:"lanes"`
	Years        int   `yaml:"years"`
	TicksPerYear int   `yaml:"ticks_per_year"`
	Seed         int64 `yaml:"seed"`

	Schedule ScheduleConfig `yaml:"schedule"`
	Market   MarketConfig   `yaml:"market"`
	Agents   []AgentConfig  `yaml:"agents"`
}

type ScheduleConfig struct {
	CashPerYear    float64 `yaml:"cash_per_year"`
	PayoutsPerYear int     `yaml:"payouts_per_year"`
}

type MarketConfig struct {
	// Model selects the price model: "geometric" or "identity".
	Model            string  `yaml:"model"`
	AnnualGrowth     float64 `yaml:"annual_growth"`
	AnnualVolatility float64 `yaml:"annual_volatility"`
}

type AgentConfig struct {
	// Type selects the strategy: "passive-holder", "fully-invested",
	// or "limit-order".
	Type string `yaml:"type"`

	// Limit-order parameters; zero values fall back to strategy defaults.
	WaitTicks  int     `yaml:"wait_ticks,omitempty"`
	LimitRatio float64 `yaml:"limit_ratio,omitempty"`
}

// Default returns the canonical scenario: 1000 lanes over 20 years at 10000
// ticks/year, 10000 cash/year in 500 payouts, an 11%/15% geometric market,
// and all three strategies registered.
func Default() *Config {
	return &Config{
		Lanes:        1000,
		Years:        20,
		TicksPerYear: 10000,
		Seed:         1,
		Schedule: ScheduleConfig{
			CashPerYear:    10000,
			PayoutsPerYear: 500,
		},
		Market: MarketConfig{
			Model:            "geometric",
			AnnualGrowth:     0.11,
			AnnualVolatility: 0.15,
		},
		Agents: []AgentConfig{
			{Type: "passive-holder"},
			{Type: "fully-invested"},
			{Type: "limit-order"},
		},
	}
}

func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate fails fast on any misconfiguration. It builds the schedule and
// price model the same way BuildRunner does, so a config that validates will
// also build.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Lanes < 1 {
		return errors.New("lanes must be >= 1")
	}
	if c.Years < 1 {
		return errors.New("years must be >= 1")
	}
	if c.TicksPerYear < 1 {
		return errors.New("ticks_per_year must be >= 1")
	}
	if len(c.Agents) == 0 {
		return errors.New("at least one agent is required")
	}
	if _, err := c.buildSchedule(); err != nil {
		return fmt.Errorf("schedule config invalid: %w", err)
	}
	if _, err := c.buildPriceModel(); err != nil {
		return fmt.Errorf("market config invalid: %w", err)
	}
	if _, err := c.buildStrategies(); err != nil {
		return err
	}
	return nil
}

// BuildRunner wires a fully configured runner: schedule, price model,
// strategies, market, all from this config.
func (c *Config) BuildRunner() (*sim.Runner, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	sched, err := c.buildSchedule()
	if err != nil {
		return nil, err
	}
	pm, err := c.buildPriceModel()
	if err != nil {
		return nil, err
	}
	strats, err := c.buildStrategies()
	if err != nil {
		return nil, err
	}
	m, err := sim.New(strats, sched, pm, c.Lanes)
	if err != nil {
		return nil, err
	}
	return sim.NewRunner(m, c.TicksPerYear)
}

func (c *Config) buildSchedule() (*market.PeriodicSchedule, error) {
	return market.NewPeriodicSchedule(c.Schedule.CashPerYear, c.Schedule.PayoutsPerYear, c.TicksPerYear)
}

func (c *Config) buildPriceModel() (market.PriceModel, error) {
	switch c.Market.Model {
	case "", "geometric":
		return market.NewGeometricModel(c.Market.AnnualGrowth, c.Market.AnnualVolatility, c.TicksPerYear, c.Seed)
	case "identity":
		return market.IdentityModel{}, nil
	default:
		return nil, fmt.Errorf("unknown price model %q", c.Market.Model)
	}
}

func (c *Config) buildStrategies() ([]strategy.Strategy, error) {
	out := make([]strategy.Strategy, 0, len(c.Agents))
	for _, a := range c.Agents {
		switch a.Type {
		case "passive-holder":
			out = append(out, strategy.PassiveHolder{})
		case "fully-invested":
			out = append(out, strategy.FullyInvested{})
		case "limit-order":
			out = append(out, strategy.NewLimitOrder(strategy.LimitOrderParams{
				WaitTicks:  a.WaitTicks,
				LimitRatio: a.LimitRatio,
			}))
		default:
			return nil, fmt.Errorf("unknown agent type %q", a.Type)
		}
	}
	return out, nil
}
