package models

// SimulateRequest is the request body for running a simulation.
// Omitted config fields fall back to the server-side defaults.
type SimulateRequest struct {
	Config  SimulationConfig `json:"config" binding:"required"`
	Options SimulateOptions  `json:"options,omitempty"`
}

// SimulationConfig mirrors the YAML config shape for over-the-wire use.
type SimulationConfig struct {
	Lanes        int   `json:"lanes,omitempty"`
	Years        int   `json:"years,omitempty"`
	TicksPerYear int   `json:"ticks_per_year,omitempty"`
	Seed         int64 `json:"seed,omitempty"`

	Schedule *ScheduleConfig `json:"schedule,omitempty"`
	Market   *MarketConfig   `json:"market,omitempty"`
	Agents   []AgentConfig   `json:"agents,omitempty"`
}

type ScheduleConfig struct {
	CashPerYear    float64 `json:"cash_per_year"`
	PayoutsPerYear int     `json:"payouts_per_year"`
}

type MarketConfig struct {
	Model            string  `json:"model,omitempty"` // "geometric" or "identity"
	AnnualGrowth     float64 `json:"annual_growth"`
	AnnualVolatility float64 `json:"annual_volatility"`
}

type AgentConfig struct {
	Type       string  `json:"type" binding:"required"`
	WaitTicks  int     `json:"wait_ticks,omitempty"`
	LimitRatio float64 `json:"limit_ratio,omitempty"`
}

// SimulateOptions contains optional run parameters.
type SimulateOptions struct {
	IncludeLedger bool `json:"include_ledger,omitempty"` // default: false
}
