package models

// SimulateResponse is the response from a simulation run.
type SimulateResponse struct {
	ID      string            `json:"id"`
	Status  string            `json:"status"`
	Summary SimulationSummary `json:"summary"`
	Ledger  []LedgerRow       `json:"ledger,omitempty"`
}

// SimulationSummary contains the final-state results of a run.
type SimulationSummary struct {
	Lanes        int   `json:"lanes"`
	Years        int   `json:"years"`
	TicksPerYear int   `json:"ticks_per_year"`
	Seed         int64 `json:"seed"`

	FinalMeanMarketValue float64 `json:"final_mean_market_value"`

	Portfolios    []AgentPortfolio `json:"portfolios"`
	Rankings      []Ranking        `json:"rankings"`
	Pairwise      []PairwiseResult `json:"pairwise"`
	Distributions []Distribution   `json:"distributions"`
}

// AgentPortfolio is one agent's lane-mean snapshot.
type AgentPortfolio struct {
	Strategy   string  `json:"strategy"`
	Cash       float64 `json:"cash"`
	Depot      float64 `json:"depot"`
	TotalValue float64 `json:"total_value"`
}

// Ranking is one entry of the final strategy ranking.
type Ranking struct {
	Strategy       string  `json:"strategy"`
	MeanTotalValue float64 `json:"mean_total_value"`
}

// PairwiseResult is a per-lane win/loss tally between two strategies.
type PairwiseResult struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	AWins int     `json:"a_wins"`
	BWins int     `json:"b_wins"`
	ARate float64 `json:"a_rate"`
	BRate float64 `json:"b_rate"`
}

// Distribution summarizes an agent's total value across lanes.
type Distribution struct {
	Strategy string  `json:"strategy"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Mean     float64 `json:"mean"`
	Std      float64 `json:"std"`
	P05      float64 `json:"p05"`
	P50      float64 `json:"p50"`
	P95      float64 `json:"p95"`
}

// LedgerRow is one (year, agent) row of the yearly ledger.
type LedgerRow struct {
	Year            int     `json:"year"`
	MeanMarketValue float64 `json:"mean_market_value"`
	Strategy        string  `json:"strategy"`
	Cash            float64 `json:"cash"`
	Depot           float64 `json:"depot"`
	TotalValue      float64 `json:"total_value"`
}

// StrategyInfo describes an available strategy for discovery endpoints.
type StrategyInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters,omitempty"`
}

// ParameterInfo describes one strategy parameter.
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine code plus a human message.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
