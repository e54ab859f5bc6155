package handlers

import (
	"net/http"

	"github.com/demmerichs/trading-strategies/internal/api/models"
	"github.com/demmerichs/trading-strategies/internal/config"
	"github.com/demmerichs/trading-strategies/internal/sim"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SimulateHandler handles simulation runs.
type SimulateHandler struct{}

func NewSimulateHandler() *SimulateHandler {
	return &SimulateHandler{}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	cfg := buildConfig(req.Config)
	if err := cfg.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	runner, err := cfg.BuildRunner()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	ledger := runner.Run(cfg.Years)
	result := runner.Summarize(ledger)

	resp := models.SimulateResponse{
		ID:      uuid.NewString(),
		Status:  "completed",
		Summary: buildSummary(cfg, result),
	}
	if req.Options.IncludeLedger {
		resp.Ledger = buildLedger(ledger)
	}

	c.JSON(http.StatusOK, resp)
}

// buildConfig overlays the request onto the default scenario, so clients
// only send the fields they care about.
func buildConfig(in models.SimulationConfig) *config.Config {
	cfg := config.Default()
	if in.Lanes > 0 {
		cfg.Lanes = in.Lanes
	}
	if in.Years > 0 {
		cfg.Years = in.Years
	}
	if in.TicksPerYear > 0 {
		cfg.TicksPerYear = in.TicksPerYear
	}
	if in.Seed != 0 {
		cfg.Seed = in.Seed
	}
	if in.Schedule != nil {
		cfg.Schedule = config.ScheduleConfig{
			CashPerYear:    in.Schedule.CashPerYear,
			PayoutsPerYear: in.Schedule.PayoutsPerYear,
		}
	}
	if in.Market != nil {
		cfg.Market = config.MarketConfig{
			Model:            in.Market.Model,
			AnnualGrowth:     in.Market.AnnualGrowth,
			AnnualVolatility: in.Market.AnnualVolatility,
		}
	}
	if len(in.Agents) > 0 {
		cfg.Agents = cfg.Agents[:0]
		for _, a := range in.Agents {
			cfg.Agents = append(cfg.Agents, config.AgentConfig{
				Type:       a.Type,
				WaitTicks:  a.WaitTicks,
				LimitRatio: a.LimitRatio,
			})
		}
	}
	return cfg
}

func buildSummary(cfg *config.Config, result sim.Result) models.SimulationSummary {
	s := models.SimulationSummary{
		Lanes:                cfg.Lanes,
		Years:                cfg.Years,
		TicksPerYear:         cfg.TicksPerYear,
		Seed:                 cfg.Seed,
		FinalMeanMarketValue: result.FinalMeanMarketValue,
	}
	for _, p := range result.FinalPortfolios {
		s.Portfolios = append(s.Portfolios, models.AgentPortfolio{
			Strategy:   p.Strategy,
			Cash:       p.Portfolio.Cash,
			Depot:      p.Portfolio.Depot,
			TotalValue: p.Portfolio.TotalValue,
		})
	}
	for _, r := range result.Rankings {
		s.Rankings = append(s.Rankings, models.Ranking{
			Strategy:       r.Strategy,
			MeanTotalValue: r.MeanTotalValue,
		})
	}
	for _, w := range result.Pairwise {
		s.Pairwise = append(s.Pairwise, models.PairwiseResult{
			A: w.A, B: w.B,
			AWins: w.AWins, BWins: w.BWins,
			ARate: w.ARate, BRate: w.BRate,
		})
	}
	for _, d := range result.Distributions {
		s.Distributions = append(s.Distributions, models.Distribution{
			Strategy: d.Name,
			Min:      d.Min,
			Max:      d.Max,
			Mean:     d.Mean,
			Std:      d.Std,
			P05:      d.P05,
			P50:      d.P50,
			P95:      d.P95,
		})
	}
	return s
}

func buildLedger(rows []sim.YearRow) []models.LedgerRow {
	var out []models.LedgerRow
	for _, r := range rows {
		for _, a := range r.Agents {
			out = append(out, models.LedgerRow{
				Year:            r.Year,
				MeanMarketValue: r.MeanMarketValue,
				Strategy:        a.Strategy,
				Cash:            a.Portfolio.Cash,
				Depot:           a.Portfolio.Depot,
				TotalValue:      a.Portfolio.TotalValue,
			})
		}
	}
	return out
}
