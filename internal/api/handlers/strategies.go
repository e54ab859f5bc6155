package handlers

import (
	"net/http"

	"github.com/demmerichs/trading-strategies/internal/api/models"

	"github.com/gin-gonic/gin"
)

// StrategiesHandler handles strategy discovery requests.
type StrategiesHandler struct{}

func NewStrategiesHandler() *StrategiesHandler {
	return &StrategiesHandler{}
}

// ListStrategies handles GET /api/v1/strategies
func (h *StrategiesHandler) ListStrategies(c *gin.Context) {
	strategies := []models.StrategyInfo{
		{
			Name:        "passive-holder",
			Description: "Never invests. Cash accumulates with no market exposure; the baseline for comparisons.",
		},
		{
			Name:        "fully-invested",
			Description: "Converts all available cash to asset units every tick.",
		},
		{
			Name:        "limit-order",
			Description: "Re-checkpoints a limit price periodically and only buys while the price has not risen above it.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "wait_ticks",
					Type:        "int",
					Description: "Ticks between limit price checkpoints",
					Default:     10,
				},
				{
					Name:        "limit_ratio",
					Type:        "float",
					Description: "Fraction of the checkpoint market value used as the limit",
					Default:     0.9999,
				},
			},
		},
	}

	c.JSON(http.StatusOK, gin.H{"strategies": strategies})
}
