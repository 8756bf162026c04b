package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/lahermandad/internal/domain/catalog"
	"github.com/BruksfildServices01/lahermandad/internal/httperr"
	"github.com/BruksfildServices01/lahermandad/internal/httpresp"
	"github.com/BruksfildServices01/lahermandad/internal/pricing"
	"github.com/BruksfildServices01/lahermandad/internal/validators"
)

type CalculatorHandler struct {
	products catalog.ProductRepository
}

func NewCalculatorHandler(products catalog.ProductRepository) *CalculatorHandler {
	return &CalculatorHandler{products: products}
}

// Calculate returns price suggestions for the cost and, when a sell price
// is given, the margin analysis. Without an explicit cost the selected
// product's price is used.
func (h *CalculatorHandler) Calculate(c *gin.Context) {
	var req validators.PricingForm
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if ve := validators.Struct(req); ve != nil {
		httperr.Validation(c, ve)
		return
	}

	cost := decimal.Zero
	switch {
	case strings.TrimSpace(req.Cost) != "":
		cost = decimal.RequireFromString(strings.TrimSpace(req.Cost))
	case req.ProductID != nil:
		p, err := h.products.Get(c.Request.Context(), *req.ProductID)
		if err != nil {
			writeError(c, "product_lookup_failed", err)
			return
		}
		cost = p.Price
	}

	suggestions, err := pricing.Suggest(cost)
	if err != nil {
		writeError(c, "", err)
		return
	}

	resp := gin.H{
		"cost":        cost.Round(2),
		"suggestions": suggestions,
	}

	if sell := strings.TrimSpace(req.SellPrice); sell != "" {
		analysis, err := pricing.Analyze(cost, decimal.RequireFromString(sell))
		if err != nil {
			writeError(c, "", err)
			return
		}
		resp["analysis"] = analysis
	}

	httpresp.OK(c, resp)
}
