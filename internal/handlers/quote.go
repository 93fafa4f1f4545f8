package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jotamaster/calculadora-precios-telefonos/internal/pricing"
	"github.com/jotamaster/calculadora-precios-telefonos/internal/telemetry"
)

// QuoteRequest asks for a final price for one model/operator pair. BasePrice
// is free text as the promoter typed it, formatted or not.
type QuoteRequest struct {
	Model     string `json:"model" binding:"required"`
	Operator  string `json:"operator"`
	BasePrice string `json:"basePrice"`
}

// QuoteDisplay carries the CLP-rendered amounts for the quote.
type QuoteDisplay struct {
	BasePrice  string `json:"basePrice"`
	Discount   string `json:"discount"`
	FinalPrice string `json:"finalPrice"`
}

// QuoteResponse represents the quote computation result. When the quote is
// suppressed (no operator selected, or no parseable base price) Computed is
// false and the amounts are absent, not zero.
type QuoteResponse struct {
	Computed   bool          `json:"computed"`
	BasePrice  *int          `json:"basePrice,omitempty"`
	Discount   *int          `json:"discount,omitempty"`
	FinalPrice *int          `json:"finalPrice,omitempty"`
	Display    *QuoteDisplay `json:"display,omitempty"`
}

// QuotePrice computes base price minus the selected offer's discount.
// POST /api/quote
//
// A discount larger than the base price yields a negative final price; that
// is passed through and displayed as a negative amount, not clamped.
func (a *API) QuotePrice(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model, ok := a.store.Find(req.Model)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "phone model not found"})
		return
	}

	// An operator name that matches nothing behaves like no selection.
	offer, _ := model.FindOffer(req.Operator)

	quote, computed := pricing.Compute(req.BasePrice, offer)
	telemetry.ObserveQuote(computed)

	if !computed {
		c.JSON(http.StatusOK, QuoteResponse{Computed: false})
		return
	}

	c.JSON(http.StatusOK, QuoteResponse{
		Computed:   true,
		BasePrice:  &quote.BasePrice,
		Discount:   &quote.Offer.Discount,
		FinalPrice: &quote.FinalPrice,
		Display: &QuoteDisplay{
			BasePrice:  pricing.FormatCLP(quote.BasePrice),
			Discount:   pricing.FormatCLP(quote.Offer.Discount),
			FinalPrice: pricing.FormatCLP(quote.FinalPrice),
		},
	})
}
