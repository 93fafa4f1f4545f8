package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jotamaster/calculadora-precios-telefonos/internal/catalog"
	"github.com/jotamaster/calculadora-precios-telefonos/internal/pricing"
)

// ListPhonesRequest represents query parameters for listing phone models
type ListPhonesRequest struct {
	Query    string `form:"q"`
	Operator string `form:"operator"`
}

// PhoneSummary is one catalog entry in the list view.
type PhoneSummary struct {
	Name       string   `json:"name"`
	OfferCount int      `json:"offerCount"`
	Operators  []string `json:"operators"`
}

// ListPhonesResponse represents the catalog list response
type ListPhonesResponse struct {
	Models  []PhoneSummary `json:"models"`
	Total   int            `json:"total"`
	HasData bool           `json:"hasData"`
}

// OfferView is an offer enriched with its operator chip color.
type OfferView struct {
	catalog.Offer
	Color           string `json:"color"`
	DiscountDisplay string `json:"discountDisplay"`
}

// PhoneDetailResponse represents the detail view of one phone model
type PhoneDetailResponse struct {
	Name   string      `json:"name"`
	Offers []OfferView `json:"offers"`
}

// ListPhones returns the catalog in first-seen order, optionally filtered by
// a case-insensitive name substring and by operator name.
// GET /api/phones?q=&operator=
func (a *API) ListPhones(c *gin.Context) {
	var req ListPhonesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	current, hasData := a.store.Snapshot()

	needle := strings.ToLower(req.Query)
	models := []PhoneSummary{}
	for _, model := range current.Models() {
		if needle != "" && !strings.Contains(strings.ToLower(model.Name), needle) {
			continue
		}
		if req.Operator != "" {
			if _, ok := model.FindOffer(req.Operator); !ok {
				continue
			}
		}

		operators := make([]string, 0, len(model.Operators))
		for _, offer := range model.Operators {
			operators = append(operators, offer.Name)
		}
		models = append(models, PhoneSummary{
			Name:       model.Name,
			OfferCount: len(model.Operators),
			Operators:  operators,
		})
	}

	c.JSON(http.StatusOK, ListPhonesResponse{
		Models:  models,
		Total:   len(models),
		HasData: hasData,
	})
}

// GetPhone returns one phone model with its offers. The name path segment is
// URL-encoded by the caller; gin decodes it before it reaches the handler.
// GET /api/phones/:name
func (a *API) GetPhone(c *gin.Context) {
	name := c.Param("name")

	model, ok := a.store.Find(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "phone model not found"})
		return
	}

	offers := make([]OfferView, 0, len(model.Operators))
	for _, offer := range model.Operators {
		offers = append(offers, OfferView{
			Offer:           offer,
			Color:           pricing.BrandColor(offer.Name),
			DiscountDisplay: pricing.FormatCLP(offer.Discount),
		})
	}

	c.JSON(http.StatusOK, PhoneDetailResponse{
		Name:   model.Name,
		Offers: offers,
	})
}
