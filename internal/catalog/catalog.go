// Package catalog holds the in-memory phone-model catalog built from one
// workbook upload, and the session store that owns the current catalog.
package catalog

import (
	"math"
	"strings"

	"github.com/jotamaster/calculadora-precios-telefonos/internal/ingest"
)

// Offer is one operator's promotional terms for a phone model. Discount is a
// whole CLP amount; CLP carries no fractional unit.
type Offer struct {
	Name            string `json:"name"`
	Discount        int    `json:"discount"`
	PlanDescription string `json:"planDescription"`
	SkuPlan         string `json:"skuPlan"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
}

// PhoneModel is a phone identified by its trimmed equipment name, with the
// operator offers that mention it in workbook row order.
type PhoneModel struct {
	Name      string  `json:"name"`
	Operators []Offer `json:"operators"`
}

// Catalog is an insertion-ordered set of phone models keyed by name. Models
// appear in first-seen order; callers only ever see the ordered sequence.
type Catalog struct {
	models []*PhoneModel
	index  map[string]int
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Build folds normalized records into a catalog. The fold is a single
// left-to-right pass: no sorting, no deduplication, no merging. Repeated
// identical rows produce repeated offers, and running Build twice on the
// same input produces element-wise equal catalogs.
func Build(records []ingest.OfferRecord) *Catalog {
	c := New()
	for _, rec := range records {
		name := strings.TrimSpace(rec.EquipmentName)

		idx, ok := c.index[name]
		if !ok {
			idx = len(c.models)
			c.models = append(c.models, &PhoneModel{Name: name, Operators: []Offer{}})
			c.index[name] = idx
		}

		model := c.models[idx]
		model.Operators = append(model.Operators, Offer{
			Name:            rec.OperatorName,
			Discount:        int(math.Round(rec.Discount)),
			PlanDescription: rec.PlanDescription,
			SkuPlan:         rec.SkuPlan,
			StartDate:       rec.StartDate,
			EndDate:         rec.EndDate,
		})
	}
	return c
}

// Models returns the phone models in first-seen order.
func (c *Catalog) Models() []*PhoneModel {
	return c.models
}

// Find looks up a model by its exact name.
func (c *Catalog) Find(name string) (*PhoneModel, bool) {
	idx, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.models[idx], true
}

// Len returns the number of distinct models.
func (c *Catalog) Len() int {
	return len(c.models)
}

// FindOffer looks up an offer on a model by operator name. The first offer
// with a matching name wins, mirroring how the selection list resolves it.
func (m *PhoneModel) FindOffer(operatorName string) (*Offer, bool) {
	for i := range m.Operators {
		if m.Operators[i].Name == operatorName {
			return &m.Operators[i], true
		}
	}
	return nil, false
}
