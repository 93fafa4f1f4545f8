package ingest

// Canonical column keys expected in a promotions workbook. Headers are matched
// after canonicalization, so "Sku Plan" and "SKU PLAN" resolve to the same key.
const (
	ColStartDate   = "INICIO"
	ColEndDate     = "FIN"
	ColOperator    = "OPERADOR"
	ColSkuPlan     = "SKU_PLAN"
	ColSkuPlanAlt  = "SKUPLAN"
	ColPlanDesc    = "DESCRIPCION_PLAN"
	ColPlanDescAlt = "DESCRIPCIONPLAN"
	ColDiscount    = "DTO"
	ColBrand       = "MARCA"
	ColEquipment   = "EQUIPO"
)

// OfferRecord is one promotion row after column matching and coercion.
// Dates are kept as free-form text exactly as they appear in the sheet.
type OfferRecord struct {
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	OperatorName    string  `json:"operatorName"`
	SkuPlan         string  `json:"skuPlan"`
	PlanDescription string  `json:"planDescription"`
	Discount        float64 `json:"discount"`
	Brand           string  `json:"brand"`
	EquipmentName   string  `json:"equipmentName"`
}
