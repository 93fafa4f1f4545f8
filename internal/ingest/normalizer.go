package ingest

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// CanonicalKey normalizes a header cell into a canonical column key:
// runs of whitespace become "_", dots are stripped, and the result is
// upper-cased. "Sku Plan." and "SKU PLAN" both resolve to "SKU_PLAN".
func CanonicalKey(header string) string {
	key := whitespaceRun.ReplaceAllString(header, "_")
	key = strings.ReplaceAll(key, ".", "")
	return strings.ToUpper(key)
}

// headerRowIndex finds the header row: the first row with a cell whose text
// contains "INICIO". Sheets from the operators routinely carry title and
// legend rows above the real header. When no row matches, row 0 is assumed.
func headerRowIndex(grid [][]string) int {
	for i, row := range grid {
		for _, cell := range row {
			if strings.Contains(cell, ColStartDate) {
				return i
			}
		}
	}
	return 0
}

// Normalize turns a raw cell grid into offer records, in row order. Rows at
// or before the header row and all-empty rows are dropped. Missing or
// malformed fields degrade to zero values; nothing here fails. The sheets
// come from non-technical sources and are expected to be inconsistent.
func Normalize(grid [][]string) []OfferRecord {
	if len(grid) == 0 {
		return []OfferRecord{}
	}

	headerRow := headerRowIndex(grid)

	keys := make(map[string]int)
	for i, cell := range grid[headerRow] {
		if strings.TrimSpace(cell) == "" {
			continue
		}
		// Duplicate headers resolve to the rightmost column.
		keys[CanonicalKey(cell)] = i
	}

	records := make([]OfferRecord, 0, len(grid))
	for i := headerRow + 1; i < len(grid); i++ {
		row := grid[i]
		if len(row) == 0 || isEmptyRow(row) {
			continue
		}

		lookup := func(key string) string {
			idx, ok := keys[key]
			if !ok || idx >= len(row) {
				return ""
			}
			return row[idx]
		}
		lookupAny := func(key, alt string) string {
			if v := lookup(key); v != "" {
				return v
			}
			return lookup(alt)
		}

		records = append(records, OfferRecord{
			StartDate:       lookup(ColStartDate),
			EndDate:         lookup(ColEndDate),
			OperatorName:    lookup(ColOperator),
			SkuPlan:         lookupAny(ColSkuPlan, ColSkuPlanAlt),
			PlanDescription: lookupAny(ColPlanDesc, ColPlanDescAlt),
			Discount:        parseDiscount(lookup(ColDiscount)),
			Brand:           lookup(ColBrand),
			EquipmentName:   lookup(ColEquipment),
		})
	}

	log.Debug().
		Int("headerRow", headerRow).
		Int("gridRows", len(grid)).
		Int("records", len(records)).
		Msg("normalized workbook rows")

	return records
}

// parseDiscount coerces a discount cell to a number. Non-numeric or missing
// input yields 0; negative values pass through untouched.
func parseDiscount(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Debug().Str("raw", value).Msg("discount cell is not numeric, using 0")
		return 0
	}
	return parsed
}

// isEmptyRow checks if every cell in a row is empty or whitespace.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
