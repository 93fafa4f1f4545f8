package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Space to underscore", "SKU PLAN", "SKU_PLAN"},
		{"Strip dots", "DTO.", "DTO"},
		{"Upper-case", "operador", "OPERADOR"},
		{"Run of whitespace", "DESCRIPCION   PLAN", "DESCRIPCION_PLAN"},
		{"Tab and dot", "Sku\tPlan.", "SKU_PLAN"},
		{"Already canonical", "EQUIPO", "EQUIPO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanonicalKey(tt.input))
		})
	}
}

func TestHeaderRowDetection(t *testing.T) {
	grid := [][]string{
		{},
		{"Promociones MSM", ""},
		{"FECHA INICIO", "FIN", "OPERADOR", "EQUIPO", "DTO."},
		{"01-06", "30-06", "CLARO", "iPhone 15", "1000"},
	}

	records := Normalize(grid)
	require.Len(t, records, 1)
	assert.Equal(t, "CLARO", records[0].OperatorName)
	assert.Equal(t, "iPhone 15", records[0].EquipmentName)
	assert.Equal(t, float64(1000), records[0].Discount)
}

// Without any cell containing "INICIO" the first row is assumed to be the
// header, even when it is not one.
func TestHeaderRowFallback(t *testing.T) {
	grid := [][]string{
		{"FECHA", "OPERADOR", "EQUIPO"},
		{"01-06", "ENTEL", "Galaxy S24"},
	}

	records := Normalize(grid)
	require.Len(t, records, 1)
	assert.Equal(t, "ENTEL", records[0].OperatorName)
	assert.Equal(t, "", records[0].StartDate)
}

func TestColumnAliasEquivalence(t *testing.T) {
	base := [][]string{
		{"INICIO", "SKU_PLAN", "DESCRIPCION_PLAN", "EQUIPO"},
		{"01-06", "SKU-001", "Plan 50GB", "iPhone 15"},
	}
	alias := [][]string{
		{"INICIO", "SKUPLAN", "DESCRIPCIONPLAN", "EQUIPO"},
		{"01-06", "SKU-001", "Plan 50GB", "iPhone 15"},
	}

	baseRecords := Normalize(base)
	aliasRecords := Normalize(alias)
	require.Len(t, baseRecords, 1)
	require.Len(t, aliasRecords, 1)
	assert.Equal(t, baseRecords[0].SkuPlan, aliasRecords[0].SkuPlan)
	assert.Equal(t, baseRecords[0].PlanDescription, aliasRecords[0].PlanDescription)
}

func TestDiscountCoercion(t *testing.T) {
	tests := []struct {
		name     string
		cell     string
		expected float64
	}{
		{"Plain integer", "1990", 1990},
		{"Float", "1990.5", 1990.5},
		{"Non-numeric", "abc", 0},
		{"Empty", "", 0},
		{"Whitespace only", "   ", 0},
		{"Negative passes through", "-500", -500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := [][]string{
				{"INICIO", "DTO.", "EQUIPO"},
				{"01-06", tt.cell, "iPhone 15"},
			}
			records := Normalize(grid)
			require.Len(t, records, 1)
			assert.Equal(t, tt.expected, records[0].Discount)
		})
	}
}

func TestEmptyRowsDropped(t *testing.T) {
	grid := [][]string{
		{"INICIO", "OPERADOR", "EQUIPO"},
		{"", "", ""},
		{},
		{"01-06", "WOM", "Redmi Note 13"},
		{"  ", "  ", ""},
	}

	records := Normalize(grid)
	require.Len(t, records, 1)
	assert.Equal(t, "WOM", records[0].OperatorName)
}

func TestMissingColumnsDefaultToEmpty(t *testing.T) {
	grid := [][]string{
		{"INICIO", "EQUIPO"},
		{"01-06", "iPhone 15"},
	}

	records := Normalize(grid)
	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, "", rec.EndDate)
	assert.Equal(t, "", rec.OperatorName)
	assert.Equal(t, "", rec.SkuPlan)
	assert.Equal(t, "", rec.PlanDescription)
	assert.Equal(t, "", rec.Brand)
	assert.Equal(t, float64(0), rec.Discount)
}

func TestShortRowsDefaultToEmpty(t *testing.T) {
	// Trailing cells missing from a row behave like empty cells.
	grid := [][]string{
		{"INICIO", "OPERADOR", "EQUIPO", "MARCA"},
		{"01-06", "CLARO"},
	}

	records := Normalize(grid)
	require.Len(t, records, 1)
	assert.Equal(t, "CLARO", records[0].OperatorName)
	assert.Equal(t, "", records[0].EquipmentName)
	assert.Equal(t, "", records[0].Brand)
}

func TestNormalizeEmptyGrid(t *testing.T) {
	assert.Empty(t, Normalize(nil))
	assert.Empty(t, Normalize([][]string{}))
}

func TestRowOrderPreserved(t *testing.T) {
	grid := [][]string{
		{"INICIO", "OPERADOR", "EQUIPO"},
		{"01-06", "CLARO", "iPhone 15"},
		{"01-06", "ENTEL", "iPhone 15"},
		{"01-06", "WOM", "Galaxy S24"},
	}

	records := Normalize(grid)
	require.Len(t, records, 3)
	assert.Equal(t, "CLARO", records[0].OperatorName)
	assert.Equal(t, "ENTEL", records[1].OperatorName)
	assert.Equal(t, "WOM", records[2].OperatorName)
}
