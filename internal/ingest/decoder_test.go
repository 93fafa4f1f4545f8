package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes rows into an in-memory XLSX workbook.
func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParseWorkbook(t *testing.T) {
	content := buildWorkbook(t, [][]interface{}{
		{"Promociones junio"},
		{"INICIO", "FIN", "OPERADOR", "SKU PLAN", "DESCRIPCION PLAN", "DTO.", "MARCA", "EQUIPO"},
		{"01-06", "30-06", "CLARO", "SKU-001", "Plan 50GB", 20000, "Apple", "iPhone 15"},
		{"01-06", "30-06", "ENTEL", "SKU-002", "Plan 100GB", 25000, "Apple", "iPhone 15"},
	})

	records, err := ParseWorkbook(content)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "CLARO", records[0].OperatorName)
	assert.Equal(t, "SKU-001", records[0].SkuPlan)
	assert.Equal(t, "Plan 50GB", records[0].PlanDescription)
	assert.Equal(t, float64(20000), records[0].Discount)
	assert.Equal(t, "Apple", records[0].Brand)
	assert.Equal(t, "iPhone 15", records[0].EquipmentName)
	assert.Equal(t, "ENTEL", records[1].OperatorName)
}

func TestParseWorkbookUsesFirstSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	header := []interface{}{"INICIO", "OPERADOR", "EQUIPO"}
	row := []interface{}{"01-06", "WOM", "Redmi Note 13"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &row))

	_, err := f.NewSheet("Otra")
	require.NoError(t, err)
	other := []interface{}{"INICIO", "OPERADOR", "EQUIPO"}
	require.NoError(t, f.SetSheetRow("Otra", "A1", &other))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	records, err := ParseWorkbook(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "WOM", records[0].OperatorName)
}

func TestParseWorkbookDecodeError(t *testing.T) {
	_, err := ParseWorkbook([]byte("this is not a spreadsheet"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestParseWorkbookEmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	records, err := ParseWorkbook(buf.Bytes())
	require.NoError(t, err)
	assert.Empty(t, records)
}
