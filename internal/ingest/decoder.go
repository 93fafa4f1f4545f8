package ingest

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrDecode indicates the uploaded bytes could not be read as a spreadsheet
// workbook at all. It is the only error the ingestion pipeline produces:
// everything past decoding degrades to defaults instead of failing.
var ErrDecode = errors.New("unable to decode workbook")

// DecodeGrid opens workbook bytes and returns the cell grid of the first
// sheet. Legacy .xls containers and corrupt files surface as ErrDecode.
func DecodeGrid(content []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrDecode)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return rows, nil
}

// ParseWorkbook decodes workbook bytes and normalizes the first sheet into
// offer records. This is the whole ingestion pipeline short of grouping.
func ParseWorkbook(content []byte) ([]OfferRecord, error) {
	grid, err := DecodeGrid(content)
	if err != nil {
		return nil, err
	}
	return Normalize(grid), nil
}
