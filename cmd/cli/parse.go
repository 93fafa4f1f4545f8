package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jotamaster/calculadora-precios-telefonos/internal/catalog"
	"github.com/jotamaster/calculadora-precios-telefonos/internal/ingest"
	"github.com/jotamaster/calculadora-precios-telefonos/internal/pricing"
)

var parseOutput string

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a promotions workbook into a catalog",
	Long: `Parse a promotions workbook (.xlsx or .xls, first sheet) into the phone-model
catalog and print it. Rows are grouped by trimmed equipment name in first-seen
order; malformed cells degrade to defaults instead of failing.`,
	Example: `  promo-catalog parse ./promos-msm.xlsx
  promo-catalog parse ./promos-msm.xlsx --output json`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&parseOutput, "output", "table", "Output format: table or json")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	logger.Info().Str("file", filePath).Msg("Reading workbook")
	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	records, err := ingest.ParseWorkbook(content)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	built := catalog.Build(records)
	logger.Info().Int("rows", len(records)).Int("models", built.Len()).Msg("Catalog built")

	switch strings.ToLower(parseOutput) {
	case "json":
		return outputCatalogJSON(built)
	case "table":
		outputCatalogTable(built)
	default:
		return fmt.Errorf("invalid output format: %s (use 'table' or 'json')", parseOutput)
	}

	return nil
}

func outputCatalogTable(c *catalog.Catalog) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Model", "Operator", "Discount", "SKU Plan", "Validity"})

	for _, model := range c.Models() {
		for _, offer := range model.Operators {
			t.AppendRow(table.Row{
				model.Name,
				offer.Name,
				pricing.FormatCLP(offer.Discount),
				offer.SkuPlan,
				fmt.Sprintf("%s - %s", offer.StartDate, offer.EndDate),
			})
		}
		t.AppendSeparator()
	}

	t.Render()
	fmt.Printf("\n%d models\n", c.Len())
}

func outputCatalogJSON(c *catalog.Catalog) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(c.Models())
}
