package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jotamaster/calculadora-precios-telefonos/internal/catalog"
	"github.com/jotamaster/calculadora-precios-telefonos/internal/ingest"
	"github.com/jotamaster/calculadora-precios-telefonos/internal/pricing"
)

var (
	quoteModel    string
	quoteOperator string
	quoteBase     string
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote <file>",
	Short: "Compute a final price from a workbook",
	Long: `Compute the final price for a phone model: the manually entered base price
minus the selected operator's discount. The base price may be typed formatted
("$150.000") or plain ("150000"); every non-digit is stripped before parsing.`,
	Example: `  promo-catalog quote ./promos-msm.xlsx --model "iPhone 15" --operator CLARO --base "$150.000"`,
	Args:    cobra.ExactArgs(1),
	RunE:    runQuote,
}

func init() {
	rootCmd.AddCommand(quoteCmd)

	quoteCmd.Flags().StringVar(&quoteModel, "model", "", "Phone model name (required)")
	quoteCmd.Flags().StringVar(&quoteOperator, "operator", "", "Operator name (required)")
	quoteCmd.Flags().StringVar(&quoteBase, "base", "", "Base price text (required)")
	quoteCmd.MarkFlagRequired("model")
	quoteCmd.MarkFlagRequired("operator")
	quoteCmd.MarkFlagRequired("base")
}

func runQuote(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	records, err := ingest.ParseWorkbook(content)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	built := catalog.Build(records)

	model, ok := built.Find(quoteModel)
	if !ok {
		return fmt.Errorf("phone model not found: %s", quoteModel)
	}

	offer, _ := model.FindOffer(quoteOperator)
	quote, computed := pricing.Compute(quoteBase, offer)
	if !computed {
		return fmt.Errorf("no quote: operator not found on model or base price has no digits")
	}

	fmt.Printf("Model:       %s\n", model.Name)
	fmt.Printf("Operator:    %s\n", offer.Name)
	fmt.Printf("Base price:  %s\n", pricing.FormatCLP(quote.BasePrice))
	fmt.Printf("Discount:    -%s\n", pricing.FormatCLP(offer.Discount))
	fmt.Printf("Final price: %s\n", pricing.FormatCLP(quote.FinalPrice))

	return nil
}
