// Package pricing computes final promotion prices and renders CLP amounts.
package pricing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jotamaster/calculadora-precios-telefonos/internal/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	nonDigitOrDot = regexp.MustCompile(`[^\d.]`)
	nonDigit      = regexp.MustCompile(`[^\d]`)

	clp = message.NewPrinter(language.MustParse("es-CL"))
)

// Quote is the result of one price calculation. It is ephemeral: recomputed
// on every input change, never stored.
type Quote struct {
	BasePrice  int            `json:"basePrice"`
	Offer      *catalog.Offer `json:"offer"`
	FinalPrice int            `json:"finalPrice"`
}

// SanitizeInput strips everything but digits and the decimal point from
// base-price text as it is being edited.
func SanitizeInput(text string) string {
	return nonDigitOrDot.ReplaceAllString(text, "")
}

// ParseBasePrice extracts the numeric base price from user-entered text,
// formatted or not: every non-digit is dropped before parsing, so
// "$150.000" yields 150000. Text with no digits yields no price.
func ParseBasePrice(text string) (int, bool) {
	digits := nonDigit.ReplaceAllString(text, "")
	if digits == "" {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, false
	}
	return int(parsed), true
}

// Compute calculates the final price for a base-price text and a selected
// offer. When either side is missing the calculation is suppressed and the
// second return is false; a suppressed quote is not a zero quote. A discount
// larger than the base price yields a negative final price on purpose.
func Compute(basePriceText string, offer *catalog.Offer) (*Quote, bool) {
	if offer == nil {
		return nil, false
	}
	base, ok := ParseBasePrice(basePriceText)
	if !ok {
		return nil, false
	}
	return &Quote{
		BasePrice:  base,
		Offer:      offer,
		FinalPrice: base - offer.Discount,
	}, true
}

// FormatCLP renders a whole-peso amount as Chilean-locale currency with zero
// fractional digits, e.g. 150000 -> "$150.000" and -4000 -> "-$4.000".
func FormatCLP(amount int) string {
	if amount < 0 {
		return "-" + FormatCLP(-amount)
	}
	return clp.Sprintf("$%v", number.Decimal(amount, number.MaxFractionDigits(0)))
}

// BrandColor returns the chip color for an operator. Unknown operators fall
// back to a neutral gray.
func BrandColor(operatorName string) string {
	switch strings.ToUpper(operatorName) {
	case "CLARO":
		return "#da291c"
	case "ENTEL":
		return "#002eff"
	case "WOM":
		return "#4d008c"
	default:
		return "#6b7280"
	}
}
