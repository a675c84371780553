package pricing

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"portfolio/internal/domain"
)

const CurrencySymbol = "₹"

var printer = message.NewPrinter(language.English)

// Format renders an amount for display: "₹8,000", or "₹8,000.50" when
// there are leftover minor units.
func Format(m domain.Money) string {
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}

	major := int64(m) / domain.MinorPerMajor
	minor := int64(m) % domain.MinorPerMajor

	out := sign + CurrencySymbol + printer.Sprintf("%d", major)
	if minor != 0 {
		out += fmt.Sprintf(".%02d", minor)
	}
	return out
}
