package pricing

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var inPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders a price string for display: rupee sign, en-IN digit
// grouping, no fraction digits. Unparseable input renders as ₹0.
func FormatINR(price string) string {
	d, err := decimal.NewFromString(price)
	if err != nil {
		d = decimal.Zero
	}
	return formatINR(d)
}

// FormatINRDecimal is FormatINR for already-parsed amounts.
func FormatINRDecimal(d decimal.Decimal) string {
	return formatINR(d)
}

func formatINR(d decimal.Decimal) string {
	v := d.Round(0).InexactFloat64()
	return inPrinter.Sprintf("₹%v", number.Decimal(v, number.MaxFractionDigits(0)))
}
