package analytics

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders an amount with the rupee symbol and Indian digit
// grouping (₹1,23,456).
func FormatINR(v float64) string {
	return "₹" + inrPrinter.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}
