package utils

import "github.com/shopspring/decimal"

// FormatEuro renders a monetary amount for display, rounded to two decimal
// places. The input value is never mutated; rates keep full precision in the
// models and only the rendered string is rounded.
func FormatEuro(amount decimal.Decimal) string {
	return "€" + amount.StringFixed(2)
}
