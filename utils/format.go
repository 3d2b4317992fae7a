package utils

import (
	"github.com/shopspring/decimal"
)

const (
	MoneyPlaces    = 2
	QuantityPlaces = 3
)

// FormatMoney renders an amount with exactly two decimals, rounding half away from zero.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(MoneyPlaces)
}

// FormatQty renders whole quantities as integers and everything else with three decimals.
func FormatQty(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return d.Truncate(0).String()
	}
	return d.StringFixed(QuantityPlaces)
}
