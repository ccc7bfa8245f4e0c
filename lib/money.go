package lib

import (
	"labisco_server/structs"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "NGN"

var currencySymbols = map[string]string{
	"NGN": "₦",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"AUD": "A$",
}

// FormatMoney renders an amount with the currency symbol, e.g. "₦1250.00".
// Unknown currencies fall back to the ISO code followed by a space.
func FormatMoney(currency string, amount decimal.Decimal) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency + " "
	}
	return symbol + amount.StringFixed(2)
}

// PriceRange formats the price span of the variants in naira.
func PriceRange(variants []structs.ProductVariant) string {
	return PriceRangeIn(DefaultCurrency, variants)
}

// PriceRangeIn returns "N/A" with no variants, a single price when every
// variant costs the same, otherwise "min - max".
func PriceRangeIn(currency string, variants []structs.ProductVariant) string {
	if len(variants) == 0 {
		return "N/A"
	}

	lo, hi := variants[0].Price, variants[0].Price
	for _, v := range variants[1:] {
		if v.Price.LessThan(lo) {
			lo = v.Price
		}
		if v.Price.GreaterThan(hi) {
			hi = v.Price
		}
	}

	if lo.Equal(hi) {
		return FormatMoney(currency, lo)
	}
	return FormatMoney(currency, lo) + " - " + FormatMoney(currency, hi)
}

// TotalStock sums the stock of all variants.
func TotalStock(variants []structs.ProductVariant) int {
	total := 0
	for _, v := range variants {
		total += v.Stock
	}
	return total
}
