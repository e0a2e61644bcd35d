package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"AUD": "A$",
	"IDR": "Rp ",
	"THB": "฿",
}

// FormatAmount formats an amount like "$12,500" or "€1,234.50".
// Whole amounts print without decimals; fractional ones with two places.
// Unknown currencies are prefixed with their code, e.g. "MVR 1,000".
func FormatAmount(amount decimal.Decimal, currency string) string {
	code := NormalizeCurrencyCode(currency)
	symbol, ok := currencySymbols[code]
	if !ok && code != "" {
		symbol = code + " "
	}

	neg := amount.IsNegative()
	amount = amount.Abs()

	places := int32(0)
	if !amount.Equal(amount.Truncate(0)) {
		places = 2
	}
	s := amount.StringFixed(places)
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	// Pre-allocate: digits + separators + symbol
	b.Grow(len(s) + len(intPart)/3 + len(symbol) + 1)
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(symbol)

	// Insert separators from the left.
	rem := len(intPart) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(intPart[:rem])
	for i := rem; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	b.WriteString(frac)

	return b.String()
}

// FormatRate formats a commission rate such as 0.15 as "15%"
func FormatRate(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).Round(2).String() + "%"
}
