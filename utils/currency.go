package utils

import "strings"

// DefaultCurrency is what vessels bill in unless listed otherwise
const DefaultCurrency = "USD"

// defaultVesselCurrencies holds the vessels billing in a non-default currency,
// keyed by lowercase boat id or name
var defaultVesselCurrencies = map[string]string{
	"ocean-rover":       "EUR",
	"red-sea-aggressor": "EUR",
	"komodo-dancer":     "IDR",
}

// DefaultVesselCurrencies returns a copy of the built-in vessel currency table
func DefaultVesselCurrencies() map[string]string {
	out := make(map[string]string, len(defaultVesselCurrencies))
	for k, v := range defaultVesselCurrencies {
		out[k] = v
	}
	return out
}

// NormalizeCurrencyCode trims and uppercases a currency code.
// Returns "" for anything that is not three letters.
func NormalizeCurrencyCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return ""
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return ""
		}
	}
	return code
}
