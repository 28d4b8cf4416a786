package service

import "math"

// Income tiers passed to the advisor when the user supplies a numeric
// annual income. The bands mirror the guidance shown in the intake
// form for the markets we actively support; anything outside them maps
// to UNSPECIFIED and the model falls back to the raw number.
const (
	IncomeLow         = "LOW"
	IncomeMedium      = "MEDIUM"
	IncomeHigh        = "HIGH"
	IncomeUnspecified = "UNSPECIFIED"
)

// countryCurrency covers the countries the income band tables know
// about; it is reference data, not an exhaustive ISO table.
var countryCurrency = map[string]string{
	"JM": "JMD",
	"TT": "TTD",
	"BB": "BBD",
	"US": "USD",
	"CA": "CAD",
	"GB": "GBP",
	"IE": "EUR",
	"DE": "EUR",
	"FR": "EUR",
	"ES": "EUR",
	"IT": "EUR",
	"NL": "EUR",
	"PT": "EUR",
}

type incomeBand struct {
	min, max float64
}

var incomeBands = map[string]map[string]incomeBand{
	IncomeLow: {
		"JMD": {0, 2_000_000},
		"USD": {0, 30_000},
		"CAD": {0, 40_000},
		"GBP": {0, 25_000},
		"EUR": {0, 28_000},
		"TTD": {0, 150_000},
		"BBD": {0, 40_000},
	},
	IncomeMedium: {
		"JMD": {2_000_000, 5_000_000},
		"USD": {30_000, 70_000},
		"CAD": {40_000, 80_000},
		"GBP": {25_000, 60_000},
		"EUR": {28_000, 65_000},
		"TTD": {150_000, 350_000},
		"BBD": {40_000, 90_000},
	},
	IncomeHigh: {
		"JMD": {5_000_000, math.MaxFloat64},
		"USD": {70_000, math.MaxFloat64},
		"CAD": {80_000, math.MaxFloat64},
		"GBP": {60_000, math.MaxFloat64},
		"EUR": {65_000, math.MaxFloat64},
		"TTD": {350_000, math.MaxFloat64},
		"BBD": {90_000, math.MaxFloat64},
	},
}

// DeriveIncomeTier maps a numeric annual income (in the local currency
// of the given ISO country code) to an income tier.
func DeriveIncomeTier(annualIncome float64, country string) string {
	if annualIncome <= 0 {
		return IncomeUnspecified
	}
	currency, ok := countryCurrency[country]
	if !ok {
		return IncomeUnspecified
	}
	for _, tier := range []string{IncomeLow, IncomeMedium, IncomeHigh} {
		band, ok := incomeBands[tier][currency]
		if ok && annualIncome >= band.min && annualIncome <= band.max {
			return tier
		}
	}
	return IncomeUnspecified
}
