package utils

import "github.com/shopspring/decimal"

// RoundTo rounds value half away from zero at the given number of decimal
// places. This matches JavaScript's Number.toFixed, which the stored rates
// were produced with, so recomputed values stay comparable to persisted ones.
func RoundTo(value float64, places int32) float64 {
	return decimal.NewFromFloat(value).Round(places).InexactFloat64()
}

// FixedString renders value with exactly the given number of decimal places.
// Example: FixedString(85, 3) returns "85.000".
func FixedString(value float64, places int32) string {
	return decimal.NewFromFloat(value).StringFixed(places)
}
