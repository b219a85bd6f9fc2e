// README: Common currency helpers used across modules.
package types

import "math"

// Cents converts a dollar amount to integer cents, rounding half away from
// zero. Summation of already-rounded components happens in cents so the
// reported totals are exact.
func Cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// Dollars converts integer cents back to a dollar amount.
func Dollars(cents int64) float64 {
	return float64(cents) / 100
}

// RoundCurrency rounds a dollar amount to two decimal places, half away from
// zero.
func RoundCurrency(amount float64) float64 {
	return Dollars(Cents(amount))
}
