package kelly

import "math"

// QtyPrecision is the decimal precision order quantities are truncated to.
// Truncation, not rounding: the allocation never exceeds the Kelly
// fraction of available cash.
const QtyPrecision = 2

// BaselineThreshold is the fraction above which the baseline policy goes
// all-in.
const BaselineThreshold = 0.1

// SizeFor returns the order quantity to buy given the latest oscillator
// reading: the band's sizing fraction applied to available cash at the
// current price, truncated to QtyPrecision decimals. Non-positive cash or
// price yields 0 rather than a division fault.
func SizeFor(oscLatest float64, table SizingTable, cash, price float64) float64 {
	if cash <= 0 || price <= 0 {
		return 0
	}
	f := table.Fraction(BandFor(oscLatest))
	qty := trunc(f*cash/price, QtyPrecision)
	if qty <= 0 {
		return 0
	}
	return qty
}

// BaselineSizeFor is the degenerate comparison policy: deploy the full
// cash balance whenever the band's fraction clears BaselineThreshold,
// otherwise nothing. Same clamping, truncation and degenerate-input rules
// as SizeFor.
func BaselineSizeFor(oscLatest float64, table SizingTable, cash, price float64) float64 {
	if cash <= 0 || price <= 0 {
		return 0
	}
	if table.Fraction(BandFor(oscLatest)) <= BaselineThreshold {
		return 0
	}
	return trunc(cash/price, QtyPrecision)
}

func trunc(x float64, places int) float64 {
	pow := math.Pow10(places)
	return math.Trunc(x*pow) / pow
}
