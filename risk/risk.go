package risk

import (
	"math"

	"github.com/evdnx/gokelly/config"
)

// Trunc cuts x to the given number of decimal places without rounding.
// Order quantities are always truncated so an allocation can undershoot
// its target fraction but never overshoot it.
func Trunc(x float64, places int) float64 {
	if places < 0 {
		places = 0
	}
	pow := math.Pow10(places)
	return math.Trunc(x*pow) / pow
}

// NormalizeQty turns a raw quantity into one the venue will accept:
// floored to the exchange step size (when configured), truncated to the
// configured precision, and zeroed when below the minimum order size.
func NormalizeQty(raw float64, cfg config.StrategyConfig) float64 {
	if raw <= 0 {
		return 0
	}
	qty := raw
	if cfg.StepSize > 0 {
		qty = math.Floor(qty/cfg.StepSize) * cfg.StepSize
	}
	qty = Trunc(qty, cfg.QuantityPrecision)
	if qty < cfg.MinQty {
		return 0
	}
	return qty
}
