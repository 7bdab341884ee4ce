// Package strategy hosts the trading strategies: a shared BaseStrategy
// bundling the common dependencies, plus the concrete Kelly sizing
// strategy and its all-in baseline variant.
package strategy

// Strategy is the two-call interface a harness drives: WarmUp once per
// instrument with a historical close window, then ProcessBar once per
// incoming bar. Instances hold per-instrument state and must not be
// shared across instruments or goroutines.
type Strategy interface {
	Name() string
	WarmUp(closes []float64) error
	ProcessBar(high, low, close, volume float64)
}
