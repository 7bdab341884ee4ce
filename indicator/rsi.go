// Package indicator supplies the oscillator series the sizing core
// conditions on. The core never computes indicators itself; it receives a
// series (estimation time) or a latest value (tick time) produced here.
package indicator

import "github.com/evdnx/goti"

// Oscillator computes a bounded momentum series from a close-price
// history. The returned series is shorter than the input by the warm-up
// offset: Series(closes)[i] is the reading whose window ends at
// closes[i+WarmUp()]. Implementations recompute from the full history on
// every call; incremental maintenance is deliberately not part of the
// contract.
type Oscillator interface {
	Series(closes []float64) []float64
	WarmUp() int
}

const rsiPeriod = 14

// RSI is the goti-backed relative strength index oscillator.
type RSI struct{}

func NewRSI() *RSI { return &RSI{} }

func (r *RSI) WarmUp() int { return rsiPeriod }

// Series streams the closes through a fresh goti indicator suite and
// collects the RSI reading after each bar past the warm-up window. Bars
// the suite rejects (or cannot yet produce a value for) are skipped; the
// caller tolerates a short series.
func (r *RSI) Series(closes []float64) []float64 {
	suite, err := goti.NewIndicatorSuiteWithConfig(goti.DefaultConfig())
	if err != nil {
		return nil
	}
	out := make([]float64, 0, len(closes))
	for i, c := range closes {
		if err := suite.Add(c, c, c, 1); err != nil {
			continue
		}
		if i < rsiPeriod {
			continue
		}
		v, err := suite.GetRSI().Calculate()
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}
