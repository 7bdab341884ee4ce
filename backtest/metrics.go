package backtest

import "math"

// periodsPerYear annualizes the risk ratios assuming daily bars, the
// resolution the reference strategy trades at.
const periodsPerYear = 252

// Summary condenses an equity curve into the usual performance numbers.
type Summary struct {
	FinalEquity    float64
	TotalReturnPct float64
	MaxDrawdownPct float64
	Sharpe         float64
	Sortino        float64
	Bars           int
}

// ComputeSummary derives the summary from a mark-to-market equity curve.
// An empty curve reports the initial equity unchanged.
func ComputeSummary(eq []Point, initial float64) Summary {
	s := Summary{FinalEquity: initial, Bars: len(eq)}
	if len(eq) == 0 || initial <= 0 {
		return s
	}
	s.FinalEquity = eq[len(eq)-1].Equity
	s.TotalReturnPct = (s.FinalEquity/initial - 1) * 100

	// Max drawdown against the running peak, starting from the initial
	// balance.
	peak := initial
	for _, p := range eq {
		if p.Equity > peak {
			peak = p.Equity
		}
		if peak > 0 {
			if dd := (p.Equity - peak) / peak * 100; dd < s.MaxDrawdownPct {
				s.MaxDrawdownPct = dd
			}
		}
	}

	// Per-bar simple returns, anchored at the initial balance.
	returns := make([]float64, 0, len(eq))
	prev := initial
	for _, p := range eq {
		if prev > 0 {
			returns = append(returns, p.Equity/prev-1)
		}
		prev = p.Equity
	}
	if len(returns) < 2 {
		return s
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	var variance, downside float64
	for _, r := range returns {
		d := r - mean
		variance += d * d
		if r < 0 {
			downside += r * r
		}
	}
	variance /= float64(len(returns) - 1)
	downside /= float64(len(returns))

	ann := math.Sqrt(periodsPerYear)
	if std := math.Sqrt(variance); std > 0 {
		s.Sharpe = mean / std * ann
	}
	if dstd := math.Sqrt(downside); dstd > 0 {
		s.Sortino = mean / dstd * ann
	}
	return s
}
