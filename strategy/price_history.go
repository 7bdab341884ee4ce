package strategy

// priceHistory keeps the per-instrument close series the oscillator is
// recomputed from on every tick. Append-only within a session; an
// optional max length bounds memory during long-running sessions by
// discarding the oldest closes (0 = unbounded, the reference behavior).
type priceHistory struct {
	max int
	buf []float64
}

func newPriceHistory(max int) *priceHistory {
	if max < 0 {
		max = 0
	}
	return &priceHistory{max: max}
}

func (p *priceHistory) Append(v float64) {
	p.buf = append(p.buf, v)
	if p.max > 0 && len(p.buf) > p.max {
		p.buf = p.buf[len(p.buf)-p.max:]
	}
}

// Seed replaces the series with the supplied window.
func (p *priceHistory) Seed(closes []float64) {
	p.buf = append(p.buf[:0], closes...)
	if p.max > 0 && len(p.buf) > p.max {
		p.buf = p.buf[len(p.buf)-p.max:]
	}
}

// Values returns a copy of the series.
func (p *priceHistory) Values() []float64 {
	out := make([]float64, len(p.buf))
	copy(out, p.buf)
	return out
}

func (p *priceHistory) Len() int {
	return len(p.buf)
}

func (p *priceHistory) Last() float64 {
	if len(p.buf) == 0 {
		return 0
	}
	return p.buf[len(p.buf)-1]
}
