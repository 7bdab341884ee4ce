// Package kelly implements the bucketed conditional-statistics estimator
// and the Kelly-criterion position-size calculator.
//
// Historical observations are partitioned into ten oscillator bands. For
// each band the estimator measures the observed probability of a favorable
// move and the ratio of average win magnitude to average loss magnitude
// over a fixed look-ahead horizon, then converts the pair into a bounded
// fraction of capital via the Kelly staking formula W - (1-W)/R.
package kelly

// bandStats accumulates the per-band evidence. Exact ties between the
// current and future price are dropped entirely: they count toward neither
// wins nor total, which shifts the resulting probability estimate and is
// intentional.
type bandStats struct {
	wins    int
	total   int
	lossSum float64 // sum of negative relative moves
	winSum  float64 // sum of positive relative moves
}

// ratioCase tags how the win/loss ratio of a band was derived. The
// degenerate cases are policy, not accidents: a band with no observed wins
// gets no allocation no matter how many losses were seen, and a band with
// wins but no losses defaults the ratio to 1.
type ratioCase int

const (
	noEvidence ratioCase = iota // no wins observed, ratio 0
	noLosses                    // wins but no losses, ratio defaults to 1
	normal                      // avg win magnitude / avg loss magnitude
)

// ratio derives the win/loss ratio R for one band. Note the win average
// divides by the win count while the loss average divides by the loss
// count, both against their own accumulators.
func (s bandStats) ratio() (float64, ratioCase) {
	if s.wins == 0 {
		return 0, noEvidence
	}
	losses := s.total - s.wins
	if losses == 0 {
		return 1, noLosses
	}
	avgWin := s.winSum / float64(s.wins)
	avgLoss := -s.lossSum / float64(losses)
	return avgWin / avgLoss, normal
}

// probability is the observed win probability P for one band.
func (s bandStats) probability() float64 {
	if s.total == 0 {
		return 0
	}
	return float64(s.wins) / float64(s.total)
}

// Estimate partitions the historical observations into oscillator bands
// and produces the per-band Kelly sizing table.
//
// For each index i the conditioning reading is oscillator[i], the entry
// price is history[i+lookBehind] and the exit price is history[i+lookAhead]
// (with the reference offsets 15/14 this measures a one-step move observed
// at the end of the oscillator's warm-up window). A rise is a win, a drop
// is a loss, an exact tie is discarded.
//
// Estimate is a pure function: no error paths, no hidden state. A history
// no longer than lookAhead yields an all-zero table, as does any band that
// never accumulated a win.
func Estimate(history, oscillator []float64, lookAhead, lookBehind int) SizingTable {
	var table SizingTable
	if lookAhead <= 0 || lookBehind < 0 || lookBehind > lookAhead {
		return table
	}

	var stats [NumBands]bandStats
	for i := 0; i+lookAhead < len(history) && i < len(oscillator); i++ {
		r := oscillator[i]
		cur := history[i+lookBehind]
		fut := history[i+lookAhead]
		b := &stats[BandFor(r)]
		switch {
		case fut > cur:
			b.wins++
			b.total++
			b.winSum += (fut - cur) / cur
		case fut < cur:
			b.total++
			b.lossSum += (fut - cur) / cur
		}
	}

	for i, s := range stats {
		r, c := s.ratio()
		if c == noEvidence {
			continue // fraction stays 0
		}
		p := s.probability()
		if f := p - (1-p)/r; f > 0 {
			table[i] = f
		}
	}
	return table
}
