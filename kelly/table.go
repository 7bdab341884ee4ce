package kelly

import "math"

// NumBands is the number of oscillator partitions the statistics are
// conditioned on. BandWidth is the nominal width of each partition; the
// oscillator ranges 0-100 but out-of-range readings are tolerated and
// clamped into the edge bands.
const (
	NumBands  = 10
	BandWidth = 10.0
)

// SizingTable holds one capital fraction per oscillator band, indexed by
// band 0..9. It is built once per instrument at initialization and is
// read-only afterwards. Every entry is >= 0.
type SizingTable [NumBands]float64

// BandFor maps an oscillator reading onto a band index. Readings below
// zero land in band 0, readings of 90 and above (or anything else whose
// floor division overflows the table) land in band 9.
func BandFor(v float64) int {
	ind := int(math.Floor(v / BandWidth))
	if ind < 0 {
		return 0
	}
	if ind >= NumBands {
		return NumBands - 1
	}
	return ind
}

// Fraction returns the sizing fraction for a band, treating any
// out-of-range index as "no allocation". Estimate only ever produces
// indices 0..9; the guard keeps a corrupted lookup from panicking.
func (t SizingTable) Fraction(band int) float64 {
	if band < 0 || band >= NumBands {
		return 0
	}
	return t[band]
}
