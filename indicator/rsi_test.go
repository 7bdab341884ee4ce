package indicator

import (
	"math"
	"testing"
)

func ramp(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

func TestRSISeriesShape(t *testing.T) {
	r := NewRSI()
	closes := ramp(60, 100, 0.5)

	series := r.Series(closes)
	if len(series) == 0 {
		t.Fatal("expected a non-empty series for 60 bars")
	}
	if len(series) >= len(closes) {
		t.Fatalf("series (%d) must be shorter than input (%d) by the warm-up", len(series), len(closes))
	}
	for i, v := range series {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("series[%d] = %v is not finite", i, v)
		}
	}
}

func TestRSISeriesDeterministic(t *testing.T) {
	r := NewRSI()
	closes := []float64{
		100, 101, 103, 102, 105, 104, 107, 106, 109, 108,
		111, 110, 113, 112, 115, 114, 117, 116, 119, 118,
		121, 120, 123, 122, 125,
	}

	first := r.Series(closes)
	second := r.Series(closes)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("series[%d] differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestRSISeriesShortInput(t *testing.T) {
	r := NewRSI()
	if s := r.Series(ramp(5, 100, 1)); len(s) != 0 {
		t.Fatalf("expected empty series below warm-up, got %d values", len(s))
	}
	if s := r.Series(nil); len(s) != 0 {
		t.Fatalf("expected empty series for nil input, got %d values", len(s))
	}
}

func TestRSIWarmUp(t *testing.T) {
	if got := NewRSI().WarmUp(); got != 14 {
		t.Fatalf("WarmUp() = %d, want 14", got)
	}
}
