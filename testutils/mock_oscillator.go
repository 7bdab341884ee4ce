package testutils

// ScriptedOscillator returns pre-canned oscillator readings, one per input
// close beyond the warm-up offset, so tests can steer band selection
// without depending on real indicator numerics. If the script runs out the
// last value repeats.
type ScriptedOscillator struct {
	Warm   int
	Values []float64
}

func (s *ScriptedOscillator) WarmUp() int { return s.Warm }

func (s *ScriptedOscillator) Series(closes []float64) []float64 {
	n := len(closes) - s.Warm
	if n <= 0 || len(s.Values) == 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		if i < len(s.Values) {
			out[i] = s.Values[i]
		} else {
			out[i] = s.Values[len(s.Values)-1]
		}
	}
	return out
}

// FixedOscillator reports the same reading for every index.
func FixedOscillator(warm int, value float64) *ScriptedOscillator {
	return &ScriptedOscillator{Warm: warm, Values: []float64{value}}
}
