package data

import (
	"math/rand"
	"time"

	"github.com/evdnx/gokelly/types"
)

// Synthetic generates a deterministic random-walk bar series: each close
// moves by a uniform return in [-vol, +vol] from the previous one. The
// same seed always yields the same series, which keeps backtests
// reproducible.
func Synthetic(n int, startPrice, vol float64, seed int64) []types.Bar {
	if n <= 0 {
		return nil
	}
	r := rand.New(rand.NewSource(seed))
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	bars := make([]types.Bar, n)
	price := startPrice
	for i := range bars {
		open := price
		ret := (r.Float64() - 0.5) * 2 * vol
		close := open * (1 + ret)
		high := open
		if close > high {
			high = close
		}
		high *= 1 + r.Float64()*vol*0.5
		low := open
		if close < low {
			low = close
		}
		low *= 1 - r.Float64()*vol*0.5

		bars[i] = types.Bar{
			Ts:     ts.Add(time.Duration(i) * 24 * time.Hour),
			Open:   open,
			High:   high,
			Low:    low,
			Close:  close,
			Volume: 10_000 + r.Float64()*5_000,
		}
		price = close
	}
	return bars
}
