// Package data supplies historical bars from files, a deterministic
// synthetic generator, a public REST endpoint, or a local SQLite cache.
package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/evdnx/gokelly/types"
)

// LoadCSV reads bars from a file with rows of
// unix_seconds,open,high,low,close,volume. A single header row is
// skipped if present.
func LoadCSV(path string) ([]types.Bar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("data: open %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 6
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("data: parse %q: %w", path, err)
	}

	bars := make([]types.Bar, 0, len(records))
	for i, rec := range records {
		ts, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("data: %q row %d: bad timestamp %q", path, i+1, rec[0])
		}
		bar := types.Bar{Ts: time.Unix(ts, 0).UTC()}
		for j, dst := range []*float64{&bar.Open, &bar.High, &bar.Low, &bar.Close, &bar.Volume} {
			v, err := strconv.ParseFloat(rec[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("data: %q row %d col %d: %w", path, i+1, j+2, err)
			}
			*dst = v
		}
		bars = append(bars, bar)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("data: %q contains no bars", path)
	}
	return bars, nil
}
