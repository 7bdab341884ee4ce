package data

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/evdnx/gokelly/types"
)

const defaultBinanceBase = "https://api.binance.com"

// BinanceClient fetches spot klines from the public Binance REST API.
// Requests go through a shared rate limiter so chunked history pulls stay
// inside the venue's request budget.
type BinanceClient struct {
	base    string
	http    *http.Client
	limiter *rate.Limiter
}

func NewBinanceClient(base string) *BinanceClient {
	if base == "" {
		base = defaultBinanceBase
	}
	return &BinanceClient{
		base:    base,
		http:    &http.Client{Timeout: 15 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(10), 10),
	}
}

// FetchKlines pulls bars for [from, to) in day-sized chunks of at most
// 1000 klines each.
func (c *BinanceClient) FetchKlines(ctx context.Context, symbol, interval string, from, to time.Time) ([]types.Bar, error) {
	out := make([]types.Bar, 0, 1024)
	start := from
	for start.Before(to) {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		end := start.Add(24 * time.Hour)
		if end.After(to) {
			end = to
		}

		url := fmt.Sprintf("%s/api/v3/klines?symbol=%s&interval=%s&startTime=%d&endTime=%d&limit=1000",
			c.base, symbol, interval, start.UnixMilli(), end.UnixMilli())
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("data: fetch klines: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("data: fetch klines: status %d", resp.StatusCode)
		}

		var raw [][]any
		if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
			resp.Body.Close()
			return nil, fmt.Errorf("data: decode klines: %w", err)
		}
		resp.Body.Close()
		if len(raw) == 0 {
			break
		}

		for _, k := range raw {
			if len(k) < 6 {
				continue
			}
			bar, err := parseKline(k)
			if err != nil {
				return nil, err
			}
			out = append(out, bar)
		}

		last := int64(0)
		if v, ok := raw[len(raw)-1][0].(float64); ok {
			last = int64(v)
		}
		start = time.UnixMilli(last).Add(time.Millisecond)
	}
	return out, nil
}

// parseKline maps one raw kline row: [openTime, open, high, low, close,
// volume, ...], with prices as strings.
func parseKline(k []any) (types.Bar, error) {
	openTime, ok := k[0].(float64)
	if !ok {
		return types.Bar{}, fmt.Errorf("data: kline open time is %T", k[0])
	}
	bar := types.Bar{Ts: time.UnixMilli(int64(openTime)).UTC()}
	for i, dst := range []*float64{&bar.Open, &bar.High, &bar.Low, &bar.Close, &bar.Volume} {
		s, ok := k[i+1].(string)
		if !ok {
			return types.Bar{}, fmt.Errorf("data: kline field %d is %T", i+1, k[i+1])
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return types.Bar{}, fmt.Errorf("data: kline field %d: %w", i+1, err)
		}
		*dst = v
	}
	return bar, nil
}
