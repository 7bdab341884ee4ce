package strategy

import (
	"strconv"

	"github.com/evdnx/gokelly/config"
	"github.com/evdnx/gokelly/executor"
	"github.com/evdnx/gokelly/indicator"
	"github.com/evdnx/gokelly/kelly"
	"github.com/evdnx/gokelly/logger"
	"github.com/evdnx/gokelly/metrics"
)

// KellySizing scales into a position according to the per-band Kelly
// fractions estimated from the historical window. Every bar it exits any
// prior holding, then re-enters with the fraction of cash the current
// oscillator band earns.
type KellySizing struct {
	*BaseStrategy
	table kelly.SizingTable
}

func NewKellySizing(symbol string, cfg config.StrategyConfig,
	exec executor.Executor, osc indicator.Oscillator,
	log logger.Logger) (*KellySizing, error) {

	base, err := NewBaseStrategy(symbol, cfg, exec, osc, log)
	if err != nil {
		return nil, err
	}
	return &KellySizing{BaseStrategy: base}, nil
}

func (k *KellySizing) Name() string { return "kelly" }

// WarmUp seeds the close history and builds the sizing table from it. A
// window too short to accumulate statistics yields an all-zero table, so
// the strategy simply never buys; that is degraded operation, not an
// error.
func (k *KellySizing) WarmUp(closes []float64) error {
	k.history.Seed(closes)

	series := k.Osc.Series(k.history.Values())
	k.table = kelly.Estimate(k.history.Values(), series, k.Cfg.LookAhead, k.Cfg.LookBehind)

	if k.table == (kelly.SizingTable{}) && len(closes) <= k.Cfg.LookAhead {
		k.Log.Warn("warmup_insufficient_history",
			logger.String("symbol", k.Symbol),
			logger.Int("closes", len(closes)),
			logger.Int("look_ahead", k.Cfg.LookAhead),
		)
	}
	for band, f := range k.table {
		metrics.BandFraction.WithLabelValues(k.Symbol, strconv.Itoa(band)).Set(f)
	}
	k.Log.Info("sizing_table_ready",
		logger.String("symbol", k.Symbol),
		logger.Int("history", k.history.Len()),
		logger.Int("oscillator", len(series)),
	)
	return nil
}

func (k *KellySizing) ProcessBar(high, low, close, volume float64) {
	k.tick(close, k.Name(), func(oscLatest, cash, price float64) float64 {
		return kelly.SizeFor(oscLatest, k.table, cash, price)
	})
}

// Table returns the per-band sizing fractions, fixed after WarmUp.
func (k *KellySizing) Table() kelly.SizingTable { return k.table }
