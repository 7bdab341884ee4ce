package strategy

import (
	"errors"

	"github.com/evdnx/gokelly/config"
	"github.com/evdnx/gokelly/executor"
	"github.com/evdnx/gokelly/indicator"
	"github.com/evdnx/gokelly/logger"
	"github.com/evdnx/gokelly/metrics"
	"github.com/evdnx/gokelly/risk"
	"github.com/evdnx/gokelly/types"
)

// BaseStrategy bundles the common dependencies and helpers.
type BaseStrategy struct {
	Exec   executor.Executor
	Log    logger.Logger
	Cfg    config.StrategyConfig
	Osc    indicator.Oscillator
	Symbol string

	history *priceHistory
}

// NewBaseStrategy validates the config and wires the dependencies. All
// concrete strategies call this from their own constructors.
func NewBaseStrategy(symbol string, cfg config.StrategyConfig,
	exec executor.Executor, osc indicator.Oscillator,
	log logger.Logger) (*BaseStrategy, error) {

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if exec == nil {
		return nil, errors.New("strategy: executor is required")
	}
	if osc == nil {
		return nil, errors.New("strategy: oscillator is required")
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &BaseStrategy{
		Exec:    exec,
		Log:     log,
		Cfg:     cfg,
		Osc:     osc,
		Symbol:  symbol,
		history: newPriceHistory(cfg.MaxHistory),
	}, nil
}

// submitOrder is a thin wrapper that records metrics and logs.
func (b *BaseStrategy) submitOrder(o types.Order, ctx string) error {
	err := b.Exec.Submit(o)
	if err != nil {
		b.Log.Error("order_submit_failed",
			logger.String("symbol", o.Symbol),
			logger.String("side", string(o.Side)),
			logger.Float64("qty", o.Qty),
			logger.Err(err),
		)
		return err
	}
	b.Log.Info("order_submitted",
		logger.String("symbol", o.Symbol),
		logger.String("side", string(o.Side)),
		logger.Float64("qty", o.Qty),
		logger.Float64("price", o.Price),
		logger.String("ctx", ctx),
	)
	metrics.OrdersSubmitted.WithLabelValues(ctx).Inc()
	return nil
}

// latestOscillator recomputes the oscillator over the full history and
// returns its most recent reading. ok is false while the history is still
// inside the warm-up window.
func (b *BaseStrategy) latestOscillator() (float64, bool) {
	series := b.Osc.Series(b.history.Values())
	if len(series) == 0 {
		return 0, false
	}
	return series[len(series)-1], true
}

// tick runs the shared per-bar flow: record the price, read the
// oscillator, flatten any prior holding, then buy whatever the supplied
// sizer allocates. The exit always precedes the entry so the position is
// re-derived from scratch every bar.
func (b *BaseStrategy) tick(price float64, name string, size func(oscLatest, cash, price float64) float64) {
	if price <= 0 {
		b.Log.Warn("tick_ignored",
			logger.String("symbol", b.Symbol),
			logger.Float64("price", price),
		)
		return
	}
	b.history.Append(price)
	metrics.TicksProcessed.WithLabelValues(b.Symbol).Inc()

	oscLatest, ok := b.latestOscillator()
	if !ok {
		// Still warming up; no exit, no entry.
		return
	}

	if held, _ := b.Exec.Position(b.Symbol); held > 0 {
		qty := risk.Trunc(held, b.Cfg.QuantityPrecision)
		if qty > 0 {
			_ = b.submitOrder(types.Order{
				Symbol:  b.Symbol,
				Side:    types.Sell,
				Qty:     qty,
				Price:   price,
				Comment: "flatten before resize",
			}, name+"_exit")
		}
	}

	buy := risk.NormalizeQty(size(oscLatest, b.Exec.Equity(), price), b.Cfg)
	if buy > 0 {
		_ = b.submitOrder(types.Order{
			Symbol:  b.Symbol,
			Side:    types.Buy,
			Qty:     buy,
			Price:   price,
			Comment: name + " entry",
		}, name+"_entry")
	}

	metrics.EquityGauge.Set(b.Exec.Equity())
}
