// Package backtest replays a historical bar series through a strategy and
// measures the resulting equity curve. It owns no trading logic: the
// strategy decides, the executor fills, the engine only orchestrates and
// measures.
package backtest

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/evdnx/gokelly/executor"
	"github.com/evdnx/gokelly/logger"
	"github.com/evdnx/gokelly/strategy"
	"github.com/evdnx/gokelly/types"
)

// Point is one sample of the mark-to-market equity curve.
type Point struct {
	Ts     time.Time
	Equity float64
}

// Result bundles everything a single run produced.
type Result struct {
	RunID         string
	Strategy      string
	Symbol        string
	InitialEquity float64
	EquityCurve   []Point
	Summary       Summary
}

// Engine replays bars through a strategy. The first warmup bars seed the
// strategy's historical window; the rest are ticked one by one.
type Engine struct {
	bars   []types.Bar
	warmup int
	log    logger.Logger
}

func NewEngine(bars []types.Bar, warmup int, log logger.Logger) *Engine {
	if log == nil {
		log = logger.NewNop()
	}
	return &Engine{bars: bars, warmup: warmup, log: log}
}

// Run warms the strategy up on the leading window and replays the
// remaining bars, marking the portfolio to market after each one.
func (e *Engine) Run(symbol string, strat strategy.Strategy, exec executor.Executor) (*Result, error) {
	if e.warmup <= 0 || e.warmup >= len(e.bars) {
		return nil, fmt.Errorf("backtest: need warmup in (0, %d), got %d", len(e.bars), e.warmup)
	}

	closes := make([]float64, e.warmup)
	for i, b := range e.bars[:e.warmup] {
		closes[i] = b.Close
	}
	if err := strat.WarmUp(closes); err != nil {
		return nil, fmt.Errorf("backtest: warmup: %w", err)
	}

	initial := exec.Equity()
	res := &Result{
		RunID:         uuid.New().String(),
		Strategy:      strat.Name(),
		Symbol:        symbol,
		InitialEquity: initial,
		EquityCurve:   make([]Point, 0, len(e.bars)-e.warmup),
	}

	e.log.Info("backtest_started",
		logger.String("run_id", res.RunID),
		logger.String("strategy", res.Strategy),
		logger.String("symbol", symbol),
		logger.Int("warmup_bars", e.warmup),
		logger.Int("replay_bars", len(e.bars)-e.warmup),
	)

	for _, bar := range e.bars[e.warmup:] {
		strat.ProcessBar(bar.High, bar.Low, bar.Close, bar.Volume)
		qty, _ := exec.Position(symbol)
		res.EquityCurve = append(res.EquityCurve, Point{
			Ts:     bar.Ts,
			Equity: exec.Equity() + qty*bar.Close,
		})
	}

	res.Summary = ComputeSummary(res.EquityCurve, initial)

	e.log.Info("backtest_finished",
		logger.String("run_id", res.RunID),
		logger.String("strategy", res.Strategy),
		logger.Float64("final_equity", res.Summary.FinalEquity),
		logger.Float64("return_pct", res.Summary.TotalReturnPct),
	)
	return res, nil
}
