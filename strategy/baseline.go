package strategy

import (
	"github.com/evdnx/gokelly/config"
	"github.com/evdnx/gokelly/executor"
	"github.com/evdnx/gokelly/indicator"
	"github.com/evdnx/gokelly/kelly"
	"github.com/evdnx/gokelly/logger"
)

// Baseline is the comparison policy: same estimation, same
// exit-then-enter flow, but the entry is binary. It deploys the whole
// cash balance whenever the band's Kelly fraction clears the threshold
// and sits out otherwise.
type Baseline struct {
	*KellySizing
}

func NewBaseline(symbol string, cfg config.StrategyConfig,
	exec executor.Executor, osc indicator.Oscillator,
	log logger.Logger) (*Baseline, error) {

	ks, err := NewKellySizing(symbol, cfg, exec, osc, log)
	if err != nil {
		return nil, err
	}
	return &Baseline{KellySizing: ks}, nil
}

func (s *Baseline) Name() string { return "baseline" }

func (s *Baseline) ProcessBar(high, low, close, volume float64) {
	s.tick(close, s.Name(), func(oscLatest, cash, price float64) float64 {
		return kelly.BaselineSizeFor(oscLatest, s.table, cash, price)
	})
}
