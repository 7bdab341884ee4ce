package executor

import (
	"fmt"

	"github.com/evdnx/gokelly/logger"
	"github.com/evdnx/gokelly/types"
)

type Executor interface {
	Submit(o types.Order) error
	// Equity reports the available cash balance. For back-testing we also
	// expose the held position.
	Equity() float64
	Position(symbol string) (qty float64, avgPrice float64)
}

// PaperExecutor simulates perfect fills with no slippage. Accounting is
// long-only: a sell larger than the held quantity is rejected, matching
// the liquidate-before-resize flow the strategies drive it with.
type PaperExecutor struct {
	cash      float64
	positions map[string]float64
	avgPrice  map[string]float64
	log       logger.Logger
}

func NewPaperExecutor(startCash float64, log logger.Logger) *PaperExecutor {
	if log == nil {
		log = logger.NewNop()
	}
	return &PaperExecutor{
		cash:      startCash,
		positions: make(map[string]float64),
		avgPrice:  make(map[string]float64),
		log:       log,
	}
}

func (p *PaperExecutor) Submit(o types.Order) error {
	if o.Qty <= 0 {
		return nil
	}
	if o.Price <= 0 {
		return fmt.Errorf("paper executor: non-positive price %v", o.Price)
	}
	cost := o.Price * o.Qty

	switch o.Side {
	case types.Buy:
		if cost > p.cash {
			return fmt.Errorf("paper executor: insufficient cash: need %.2f, have %.2f", cost, p.cash)
		}
		held := p.positions[o.Symbol]
		p.cash -= cost
		p.positions[o.Symbol] = held + o.Qty
		// VWAP of the running position.
		p.avgPrice[o.Symbol] = (p.avgPrice[o.Symbol]*held + cost) / (held + o.Qty)

	case types.Sell:
		held := p.positions[o.Symbol]
		if o.Qty > held {
			return fmt.Errorf("paper executor: sell %v exceeds held %v", o.Qty, held)
		}
		p.cash += cost
		p.positions[o.Symbol] = held - o.Qty
		if p.positions[o.Symbol] == 0 {
			p.avgPrice[o.Symbol] = 0
		}

	default:
		return fmt.Errorf("paper executor: unknown side %q", o.Side)
	}

	p.log.Info("paper_fill",
		logger.String("symbol", o.Symbol),
		logger.String("side", string(o.Side)),
		logger.Float64("qty", o.Qty),
		logger.Float64("price", o.Price),
		logger.Float64("cash", p.cash),
	)
	return nil
}

func (p *PaperExecutor) Equity() float64 { return p.cash }

func (p *PaperExecutor) Position(sym string) (float64, float64) {
	return p.positions[sym], p.avgPrice[sym]
}
