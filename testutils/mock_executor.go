package testutils

import (
	"sync"

	"github.com/evdnx/gokelly/types"
)

// MockExecutor implements the Executor interface in-memory and records
// every submitted order for assertions. Accounting mirrors PaperExecutor:
// long-only, cash-checked buys.
type MockExecutor struct {
	mu        sync.RWMutex
	cash      float64
	positions map[string]float64
	avgPrice  map[string]float64
	orders    []types.Order
}

// NewMockExecutor creates a fresh executor with the supplied starting cash.
func NewMockExecutor(startCash float64) *MockExecutor {
	return &MockExecutor{
		cash:      startCash,
		positions: make(map[string]float64),
		avgPrice:  make(map[string]float64),
	}
}

func (m *MockExecutor) Submit(o types.Order) error {
	if o.Qty <= 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	cost := o.Price * o.Qty
	if o.Side == types.Buy {
		if cost > m.cash {
			return nil // mimic "insufficient cash" without failing the test run
		}
		held := m.positions[o.Symbol]
		m.cash -= cost
		m.positions[o.Symbol] = held + o.Qty
		m.avgPrice[o.Symbol] = (m.avgPrice[o.Symbol]*held + cost) / (held + o.Qty)
	} else {
		m.cash += cost
		m.positions[o.Symbol] -= o.Qty
		if m.positions[o.Symbol] == 0 {
			m.avgPrice[o.Symbol] = 0
		}
	}
	m.orders = append(m.orders, o)
	return nil
}

func (m *MockExecutor) Equity() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cash
}

func (m *MockExecutor) Position(symbol string) (float64, float64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.positions[symbol], m.avgPrice[symbol]
}

// Orders returns a copy of all submitted orders.
func (m *MockExecutor) Orders() []types.Order {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]types.Order, len(m.orders))
	copy(out, m.orders)
	return out
}

// SetPosition seeds a held quantity directly, bypassing order flow.
func (m *MockExecutor) SetPosition(symbol string, qty, avg float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.positions[symbol] = qty
	m.avgPrice[symbol] = avg
}
