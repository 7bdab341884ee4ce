package strategy

import (
	"testing"

	"github.com/evdnx/gokelly/config"
	"github.com/evdnx/gokelly/indicator"
	"github.com/evdnx/gokelly/testutils"
	"github.com/evdnx/gokelly/types"
)

var (
	_ Strategy = (*KellySizing)(nil)
	_ Strategy = (*Baseline)(nil)
)

// winHistory is 14 flat closes followed by a 100 -> 110 rise: exactly one
// estimator observation, a win, landing in whatever band the scripted
// oscillator points at.
func winHistory() []float64 {
	h := make([]float64, 0, 16)
	for i := 0; i < 14; i++ {
		h = append(h, 100)
	}
	return append(h, 100, 110)
}

// buildKelly constructs a KellySizing strategy wired to a mock executor,
// logger and a scripted oscillator so the tests control band selection
// without real indicator numerics.
func buildKelly(t *testing.T, osc indicator.Oscillator) (*KellySizing, *testutils.MockExecutor) {
	t.Helper()
	cfg := config.Default()

	mockExec := testutils.NewMockExecutor(10_000)
	mockLog := testutils.NewMockLogger()

	ks, err := NewKellySizing("TEST", cfg, mockExec, osc, mockLog)
	if err != nil {
		t.Fatalf("NewKellySizing failed: %v", err)
	}
	return ks, mockExec
}

func TestKellySizing_WarmUpBuildsTable(t *testing.T) {
	ks, _ := buildKelly(t, testutils.FixedOscillator(14, 55))

	if err := ks.WarmUp(winHistory()); err != nil {
		t.Fatalf("WarmUp failed: %v", err)
	}

	table := ks.Table()
	if table[5] != 1.0 {
		t.Fatalf("expected fraction 1.0 in band 5, got %v", table[5])
	}
	for b, f := range table {
		if b != 5 && f != 0 {
			t.Fatalf("band %d should be zero, got %v", b, f)
		}
	}
}

func TestKellySizing_WarmUpShortHistory(t *testing.T) {
	ks, exec := buildKelly(t, testutils.FixedOscillator(14, 55))

	// 15 closes: N == lookAhead, nothing accumulates.
	if err := ks.WarmUp(winHistory()[:15]); err != nil {
		t.Fatalf("WarmUp failed: %v", err)
	}
	if ks.Table() != [10]float64{} {
		t.Fatalf("expected all-zero table, got %v", ks.Table())
	}

	// With a zero table the strategy never buys.
	ks.ProcessBar(110, 110, 110, 1000)
	if n := len(exec.Orders()); n != 0 {
		t.Fatalf("expected no orders with a zero table, got %d", n)
	}
}

/*
Liquidate-before-resize: a prior holding is sold in full, at the tick
price, before the new allocation is bought. The sell quantity is exactly
the held amount (truncated to quantity precision), regardless of the new
allocation.
*/
func TestKellySizing_LiquidateBeforeResize(t *testing.T) {
	ks, exec := buildKelly(t, testutils.FixedOscillator(14, 55))
	if err := ks.WarmUp(winHistory()); err != nil {
		t.Fatalf("WarmUp failed: %v", err)
	}

	exec.SetPosition("TEST", 3.5, 100)

	ks.ProcessBar(110, 110, 110, 1000)

	orders := exec.Orders()
	if len(orders) != 2 {
		t.Fatalf("expected sell + buy, got %d orders: %+v", len(orders), orders)
	}
	if orders[0].Side != types.Sell || orders[0].Qty != 3.5 {
		t.Fatalf("order 0 should sell the full 3.5 holding, got %+v", orders[0])
	}
	if orders[1].Side != types.Buy {
		t.Fatalf("order 1 should be the re-entry buy, got %+v", orders[1])
	}
	// Fraction 1.0: cash after the sell is 10000 + 3.5*110 = 10385,
	// allocation = trunc(10385/110, 2) = 94.40.
	if orders[1].Qty != 94.40 {
		t.Fatalf("expected buy qty 94.40, got %v", orders[1].Qty)
	}
}

func TestKellySizing_EveryTickFlattensFirst(t *testing.T) {
	ks, exec := buildKelly(t, testutils.FixedOscillator(14, 55))
	if err := ks.WarmUp(winHistory()); err != nil {
		t.Fatalf("WarmUp failed: %v", err)
	}

	ks.ProcessBar(110, 110, 110, 1000)
	ks.ProcessBar(111, 111, 111, 1000)

	orders := exec.Orders()
	// Tick 1: flat, so buy only. Tick 2: sell the tick-1 buy, then re-buy.
	if len(orders) != 3 {
		t.Fatalf("expected buy, sell, buy — got %d orders: %+v", len(orders), orders)
	}
	if orders[0].Side != types.Buy {
		t.Fatalf("tick 1 should open with a buy, got %+v", orders[0])
	}
	if orders[1].Side != types.Sell || orders[1].Qty != orders[0].Qty {
		t.Fatalf("tick 2 must first sell the %v held, got %+v", orders[0].Qty, orders[1])
	}
	if orders[2].Side != types.Buy {
		t.Fatalf("tick 2 should re-enter after the sell, got %+v", orders[2])
	}
}

func TestKellySizing_EmptyBandBuysNothing(t *testing.T) {
	// Band 5 earns fraction 1 during warm-up, but the tick-time reading
	// falls in band 2, which has no evidence.
	osc := &testutils.ScriptedOscillator{Warm: 14, Values: []float64{55, 25}}
	ks, exec := buildKelly(t, osc)
	if err := ks.WarmUp(winHistory()); err != nil {
		t.Fatalf("WarmUp failed: %v", err)
	}

	ks.ProcessBar(110, 110, 110, 1000)

	if n := len(exec.Orders()); n != 0 {
		t.Fatalf("expected no orders for an empty band, got %d: %+v", n, exec.Orders())
	}
}

func TestKellySizing_SkipsTickInsideWarmup(t *testing.T) {
	ks, exec := buildKelly(t, testutils.FixedOscillator(14, 55))
	// Only 5 closes seeded: the oscillator has no reading yet.
	if err := ks.WarmUp([]float64{100, 100, 100, 100, 100}); err != nil {
		t.Fatalf("WarmUp failed: %v", err)
	}
	exec.SetPosition("TEST", 2, 100)

	ks.ProcessBar(101, 101, 101, 1000)

	// No oscillator reading: no exit, no entry.
	if n := len(exec.Orders()); n != 0 {
		t.Fatalf("expected no orders during warm-up, got %d", n)
	}
}

func TestKellySizing_IgnoresNonPositivePrice(t *testing.T) {
	ks, exec := buildKelly(t, testutils.FixedOscillator(14, 55))
	if err := ks.WarmUp(winHistory()); err != nil {
		t.Fatalf("WarmUp failed: %v", err)
	}

	ks.ProcessBar(0, 0, 0, 1000)
	ks.ProcessBar(-5, -5, -5, 1000)

	if n := len(exec.Orders()); n != 0 {
		t.Fatalf("expected no orders for degenerate prices, got %d", n)
	}
}

func TestKellySizing_DustHoldingNotSold(t *testing.T) {
	ks, exec := buildKelly(t, &testutils.ScriptedOscillator{Warm: 14, Values: []float64{55, 25}})
	if err := ks.WarmUp(winHistory()); err != nil {
		t.Fatalf("WarmUp failed: %v", err)
	}
	// Below the 2-decimal precision: truncates to zero, nothing to sell.
	exec.SetPosition("TEST", 0.004, 100)

	ks.ProcessBar(110, 110, 110, 1000)

	if n := len(exec.Orders()); n != 0 {
		t.Fatalf("expected no orders for a dust holding, got %d", n)
	}
}
