package backtest

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/evdnx/gokelly/kelly"
)

// PrintResults renders a comparison table, one row per run.
func PrintResults(w io.Writer, results []*Result) {
	table := tablewriter.NewWriter(w)
	table.Header("Run", "Strategy", "Symbol", "Final $", "Return %", "MaxDD %", "Sharpe", "Sortino")

	for _, r := range results {
		table.Append(
			r.RunID[:8],
			r.Strategy,
			r.Symbol,
			fmt.Sprintf("%.2f", r.Summary.FinalEquity),
			fmt.Sprintf("%+.2f", r.Summary.TotalReturnPct),
			fmt.Sprintf("%.2f", r.Summary.MaxDrawdownPct),
			fmt.Sprintf("%.2f", r.Summary.Sharpe),
			fmt.Sprintf("%.2f", r.Summary.Sortino),
		)
	}
	table.Render()
}

// PrintSizingTable renders the per-band Kelly fractions estimated for a
// symbol.
func PrintSizingTable(w io.Writer, symbol string, t kelly.SizingTable) {
	fmt.Fprintf(w, "%s sizing fractions by oscillator band:\n", symbol)

	table := tablewriter.NewWriter(w)
	table.Header("Band", "Range", "Fraction")
	for band, f := range t {
		lo := band * 10
		rng := fmt.Sprintf("[%d,%d)", lo, lo+10)
		if band == 0 {
			rng = "(-inf,10)"
		}
		if band == kelly.NumBands-1 {
			rng = "[90,+inf)"
		}
		table.Append(fmt.Sprintf("%d", band), rng, fmt.Sprintf("%.4f", f))
	}
	table.Render()
}
