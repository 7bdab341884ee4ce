package kelly

import "testing"

func TestSizeForBasicAllocation(t *testing.T) {
	var table SizingTable
	table[4] = 0.4

	// 0.4 * 1000 / 50 = 8.00
	if got := SizeFor(45, table, 1000, 50); got != 8.00 {
		t.Fatalf("expected 8.00, got %v", got)
	}
}

func TestSizeForTruncatesNotRounds(t *testing.T) {
	var table SizingTable
	table[0] = 0.5

	// 0.5 * 100 / 3 = 16.666... -> 16.66, never 16.67.
	if got := SizeFor(5, table, 100, 3); got != 16.66 {
		t.Fatalf("expected truncation to 16.66, got %v", got)
	}
}

func TestSizeForDegenerateInputs(t *testing.T) {
	var table SizingTable
	table[4] = 0.4

	cases := []struct {
		name        string
		cash, price float64
	}{
		{"zero cash", 0, 50},
		{"negative cash", -10, 50},
		{"zero price", 1000, 0},
		{"negative price", 1000, -1},
	}
	for _, c := range cases {
		if got := SizeFor(45, table, c.cash, c.price); got != 0 {
			t.Fatalf("%s: expected 0, got %v", c.name, got)
		}
	}
}

func TestSizeForZeroFractionBand(t *testing.T) {
	var table SizingTable
	table[4] = 0.4

	// Oscillator reading falls in band 7, which has no evidence.
	if got := SizeFor(75, table, 1000, 50); got != 0 {
		t.Fatalf("expected 0 for an empty band, got %v", got)
	}
}

func TestSizeForClampsBandLookup(t *testing.T) {
	var table SizingTable
	table[0] = 0.2
	table[9] = 0.3

	if got := SizeFor(-40, table, 1000, 10); got != 20.00 {
		t.Fatalf("negative reading should use band 0: got %v", got)
	}
	if got := SizeFor(400, table, 1000, 10); got != 30.00 {
		t.Fatalf("huge reading should use band 9: got %v", got)
	}
}

func TestFractionOutOfRangeBand(t *testing.T) {
	var table SizingTable
	table[9] = 0.5

	if got := table.Fraction(-1); got != 0 {
		t.Fatalf("band -1: expected 0, got %v", got)
	}
	if got := table.Fraction(10); got != 0 {
		t.Fatalf("band 10: expected 0, got %v", got)
	}
}

func TestBaselineSizeFor(t *testing.T) {
	var table SizingTable
	table[4] = 0.11
	table[6] = 0.1

	// Above the threshold: full cash.
	if got := BaselineSizeFor(45, table, 1000, 50); got != 20.00 {
		t.Fatalf("expected all-in 20.00, got %v", got)
	}
	// Exactly at the threshold: nothing (strict >).
	if got := BaselineSizeFor(65, table, 1000, 50); got != 0 {
		t.Fatalf("expected 0 at threshold, got %v", got)
	}
	// Degenerate inputs behave like SizeFor.
	if got := BaselineSizeFor(45, table, 0, 50); got != 0 {
		t.Fatalf("expected 0 with zero cash, got %v", got)
	}
}
