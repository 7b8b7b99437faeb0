package reference

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSPIVAFor(t *testing.T) {
	rec, err := SPIVAFor("large_cap")
	if err != nil {
		t.Fatalf("SPIVAFor(large_cap) error: %v", err)
	}
	if rec.Benchmark != "S&P 500" {
		t.Errorf("Benchmark = %q, want S&P 500", rec.Benchmark)
	}
	if _, err := SPIVAFor("meme_stocks"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestSPIVARecord_UnderperformanceOdds(t *testing.T) {
	rec, err := SPIVAFor("bond")
	if err != nil {
		t.Fatalf("SPIVAFor(bond) error: %v", err)
	}
	cases := []struct {
		horizon int
		want    decimal.Decimal
	}{
		{1, decimal.NewFromFloat(0.62)},
		{7, decimal.NewFromFloat(0.62)},
		{8, decimal.NewFromFloat(0.74)},
		{12, decimal.NewFromFloat(0.74)},
		{13, decimal.NewFromFloat(0.83)},
		{30, decimal.NewFromFloat(0.83)},
	}
	for _, tc := range cases {
		if got := rec.UnderperformanceOdds(tc.horizon); !got.Equal(tc.want) {
			t.Errorf("UnderperformanceOdds(%d) = %s, want %s", tc.horizon, got, tc.want)
		}
	}
}

func TestExpenseRatios(t *testing.T) {
	if !IndexExpenseRatio.LessThan(ActiveExpenseRatio) {
		t.Errorf("index expense ratio %s should be below active %s", IndexExpenseRatio, ActiveExpenseRatio)
	}
}
