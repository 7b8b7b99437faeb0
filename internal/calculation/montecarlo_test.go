package calculation

import (
	"testing"

	"github.com/awconrad/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

func TestMonteCarloSimulator_Simulate(t *testing.T) {
	assumptions := domain.DefaultAssumptions()

	t.Run("Zero withdrawal always succeeds", func(t *testing.T) {
		sim := NewMonteCarloSimulator(MonteCarloConfig{
			NumPaths:     200,
			HorizonYears: 30,
			Seed:         1,
			Model:        ModelNormal,
		}, nil)
		results, err := sim.Simulate(decimal.NewFromInt(1000000), decimal.Zero, assumptions)
		if err != nil {
			t.Fatal(err)
		}
		if !results.SuccessRate.Equal(decimal.NewFromInt(1)) {
			t.Errorf("SuccessRate = %s, want 1", results.SuccessRate)
		}
	})

	t.Run("Impossible withdrawal always fails", func(t *testing.T) {
		sim := NewMonteCarloSimulator(MonteCarloConfig{
			NumPaths:     100,
			HorizonYears: 30,
			Seed:         1,
			Model:        ModelNormal,
		}, nil)
		results, err := sim.Simulate(decimal.NewFromInt(100000), decimal.NewFromInt(90000), assumptions)
		if err != nil {
			t.Fatal(err)
		}
		if !results.SuccessRate.IsZero() {
			t.Errorf("SuccessRate = %s, want 0", results.SuccessRate)
		}
		for _, path := range results.Paths {
			if path.YearsLasted >= 30 {
				t.Errorf("path %d lasted %d years on 90%% withdrawal rate", path.PathID, path.YearsLasted)
			}
		}
	})

	t.Run("Same seed reproduces results", func(t *testing.T) {
		cfg := MonteCarloConfig{NumPaths: 300, HorizonYears: 25, Seed: 42, Model: ModelNormal}
		a, err := NewMonteCarloSimulator(cfg, nil).Simulate(
			decimal.NewFromInt(1500000), decimal.NewFromInt(60000), assumptions)
		if err != nil {
			t.Fatal(err)
		}
		b, err := NewMonteCarloSimulator(cfg, nil).Simulate(
			decimal.NewFromInt(1500000), decimal.NewFromInt(60000), assumptions)
		if err != nil {
			t.Fatal(err)
		}
		if !a.SuccessRate.Equal(b.SuccessRate) {
			t.Errorf("success rates differ: %s vs %s", a.SuccessRate, b.SuccessRate)
		}
		if !a.MedianEndingBalance.Equal(b.MedianEndingBalance) {
			t.Errorf("medians differ: %s vs %s", a.MedianEndingBalance, b.MedianEndingBalance)
		}
	})

	t.Run("Percentiles are ordered", func(t *testing.T) {
		sim := NewMonteCarloSimulator(DefaultMonteCarloConfig(), nil)
		results, err := sim.Simulate(decimal.NewFromInt(2000000), decimal.NewFromInt(80000), assumptions)
		if err != nil {
			t.Fatal(err)
		}
		p := results.Percentiles
		if p.P10.GreaterThan(p.P25) || p.P25.GreaterThan(p.P50) ||
			p.P50.GreaterThan(p.P75) || p.P75.GreaterThan(p.P90) {
			t.Errorf("percentiles out of order: %s %s %s %s %s", p.P10, p.P25, p.P50, p.P75, p.P90)
		}
	})

	t.Run("Bootstrap model runs", func(t *testing.T) {
		sim := NewMonteCarloSimulator(MonteCarloConfig{
			NumPaths:     100,
			HorizonYears: 20,
			Seed:         7,
			Model:        ModelBootstrap,
		}, nil)
		results, err := sim.Simulate(decimal.NewFromInt(1000000), decimal.NewFromInt(40000), assumptions)
		if err != nil {
			t.Fatal(err)
		}
		if results.NumPaths != 100 {
			t.Errorf("NumPaths = %d, want 100", results.NumPaths)
		}
	})

	t.Run("Invalid config rejected", func(t *testing.T) {
		sim := NewMonteCarloSimulator(MonteCarloConfig{NumPaths: 0, HorizonYears: 30}, nil)
		if _, err := sim.Simulate(decimal.NewFromInt(1), decimal.Zero, assumptions); err == nil {
			t.Error("expected error for zero paths")
		}
		sim = NewMonteCarloSimulator(MonteCarloConfig{NumPaths: 10, HorizonYears: 0}, nil)
		if _, err := sim.Simulate(decimal.NewFromInt(1), decimal.Zero, assumptions); err == nil {
			t.Error("expected error for zero horizon")
		}
	})
}
