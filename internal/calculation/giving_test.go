package calculation

import (
	"testing"

	"github.com/awconrad/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

func TestGivingOptimizer_Optimize(t *testing.T) {
	optimizer := NewGivingOptimizer(domain.FilingMarriedJoint)

	t.Run("QCD first for eligible donor", func(t *testing.T) {
		facts := domain.GivingFacts{
			AnnualBudget:        decimal.NewFromInt(50000),
			AppreciatedStock:    decimal.NewFromInt(20000),
			StockUnrealizedGain: decimal.NewFromInt(15000),
		}
		plan := optimizer.Optimize(facts, 72, decimal.NewFromInt(800000), decimal.NewFromInt(120000))

		if !plan.TotalAllocated.Equal(decimal.NewFromInt(50000)) {
			t.Errorf("TotalAllocated = %s, want 50000", plan.TotalAllocated)
		}
		// QCD has room for the whole budget (cap 108000, balance 800000).
		if !plan.Channels[0].Allocation.Allocated.Equal(decimal.NewFromInt(50000)) {
			t.Errorf("qcd = %s, want 50000", plan.Channels[0].Allocation.Allocated)
		}
		for _, ch := range plan.Channels[1:] {
			if !ch.Allocation.Allocated.IsZero() {
				t.Errorf("%s = %s, want 0", ch.Allocation.Name, ch.Allocation.Allocated)
			}
		}
	})

	t.Run("QCD gated before age 70", func(t *testing.T) {
		facts := domain.GivingFacts{
			AnnualBudget:        decimal.NewFromInt(30000),
			AppreciatedStock:    decimal.NewFromInt(20000),
			StockUnrealizedGain: decimal.NewFromInt(10000),
		}
		plan := optimizer.Optimize(facts, 55, decimal.NewFromInt(500000), decimal.NewFromInt(120000))

		if !plan.Channels[0].Allocation.Allocated.IsZero() {
			t.Errorf("qcd = %s, want 0 before eligibility", plan.Channels[0].Allocation.Allocated)
		}
		// Stock absorbs its capacity, cash takes the rest.
		if !plan.Channels[1].Allocation.Allocated.Equal(decimal.NewFromInt(20000)) {
			t.Errorf("stock = %s, want 20000", plan.Channels[1].Allocation.Allocated)
		}
		if !plan.Channels[3].Allocation.Allocated.Equal(decimal.NewFromInt(10000)) {
			t.Errorf("cash = %s, want 10000", plan.Channels[3].Allocation.Allocated)
		}
		if len(plan.Notes) == 0 {
			t.Error("expected an eligibility note")
		}
	})

	t.Run("QCD capped by traditional balance", func(t *testing.T) {
		facts := domain.GivingFacts{AnnualBudget: decimal.NewFromInt(40000)}
		plan := optimizer.Optimize(facts, 75, decimal.NewFromInt(25000), decimal.NewFromInt(80000))

		if !plan.Channels[0].Allocation.Allocated.Equal(decimal.NewFromInt(25000)) {
			t.Errorf("qcd = %s, want 25000", plan.Channels[0].Allocation.Allocated)
		}
	})

	t.Run("DAF takes remainder when enabled", func(t *testing.T) {
		facts := domain.GivingFacts{
			AnnualBudget:        decimal.NewFromInt(30000),
			UseDonorAdvisedFund: true,
		}
		plan := optimizer.Optimize(facts, 50, decimal.Zero, decimal.NewFromInt(200000))

		if !plan.Channels[2].Allocation.Allocated.Equal(decimal.NewFromInt(30000)) {
			t.Errorf("daf = %s, want 30000", plan.Channels[2].Allocation.Allocated)
		}
	})

	t.Run("Stock savings include avoided gains", func(t *testing.T) {
		facts := domain.GivingFacts{
			AnnualBudget:        decimal.NewFromInt(10000),
			AppreciatedStock:    decimal.NewFromInt(10000),
			StockUnrealizedGain: decimal.NewFromInt(5000),
		}
		// Taxable income 200000 MFJ: 22% marginal, 15% LTCG.
		plan := optimizer.Optimize(facts, 50, decimal.Zero, decimal.NewFromInt(200000))

		stock := plan.Channels[1]
		// 10000*0.22 + 10000*0.5*0.15 = 2200 + 750
		expected := decimal.NewFromInt(2950)
		if !stock.EstimatedSavings.Equal(expected) {
			t.Errorf("stock savings = %s, want %s", stock.EstimatedSavings, expected)
		}
		if !plan.EffectiveGiftCost.Equal(decimal.NewFromInt(7050)) {
			t.Errorf("effective cost = %s, want 7050", plan.EffectiveGiftCost)
		}
	})
}
