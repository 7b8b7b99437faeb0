package sequencing

import (
	"testing"

	"github.com/awconrad/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

func testAccounts() domain.Accounts {
	return domain.Accounts{
		TaxableBalance:     decimal.NewFromInt(100000),
		TaxableBasis:       decimal.NewFromInt(40000),
		TraditionalBalance: decimal.NewFromInt(200000),
		RothBalance:        decimal.NewFromInt(50000),
	}
}

func TestStandardStrategy_Plan(t *testing.T) {
	strategy := NewStandardStrategy()

	t.Run("Taxable drains before traditional and roth", func(t *testing.T) {
		sources := SourcesFromAccounts(testAccounts(), decimal.Zero)
		plan := strategy.Plan(sources, decimal.NewFromInt(150000))

		if len(plan.Allocations) != 2 {
			t.Fatalf("got %d allocations, want 2", len(plan.Allocations))
		}
		if plan.Allocations[0].Kind != domain.AccountTaxable {
			t.Errorf("first allocation from %s, want taxable", plan.Allocations[0].Kind)
		}
		if !plan.Allocations[0].Gross.Equal(decimal.NewFromInt(100000)) {
			t.Errorf("taxable gross = %s, want 100000", plan.Allocations[0].Gross)
		}
		if plan.Allocations[1].Kind != domain.AccountTraditional {
			t.Errorf("second allocation from %s, want traditional", plan.Allocations[1].Kind)
		}
		if !plan.Allocations[1].Gross.Equal(decimal.NewFromInt(50000)) {
			t.Errorf("traditional gross = %s, want 50000", plan.Allocations[1].Gross)
		}
		if !plan.TotalSourced.Equal(decimal.NewFromInt(150000)) {
			t.Errorf("TotalSourced = %s, want 150000", plan.TotalSourced)
		}
		if !plan.RemainingNeed.Equal(decimal.Zero) {
			t.Errorf("RemainingNeed = %s, want 0", plan.RemainingNeed)
		}
	})

	t.Run("Taxable withdrawal splits gains pro rata", func(t *testing.T) {
		// Balance 100000 with basis 40000: 60% of every dollar out is gain.
		sources := SourcesFromAccounts(testAccounts(), decimal.Zero)
		plan := strategy.Plan(sources, decimal.NewFromInt(50000))

		if !plan.CapitalGains.Equal(decimal.NewFromInt(30000)) {
			t.Errorf("CapitalGains = %s, want 30000", plan.CapitalGains)
		}
		if !plan.TaxFreeAmount.Equal(decimal.NewFromInt(20000)) {
			t.Errorf("TaxFreeAmount = %s, want 20000", plan.TaxFreeAmount)
		}
		if !plan.OrdinaryIncome.Equal(decimal.Zero) {
			t.Errorf("OrdinaryIncome = %s, want 0", plan.OrdinaryIncome)
		}
	})

	t.Run("Pending RMD sourced before taxable", func(t *testing.T) {
		sources := SourcesFromAccounts(testAccounts(), decimal.NewFromInt(12000))
		plan := strategy.Plan(sources, decimal.NewFromInt(40000))

		if !plan.RMDSatisfied {
			t.Error("RMD should be satisfied")
		}
		if plan.Allocations[0].Kind != domain.AccountTraditional {
			t.Errorf("first allocation from %s, want traditional (the RMD)", plan.Allocations[0].Kind)
		}
		if !plan.Allocations[0].Gross.Equal(decimal.NewFromInt(12000)) {
			t.Errorf("RMD allocation = %s, want 12000", plan.Allocations[0].Gross)
		}
		// RMD dollars count toward the need: 40000 - 12000 = 28000 from taxable.
		if !plan.Allocations[1].Gross.Equal(decimal.NewFromInt(28000)) {
			t.Errorf("taxable allocation = %s, want 28000", plan.Allocations[1].Gross)
		}
		if !plan.OrdinaryIncome.Equal(decimal.NewFromInt(12000)) {
			t.Errorf("OrdinaryIncome = %s, want 12000", plan.OrdinaryIncome)
		}
	})

	t.Run("Short traditional balance flags the RMD", func(t *testing.T) {
		accounts := testAccounts()
		accounts.TraditionalBalance = decimal.NewFromInt(5000)
		sources := SourcesFromAccounts(accounts, decimal.NewFromInt(12000))
		plan := strategy.Plan(sources, decimal.NewFromInt(1000))

		if plan.RMDSatisfied {
			t.Error("RMD cannot be satisfied from a 5000 balance")
		}
		if len(plan.Notes) == 0 {
			t.Error("expected a note about the unsatisfied RMD")
		}
	})

	t.Run("Exhausted sources report remaining need", func(t *testing.T) {
		sources := SourcesFromAccounts(testAccounts(), decimal.Zero)
		plan := strategy.Plan(sources, decimal.NewFromInt(500000))

		// 100000 + 200000 + 50000 = 350000 available.
		if !plan.TotalSourced.Equal(decimal.NewFromInt(350000)) {
			t.Errorf("TotalSourced = %s, want 350000", plan.TotalSourced)
		}
		if !plan.RemainingNeed.Equal(decimal.NewFromInt(150000)) {
			t.Errorf("RemainingNeed = %s, want 150000", plan.RemainingNeed)
		}
	})

	t.Run("Zero need with pending RMD still withdraws the RMD", func(t *testing.T) {
		sources := SourcesFromAccounts(testAccounts(), decimal.NewFromInt(8000))
		plan := strategy.Plan(sources, decimal.Zero)

		if !plan.TotalSourced.Equal(decimal.NewFromInt(8000)) {
			t.Errorf("TotalSourced = %s, want 8000 (the RMD)", plan.TotalSourced)
		}
	})
}

func TestTaxEfficientStrategy_Plan(t *testing.T) {
	t.Run("Traditional fills headroom before taxable", func(t *testing.T) {
		strategy := NewTaxEfficientStrategy(decimal.NewFromInt(30000))
		sources := SourcesFromAccounts(testAccounts(), decimal.Zero)
		plan := strategy.Plan(sources, decimal.NewFromInt(80000))

		if plan.Allocations[0].Kind != domain.AccountTraditional {
			t.Fatalf("first allocation from %s, want traditional", plan.Allocations[0].Kind)
		}
		if !plan.Allocations[0].Gross.Equal(decimal.NewFromInt(30000)) {
			t.Errorf("traditional gross = %s, want the 30000 headroom", plan.Allocations[0].Gross)
		}
		// Remaining 50000 comes from taxable, leaving roth untouched.
		if plan.Allocations[1].Kind != domain.AccountTaxable {
			t.Errorf("second allocation from %s, want taxable", plan.Allocations[1].Kind)
		}
		if !plan.Allocations[1].Gross.Equal(decimal.NewFromInt(50000)) {
			t.Errorf("taxable gross = %s, want 50000", plan.Allocations[1].Gross)
		}
	})

	t.Run("RMD consumes the headroom", func(t *testing.T) {
		strategy := NewTaxEfficientStrategy(decimal.NewFromInt(30000))
		sources := SourcesFromAccounts(testAccounts(), decimal.NewFromInt(25000))
		plan := strategy.Plan(sources, decimal.NewFromInt(60000))

		// 25000 RMD leaves 5000 of headroom for discretionary traditional.
		if !plan.OrdinaryIncome.Equal(decimal.NewFromInt(30000)) {
			t.Errorf("OrdinaryIncome = %s, want 30000", plan.OrdinaryIncome)
		}
	})

	t.Run("Roth before traditional overflow", func(t *testing.T) {
		strategy := NewTaxEfficientStrategy(decimal.NewFromInt(10000))
		accounts := testAccounts()
		accounts.TaxableBalance = decimal.NewFromInt(20000)
		accounts.TaxableBasis = decimal.NewFromInt(20000)
		sources := SourcesFromAccounts(accounts, decimal.Zero)
		// Need 10000 headroom + 20000 taxable + 50000 roth + 20000 overflow.
		plan := strategy.Plan(sources, decimal.NewFromInt(100000))

		if len(plan.Allocations) != 4 {
			t.Fatalf("got %d allocations, want 4", len(plan.Allocations))
		}
		if plan.Allocations[2].Kind != domain.AccountRoth {
			t.Errorf("third allocation from %s, want roth", plan.Allocations[2].Kind)
		}
		if plan.Allocations[3].Kind != domain.AccountTraditional {
			t.Errorf("overflow allocation from %s, want traditional", plan.Allocations[3].Kind)
		}
		if !plan.Allocations[3].Gross.Equal(decimal.NewFromInt(20000)) {
			t.Errorf("overflow gross = %s, want 20000", plan.Allocations[3].Gross)
		}
	})
}

func TestCustomStrategy_Plan(t *testing.T) {
	t.Run("User order honored", func(t *testing.T) {
		strategy := NewCustomStrategy([]domain.AccountKind{domain.AccountRoth, domain.AccountTaxable})
		sources := SourcesFromAccounts(testAccounts(), decimal.Zero)
		plan := strategy.Plan(sources, decimal.NewFromInt(60000))

		if plan.Allocations[0].Kind != domain.AccountRoth {
			t.Errorf("first allocation from %s, want roth", plan.Allocations[0].Kind)
		}
		if !plan.Allocations[0].Gross.Equal(decimal.NewFromInt(50000)) {
			t.Errorf("roth gross = %s, want the full 50000", plan.Allocations[0].Gross)
		}
		if plan.Allocations[1].Kind != domain.AccountTaxable {
			t.Errorf("second allocation from %s, want taxable", plan.Allocations[1].Kind)
		}
	})

	t.Run("Omitted accounts used last in standard order", func(t *testing.T) {
		strategy := NewCustomStrategy([]domain.AccountKind{domain.AccountRoth})
		sources := SourcesFromAccounts(testAccounts(), decimal.Zero)
		plan := strategy.Plan(sources, decimal.NewFromInt(200000))

		// 50000 roth, then fallback taxable 100000, then traditional 50000.
		if len(plan.Allocations) != 3 {
			t.Fatalf("got %d allocations, want 3", len(plan.Allocations))
		}
		if plan.Allocations[1].Kind != domain.AccountTaxable {
			t.Errorf("fallback should start with taxable, got %s", plan.Allocations[1].Kind)
		}
		if !plan.Allocations[2].Gross.Equal(decimal.NewFromInt(50000)) {
			t.Errorf("traditional fallback = %s, want 50000", plan.Allocations[2].Gross)
		}
	})
}

func TestNewStrategy(t *testing.T) {
	headroom := decimal.NewFromInt(20000)

	t.Run("Empty name defaults to standard", func(t *testing.T) {
		strategy, err := NewStrategy(domain.WithdrawalPolicy{}, headroom)
		if err != nil {
			t.Fatalf("NewStrategy() error: %v", err)
		}
		if strategy.Name() != "standard" {
			t.Errorf("Name() = %q, want standard", strategy.Name())
		}
	})

	t.Run("Custom requires an order", func(t *testing.T) {
		_, err := NewStrategy(domain.WithdrawalPolicy{Strategy: "custom"}, headroom)
		if err == nil {
			t.Error("expected error for custom strategy without an order")
		}
	})

	t.Run("Custom rejects unknown account kinds", func(t *testing.T) {
		policy := domain.WithdrawalPolicy{Strategy: "custom", CustomOrder: []string{"roth", "crypto"}}
		if _, err := NewStrategy(policy, headroom); err == nil {
			t.Error("expected error for unknown account kind")
		}
	})

	t.Run("Unknown strategy rejected", func(t *testing.T) {
		if _, err := NewStrategy(domain.WithdrawalPolicy{Strategy: "yolo"}, headroom); err == nil {
			t.Error("expected error for unknown strategy name")
		}
	})
}
