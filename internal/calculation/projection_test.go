package calculation

import (
	"testing"

	"github.com/awconrad/finplan/internal/domain"
	"github.com/awconrad/finplan/internal/sequencing"
	"github.com/shopspring/decimal"
)

func retiredPlan() *domain.Plan {
	return &domain.Plan{
		Household: domain.Household{
			FilingStatus: domain.FilingMarriedJoint,
			State:        "PA",
			Participants: []domain.Person{
				{
					Name:           "Alice",
					BirthYear:      1958,
					RetirementAge:  65,
					SSClaimAge:     67,
					SSMonthlyAtFRA: decimal.NewFromInt(2400),
					LongevityAge:   92,
				},
			},
			Accounts: domain.Accounts{
				TaxableBalance:     decimal.NewFromInt(400000),
				TaxableBasis:       decimal.NewFromInt(300000),
				TraditionalBalance: decimal.NewFromInt(900000),
				RothBalance:        decimal.NewFromInt(200000),
			},
		},
		Assumptions: domain.GlobalAssumptions{
			InflationRate:        decimal.NewFromFloat(0.025),
			ReturnPreRetirement:  decimal.NewFromFloat(0.07),
			ReturnPostRetirement: decimal.NewFromFloat(0.05),
			COLARate:             decimal.NewFromFloat(0.025),
			ProjectionYears:      25,
			BaseYear:             2025,
		},
		Spending: domain.SpendingPlan{
			AnnualSpending:    decimal.NewFromInt(90000),
			InflationAdjusted: true,
		},
	}
}

func TestProjectionEngine_Project(t *testing.T) {
	engine := NewProjectionEngine(domain.FilingMarriedJoint, sequencing.NewStandardStrategy(), nil)
	plan := retiredPlan()

	summary, err := engine.Project(plan)
	if err != nil {
		t.Fatal(err)
	}
	if len(summary.Years) != 25 {
		t.Fatalf("got %d years, want 25", len(summary.Years))
	}

	t.Run("Balances never go negative", func(t *testing.T) {
		for _, yr := range summary.Years {
			for _, bal := range []decimal.Decimal{yr.BalanceTaxable, yr.BalanceTraditional, yr.BalanceRoth} {
				if bal.LessThan(decimal.Zero) {
					t.Fatalf("year %d has negative balance %s", yr.Year, bal)
				}
			}
		}
	})

	t.Run("Social Security starts at the claim age", func(t *testing.T) {
		for _, yr := range summary.Years {
			if yr.Age < 67 && !yr.SSBenefit.IsZero() {
				t.Errorf("year %d (age %d) has SS benefit %s before claim", yr.Year, yr.Age, yr.SSBenefit)
			}
			if yr.Age >= 67 && yr.SSBenefit.IsZero() {
				t.Errorf("year %d (age %d) missing SS benefit", yr.Year, yr.Age)
			}
		}
	})

	t.Run("RMDs start at 73", func(t *testing.T) {
		for _, yr := range summary.Years {
			if yr.Age < 73 && !yr.RMD.IsZero() {
				t.Errorf("age %d has RMD %s", yr.Age, yr.RMD)
			}
			if yr.Age >= 73 && yr.RMD.IsZero() && yr.BalanceTraditional.GreaterThan(decimal.Zero) {
				t.Errorf("age %d missing RMD", yr.Age)
			}
			if yr.Age >= 73 != yr.IsRMDYear {
				t.Errorf("age %d IsRMDYear = %v", yr.Age, yr.IsRMDYear)
			}
		}
	})

	t.Run("Medicare premiums from 65", func(t *testing.T) {
		for _, yr := range summary.Years {
			if yr.Age >= 65 && yr.MedicarePremium.IsZero() {
				t.Errorf("age %d missing Medicare premium", yr.Age)
			}
		}
	})

	t.Run("Spending target inflates", func(t *testing.T) {
		first := summary.Years[0].SpendingTarget
		last := summary.Years[len(summary.Years)-1].SpendingTarget
		if !last.GreaterThan(first) {
			t.Errorf("spending did not inflate: %s -> %s", first, last)
		}
	})

	t.Run("Pennsylvania exempts retirement income", func(t *testing.T) {
		for _, yr := range summary.Years {
			if yr.Salary.IsZero() && !yr.StateTax.IsZero() {
				t.Errorf("year %d has PA state tax %s on retirement income", yr.Year, yr.StateTax)
			}
		}
	})
}

func TestProjectionEngine_WorkingYears(t *testing.T) {
	plan := retiredPlan()
	plan.Household.Participants[0] = domain.Person{
		Name:           "Dana",
		BirthYear:      1985,
		RetirementAge:  65,
		AnnualSalary:   decimal.NewFromInt(150000),
		SSClaimAge:     67,
		SSMonthlyAtFRA: decimal.NewFromInt(2800),
	}
	plan.Assumptions.ProjectionYears = 10
	plan.Contributions = &domain.ContributionFacts{
		MonthlyBudget:       decimal.NewFromInt(2000),
		EmployerMatchRate:   decimal.NewFromInt(1),
		EmployerMatchCapPct: decimal.NewFromFloat(0.04),
	}

	engine := NewProjectionEngine(domain.FilingMarriedJoint, sequencing.NewStandardStrategy(), nil)
	summary, err := engine.Project(plan)
	if err != nil {
		t.Fatal(err)
	}

	first := summary.Years[0]
	if first.IsRetired {
		t.Error("age 40 should not be retired")
	}
	if first.Salary.IsZero() {
		t.Error("working year missing salary")
	}
	if first.FICATax.IsZero() {
		t.Error("working year missing FICA")
	}

	// Contributions plus growth should leave the portfolio larger after a
	// decade of full-time work with no withdrawals needed.
	start := plan.Household.Accounts.Total()
	end := summary.EndingBalance
	if !end.GreaterThan(start) {
		t.Errorf("portfolio shrank during working years: %s -> %s", start, end)
	}
}

func TestProjectionEngine_ShortfallRecorded(t *testing.T) {
	plan := retiredPlan()
	plan.Household.Accounts = domain.Accounts{
		TaxableBalance: decimal.NewFromInt(50000),
		TaxableBasis:   decimal.NewFromInt(50000),
	}
	plan.Spending.AnnualSpending = decimal.NewFromInt(120000)

	engine := NewProjectionEngine(domain.FilingMarriedJoint, sequencing.NewStandardStrategy(), nil)
	summary, err := engine.Project(plan)
	if err != nil {
		t.Fatal(err)
	}

	if summary.DepletionYear == 0 {
		t.Error("expected depletion year for underfunded plan")
	}
	if !summary.TotalShortfall.GreaterThan(decimal.Zero) {
		t.Error("expected recorded shortfall")
	}
}

func TestProjectionEngine_RequiresParticipant(t *testing.T) {
	engine := NewProjectionEngine(domain.FilingSingle, nil, nil)
	_, err := engine.Project(&domain.Plan{})
	if err == nil {
		t.Fatal("expected error for empty household")
	}
}
