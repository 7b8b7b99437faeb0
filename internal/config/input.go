// Package config loads and validates plan files. Structural problems
// (missing file, bad yaml, no participants, unknown state) are errors;
// out-of-range numeric inputs are clamped to sane bounds so a slightly
// off hand-edited file still produces a plan.
package config

import (
	"fmt"
	"os"

	"github.com/awconrad/finplan/internal/domain"
	"github.com/awconrad/finplan/internal/reference"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser loads plan files from disk.
type InputParser struct{}

func NewInputParser() *InputParser { return &InputParser{} }

// LoadFromFile reads, parses, and validates a yaml plan file.
func (ip *InputParser) LoadFromFile(path string) (*domain.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file %s: %w", path, err)
	}

	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan file %s: %w", path, err)
	}

	if err := ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}
	return &plan, nil
}

// ValidatePlan checks structure and clamps numeric inputs in place.
func ValidatePlan(plan *domain.Plan) error {
	if len(plan.Household.Participants) == 0 {
		return fmt.Errorf("household must have at least one participant")
	}
	if len(plan.Household.Participants) > 2 {
		return fmt.Errorf("household supports at most two participants, got %d", len(plan.Household.Participants))
	}

	switch plan.Household.FilingStatus {
	case domain.FilingSingle, domain.FilingMarriedJoint:
	case "":
		plan.Household.FilingStatus = domain.FilingSingle
		if len(plan.Household.Participants) == 2 {
			plan.Household.FilingStatus = domain.FilingMarriedJoint
		}
	default:
		return fmt.Errorf("unknown filing status %q", plan.Household.FilingStatus)
	}

	if plan.Household.State == "" {
		return fmt.Errorf("household state is required")
	}
	if !reference.KnownState(plan.Household.State) {
		return fmt.Errorf("unknown state %q (known: %v)", plan.Household.State, reference.StateCodes())
	}

	for i := range plan.Household.Participants {
		if err := validatePerson(&plan.Household.Participants[i], i); err != nil {
			return err
		}
	}

	clampAccounts(&plan.Household.Accounts)
	clampAssumptions(&plan.Assumptions)
	plan.Spending.AnnualSpending = clampNonNegative(plan.Spending.AnnualSpending)

	if plan.Insurance != nil {
		clampInsurance(plan.Insurance)
	}
	if plan.Giving != nil {
		clampGiving(plan.Giving)
	}
	if plan.Contributions != nil {
		clampContributions(plan.Contributions)
	}
	if plan.Withdrawal != nil {
		if err := validateWithdrawal(plan.Withdrawal); err != nil {
			return err
		}
	}
	return nil
}

func validatePerson(p *domain.Person, idx int) error {
	if p.Name == "" {
		return fmt.Errorf("participant %d: name is required", idx)
	}
	if p.BirthYear < 1900 || p.BirthYear > 2020 {
		return fmt.Errorf("participant %s: birth year %d out of range", p.Name, p.BirthYear)
	}

	p.AnnualSalary = clampNonNegative(p.AnnualSalary)
	p.AIMEMonthly = clampNonNegative(p.AIMEMonthly)
	p.SSMonthlyAtFRA = clampNonNegative(p.SSMonthlyAtFRA)

	if p.RetirementAge == 0 {
		p.RetirementAge = 65
	}
	p.RetirementAge = clampInt(p.RetirementAge, 40, 80)

	if p.SSClaimAge != 0 {
		p.SSClaimAge = clampInt(p.SSClaimAge, reference.EarliestClaimAge, reference.LatestClaimAge)
	}
	if p.LongevityAge != 0 {
		p.LongevityAge = clampInt(p.LongevityAge, 65, 110)
	}

	switch p.HealthTier {
	case domain.HealthPreferred, domain.HealthStandard, domain.HealthSubstandard:
	case "":
		p.HealthTier = domain.HealthStandard
	default:
		return fmt.Errorf("participant %s: unknown health tier %q", p.Name, p.HealthTier)
	}
	return nil
}

func clampAccounts(a *domain.Accounts) {
	a.TaxableBalance = clampNonNegative(a.TaxableBalance)
	a.TraditionalBalance = clampNonNegative(a.TraditionalBalance)
	a.RothBalance = clampNonNegative(a.RothBalance)
	a.TaxableBasis = clampNonNegative(a.TaxableBasis)
	// Basis cannot exceed the balance it belongs to.
	if a.TaxableBasis.GreaterThan(a.TaxableBalance) {
		a.TaxableBasis = a.TaxableBalance
	}
}

func clampAssumptions(ga *domain.GlobalAssumptions) {
	defaults := domain.DefaultAssumptions()
	if ga.BaseYear == 0 {
		ga.BaseYear = defaults.BaseYear
	}
	if ga.ProjectionYears == 0 {
		ga.ProjectionYears = defaults.ProjectionYears
	}
	ga.ProjectionYears = clampInt(ga.ProjectionYears, 1, 70)

	ga.InflationRate = clampRate(ga.InflationRate, decimal.NewFromFloat(0.15))
	ga.ReturnPreRetirement = clampRate(ga.ReturnPreRetirement, decimal.NewFromFloat(0.20))
	ga.ReturnPostRetirement = clampRate(ga.ReturnPostRetirement, decimal.NewFromFloat(0.20))
	ga.ReturnStdDev = clampRate(ga.ReturnStdDev, decimal.NewFromFloat(0.50))
	ga.COLARate = clampRate(ga.COLARate, decimal.NewFromFloat(0.15))
}

func clampInsurance(f *domain.InsuranceFacts) {
	f.Debt = clampNonNegative(f.Debt)
	f.MortgageBalance = clampNonNegative(f.MortgageBalance)
	f.EducationPerChild = clampNonNegative(f.EducationPerChild)
	f.CurrentCoverage = clampNonNegative(f.CurrentCoverage)
	f.IncomeYears = clampInt(f.IncomeYears, 0, 30)
	f.Children = clampInt(f.Children, 0, 12)
}

func clampGiving(f *domain.GivingFacts) {
	f.AnnualBudget = clampNonNegative(f.AnnualBudget)
	f.AppreciatedStock = clampNonNegative(f.AppreciatedStock)
	f.StockUnrealizedGain = clampNonNegative(f.StockUnrealizedGain)
	if f.StockUnrealizedGain.GreaterThan(f.AppreciatedStock) {
		f.StockUnrealizedGain = f.AppreciatedStock
	}
}

func clampContributions(f *domain.ContributionFacts) {
	f.MonthlyBudget = clampNonNegative(f.MonthlyBudget)
	f.EmployerMatchRate = clampRate(f.EmployerMatchRate, decimal.NewFromInt(2))
	f.EmployerMatchCapPct = clampRate(f.EmployerMatchCapPct, decimal.NewFromFloat(0.25))
}

func validateWithdrawal(w *domain.WithdrawalPolicy) error {
	switch w.Strategy {
	case "", "standard", "tax_efficient":
		return nil
	case "custom":
		if len(w.CustomOrder) == 0 {
			return fmt.Errorf("custom withdrawal strategy requires custom_order")
		}
		for _, name := range w.CustomOrder {
			if _, err := domain.ParseAccountKind(name); err != nil {
				return fmt.Errorf("withdrawal custom_order: %w", err)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown withdrawal strategy %q", w.Strategy)
	}
}

func clampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return d
}

func clampRate(d, max decimal.Decimal) decimal.Decimal {
	if d.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if d.GreaterThan(max) {
		return max
	}
	return d
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
