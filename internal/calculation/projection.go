package calculation

import (
	"fmt"

	"github.com/awconrad/finplan/internal/domain"
	"github.com/awconrad/finplan/internal/reference"
	"github.com/awconrad/finplan/internal/sequencing"
	"github.com/shopspring/decimal"
)

// MedicareEligibilityAge is when Part B premiums start.
const MedicareEligibilityAge = 65

// irmaaLookbackYears is the MAGI lookback Medicare uses to set surcharges.
const irmaaLookbackYears = 2

// ProjectionEngine runs the year-by-year retirement simulation: salary and
// contributions while working, then spending funded by Social Security,
// RMDs, and sequenced withdrawals, with federal, capital gains, state,
// FICA, and Medicare costs applied each year.
type ProjectionEngine struct {
	Taxes    *TaxEngine
	Strategy sequencing.Strategy
	Logger   Logger
}

// NewProjectionEngine wires a projection engine for a plan's filing status
// and withdrawal strategy.
func NewProjectionEngine(status domain.FilingStatus, strategy sequencing.Strategy, logger Logger) *ProjectionEngine {
	if logger == nil {
		logger = NopLogger
	}
	if strategy == nil {
		strategy = sequencing.NewStandardStrategy()
	}
	return &ProjectionEngine{
		Taxes:    NewTaxEngine(status),
		Strategy: strategy,
		Logger:   logger,
	}
}

// Project simulates the plan over its horizon. Balances never go negative;
// a year whose need cannot be sourced records the unmet amount as a
// shortfall instead.
func (pe *ProjectionEngine) Project(plan *domain.Plan) (*domain.ProjectionSummary, error) {
	primary := plan.Household.Primary()
	if primary == nil {
		return nil, fmt.Errorf("projection requires at least one participant")
	}
	horizon := plan.Assumptions.ProjectionYears
	if horizon <= 0 {
		horizon = domain.DefaultAssumptions().ProjectionYears
	}
	baseYear := plan.Assumptions.BaseYear
	if baseYear == 0 {
		baseYear = domain.DefaultAssumptions().BaseYear
	}

	stateRules, err := reference.StateRulesFor(plan.Household.State)
	if err != nil {
		return nil, fmt.Errorf("projection: %w", err)
	}

	accounts := plan.Household.Accounts
	one := decimal.NewFromInt(1)
	inflationFactor := one
	inflationStep := one.Add(plan.Assumptions.InflationRate)
	colaStep := one.Add(plan.Assumptions.COLARate)

	summary := &domain.ProjectionSummary{Years: make([]domain.AnnualProjection, 0, horizon)}
	magiHistory := make([]decimal.Decimal, 0, horizon)
	prevTaxes := decimal.Zero

	for i := 0; i < horizon; i++ {
		year := baseYear + i
		age := primary.AgeInYear(year)
		seniors := plan.Household.Seniors65Plus(year)
		retired := age >= primary.RetirementAge

		proj := domain.AnnualProjection{
			Year:               year,
			Age:                age,
			IsRetired:          retired,
			IsMedicareEligible: age >= MedicareEligibilityAge,
			IsRMDYear:          age >= reference.RMDBeginAge,
		}

		// Wages for everyone still working, grown with inflation.
		wages := decimal.Zero
		for p := range plan.Household.Participants {
			person := &plan.Household.Participants[p]
			if person.AgeInYear(year) < person.RetirementAge {
				wages = wages.Add(person.AnnualSalary.Mul(inflationFactor))
			}
		}
		proj.Salary = wages

		// Social Security with COLA growth from the claim year.
		ssBenefit := decimal.Zero
		for p := range plan.Household.Participants {
			person := &plan.Household.Participants[p]
			ssBenefit = ssBenefit.Add(annualBenefitInYear(person, year, colaStep))
		}
		proj.SSBenefit = ssBenefit

		// Spending target, inflated when the plan says so.
		spend := plan.Spending.AnnualSpending
		if plan.Spending.InflationAdjusted {
			spend = spend.Mul(inflationFactor)
		}
		proj.SpendingTarget = spend

		// Contributions while working.
		if !retired {
			accounts = pe.applyContributions(plan, primary, age, wages, &accounts)
		}

		// RMD is computed on the start-of-year traditional balance and
		// must come out whether or not the money is needed.
		pendingRMD := decimal.Zero
		if proj.IsRMDYear {
			pendingRMD = reference.RequiredMinimumDistribution(accounts.TraditionalBalance, age)
		}
		proj.RMD = pendingRMD

		// Cash need beyond wages and benefits, including an estimate of
		// this year's taxes carried forward from last year's bill.
		fica := pe.Taxes.FICATax(wages)
		need := spend.Add(prevTaxes).Add(fica).Sub(wages).Sub(ssBenefit)
		if need.LessThan(decimal.Zero) {
			need = decimal.Zero
		}

		sources := sequencing.SourcesFromAccounts(accounts, pendingRMD)
		wplan := pe.Strategy.Plan(sources, need)

		for _, alloc := range wplan.Allocations {
			switch alloc.Kind {
			case domain.AccountTaxable:
				proj.WithdrawalTaxable = proj.WithdrawalTaxable.Add(alloc.Gross)
			case domain.AccountTraditional:
				proj.WithdrawalTrad = proj.WithdrawalTrad.Add(alloc.Gross)
			case domain.AccountRoth:
				proj.WithdrawalRoth = proj.WithdrawalRoth.Add(alloc.Gross)
			}
		}
		accounts = applyWithdrawals(accounts, wplan)

		// RMD dollars beyond the spending need get reinvested in taxable.
		excess := wplan.TotalSourced.Sub(need)
		if excess.GreaterThan(decimal.Zero) {
			accounts.TaxableBalance = accounts.TaxableBalance.Add(excess)
			accounts.TaxableBasis = accounts.TaxableBasis.Add(excess)
		}

		// Taxes on this year's income.
		ordinaryIncome := wages.Add(wplan.OrdinaryIncome)
		ssTaxable := pe.Taxes.TaxableSocialSecurity(ssBenefit, ordinaryIncome.Add(wplan.CapitalGains))
		deduction := pe.Taxes.StandardDeduction(seniors)
		ordinaryTaxable := ordinaryIncome.Add(ssTaxable).Sub(deduction)

		proj.FederalTax = pe.Taxes.OrdinaryTax(ordinaryTaxable)
		proj.CapitalGainsTax = pe.Taxes.CapitalGainsTax(wplan.CapitalGains, ordinaryTaxable)
		proj.FICATax = fica
		proj.StateTax = StateTaxOn(stateRules, wages, decimal.Zero, ssBenefit, wplan.TotalSourced)

		magi := ordinaryIncome.Add(ssTaxable).Add(wplan.CapitalGains)
		magiHistory = append(magiHistory, magi)

		// Medicare Part B plus IRMAA from the two-year MAGI lookback.
		if proj.IsMedicareEligible {
			covered := decimal.NewFromInt(int64(medicareCovered(&plan.Household, year)))
			months := decimal.NewFromInt(12)
			proj.MedicarePremium = reference.PartBBasePremium2025.Mul(months).Mul(covered)
			lookback := magi
			if i >= irmaaLookbackYears {
				lookback = magiHistory[i-irmaaLookbackYears]
			}
			surcharge := reference.IRMAASurcharge(lookback, plan.Household.FilingStatus.IsJoint())
			proj.IRMAASurcharge = surcharge.Mul(months).Mul(covered)
		}

		totalTax := proj.FederalTax.Add(proj.CapitalGainsTax).Add(proj.StateTax)
		proj.GrossIncome = wages.Add(ssBenefit).Add(wplan.TotalSourced)
		proj.NetIncome = proj.GrossIncome.
			Sub(totalTax).Sub(proj.FICATax).
			Sub(proj.MedicarePremium).Sub(proj.IRMAASurcharge)
		proj.Shortfall = wplan.RemainingNeed
		prevTaxes = totalTax.Add(proj.MedicarePremium).Add(proj.IRMAASurcharge)

		// Grow what remains at the phase-appropriate return.
		growth := one.Add(plan.Assumptions.ReturnPostRetirement)
		if !retired {
			growth = one.Add(plan.Assumptions.ReturnPreRetirement)
		}
		accounts.TaxableBalance = accounts.TaxableBalance.Mul(growth)
		accounts.TraditionalBalance = accounts.TraditionalBalance.Mul(growth)
		accounts.RothBalance = accounts.RothBalance.Mul(growth)

		proj.BalanceTaxable = accounts.TaxableBalance
		proj.BalanceTraditional = accounts.TraditionalBalance
		proj.BalanceRoth = accounts.RothBalance

		summary.Years = append(summary.Years, proj)
		summary.LifetimeTaxes = summary.LifetimeTaxes.Add(totalTax).Add(proj.FICATax)
		summary.LifetimeIRMAA = summary.LifetimeIRMAA.Add(proj.IRMAASurcharge)
		summary.TotalShortfall = summary.TotalShortfall.Add(proj.Shortfall)
		if summary.DepletionYear == 0 && proj.IsDepleted() {
			summary.DepletionYear = year
			pe.Logger.Warnf("portfolio depleted in %d (age %d)", year, age)
		}

		inflationFactor = inflationFactor.Mul(inflationStep)
	}

	if len(summary.Years) > 0 {
		summary.EndingBalance = summary.Years[len(summary.Years)-1].TotalBalance()
		summary.FirstYearNet = summary.Years[0].NetIncome
	}
	return summary, nil
}

// applyContributions routes the contribution plan's monthly buckets into
// account balances for one working year. Employer match lands in the
// traditional account on top of the participant's own deferrals.
func (pe *ProjectionEngine) applyContributions(plan *domain.Plan, primary *domain.Person, age int, wages decimal.Decimal, accounts *domain.Accounts) domain.Accounts {
	out := *accounts
	if plan.Contributions == nil || wages.LessThanOrEqual(decimal.Zero) {
		return out
	}
	cplan := NewContributionOptimizer().Optimize(*plan.Contributions, primary.AnnualSalary, age)
	months := decimal.NewFromInt(12)
	for _, alloc := range cplan.Allocations {
		annual := alloc.Allocated.Mul(months)
		switch alloc.Name {
		case "401k_match", "401k_rest":
			out.TraditionalBalance = out.TraditionalBalance.Add(annual)
		case "roth_ira":
			out.RothBalance = out.RothBalance.Add(annual)
		default:
			// HSA and taxable both grow the after-tax pool here.
			out.TaxableBalance = out.TaxableBalance.Add(annual)
			out.TaxableBasis = out.TaxableBasis.Add(annual)
		}
	}
	out.TraditionalBalance = out.TraditionalBalance.Add(cplan.MatchCaptured.Mul(months))
	return out
}

// applyWithdrawals subtracts a withdrawal plan from the balances, clamping
// at zero and consuming taxable basis pro rata.
func applyWithdrawals(accounts domain.Accounts, wplan sequencing.Plan) domain.Accounts {
	for _, alloc := range wplan.Allocations {
		switch alloc.Kind {
		case domain.AccountTaxable:
			accounts.TaxableBalance = clampZero(accounts.TaxableBalance.Sub(alloc.Gross))
			accounts.TaxableBasis = clampZero(accounts.TaxableBasis.Sub(alloc.TaxFreePortion))
		case domain.AccountTraditional:
			accounts.TraditionalBalance = clampZero(accounts.TraditionalBalance.Sub(alloc.Gross))
		case domain.AccountRoth:
			accounts.RothBalance = clampZero(accounts.RothBalance.Sub(alloc.Gross))
		}
	}
	return accounts
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return d
}

// annualBenefitInYear returns a person's Social Security benefit for a
// calendar year: zero before the claim age, otherwise the claim-adjusted
// PIA with COLA compounding from the claim year.
func annualBenefitInYear(person *domain.Person, year int, colaStep decimal.Decimal) decimal.Decimal {
	claimAge := person.SSClaimAge
	if claimAge == 0 {
		claimAge = reference.FullRetirementAge
	}
	age := person.AgeInYear(year)
	if age < claimAge {
		return decimal.Zero
	}
	pia := person.SSMonthlyAtFRA
	if pia.IsZero() {
		pia = reference.PIAFromAIME(person.AIMEMonthly)
	}
	monthly := pia.Mul(reference.ClaimAdjustment(claimAge))
	annual := monthly.Mul(decimal.NewFromInt(12))
	for y := 0; y < age-claimAge; y++ {
		annual = annual.Mul(colaStep)
	}
	return annual
}

// medicareCovered counts participants at or past Medicare age in a year.
func medicareCovered(h *domain.Household, year int) int {
	n := 0
	for i := range h.Participants {
		if h.Participants[i].AgeInYear(year) >= MedicareEligibilityAge {
			n++
		}
	}
	return n
}
