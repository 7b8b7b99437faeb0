package calculation

import (
	"github.com/awconrad/finplan/internal/domain"
	"github.com/awconrad/finplan/internal/reference"
	"github.com/shopspring/decimal"
)

var decimalTwelve = decimal.NewFromInt(12)

// ContributionOptimizer orders monthly savings across account types:
// employer match first (free money), then HSA (triple tax advantage), then
// Roth IRA, then the rest of the 401k, then taxable. Capacities are the
// IRS annual limits prorated to monthly amounts.
type ContributionOptimizer struct{}

// NewContributionOptimizer creates a contribution-order optimizer.
func NewContributionOptimizer() *ContributionOptimizer {
	return &ContributionOptimizer{}
}

// Optimize allocates the monthly budget in priority order for a person of
// the given age and salary.
func (co *ContributionOptimizer) Optimize(facts domain.ContributionFacts, salary decimal.Decimal, age int) domain.ContributionPlan {
	budget := facts.MonthlyBudget
	if budget.LessThan(decimal.Zero) {
		budget = decimal.Zero
	}

	limit401k := reference.Limit401k2025
	limitIRA := reference.LimitIRA2025
	if age >= reference.CatchUpAge {
		limit401k = limit401k.Add(reference.CatchUp401k2025)
		limitIRA = limitIRA.Add(reference.CatchUpIRA2025)
	}
	monthly401k := limit401k.Div(decimalTwelve)
	monthlyIRA := limitIRA.Div(decimalTwelve)

	// Contribution needed each month to capture the full employer match:
	// matchCapPct of salary, matched at matchRate.
	monthlyMatchNeed := decimal.Zero
	monthlyMatchValue := decimal.Zero
	if facts.EmployerMatchRate.GreaterThan(decimal.Zero) && facts.EmployerMatchCapPct.GreaterThan(decimal.Zero) {
		monthlyMatchNeed = salary.Mul(facts.EmployerMatchCapPct).Div(decimalTwelve)
		monthlyMatchNeed = decimal.Min(monthlyMatchNeed, monthly401k)
		monthlyMatchValue = monthlyMatchNeed.Mul(facts.EmployerMatchRate)
	}

	monthlyHSA := decimal.Zero
	if facts.HSAEligible {
		limitHSA := reference.LimitHSASelf2025
		if facts.HSAFamilyCoverage {
			limitHSA = reference.LimitHSAFamily2025
		}
		if age >= reference.HSACatchUpAge {
			limitHSA = limitHSA.Add(reference.CatchUpHSA2025)
		}
		monthlyHSA = limitHSA.Div(decimalTwelve)
	}

	buckets := []Bucket{
		{Name: "401k_match", Capacity: monthlyMatchNeed, Note: "up to the employer match"},
		{Name: "hsa", Capacity: monthlyHSA, Note: "deductible in, tax-free growth and qualified withdrawals"},
		{Name: "roth_ira", Capacity: monthlyIRA, Note: "after-tax in, tax-free out"},
		{Name: "401k_rest", Capacity: monthly401k.Sub(monthlyMatchNeed), Note: "remaining elective deferral room"},
		{Name: "taxable", Capacity: budget, Note: "no cap; fills whatever remains"},
	}
	allocations := AllocateGreedy(budget, buckets)

	plan := domain.ContributionPlan{
		MonthlyBudget:  budget,
		Allocations:    allocations,
		TotalAllocated: TotalAllocated(allocations),
		MatchAvailable: monthlyMatchValue,
	}
	plan.Unallocated = budget.Sub(plan.TotalAllocated)
	if len(allocations) > 0 && monthlyMatchNeed.GreaterThan(decimal.Zero) {
		captured := allocations[0].Allocated.Div(monthlyMatchNeed)
		plan.MatchCaptured = monthlyMatchValue.Mul(captured)
	}
	return plan
}
