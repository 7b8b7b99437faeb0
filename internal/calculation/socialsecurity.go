package calculation

import (
	"github.com/awconrad/finplan/internal/domain"
	"github.com/awconrad/finplan/internal/reference"
	"github.com/shopspring/decimal"
)

// ClaimingOptimizer evaluates Social Security claiming ages: the monthly
// benefit at each age from 62 to 70, pairwise cumulative break-even ages,
// and a recommendation for the person's longevity assumption.
type ClaimingOptimizer struct{}

// NewClaimingOptimizer creates a claiming optimizer.
func NewClaimingOptimizer() *ClaimingOptimizer {
	return &ClaimingOptimizer{}
}

// benefitAt returns the monthly benefit for a claim age given the PIA.
func (so *ClaimingOptimizer) benefitAt(pia decimal.Decimal, claimAge int) decimal.Decimal {
	return pia.Mul(reference.ClaimAdjustment(claimAge))
}

// cumulativeAt returns total benefits received from claimAge through the
// year the person turns atAge (exclusive), ignoring COLA, which cancels
// out of the comparison to first order.
func (so *ClaimingOptimizer) cumulativeAt(monthly decimal.Decimal, claimAge, atAge int) decimal.Decimal {
	if atAge <= claimAge {
		return decimal.Zero
	}
	months := (atAge - claimAge) * 12
	return monthly.Mul(decimal.NewFromInt(int64(months)))
}

// Analyze builds the full claiming analysis for a person. If the person
// supplies a statement benefit at FRA it is used as the PIA; otherwise the
// PIA comes from the bend-point formula over AIME.
func (so *ClaimingOptimizer) Analyze(person *domain.Person) domain.ClaimingAnalysis {
	pia := person.SSMonthlyAtFRA
	if pia.LessThanOrEqual(decimal.Zero) {
		pia = reference.PIAFromAIME(person.AIMEMonthly)
	}

	longevity := person.LongevityAge
	if longevity <= 0 {
		longevity = 87
	}

	analysis := domain.ClaimingAnalysis{
		PIA:          pia,
		FRA:          reference.FullRetirementAge,
		LongevityAge: longevity,
	}

	one := decimal.NewFromInt(1)
	for age := reference.EarliestClaimAge; age <= reference.LatestClaimAge; age++ {
		monthly := so.benefitAt(pia, age)
		analysis.Options = append(analysis.Options, domain.ClaimingOption{
			ClaimAge:       age,
			MonthlyBenefit: monthly,
			AnnualBenefit:  monthly.Mul(decimalTwelve),
			AdjustmentPct:  reference.ClaimAdjustment(age).Sub(one).Mul(decimal.NewFromInt(100)),
		})
	}

	// Pairwise break-evens for the three canonical choices.
	pairs := [][2]int{
		{reference.EarliestClaimAge, reference.FullRetirementAge},
		{reference.EarliestClaimAge, reference.LatestClaimAge},
		{reference.FullRetirementAge, reference.LatestClaimAge},
	}
	for _, pair := range pairs {
		analysis.BreakEvens = append(analysis.BreakEvens, so.breakEven(pia, pair[0], pair[1]))
	}

	// Recommend the claim age that maximizes cumulative benefits through
	// the longevity age. Ties go to the earlier age: same money, sooner.
	bestAge := reference.EarliestClaimAge
	bestTotal := decimal.Zero
	for _, opt := range analysis.Options {
		total := so.cumulativeAt(opt.MonthlyBenefit, opt.ClaimAge, longevity)
		if total.GreaterThan(bestTotal) {
			bestTotal = total
			bestAge = opt.ClaimAge
		}
	}
	analysis.RecommendedAge = bestAge
	analysis.LifetimeAtRec = bestTotal
	return analysis
}

// breakEven finds the first age at which the later claim's cumulative
// benefits overtake the earlier claim's. Zero crossover means the later
// claim never catches up before 110.
func (so *ClaimingOptimizer) breakEven(pia decimal.Decimal, earlyAge, lateAge int) domain.BreakEvenPoint {
	point := domain.BreakEvenPoint{EarlyAge: earlyAge, LateAge: lateAge}
	earlyMonthly := so.benefitAt(pia, earlyAge)
	lateMonthly := so.benefitAt(pia, lateAge)
	for age := lateAge + 1; age <= 110; age++ {
		earlyTotal := so.cumulativeAt(earlyMonthly, earlyAge, age)
		lateTotal := so.cumulativeAt(lateMonthly, lateAge, age)
		if lateTotal.GreaterThanOrEqual(earlyTotal) {
			point.CrossoverAge = age
			break
		}
	}
	return point
}
