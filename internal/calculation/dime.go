package calculation

import (
	"github.com/awconrad/finplan/internal/domain"
	"github.com/awconrad/finplan/internal/reference"
	"github.com/shopspring/decimal"
)

// DIMECalculator estimates life insurance need as Debt + Income
// replacement + Mortgage + Education, compares it to current coverage, and
// quotes a term premium from the bracket table.
type DIMECalculator struct{}

// NewDIMECalculator creates a DIME calculator.
func NewDIMECalculator() *DIMECalculator {
	return &DIMECalculator{}
}

// Calculate derives the coverage breakdown and gap for a person's facts.
// annualIncome is replaced for facts.IncomeYears years with no discounting,
// matching the conservative convention of the DIME method.
func (dc *DIMECalculator) Calculate(facts domain.InsuranceFacts, annualIncome decimal.Decimal, age int, tier domain.HealthTier) domain.DIMEResult {
	incomeYears := facts.IncomeYears
	if incomeYears < 0 {
		incomeYears = 0
	}
	children := facts.Children
	if children < 0 {
		children = 0
	}

	breakdown := NewBreakdown(
		domain.BreakdownComponent{Label: "Debt", Amount: facts.Debt},
		domain.BreakdownComponent{Label: "Income replacement", Amount: annualIncome.Mul(decimal.NewFromInt(int64(incomeYears)))},
		domain.BreakdownComponent{Label: "Mortgage", Amount: facts.MortgageBalance},
		domain.BreakdownComponent{Label: "Education", Amount: facts.EducationPerChild.Mul(decimal.NewFromInt(int64(children)))},
	)

	gap := GapAgainst(breakdown.Total, facts.CurrentCoverage)

	// Quote the additional coverage needed, not the full need: an
	// over-covered household has nothing to buy.
	recommended := gap.Gap
	if recommended.LessThan(decimal.Zero) {
		recommended = decimal.Zero
	}
	premium, bracket := reference.EstimateTermPremium(recommended, age, tier)

	return domain.DIMEResult{
		Breakdown:              breakdown,
		Gap:                    gap,
		RecommendedCoverage:    recommended,
		PremiumAgeBracket:      bracket,
		EstimatedAnnualPremium: premium,
	}
}
