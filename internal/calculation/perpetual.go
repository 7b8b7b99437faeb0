package calculation

import (
	"github.com/awconrad/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

// generationalHorizonYears is how far out the decade projection runs when
// the principal is at or near the perpetual threshold.
const generationalHorizonYears = 100

// PerpetuityAnalyzer applies the perpetual-withdrawal test: a principal is
// self-sustaining when the withdrawal rate does not exceed the real
// (inflation-adjusted) return, so real spending never touches principal.
type PerpetuityAnalyzer struct{}

func NewPerpetuityAnalyzer() *PerpetuityAnalyzer { return &PerpetuityAnalyzer{} }

// Analyze evaluates a principal against an annual withdrawal and, for
// multi-generational planning, projects decade-by-decade real balances out
// a century.
func (pa *PerpetuityAnalyzer) Analyze(principal, annualWithdrawal decimal.Decimal, assumptions domain.GlobalAssumptions) domain.PerpetuityAnalysis {
	realReturn := assumptions.RealReturn()
	analysis := domain.PerpetuityAnalysis{
		Principal:        principal,
		AnnualWithdrawal: annualWithdrawal,
		RealReturn:       realReturn,
	}
	if principal.GreaterThan(decimal.Zero) {
		analysis.WithdrawalRate = annualWithdrawal.Div(principal)
	}
	analysis.SustainableWithdrawal = principal.Mul(realReturn)
	if realReturn.GreaterThan(decimal.Zero) {
		analysis.RequiredPrincipal = annualWithdrawal.Div(realReturn)
	}
	// An empty portfolio sustains nothing; the rate test alone is vacuous
	// at zero principal.
	analysis.Perpetual = principal.GreaterThan(decimal.Zero) &&
		realReturn.GreaterThan(decimal.Zero) &&
		!analysis.WithdrawalRate.GreaterThan(realReturn)

	pa.projectDecades(&analysis)
	return analysis
}

// projectDecades runs the real-dollar balance forward in ten-year chunks.
// A perpetual principal shows compounding decade ends; a deficient one
// shows the exhaustion year.
func (pa *PerpetuityAnalyzer) projectDecades(analysis *domain.PerpetuityAnalysis) {
	one := decimal.NewFromInt(1)
	growth := one.Add(analysis.RealReturn)
	balance := analysis.Principal
	decadeStart := balance

	for year := 1; year <= generationalHorizonYears; year++ {
		balance = balance.Sub(analysis.AnnualWithdrawal)
		if balance.LessThanOrEqual(decimal.Zero) {
			analysis.ExhaustionYear = year
			analysis.Decades = append(analysis.Decades, domain.DecadeOutcome{
				StartYear:       year - (year-1)%10,
				EndYear:         year,
				StartingBalance: decadeStart,
				EndingBalance:   decimal.Zero,
			})
			return
		}
		balance = balance.Mul(growth)
		if year%10 == 0 {
			analysis.Decades = append(analysis.Decades, domain.DecadeOutcome{
				StartYear:       year - 9,
				EndYear:         year,
				StartingBalance: decadeStart,
				EndingBalance:   balance,
			})
			decadeStart = balance
		}
	}
}
