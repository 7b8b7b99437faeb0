package calculation

import (
	"sort"

	"github.com/awconrad/finplan/internal/domain"
	"github.com/awconrad/finplan/internal/reference"
	"github.com/shopspring/decimal"
)

// StateComparator applies one retirement income profile across the state
// table and ranks the results by annual tax.
type StateComparator struct{}

// NewStateComparator creates a state tax comparator.
func NewStateComparator() *StateComparator {
	return &StateComparator{}
}

// IncomeProfile is the fixed income mix compared across states.
type IncomeProfile struct {
	Wages       decimal.Decimal
	Pension     decimal.Decimal
	SSBenefit   decimal.Decimal
	Withdrawals decimal.Decimal
}

// Total is the profile's gross income.
func (ip IncomeProfile) Total() decimal.Decimal {
	return ip.Wages.Add(ip.Pension).Add(ip.SSBenefit).Add(ip.Withdrawals)
}

// Compare evaluates every known state against the profile, ranked from
// lowest to highest annual tax. Equal-tax states sort alphabetically so
// runs are reproducible.
func (sc *StateComparator) Compare(profile IncomeProfile, homeState string) domain.StateTaxComparison {
	comparison := domain.StateTaxComparison{
		ProfileIncome: profile.Total(),
		HomeState:     homeState,
	}

	for _, code := range reference.StateCodes() {
		rules, err := reference.StateRulesFor(code)
		if err != nil {
			continue
		}
		tax := StateTaxOn(rules, profile.Wages, profile.Pension, profile.SSBenefit, profile.Withdrawals)
		effective := decimal.Zero
		if comparison.ProfileIncome.GreaterThan(decimal.Zero) {
			effective = tax.Div(comparison.ProfileIncome)
		}
		comparison.Results = append(comparison.Results, domain.StateTaxResult{
			State:         code,
			AnnualTax:     tax,
			EffectiveRate: effective,
			Notes:         rules.Note,
		})
	}

	sort.SliceStable(comparison.Results, func(i, j int) bool {
		a, b := comparison.Results[i], comparison.Results[j]
		if !a.AnnualTax.Equal(b.AnnualTax) {
			return a.AnnualTax.LessThan(b.AnnualTax)
		}
		return a.State < b.State
	})
	return comparison
}
