package sequencing

import (
	"github.com/shopspring/decimal"
)

// TaxEfficientStrategy fills low ordinary brackets with traditional
// withdrawals up to a headroom target before touching taxable and roth
// money. Compared to the standard order this realizes cheap ordinary
// income early and shrinks future RMDs.
type TaxEfficientStrategy struct {
	// BracketHeadroom is how much ordinary income the current year can
	// absorb at or below the target marginal rate.
	BracketHeadroom decimal.Decimal
}

func NewTaxEfficientStrategy(headroom decimal.Decimal) *TaxEfficientStrategy {
	return &TaxEfficientStrategy{BracketHeadroom: headroom}
}

func (s *TaxEfficientStrategy) Name() string { return "tax_efficient" }

func (s *TaxEfficientStrategy) Plan(sources []Source, need decimal.Decimal) Plan {
	plan := Plan{Requested: need, StrategyUsed: s.Name()}
	if need.LessThan(decimal.Zero) {
		need = decimal.Zero
	}

	work := make([]Source, len(sources))
	copy(work, sources)

	taken := satisfyRMDs(&plan, work)
	remaining := need.Sub(taken)

	// Traditional up to bracket headroom. RMD dollars already consumed
	// part of the headroom.
	headroom := s.BracketHeadroom.Sub(plan.OrdinaryIncome)
	if headroom.GreaterThan(decimal.Zero) && remaining.GreaterThan(decimal.Zero) {
		for i := range work {
			if work[i].TaxTreatment != OrdinaryIncome {
				continue
			}
			got := drawFrom(&plan, &work[i], decimal.Min(remaining, headroom))
			remaining = remaining.Sub(got)
			headroom = headroom.Sub(got)
		}
	}

	// Then taxable, then roth, then any further traditional beyond the
	// headroom if the need still is not met.
	for _, treatment := range []TaxTreatment{CapitalGains, TaxFree, OrdinaryIncome} {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		for i := range work {
			if work[i].TaxTreatment != treatment {
				continue
			}
			got := drawFrom(&plan, &work[i], remaining)
			remaining = remaining.Sub(got)
			if remaining.LessThanOrEqual(decimal.Zero) {
				break
			}
		}
	}

	if remaining.GreaterThan(decimal.Zero) {
		plan.RemainingNeed = remaining
	}
	return plan
}
