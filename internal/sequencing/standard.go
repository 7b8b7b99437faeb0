package sequencing

import "github.com/shopspring/decimal"

// StandardStrategy drains sources in the conventional order: taxable
// first, traditional second, roth last. This preserves tax-deferred and
// tax-free growth for as long as possible.
type StandardStrategy struct{}

func NewStandardStrategy() *StandardStrategy { return &StandardStrategy{} }

func (s *StandardStrategy) Name() string { return "standard" }

func (s *StandardStrategy) Plan(sources []Source, need decimal.Decimal) Plan {
	return planInOrder(s.Name(), sources, need, []TaxTreatment{CapitalGains, OrdinaryIncome, TaxFree})
}

// planInOrder satisfies RMDs, then walks sources grouped by tax
// treatment in the given order until the need is met or sources run dry.
func planInOrder(name string, sources []Source, need decimal.Decimal, order []TaxTreatment) Plan {
	plan := Plan{Requested: need, StrategyUsed: name}
	if need.LessThan(decimal.Zero) {
		need = decimal.Zero
	}

	work := make([]Source, len(sources))
	copy(work, sources)

	taken := satisfyRMDs(&plan, work)
	remaining := need.Sub(taken)

	for _, treatment := range order {
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
