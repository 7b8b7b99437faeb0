package sequencing

import (
	"github.com/awconrad/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

// CustomStrategy drains sources in a user-supplied account order.
// Unknown entries in the order are ignored; accounts missing from the
// order are used last, in standard order, so the need can still be met.
type CustomStrategy struct {
	Order []domain.AccountKind
}

func NewCustomStrategy(order []domain.AccountKind) *CustomStrategy {
	return &CustomStrategy{Order: order}
}

func (s *CustomStrategy) Name() string { return "custom" }

func (s *CustomStrategy) Plan(sources []Source, need decimal.Decimal) Plan {
	plan := Plan{Requested: need, StrategyUsed: s.Name()}
	if need.LessThan(decimal.Zero) {
		need = decimal.Zero
	}

	work := make([]Source, len(sources))
	copy(work, sources)

	taken := satisfyRMDs(&plan, work)
	remaining := need.Sub(taken)

	visited := make(map[domain.AccountKind]bool)
	for _, kind := range s.Order {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		if visited[kind] {
			continue
		}
		visited[kind] = true
		for i := range work {
			if work[i].Kind != kind {
				continue
			}
			got := drawFrom(&plan, &work[i], remaining)
			remaining = remaining.Sub(got)
		}
	}

	// Fallback for accounts the order omitted.
	for _, kind := range []domain.AccountKind{domain.AccountTaxable, domain.AccountTraditional, domain.AccountRoth} {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		if visited[kind] {
			continue
		}
		for i := range work {
			if work[i].Kind != kind {
				continue
			}
			got := drawFrom(&plan, &work[i], remaining)
			remaining = remaining.Sub(got)
		}
	}

	if remaining.GreaterThan(decimal.Zero) {
		plan.RemainingNeed = remaining
	}
	return plan
}
