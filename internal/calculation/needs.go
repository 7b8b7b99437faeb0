// Package calculation implements the planning calculators: the shared
// needs/gap/allocation pattern, the tax engine, the per-domain calculators
// (DIME, charitable giving, contribution order, Social Security claiming,
// state comparison), and the multi-year projection engine with its Monte
// Carlo and perpetuity companions.
package calculation

import (
	"github.com/awconrad/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

// NewBreakdown builds a breakdown from labeled components. Negative
// amounts are clamped to zero rather than rejected; the total is the exact
// sum of the clamped components.
func NewBreakdown(components ...domain.BreakdownComponent) domain.Breakdown {
	b := domain.Breakdown{Components: make([]domain.BreakdownComponent, 0, len(components))}
	for _, c := range components {
		if c.Amount.LessThan(decimal.Zero) {
			c.Amount = decimal.Zero
		}
		b.Components = append(b.Components, c)
		b.Total = b.Total.Add(c.Amount)
	}
	return b
}

// GapAgainst compares a needed amount to a current baseline.
func GapAgainst(needed, current decimal.Decimal) domain.CoverageGap {
	gap := needed.Sub(current)
	return domain.CoverageGap{
		Needed:      needed,
		Current:     current,
		Gap:         gap,
		OverCovered: gap.LessThan(decimal.Zero),
	}
}

// Bucket is one capacity-limited target of a greedy allocation. Buckets are
// filled strictly in slice order; a nil-capacity semantics is expressed by
// an effectively unbounded Capacity.
type Bucket struct {
	Name     string
	Capacity decimal.Decimal
	Note     string
}

// AllocateGreedy fills buckets in priority order until the budget is
// exhausted or every bucket has reached capacity. The result preserves
// bucket order and always satisfies: sum of allocations <= budget, and each
// allocation <= its bucket capacity. Earlier buckets are never affected by
// later ones.
func AllocateGreedy(budget decimal.Decimal, buckets []Bucket) []domain.BucketAllocation {
	allocations := make([]domain.BucketAllocation, 0, len(buckets))
	remaining := budget
	if remaining.LessThan(decimal.Zero) {
		remaining = decimal.Zero
	}
	for _, b := range buckets {
		capacity := b.Capacity
		if capacity.LessThan(decimal.Zero) {
			capacity = decimal.Zero
		}
		take := decimal.Min(remaining, capacity)
		allocations = append(allocations, domain.BucketAllocation{
			Name:      b.Name,
			Allocated: take,
			Capacity:  capacity,
			Note:      b.Note,
		})
		remaining = remaining.Sub(take)
		if remaining.LessThanOrEqual(decimal.Zero) {
			remaining = decimal.Zero
		}
	}
	return allocations
}

// TotalAllocated sums a set of bucket allocations.
func TotalAllocated(allocations []domain.BucketAllocation) decimal.Decimal {
	total := decimal.Zero
	for _, a := range allocations {
		total = total.Add(a.Allocated)
	}
	return total
}
