package calculation

import (
	"testing"

	"github.com/awconrad/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

func TestNewBreakdown(t *testing.T) {
	tests := []struct {
		name       string
		components []domain.BreakdownComponent
		expected   decimal.Decimal
	}{
		{
			name: "Simple sum",
			components: []domain.BreakdownComponent{
				{Label: "a", Amount: decimal.NewFromInt(100)},
				{Label: "b", Amount: decimal.NewFromInt(250)},
			},
			expected: decimal.NewFromInt(350),
		},
		{
			name: "Negative component clamps to zero",
			components: []domain.BreakdownComponent{
				{Label: "a", Amount: decimal.NewFromInt(100)},
				{Label: "b", Amount: decimal.NewFromInt(-50)},
			},
			expected: decimal.NewFromInt(100),
		},
		{
			name:       "Empty breakdown",
			components: nil,
			expected:   decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBreakdown(tt.components...)
			if !b.Total.Equal(tt.expected) {
				t.Errorf("Total = %s, want %s", b.Total, tt.expected)
			}

			// Total must always be the exact sum of the components.
			sum := decimal.Zero
			for _, c := range b.Components {
				sum = sum.Add(c.Amount)
			}
			if !b.Total.Equal(sum) {
				t.Errorf("Total %s does not equal component sum %s", b.Total, sum)
			}
		})
	}
}

func TestGapAgainst(t *testing.T) {
	tests := []struct {
		name        string
		needed      decimal.Decimal
		current     decimal.Decimal
		expectedGap decimal.Decimal
		overCovered bool
	}{
		{
			name:        "Under covered",
			needed:      decimal.NewFromInt(1470000),
			current:     decimal.NewFromInt(200000),
			expectedGap: decimal.NewFromInt(1270000),
			overCovered: false,
		},
		{
			name:        "Over covered",
			needed:      decimal.NewFromInt(500000),
			current:     decimal.NewFromInt(750000),
			expectedGap: decimal.NewFromInt(-250000),
			overCovered: true,
		},
		{
			name:        "Exactly covered",
			needed:      decimal.NewFromInt(500000),
			current:     decimal.NewFromInt(500000),
			expectedGap: decimal.Zero,
			overCovered: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gap := GapAgainst(tt.needed, tt.current)
			if !gap.Gap.Equal(tt.expectedGap) {
				t.Errorf("Gap = %s, want %s", gap.Gap, tt.expectedGap)
			}
			if gap.OverCovered != tt.overCovered {
				t.Errorf("OverCovered = %v, want %v", gap.OverCovered, tt.overCovered)
			}
		})
	}
}

func TestAllocateGreedy(t *testing.T) {
	buckets := []Bucket{
		{Name: "first", Capacity: decimal.NewFromInt(300)},
		{Name: "second", Capacity: decimal.NewFromInt(500)},
		{Name: "third", Capacity: decimal.NewFromInt(1000)},
	}

	tests := []struct {
		name     string
		budget   decimal.Decimal
		expected []decimal.Decimal
	}{
		{
			name:   "Budget fills first bucket only",
			budget: decimal.NewFromInt(200),
			expected: []decimal.Decimal{
				decimal.NewFromInt(200), decimal.Zero, decimal.Zero,
			},
		},
		{
			name:   "Budget spills into second",
			budget: decimal.NewFromInt(600),
			expected: []decimal.Decimal{
				decimal.NewFromInt(300), decimal.NewFromInt(300), decimal.Zero,
			},
		},
		{
			name:   "Budget exceeds all capacity",
			budget: decimal.NewFromInt(5000),
			expected: []decimal.Decimal{
				decimal.NewFromInt(300), decimal.NewFromInt(500), decimal.NewFromInt(1000),
			},
		},
		{
			name:   "Negative budget allocates nothing",
			budget: decimal.NewFromInt(-100),
			expected: []decimal.Decimal{
				decimal.Zero, decimal.Zero, decimal.Zero,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allocations := AllocateGreedy(tt.budget, buckets)
			if len(allocations) != len(buckets) {
				t.Fatalf("got %d allocations, want %d", len(allocations), len(buckets))
			}
			for i, alloc := range allocations {
				if !alloc.Allocated.Equal(tt.expected[i]) {
					t.Errorf("bucket %s = %s, want %s", alloc.Name, alloc.Allocated, tt.expected[i])
				}
				if alloc.Allocated.GreaterThan(alloc.Capacity) {
					t.Errorf("bucket %s allocation %s exceeds capacity %s", alloc.Name, alloc.Allocated, alloc.Capacity)
				}
				// Order must be preserved.
				if alloc.Name != buckets[i].Name {
					t.Errorf("bucket %d = %s, want %s", i, alloc.Name, buckets[i].Name)
				}
			}
			total := TotalAllocated(allocations)
			if tt.budget.GreaterThan(decimal.Zero) && total.GreaterThan(tt.budget) {
				t.Errorf("total %s exceeds budget %s", total, tt.budget)
			}
		})
	}
}
