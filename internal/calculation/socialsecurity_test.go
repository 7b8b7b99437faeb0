package calculation

import (
	"testing"

	"github.com/awconrad/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

func TestClaimingOptimizer_Analyze(t *testing.T) {
	optimizer := NewClaimingOptimizer()

	person := &domain.Person{
		Name:           "Alice",
		BirthYear:      1963,
		SSMonthlyAtFRA: decimal.NewFromInt(2000),
		LongevityAge:   90,
	}

	analysis := optimizer.Analyze(person)

	t.Run("Options span 62 through 70", func(t *testing.T) {
		if len(analysis.Options) != 9 {
			t.Fatalf("got %d options, want 9", len(analysis.Options))
		}
		if analysis.Options[0].ClaimAge != 62 || analysis.Options[8].ClaimAge != 70 {
			t.Errorf("option range = %d..%d, want 62..70",
				analysis.Options[0].ClaimAge, analysis.Options[8].ClaimAge)
		}
	})

	t.Run("Benefit at 62 is 70 percent of PIA", func(t *testing.T) {
		// 36 months * 5/9% + 24 months * 5/12% = 20% + 10% reduction.
		expected := decimal.NewFromInt(1400)
		if !analysis.Options[0].MonthlyBenefit.Equal(expected) {
			t.Errorf("benefit at 62 = %s, want %s", analysis.Options[0].MonthlyBenefit, expected)
		}
	})

	t.Run("Benefit at FRA equals PIA", func(t *testing.T) {
		if !analysis.Options[5].MonthlyBenefit.Equal(decimal.NewFromInt(2000)) {
			t.Errorf("benefit at 67 = %s, want 2000", analysis.Options[5].MonthlyBenefit)
		}
	})

	t.Run("Benefit at 70 is 124 percent of PIA", func(t *testing.T) {
		// 36 months of 2/3% delayed credits = 24%.
		expected := decimal.NewFromInt(2480)
		if !analysis.Options[8].MonthlyBenefit.Equal(expected) {
			t.Errorf("benefit at 70 = %s, want %s", analysis.Options[8].MonthlyBenefit, expected)
		}
	})

	t.Run("Delaying wins for a long-lived claimant", func(t *testing.T) {
		if analysis.RecommendedAge != 70 {
			t.Errorf("RecommendedAge = %d, want 70 for longevity 90", analysis.RecommendedAge)
		}
	})

	t.Run("Break-evens present for the canonical pairs", func(t *testing.T) {
		if len(analysis.BreakEvens) != 3 {
			t.Fatalf("got %d break-evens, want 3", len(analysis.BreakEvens))
		}
		// 62 vs 70: cumulative at 1400/mo from 62 vs 2480/mo from 70.
		// Crossover lands in the early 80s.
		be := analysis.BreakEvens[1]
		if be.CrossoverAge < 78 || be.CrossoverAge > 84 {
			t.Errorf("62 vs 70 crossover = %d, want in 78..84", be.CrossoverAge)
		}
	})
}

func TestClaimingOptimizer_ShortLongevityFavorsEarly(t *testing.T) {
	optimizer := NewClaimingOptimizer()
	person := &domain.Person{
		Name:           "Bob",
		BirthYear:      1960,
		SSMonthlyAtFRA: decimal.NewFromInt(1800),
		LongevityAge:   72,
	}
	analysis := optimizer.Analyze(person)
	if analysis.RecommendedAge != 62 {
		t.Errorf("RecommendedAge = %d, want 62 for longevity 72", analysis.RecommendedAge)
	}
}

func TestClaimingOptimizer_PIAFromAIME(t *testing.T) {
	optimizer := NewClaimingOptimizer()
	person := &domain.Person{
		Name:        "Cara",
		BirthYear:   1965,
		AIMEMonthly: decimal.NewFromInt(7000),
	}
	analysis := optimizer.Analyze(person)

	// 1226*0.90 + (7000-1226)*0.32 = 1103.40 + 1847.68
	expected := decimal.NewFromFloat(2951.08)
	if !analysis.PIA.Equal(expected) {
		t.Errorf("PIA = %s, want %s", analysis.PIA, expected)
	}
}
