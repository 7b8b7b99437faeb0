package reference

import (
	"github.com/awconrad/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

// termPremiumAges are the quoted age brackets, ascending. Lookups snap to
// the nearest bracket; on an exact tie the lower bracket wins because the
// scan runs low to high and only a strictly smaller distance replaces the
// current match.
var termPremiumAges = []int{25, 30, 35, 40, 45, 50, 55, 60}

// termPremiumTable is the annual premium per $100,000 of 20-year level term
// coverage, by age bracket and underwriting tier.
var termPremiumTable = map[domain.HealthTier]map[int]decimal.Decimal{
	domain.HealthPreferred: {
		25: decimal.NewFromFloat(13.00),
		30: decimal.NewFromFloat(13.50),
		35: decimal.NewFromFloat(15.00),
		40: decimal.NewFromFloat(21.00),
		45: decimal.NewFromFloat(33.00),
		50: decimal.NewFromFloat(50.00),
		55: decimal.NewFromFloat(80.00),
		60: decimal.NewFromFloat(135.00),
	},
	domain.HealthStandard: {
		25: decimal.NewFromFloat(18.00),
		30: decimal.NewFromFloat(19.00),
		35: decimal.NewFromFloat(22.00),
		40: decimal.NewFromFloat(31.00),
		45: decimal.NewFromFloat(50.00),
		50: decimal.NewFromFloat(78.00),
		55: decimal.NewFromFloat(125.00),
		60: decimal.NewFromFloat(210.00),
	},
	domain.HealthSubstandard: {
		25: decimal.NewFromFloat(31.00),
		30: decimal.NewFromFloat(33.00),
		35: decimal.NewFromFloat(38.00),
		40: decimal.NewFromFloat(54.00),
		45: decimal.NewFromFloat(87.00),
		50: decimal.NewFromFloat(137.00),
		55: decimal.NewFromFloat(219.00),
		60: decimal.NewFromFloat(368.00),
	},
}

// NearestPremiumAge snaps an age to the closest quoted bracket. Ties
// resolve to the lower bracket.
func NearestPremiumAge(age int) int {
	best := termPremiumAges[0]
	bestDist := abs(age - best)
	for _, bracket := range termPremiumAges[1:] {
		if d := abs(age - bracket); d < bestDist {
			best = bracket
			bestDist = d
		}
	}
	return best
}

// TermPremiumPer100k returns the annual premium per $100k for an age and
// tier, along with the bracket used. Unknown tiers quote as standard.
func TermPremiumPer100k(age int, tier domain.HealthTier) (decimal.Decimal, int) {
	rates, ok := termPremiumTable[tier]
	if !ok {
		rates = termPremiumTable[domain.HealthStandard]
	}
	bracket := NearestPremiumAge(age)
	return rates[bracket], bracket
}

// EstimateTermPremium computes the annual premium for a coverage amount.
func EstimateTermPremium(coverage decimal.Decimal, age int, tier domain.HealthTier) (decimal.Decimal, int) {
	if coverage.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, NearestPremiumAge(age)
	}
	per100k, bracket := TermPremiumPer100k(age, tier)
	units := coverage.Div(decimal.NewFromInt(100000))
	return per100k.Mul(units), bracket
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
