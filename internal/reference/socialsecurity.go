package reference

import (
	"github.com/shopspring/decimal"
)

// Social Security constants: 2025 bend points and standard adjustment
// factors. The PIA formula applies 90/32/15 percent to AIME slices split at
// the two bend points.
var (
	BendPoint1_2025 = decimal.NewFromInt(1226)
	BendPoint2_2025 = decimal.NewFromInt(7391)

	PIAFactor1 = decimal.NewFromFloat(0.90)
	PIAFactor2 = decimal.NewFromFloat(0.32)
	PIAFactor3 = decimal.NewFromFloat(0.15)
)

// FullRetirementAge for anyone born 1960 or later.
const FullRetirementAge = 67

// Claiming bounds.
const (
	EarliestClaimAge = 62
	LatestClaimAge   = 70
)

// Early-claim reduction: 5/9 of 1% per month for the first 36 months before
// FRA, 5/12 of 1% per month beyond. Delayed credit: 2/3 of 1% per month
// (8%/year) up to 70. Expressed as month-count fractions so whole-year
// adjustments come out exact (36 months early is exactly 20%).
func earlyReductionFirst36(months int64) decimal.Decimal {
	return decimal.NewFromInt(months * 5).Div(decimal.NewFromInt(900))
}

func earlyReductionAdditional(months int64) decimal.Decimal {
	return decimal.NewFromInt(months * 5).Div(decimal.NewFromInt(1200))
}

func delayedCredit(months int64) decimal.Decimal {
	return decimal.NewFromInt(months * 2).Div(decimal.NewFromInt(300))
}

// PIAFromAIME applies the bend-point formula to a monthly AIME.
func PIAFromAIME(aime decimal.Decimal) decimal.Decimal {
	if aime.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	pia := decimal.Min(aime, BendPoint1_2025).Mul(PIAFactor1)
	if aime.GreaterThan(BendPoint1_2025) {
		slice := decimal.Min(aime, BendPoint2_2025).Sub(BendPoint1_2025)
		pia = pia.Add(slice.Mul(PIAFactor2))
	}
	if aime.GreaterThan(BendPoint2_2025) {
		pia = pia.Add(aime.Sub(BendPoint2_2025).Mul(PIAFactor3))
	}
	return pia
}

// ClaimAdjustment returns the multiplier applied to the PIA for a claim at
// the given age: below 1 before FRA, above 1 after, clamped to the 62-70
// claiming window.
func ClaimAdjustment(claimAge int) decimal.Decimal {
	if claimAge < EarliestClaimAge {
		claimAge = EarliestClaimAge
	}
	if claimAge > LatestClaimAge {
		claimAge = LatestClaimAge
	}

	one := decimal.NewFromInt(1)
	monthsFromFRA := (claimAge - FullRetirementAge) * 12
	switch {
	case monthsFromFRA < 0:
		early := -monthsFromFRA
		first := early
		if first > 36 {
			first = 36
		}
		reduction := earlyReductionFirst36(int64(first))
		if early > 36 {
			reduction = reduction.Add(earlyReductionAdditional(int64(early - 36)))
		}
		return one.Sub(reduction)
	case monthsFromFRA > 0:
		return one.Add(delayedCredit(int64(monthsFromFRA)))
	default:
		return one
	}
}

// Provisional-income thresholds for benefit taxation.
type SSTaxThresholds struct {
	Tier1 decimal.Decimal // 50% inclusion starts
	Tier2 decimal.Decimal // 85% inclusion starts
}

// TaxThresholdsFor returns the provisional income tiers by filing status.
func TaxThresholdsFor(joint bool) SSTaxThresholds {
	if joint {
		return SSTaxThresholds{
			Tier1: decimal.NewFromInt(32000),
			Tier2: decimal.NewFromInt(44000),
		}
	}
	return SSTaxThresholds{
		Tier1: decimal.NewFromInt(25000),
		Tier2: decimal.NewFromInt(34000),
	}
}
