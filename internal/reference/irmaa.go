package reference

import (
	"github.com/shopspring/decimal"
)

// PartBBasePremium2025 is the monthly Medicare Part B base premium.
var PartBBasePremium2025 = decimal.NewFromFloat(185.00)

// IRMAATier is one income-related surcharge tier. MAGI above the threshold
// (from two years prior) adds the monthly surcharge per covered person.
type IRMAATier struct {
	ThresholdSingle  decimal.Decimal
	ThresholdJoint   decimal.Decimal
	MonthlySurcharge decimal.Decimal
}

// IRMAATiers2025 are the 2025 Part B surcharge tiers (keyed to 2023 MAGI).
var IRMAATiers2025 = []IRMAATier{
	{decimal.NewFromInt(106000), decimal.NewFromInt(212000), decimal.NewFromFloat(74.00)},
	{decimal.NewFromInt(133000), decimal.NewFromInt(266000), decimal.NewFromFloat(185.00)},
	{decimal.NewFromInt(167000), decimal.NewFromInt(334000), decimal.NewFromFloat(295.90)},
	{decimal.NewFromInt(200000), decimal.NewFromInt(400000), decimal.NewFromFloat(406.90)},
	{decimal.NewFromInt(500000), decimal.NewFromInt(750000), decimal.NewFromFloat(443.90)},
}

// IRMAASurcharge returns the monthly surcharge for a MAGI, walking tiers
// until the first one not exceeded.
func IRMAASurcharge(magi decimal.Decimal, joint bool) decimal.Decimal {
	surcharge := decimal.Zero
	for _, tier := range IRMAATiers2025 {
		threshold := tier.ThresholdSingle
		if joint {
			threshold = tier.ThresholdJoint
		}
		if magi.GreaterThan(threshold) {
			surcharge = tier.MonthlySurcharge
		} else {
			break
		}
	}
	return surcharge
}
