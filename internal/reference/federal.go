// Package reference holds the static regulatory and reference tables the
// calculators look values up in: federal brackets, RMD divisors, Social
// Security constants, IRMAA tiers, state tax rules, SPIVA scorecard data,
// and term life premium brackets. All tables are 2025 levels held constant
// across projection years (no inflation indexing).
package reference

import (
	"github.com/awconrad/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

// TaxBracket is one federal bracket: income in (Min, Max] taxed at Rate.
type TaxBracket struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// FederalTaxTable holds brackets and deductions for one filing status.
type FederalTaxTable struct {
	StandardDeduction decimal.Decimal
	Brackets          []TaxBracket
}

// AdditionalStdDeduction65 returns the extra 2025 standard deduction per
// person 65+: $2,000 for single filers, $1,600 each on a joint return.
func AdditionalStdDeduction65(status domain.FilingStatus) decimal.Decimal {
	if status.IsJoint() {
		return decimal.NewFromInt(1600)
	}
	return decimal.NewFromInt(2000)
}

var bracketCeiling = decimal.NewFromInt(999999999)

// OrdinaryBrackets2025 returns the 2025 ordinary-income table for a filing
// status. Unknown statuses fall back to single.
func OrdinaryBrackets2025(status domain.FilingStatus) FederalTaxTable {
	if status.IsJoint() {
		return FederalTaxTable{
			StandardDeduction: decimal.NewFromInt(30000),
			Brackets: []TaxBracket{
				{decimal.Zero, decimal.NewFromInt(23850), decimal.NewFromFloat(0.10)},
				{decimal.NewFromInt(23850), decimal.NewFromInt(96950), decimal.NewFromFloat(0.12)},
				{decimal.NewFromInt(96950), decimal.NewFromInt(206700), decimal.NewFromFloat(0.22)},
				{decimal.NewFromInt(206700), decimal.NewFromInt(394600), decimal.NewFromFloat(0.24)},
				{decimal.NewFromInt(394600), decimal.NewFromInt(501050), decimal.NewFromFloat(0.32)},
				{decimal.NewFromInt(501050), decimal.NewFromInt(751600), decimal.NewFromFloat(0.35)},
				{decimal.NewFromInt(751600), bracketCeiling, decimal.NewFromFloat(0.37)},
			},
		}
	}
	return FederalTaxTable{
		StandardDeduction: decimal.NewFromInt(15000),
		Brackets: []TaxBracket{
			{decimal.Zero, decimal.NewFromInt(11925), decimal.NewFromFloat(0.10)},
			{decimal.NewFromInt(11925), decimal.NewFromInt(48475), decimal.NewFromFloat(0.12)},
			{decimal.NewFromInt(48475), decimal.NewFromInt(103350), decimal.NewFromFloat(0.22)},
			{decimal.NewFromInt(103350), decimal.NewFromInt(197300), decimal.NewFromFloat(0.24)},
			{decimal.NewFromInt(197300), decimal.NewFromInt(250525), decimal.NewFromFloat(0.32)},
			{decimal.NewFromInt(250525), decimal.NewFromInt(626350), decimal.NewFromFloat(0.35)},
			{decimal.NewFromInt(626350), bracketCeiling, decimal.NewFromFloat(0.37)},
		},
	}
}

// LTCGBrackets2025 returns the long-term capital gains brackets (0/15/20)
// for a filing status. Thresholds apply to taxable income including the
// gains stacked on top of ordinary income.
func LTCGBrackets2025(status domain.FilingStatus) []TaxBracket {
	if status.IsJoint() {
		return []TaxBracket{
			{decimal.Zero, decimal.NewFromInt(96700), decimal.Zero},
			{decimal.NewFromInt(96700), decimal.NewFromInt(600050), decimal.NewFromFloat(0.15)},
			{decimal.NewFromInt(600050), bracketCeiling, decimal.NewFromFloat(0.20)},
		}
	}
	return []TaxBracket{
		{decimal.Zero, decimal.NewFromInt(48350), decimal.Zero},
		{decimal.NewFromInt(48350), decimal.NewFromInt(533400), decimal.NewFromFloat(0.15)},
		{decimal.NewFromInt(533400), bracketCeiling, decimal.NewFromFloat(0.20)},
	}
}

// FICA constants, 2025 official values.
var (
	SSWageBase2025         = decimal.NewFromInt(176100)
	SSRate                 = decimal.NewFromFloat(0.062)
	MedicareRate           = decimal.NewFromFloat(0.0145)
	AdditionalMedicareRate = decimal.NewFromFloat(0.009)
)

// AnnualGiftExclusion and the federal estate exemption, 2025.
var (
	AnnualGiftExclusion2025    = decimal.NewFromInt(19000)
	FederalEstateExemption2025 = decimal.NewFromInt(13990000)
)

// QCDAnnualLimit2025 caps qualified charitable distributions per person.
var QCDAnnualLimit2025 = decimal.NewFromInt(108000)

// QCDMinimumAge is the age (70 1/2, compared against attained age) at which
// QCDs become available.
const QCDMinimumAge = 70

// Contribution limits, 2025.
var (
	Limit401k2025        = decimal.NewFromInt(23500)
	CatchUp401k2025      = decimal.NewFromInt(7500)
	LimitIRA2025         = decimal.NewFromInt(7000)
	CatchUpIRA2025       = decimal.NewFromInt(1000)
	LimitHSASelf2025     = decimal.NewFromInt(4300)
	LimitHSAFamily2025   = decimal.NewFromInt(8550)
	CatchUpHSA2025       = decimal.NewFromInt(1000)
)

// CatchUpAge is the age from which retirement catch-up limits apply.
const CatchUpAge = 50

// HSACatchUpAge is the age from which the HSA catch-up applies.
const HSACatchUpAge = 55
