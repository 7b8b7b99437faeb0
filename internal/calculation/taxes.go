package calculation

import (
	"github.com/awconrad/finplan/internal/domain"
	"github.com/awconrad/finplan/internal/reference"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Federal brackets: 2025 levels for all projection years, no inflation
//    indexing. Standard deduction $30,000 MFJ / $15,000 single, plus
//    $2,000 ($1,600 joint) per person 65+.
// 2. Capital gains: long-term rates (0/15/20) stacked on top of ordinary
//    taxable income.
// 3. Social Security taxation: provisional income with the 50%/85% tiers,
//    capped at 85% of benefits.
// 4. State tax: flat effective rate from the state table with exemption
//    flags per income type.

// TaxEngine evaluates federal and state taxes for a filing status.
type TaxEngine struct {
	Status domain.FilingStatus
}

// NewTaxEngine creates a tax engine for a filing status.
func NewTaxEngine(status domain.FilingStatus) *TaxEngine {
	return &TaxEngine{Status: status}
}

// StandardDeduction returns the deduction including senior additions.
func (te *TaxEngine) StandardDeduction(seniors65Plus int) decimal.Decimal {
	table := reference.OrdinaryBrackets2025(te.Status)
	ded := table.StandardDeduction
	for i := 0; i < seniors65Plus; i++ {
		ded = ded.Add(reference.AdditionalStdDeduction65(te.Status))
	}
	return ded
}

// OrdinaryTax walks the brackets over taxable income (already net of
// deductions). Non-positive income is tax free.
func (te *TaxEngine) OrdinaryTax(taxableIncome decimal.Decimal) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	table := reference.OrdinaryBrackets2025(te.Status)
	tax := decimal.Zero
	for _, bracket := range table.Brackets {
		if taxableIncome.LessThanOrEqual(bracket.Min) {
			break
		}
		inBracket := decimal.Min(taxableIncome, bracket.Max).Sub(bracket.Min)
		if inBracket.GreaterThan(decimal.Zero) {
			tax = tax.Add(inBracket.Mul(bracket.Rate))
		}
	}
	return tax
}

// TaxableOrdinaryIncome nets the standard deduction out of gross income,
// floored at zero.
func (te *TaxEngine) TaxableOrdinaryIncome(grossIncome decimal.Decimal, seniors65Plus int) decimal.Decimal {
	taxable := grossIncome.Sub(te.StandardDeduction(seniors65Plus))
	if taxable.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return taxable
}

// OrdinaryTaxOnGross deducts the standard deduction first.
func (te *TaxEngine) OrdinaryTaxOnGross(grossIncome decimal.Decimal, seniors65Plus int) decimal.Decimal {
	return te.OrdinaryTax(te.TaxableOrdinaryIncome(grossIncome, seniors65Plus))
}

// CapitalGainsTax computes LTCG tax with the gains stacked on top of
// ordinary taxable income, so each slice of gain is taxed at the rate of
// the bracket it lands in.
func (te *TaxEngine) CapitalGainsTax(gains, ordinaryTaxable decimal.Decimal) decimal.Decimal {
	if gains.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if ordinaryTaxable.LessThan(decimal.Zero) {
		ordinaryTaxable = decimal.Zero
	}
	brackets := reference.LTCGBrackets2025(te.Status)
	stackTop := ordinaryTaxable.Add(gains)
	tax := decimal.Zero
	for _, bracket := range brackets {
		lo := decimal.Max(bracket.Min, ordinaryTaxable)
		hi := decimal.Min(bracket.Max, stackTop)
		if hi.GreaterThan(lo) {
			tax = tax.Add(hi.Sub(lo).Mul(bracket.Rate))
		}
	}
	return tax
}

// MarginalRate returns the bracket rate at a taxable income level.
func (te *TaxEngine) MarginalRate(taxableIncome decimal.Decimal) decimal.Decimal {
	table := reference.OrdinaryBrackets2025(te.Status)
	rate := decimal.Zero
	for _, bracket := range table.Brackets {
		if taxableIncome.GreaterThan(bracket.Min) {
			rate = bracket.Rate
		} else {
			break
		}
	}
	return rate
}

// CapitalGainsRate returns the LTCG rate at a stacked income level.
func (te *TaxEngine) CapitalGainsRate(stackedIncome decimal.Decimal) decimal.Decimal {
	rate := decimal.Zero
	for _, bracket := range reference.LTCGBrackets2025(te.Status) {
		if stackedIncome.GreaterThan(bracket.Min) {
			rate = bracket.Rate
		} else {
			break
		}
	}
	return rate
}

// TaxableSocialSecurity returns the includable portion of benefits using
// the provisional income method: other income plus half of benefits, with
// 50% inclusion between the tiers and 85% above, capped at 85% of the
// benefit.
func (te *TaxEngine) TaxableSocialSecurity(ssBenefits, otherIncome decimal.Decimal) decimal.Decimal {
	if ssBenefits.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	thresholds := reference.TaxThresholdsFor(te.Status.IsJoint())
	half := decimal.NewFromFloat(0.5)
	provisional := otherIncome.Add(ssBenefits.Mul(half))

	if provisional.LessThanOrEqual(thresholds.Tier1) {
		return decimal.Zero
	}

	cap85 := ssBenefits.Mul(decimal.NewFromFloat(0.85))
	if provisional.LessThanOrEqual(thresholds.Tier2) {
		taxable := provisional.Sub(thresholds.Tier1).Mul(half)
		return decimal.Min(taxable, ssBenefits.Mul(half))
	}

	tier1Part := thresholds.Tier2.Sub(thresholds.Tier1).Mul(half)
	tier1Part = decimal.Min(tier1Part, ssBenefits.Mul(half))
	tier2Part := provisional.Sub(thresholds.Tier2).Mul(decimal.NewFromFloat(0.85))
	return decimal.Min(tier1Part.Add(tier2Part), cap85)
}

// FICATax computes employee-side FICA on wages: Social Security up to the
// wage base, Medicare uncapped, plus the additional Medicare rate above the
// high-income threshold.
func (te *TaxEngine) FICATax(wages decimal.Decimal) decimal.Decimal {
	if wages.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	ssTax := decimal.Min(wages, reference.SSWageBase2025).Mul(reference.SSRate)
	medicare := wages.Mul(reference.MedicareRate)

	threshold := decimal.NewFromInt(200000)
	if te.Status.IsJoint() {
		threshold = decimal.NewFromInt(250000)
	}
	additional := decimal.Zero
	if wages.GreaterThan(threshold) {
		additional = wages.Sub(threshold).Mul(reference.AdditionalMedicareRate)
	}
	return ssTax.Add(medicare).Add(additional)
}

// StateTaxOn applies the state rules to a retirement income profile.
func StateTaxOn(rules reference.StateRules, wages, pension, ssBenefit, withdrawals decimal.Decimal) decimal.Decimal {
	if rules.Rate.IsZero() {
		return decimal.Zero
	}
	base := wages
	if rules.TaxesPension {
		base = base.Add(pension)
	}
	if rules.TaxesSocialSecurity {
		base = base.Add(ssBenefit)
	}
	if rules.TaxesWithdrawals {
		base = base.Add(withdrawals)
	}
	return base.Mul(rules.Rate)
}
