package domain

import (
	"github.com/shopspring/decimal"
)

// GlobalAssumptions holds the market and horizon assumptions shared by every
// calculator. Rates are expressed as fractions (0.03 = 3%).
type GlobalAssumptions struct {
	InflationRate         decimal.Decimal `yaml:"inflation_rate" json:"inflationRate"`
	ReturnPreRetirement   decimal.Decimal `yaml:"return_pre_retirement" json:"returnPreRetirement"`
	ReturnPostRetirement  decimal.Decimal `yaml:"return_post_retirement" json:"returnPostRetirement"`
	ReturnStdDev          decimal.Decimal `yaml:"return_std_dev" json:"returnStdDev"`
	COLARate              decimal.Decimal `yaml:"cola_rate" json:"colaRate"`
	ProjectionYears       int             `yaml:"projection_years" json:"projectionYears"`
	BaseYear              int             `yaml:"base_year" json:"baseYear"`
}

// DefaultAssumptions mirrors the defaults the original planner seeds its
// forms with.
func DefaultAssumptions() GlobalAssumptions {
	return GlobalAssumptions{
		InflationRate:        decimal.NewFromFloat(0.025),
		ReturnPreRetirement:  decimal.NewFromFloat(0.07),
		ReturnPostRetirement: decimal.NewFromFloat(0.05),
		ReturnStdDev:         decimal.NewFromFloat(0.12),
		COLARate:             decimal.NewFromFloat(0.025),
		ProjectionYears:      30,
		BaseYear:             2025,
	}
}

// RealReturn approximates the inflation-adjusted post-retirement return,
// used by the perpetuity shortcut.
func (ga GlobalAssumptions) RealReturn() decimal.Decimal {
	return ga.ReturnPostRetirement.Sub(ga.InflationRate)
}

// SpendingPlan describes the retirement spending target.
type SpendingPlan struct {
	AnnualSpending decimal.Decimal `yaml:"annual_spending" json:"annualSpending"`
	// InflationAdjusted grows the target with the inflation assumption each
	// projection year when true.
	InflationAdjusted bool `yaml:"inflation_adjusted" json:"inflationAdjusted"`
}

// InsuranceFacts are the DIME calculator inputs.
type InsuranceFacts struct {
	Debt              decimal.Decimal `yaml:"debt" json:"debt"`
	IncomeYears       int             `yaml:"income_years" json:"incomeYears"`
	MortgageBalance   decimal.Decimal `yaml:"mortgage_balance" json:"mortgageBalance"`
	EducationPerChild decimal.Decimal `yaml:"education_per_child" json:"educationPerChild"`
	Children          int             `yaml:"children" json:"children"`
	CurrentCoverage   decimal.Decimal `yaml:"current_coverage" json:"currentCoverage"`
}

// GivingFacts are the charitable giving optimizer inputs.
type GivingFacts struct {
	AnnualBudget        decimal.Decimal `yaml:"annual_budget" json:"annualBudget"`
	AppreciatedStock    decimal.Decimal `yaml:"appreciated_stock" json:"appreciatedStock"`
	StockUnrealizedGain decimal.Decimal `yaml:"stock_unrealized_gain" json:"stockUnrealizedGain"`
	UseDonorAdvisedFund bool            `yaml:"use_donor_advised_fund" json:"useDonorAdvisedFund"`
}

// ContributionFacts are the contribution-order optimizer inputs.
type ContributionFacts struct {
	MonthlyBudget        decimal.Decimal `yaml:"monthly_budget" json:"monthlyBudget"`
	EmployerMatchRate    decimal.Decimal `yaml:"employer_match_rate" json:"employerMatchRate"`
	EmployerMatchCapPct  decimal.Decimal `yaml:"employer_match_cap_pct" json:"employerMatchCapPct"`
	HSAEligible          bool            `yaml:"hsa_eligible" json:"hsaEligible"`
	HSAFamilyCoverage    bool            `yaml:"hsa_family_coverage" json:"hsaFamilyCoverage"`
}

// EstateFacts feed the estate-planning checklist.
type EstateFacts struct {
	EstimatedEstateValue decimal.Decimal `yaml:"estimated_estate_value" json:"estimatedEstateValue"`
	HasWill              bool            `yaml:"has_will" json:"hasWill"`
	HasTrust             bool            `yaml:"has_trust" json:"hasTrust"`
	HasPowerOfAttorney   bool            `yaml:"has_power_of_attorney" json:"hasPowerOfAttorney"`
	HasHealthcareProxy   bool            `yaml:"has_healthcare_proxy" json:"hasHealthcareProxy"`
	BeneficiariesCurrent bool            `yaml:"beneficiaries_current" json:"beneficiariesCurrent"`
	MinorChildren        bool            `yaml:"minor_children" json:"minorChildren"`
}

// Plan is the root of a loaded plan file: one household plus the per-domain
// fact sections each calculator consumes.
type Plan struct {
	Household     Household          `yaml:"household" json:"household"`
	Assumptions   GlobalAssumptions  `yaml:"assumptions" json:"assumptions"`
	Spending      SpendingPlan       `yaml:"spending" json:"spending"`
	Insurance     *InsuranceFacts    `yaml:"insurance,omitempty" json:"insurance,omitempty"`
	Giving        *GivingFacts       `yaml:"giving,omitempty" json:"giving,omitempty"`
	Contributions *ContributionFacts `yaml:"contributions,omitempty" json:"contributions,omitempty"`
	Estate        *EstateFacts       `yaml:"estate,omitempty" json:"estate,omitempty"`
	Withdrawal    *WithdrawalPolicy  `yaml:"withdrawal,omitempty" json:"withdrawal,omitempty"`
}

// WithdrawalPolicy selects and parameterizes the withdrawal sequencing
// strategy used by the projection engine.
type WithdrawalPolicy struct {
	// Strategy is one of "standard", "tax_efficient", or "custom".
	Strategy string `yaml:"strategy" json:"strategy"`
	// CustomOrder lists account kinds for the custom strategy.
	CustomOrder []string `yaml:"custom_order,omitempty" json:"customOrder,omitempty"`
}
