package domain

import (
	"github.com/shopspring/decimal"
)

// BreakdownComponent is one labeled line of a needs breakdown.
type BreakdownComponent struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// Breakdown is the derived-metrics record of the needs-calculator pattern:
// a sum of non-negative sub-components. Total is always the exact sum.
type Breakdown struct {
	Components []BreakdownComponent `json:"components"`
	Total      decimal.Decimal      `json:"total"`
}

// CoverageGap compares a computed need against a current baseline.
// Gap = Needed - Current; OverCovered is true exactly when Gap < 0.
type CoverageGap struct {
	Needed      decimal.Decimal `json:"needed"`
	Current     decimal.Decimal `json:"current"`
	Gap         decimal.Decimal `json:"gap"`
	OverCovered bool            `json:"overCovered"`
}

// BucketAllocation is one bucket's share of a greedy allocation.
type BucketAllocation struct {
	Name      string          `json:"name"`
	Allocated decimal.Decimal `json:"allocated"`
	Capacity  decimal.Decimal `json:"capacity"`
	Note      string          `json:"note,omitempty"`
}

// DIMEResult is the life-insurance needs analysis output.
type DIMEResult struct {
	Breakdown              Breakdown       `json:"breakdown"`
	Gap                    CoverageGap     `json:"gap"`
	RecommendedCoverage    decimal.Decimal `json:"recommendedCoverage"`
	PremiumAgeBracket      int             `json:"premiumAgeBracket"`
	EstimatedAnnualPremium decimal.Decimal `json:"estimatedAnnualPremium"`
}

// GivingChannel is one channel of the charitable giving plan.
type GivingChannel struct {
	Allocation       BucketAllocation `json:"allocation"`
	EstimatedSavings decimal.Decimal  `json:"estimatedSavings"`
}

// GivingPlan is the charitable giving optimizer output.
type GivingPlan struct {
	Budget            decimal.Decimal `json:"budget"`
	Channels          []GivingChannel `json:"channels"`
	TotalAllocated    decimal.Decimal `json:"totalAllocated"`
	TotalTaxSavings   decimal.Decimal `json:"totalTaxSavings"`
	EffectiveGiftCost decimal.Decimal `json:"effectiveGiftCost"`
	Notes             []string        `json:"notes,omitempty"`
}

// ContributionPlan is the contribution-order optimizer output. Allocations
// are monthly amounts in priority order.
type ContributionPlan struct {
	MonthlyBudget    decimal.Decimal    `json:"monthlyBudget"`
	Allocations      []BucketAllocation `json:"allocations"`
	TotalAllocated   decimal.Decimal    `json:"totalAllocated"`
	Unallocated      decimal.Decimal    `json:"unallocated"`
	MatchCaptured    decimal.Decimal    `json:"matchCaptured"`
	MatchAvailable   decimal.Decimal    `json:"matchAvailable"`
}

// ClaimingOption is one Social Security claiming age with its benefit.
type ClaimingOption struct {
	ClaimAge       int             `json:"claimAge"`
	MonthlyBenefit decimal.Decimal `json:"monthlyBenefit"`
	AnnualBenefit  decimal.Decimal `json:"annualBenefit"`
	// AdjustmentPct is the reduction (negative) or credit (positive)
	// relative to the FRA benefit.
	AdjustmentPct decimal.Decimal `json:"adjustmentPct"`
}

// BreakEvenPoint records the age at which a later claim overtakes an
// earlier one in cumulative benefits.
type BreakEvenPoint struct {
	EarlyAge     int `json:"earlyAge"`
	LateAge      int `json:"lateAge"`
	CrossoverAge int `json:"crossoverAge"` // 0 when the late claim never catches up
}

// ClaimingAnalysis is the Social Security claiming optimizer output.
type ClaimingAnalysis struct {
	PIA             decimal.Decimal  `json:"pia"`
	FRA             int              `json:"fra"`
	Options         []ClaimingOption `json:"options"`
	BreakEvens      []BreakEvenPoint `json:"breakEvens"`
	RecommendedAge  int              `json:"recommendedAge"`
	LongevityAge    int              `json:"longevityAge"`
	LifetimeAtRec   decimal.Decimal  `json:"lifetimeAtRecommended"`
}

// StateTaxResult is one state's annual tax on the comparison profile.
type StateTaxResult struct {
	State         string          `json:"state"`
	AnnualTax     decimal.Decimal `json:"annualTax"`
	EffectiveRate decimal.Decimal `json:"effectiveRate"`
	Notes         string          `json:"notes,omitempty"`
}

// StateTaxComparison ranks states for a fixed retirement income profile.
type StateTaxComparison struct {
	ProfileIncome decimal.Decimal  `json:"profileIncome"`
	HomeState     string           `json:"homeState"`
	Results       []StateTaxResult `json:"results"` // sorted ascending by tax
}

// AnnualProjection is one simulated year of the retirement projection.
type AnnualProjection struct {
	Year int `json:"year"`
	Age  int `json:"age"`

	Salary             decimal.Decimal `json:"salary"`
	SSBenefit          decimal.Decimal `json:"ssBenefit"`
	RMD                decimal.Decimal `json:"rmd"`
	WithdrawalTaxable  decimal.Decimal `json:"withdrawalTaxable"`
	WithdrawalTrad     decimal.Decimal `json:"withdrawalTraditional"`
	WithdrawalRoth     decimal.Decimal `json:"withdrawalRoth"`
	GrossIncome        decimal.Decimal `json:"grossIncome"`

	FederalTax      decimal.Decimal `json:"federalTax"`
	CapitalGainsTax decimal.Decimal `json:"capitalGainsTax"`
	StateTax        decimal.Decimal `json:"stateTax"`
	FICATax         decimal.Decimal `json:"ficaTax"`
	MedicarePremium decimal.Decimal `json:"medicarePremium"`
	IRMAASurcharge  decimal.Decimal `json:"irmaaSurcharge"`

	SpendingTarget decimal.Decimal `json:"spendingTarget"`
	Shortfall      decimal.Decimal `json:"shortfall"`
	NetIncome      decimal.Decimal `json:"netIncome"`

	BalanceTaxable     decimal.Decimal `json:"balanceTaxable"`
	BalanceTraditional decimal.Decimal `json:"balanceTraditional"`
	BalanceRoth        decimal.Decimal `json:"balanceRoth"`

	IsRetired          bool `json:"isRetired"`
	IsMedicareEligible bool `json:"isMedicareEligible"`
	IsRMDYear          bool `json:"isRmdYear"`
}

// TotalBalance is the combined end-of-year portfolio balance.
func (ap *AnnualProjection) TotalBalance() decimal.Decimal {
	return ap.BalanceTaxable.Add(ap.BalanceTraditional).Add(ap.BalanceRoth)
}

// IsDepleted reports whether the portfolio is exhausted.
func (ap *AnnualProjection) IsDepleted() bool {
	return ap.TotalBalance().LessThanOrEqual(decimal.Zero)
}

// ProjectionSummary aggregates a full projection run.
type ProjectionSummary struct {
	Years            []AnnualProjection `json:"years"`
	EndingBalance    decimal.Decimal    `json:"endingBalance"`
	DepletionYear    int                `json:"depletionYear"` // 0 when never depleted
	LifetimeTaxes    decimal.Decimal    `json:"lifetimeTaxes"`
	LifetimeIRMAA    decimal.Decimal    `json:"lifetimeIrmaa"`
	TotalShortfall   decimal.Decimal    `json:"totalShortfall"`
	FirstYearNet     decimal.Decimal    `json:"firstYearNet"`
}

// PercentileRanges holds the standard Monte Carlo percentile spread.
type PercentileRanges struct {
	P10 decimal.Decimal `json:"p10"`
	P25 decimal.Decimal `json:"p25"`
	P50 decimal.Decimal `json:"p50"`
	P75 decimal.Decimal `json:"p75"`
	P90 decimal.Decimal `json:"p90"`
}

// PathOutcome is a single Monte Carlo path result.
type PathOutcome struct {
	PathID        int             `json:"pathId"`
	EndingBalance decimal.Decimal `json:"endingBalance"`
	YearsLasted   int             `json:"yearsLasted"`
	Success       bool            `json:"success"`
}

// MonteCarloResults summarizes a withdrawal simulation.
type MonteCarloResults struct {
	NumPaths            int              `json:"numPaths"`
	HorizonYears        int              `json:"horizonYears"`
	Seed                int64            `json:"seed"`
	SuccessRate         decimal.Decimal  `json:"successRate"`
	MedianEndingBalance decimal.Decimal  `json:"medianEndingBalance"`
	Percentiles         PercentileRanges `json:"percentiles"`
	Paths               []PathOutcome    `json:"paths"`
}

// DecadeOutcome is one chunk of the generational projection.
type DecadeOutcome struct {
	StartYear       int             `json:"startYear"`
	EndYear         int             `json:"endYear"`
	StartingBalance decimal.Decimal `json:"startingBalance"`
	EndingBalance   decimal.Decimal `json:"endingBalance"`
}

// PerpetuityAnalysis is the perpetual-threshold / generational wealth output.
type PerpetuityAnalysis struct {
	Principal             decimal.Decimal `json:"principal"`
	AnnualWithdrawal      decimal.Decimal `json:"annualWithdrawal"`
	WithdrawalRate        decimal.Decimal `json:"withdrawalRate"`
	RealReturn            decimal.Decimal `json:"realReturn"`
	Perpetual             bool            `json:"perpetual"`
	SustainableWithdrawal decimal.Decimal `json:"sustainableWithdrawal"`
	RequiredPrincipal     decimal.Decimal `json:"requiredPrincipal"`
	ExhaustionYear        int             `json:"exhaustionYear"` // 0 when perpetual
	Decades               []DecadeOutcome `json:"decades,omitempty"`
}

// FundComparison is the index-vs-active cost drag projection.
type FundComparison struct {
	Horizon              int             `json:"horizonYears"`
	IndexEndingBalance   decimal.Decimal `json:"indexEndingBalance"`
	ActiveEndingBalance  decimal.Decimal `json:"activeEndingBalance"`
	CostDrag             decimal.Decimal `json:"costDrag"`
	UnderperformanceOdds decimal.Decimal `json:"underperformanceOdds"`
	Category             string          `json:"category"`
}

// ChecklistItem is one estate-planning action item.
type ChecklistItem struct {
	Title    string `json:"title"`
	Done     bool   `json:"done"`
	Priority string `json:"priority"` // "essential", "recommended", "consider"
	Detail   string `json:"detail,omitempty"`
}

// EstateChecklist is the derived estate-planning checklist.
type EstateChecklist struct {
	EstateValue      decimal.Decimal `json:"estateValue"`
	FederalExemption decimal.Decimal `json:"federalExemption"`
	AboveExemption   bool            `json:"aboveExemption"`
	Items            []ChecklistItem `json:"items"`
	CompletedCount   int             `json:"completedCount"`
}
