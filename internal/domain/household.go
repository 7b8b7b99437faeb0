package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FilingStatus identifies the federal filing status used for bracket and
// deduction lookups.
type FilingStatus string

const (
	FilingSingle       FilingStatus = "single"
	FilingMarriedJoint FilingStatus = "married_joint"
)

func (fs FilingStatus) String() string { return string(fs) }

// IsJoint reports whether joint thresholds apply.
func (fs FilingStatus) IsJoint() bool { return fs == FilingMarriedJoint }

// HealthTier is the underwriting class used for term premium estimates.
type HealthTier string

const (
	HealthPreferred   HealthTier = "preferred"
	HealthStandard    HealthTier = "standard"
	HealthSubstandard HealthTier = "substandard"
)

func (ht HealthTier) String() string { return string(ht) }

// AccountKind identifies the tax treatment bucket an account belongs to.
type AccountKind string

const (
	AccountTaxable     AccountKind = "taxable"
	AccountTraditional AccountKind = "traditional"
	AccountRoth        AccountKind = "roth"
)

// ParseAccountKind converts a config string into an AccountKind.
func ParseAccountKind(s string) (AccountKind, error) {
	switch AccountKind(s) {
	case AccountTaxable, AccountTraditional, AccountRoth:
		return AccountKind(s), nil
	}
	return "", fmt.Errorf("unknown account kind %q", s)
}

// Person is a single household member. BirthYear plus the plan's base year
// drives all age-dependent rules (RMDs, Medicare, catch-up limits).
type Person struct {
	Name          string          `yaml:"name" json:"name"`
	BirthYear     int             `yaml:"birth_year" json:"birthYear"`
	RetirementAge int             `yaml:"retirement_age" json:"retirementAge"`
	AnnualSalary  decimal.Decimal `yaml:"annual_salary" json:"annualSalary"`

	// Social Security inputs. AIME feeds the bend-point PIA formula; if a
	// statement benefit is supplied it takes precedence over the formula.
	SSClaimAge        int             `yaml:"ss_claim_age" json:"ssClaimAge"`
	AIMEMonthly       decimal.Decimal `yaml:"aime_monthly" json:"aimeMonthly"`
	SSMonthlyAtFRA    decimal.Decimal `yaml:"ss_monthly_at_fra" json:"ssMonthlyAtFra"`
	HealthTier        HealthTier      `yaml:"health_tier" json:"healthTier"`
	LongevityAge      int             `yaml:"longevity_age" json:"longevityAge"`
}

// AgeInYear returns the person's age attained during the given calendar year.
func (p *Person) AgeInYear(year int) int {
	return year - p.BirthYear
}

// Accounts holds the household's investable balances by tax treatment.
// Basis applies only to the taxable account and approximates the capital
// gains share of withdrawals.
type Accounts struct {
	TaxableBalance     decimal.Decimal `yaml:"taxable_balance" json:"taxableBalance"`
	TaxableBasis       decimal.Decimal `yaml:"taxable_basis" json:"taxableBasis"`
	TraditionalBalance decimal.Decimal `yaml:"traditional_balance" json:"traditionalBalance"`
	RothBalance        decimal.Decimal `yaml:"roth_balance" json:"rothBalance"`
}

// Total returns the combined balance across all accounts.
func (a Accounts) Total() decimal.Decimal {
	return a.TaxableBalance.Add(a.TraditionalBalance).Add(a.RothBalance)
}

// Household groups the people, accounts, and location a plan is computed for.
type Household struct {
	FilingStatus FilingStatus `yaml:"filing_status" json:"filingStatus"`
	State        string       `yaml:"state" json:"state"`
	Participants []Person     `yaml:"participants" json:"participants"`
	Accounts     Accounts     `yaml:"accounts" json:"accounts"`
}

// Primary returns the first participant, which anchors age-based rules for
// single-person calculations. Returns nil for an empty household.
func (h *Household) Primary() *Person {
	if len(h.Participants) == 0 {
		return nil
	}
	return &h.Participants[0]
}

// OldestAgeInYear returns the maximum participant age attained in year.
func (h *Household) OldestAgeInYear(year int) int {
	oldest := 0
	for i := range h.Participants {
		if age := h.Participants[i].AgeInYear(year); age > oldest {
			oldest = age
		}
	}
	return oldest
}

// Seniors65Plus counts participants aged 65 or older in the given year, for
// the additional standard deduction.
func (h *Household) Seniors65Plus(year int) int {
	n := 0
	for i := range h.Participants {
		if h.Participants[i].AgeInYear(year) >= 65 {
			n++
		}
	}
	return n
}
