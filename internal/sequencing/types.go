// Package sequencing implements withdrawal-ordering strategies over the
// household's taxable, traditional, and roth balances. The projection
// engine asks a strategy to source a target amount each year; the plan it
// gets back decomposes every withdrawal into its ordinary-income, capital
// gains, and tax-free portions.
package sequencing

import (
	"github.com/awconrad/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

// TaxTreatment classifies how a withdrawal hits the current-year return.
type TaxTreatment int

const (
	TaxFree TaxTreatment = iota
	OrdinaryIncome
	CapitalGains
)

func (tt TaxTreatment) String() string {
	switch tt {
	case TaxFree:
		return "tax_free"
	case OrdinaryIncome:
		return "ordinary"
	case CapitalGains:
		return "capital_gains"
	default:
		return "unknown"
	}
}

// Source is an available withdrawal pool. Basis approximates the gains
// share of taxable-account withdrawals; PendingRMD must be satisfied from
// a traditional source before discretionary logic runs.
type Source struct {
	Kind         domain.AccountKind
	Balance      decimal.Decimal
	Basis        decimal.Decimal
	TaxTreatment TaxTreatment
	PendingRMD   decimal.Decimal
}

// Allocation is the withdrawal taken from one source and its tax
// decomposition.
type Allocation struct {
	Kind                domain.AccountKind
	Gross               decimal.Decimal
	OrdinaryPortion     decimal.Decimal
	CapitalGainsPortion decimal.Decimal
	TaxFreePortion      decimal.Decimal
}

// Plan aggregates the allocations meeting (or failing to meet) a request.
type Plan struct {
	Requested       decimal.Decimal
	Allocations     []Allocation
	TotalSourced    decimal.Decimal
	RemainingNeed   decimal.Decimal
	OrdinaryIncome  decimal.Decimal
	CapitalGains    decimal.Decimal
	TaxFreeAmount   decimal.Decimal
	RMDSatisfied    bool
	StrategyUsed    string
	Notes           []string
}

// Strategy plans how to source a requested amount from the sources.
type Strategy interface {
	Name() string
	Plan(sources []Source, need decimal.Decimal) Plan
}

// SourcesFromAccounts builds the standard three sources from account
// balances, attaching any pending RMD to the traditional pool.
func SourcesFromAccounts(accounts domain.Accounts, pendingRMD decimal.Decimal) []Source {
	return []Source{
		{Kind: domain.AccountTaxable, Balance: accounts.TaxableBalance, Basis: accounts.TaxableBasis, TaxTreatment: CapitalGains},
		{Kind: domain.AccountTraditional, Balance: accounts.TraditionalBalance, TaxTreatment: OrdinaryIncome, PendingRMD: pendingRMD},
		{Kind: domain.AccountRoth, Balance: accounts.RothBalance, TaxTreatment: TaxFree},
	}
}

// drawFrom takes up to amount from a source and appends the decomposed
// allocation to the plan. Returns the amount actually taken.
func drawFrom(plan *Plan, src *Source, amount decimal.Decimal) decimal.Decimal {
	if amount.LessThanOrEqual(decimal.Zero) || src.Balance.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	take := decimal.Min(amount, src.Balance)

	alloc := Allocation{Kind: src.Kind, Gross: take}
	switch src.TaxTreatment {
	case OrdinaryIncome:
		alloc.OrdinaryPortion = take
	case TaxFree:
		alloc.TaxFreePortion = take
	case CapitalGains:
		// Gain share = unrealized gain over balance, applied pro rata.
		unrealized := src.Balance.Sub(src.Basis)
		if unrealized.LessThan(decimal.Zero) {
			unrealized = decimal.Zero
		}
		gain := take.Mul(unrealized).Div(src.Balance)
		alloc.CapitalGainsPortion = gain
		alloc.TaxFreePortion = take.Sub(gain)
		// Basis is consumed proportionally with the withdrawal.
		src.Basis = src.Basis.Sub(take.Sub(gain))
		if src.Basis.LessThan(decimal.Zero) {
			src.Basis = decimal.Zero
		}
	}

	src.Balance = src.Balance.Sub(take)
	plan.Allocations = append(plan.Allocations, alloc)
	plan.TotalSourced = plan.TotalSourced.Add(take)
	plan.OrdinaryIncome = plan.OrdinaryIncome.Add(alloc.OrdinaryPortion)
	plan.CapitalGains = plan.CapitalGains.Add(alloc.CapitalGainsPortion)
	plan.TaxFreeAmount = plan.TaxFreeAmount.Add(alloc.TaxFreePortion)
	return take
}

// satisfyRMDs drains pending RMDs before any discretionary ordering and
// returns the amount withdrawn. RMD dollars count toward the need.
func satisfyRMDs(plan *Plan, sources []Source) decimal.Decimal {
	taken := decimal.Zero
	plan.RMDSatisfied = true
	for i := range sources {
		rmd := sources[i].PendingRMD
		if rmd.LessThanOrEqual(decimal.Zero) {
			continue
		}
		got := drawFrom(plan, &sources[i], rmd)
		taken = taken.Add(got)
		if got.LessThan(rmd) {
			plan.RMDSatisfied = false
			plan.Notes = append(plan.Notes, "insufficient traditional balance to satisfy RMD")
		}
	}
	return taken
}
