package calculation

import (
	"github.com/awconrad/finplan/internal/domain"
	"github.com/awconrad/finplan/internal/reference"
	"github.com/shopspring/decimal"
)

// GivingOptimizer allocates an annual giving budget across the four
// channels in tax-efficiency order: QCD first (pre-tax dollars, never hits
// AGI), then appreciated stock (deduction plus avoided capital gains), then
// DAF bunching, then cash.
type GivingOptimizer struct {
	Taxes *TaxEngine
}

// NewGivingOptimizer creates a giving optimizer for a filing status.
func NewGivingOptimizer(status domain.FilingStatus) *GivingOptimizer {
	return &GivingOptimizer{Taxes: NewTaxEngine(status)}
}

// Optimize builds the giving plan. age gates QCD eligibility,
// traditionalBalance caps what a QCD can draw on, and taxableIncome drives
// the marginal rate used for savings estimates.
func (g *GivingOptimizer) Optimize(facts domain.GivingFacts, age int, traditionalBalance, taxableIncome decimal.Decimal) domain.GivingPlan {
	budget := facts.AnnualBudget
	if budget.LessThan(decimal.Zero) {
		budget = decimal.Zero
	}

	marginal := g.Taxes.MarginalRate(taxableIncome)
	ltcgRate := g.Taxes.CapitalGainsRate(taxableIncome)

	var notes []string

	qcdCap := decimal.Zero
	if age >= reference.QCDMinimumAge {
		qcdCap = decimal.Min(reference.QCDAnnualLimit2025, traditionalBalance)
		if qcdCap.LessThan(decimal.Zero) {
			qcdCap = decimal.Zero
		}
	} else {
		notes = append(notes, "QCD unavailable before age 70 1/2")
	}

	stockCap := facts.AppreciatedStock
	if stockCap.LessThan(decimal.Zero) {
		stockCap = decimal.Zero
	}

	dafCap := decimal.Zero
	if facts.UseDonorAdvisedFund {
		// DAF bunching has no statutory cap of its own; the remaining
		// budget flows through it before plain cash.
		dafCap = budget
	}

	buckets := []Bucket{
		{Name: "qcd", Capacity: qcdCap, Note: "IRA-to-charity transfer, excluded from AGI"},
		{Name: "stock", Capacity: stockCap, Note: "appreciated shares, deduction at fair market value"},
		{Name: "daf", Capacity: dafCap, Note: "donor-advised fund bunching"},
		{Name: "cash", Capacity: budget, Note: "cash gift"},
	}
	allocations := AllocateGreedy(budget, buckets)

	gainRatio := decimal.Zero
	if facts.AppreciatedStock.GreaterThan(decimal.Zero) && facts.StockUnrealizedGain.GreaterThan(decimal.Zero) {
		gainRatio = decimal.Min(facts.StockUnrealizedGain, facts.AppreciatedStock).Div(facts.AppreciatedStock)
	}

	plan := domain.GivingPlan{Budget: budget, Notes: notes}
	for _, alloc := range allocations {
		savings := decimal.Zero
		switch alloc.Name {
		case "qcd":
			// A QCD satisfies RMD dollars that would otherwise be taxed
			// as ordinary income.
			savings = alloc.Allocated.Mul(marginal)
		case "stock":
			// Deduction at the donor's marginal rate plus the avoided
			// LTCG on the embedded gain.
			savings = alloc.Allocated.Mul(marginal).Add(alloc.Allocated.Mul(gainRatio).Mul(ltcgRate))
		case "daf", "cash":
			savings = alloc.Allocated.Mul(marginal)
		}
		plan.Channels = append(plan.Channels, domain.GivingChannel{
			Allocation:       alloc,
			EstimatedSavings: savings,
		})
		plan.TotalAllocated = plan.TotalAllocated.Add(alloc.Allocated)
		plan.TotalTaxSavings = plan.TotalTaxSavings.Add(savings)
	}
	plan.EffectiveGiftCost = plan.TotalAllocated.Sub(plan.TotalTaxSavings)
	return plan
}
