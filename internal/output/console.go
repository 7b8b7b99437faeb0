package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/awconrad/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders the detailed plain-text report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *PlanReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "FINANCIAL PLAN ANALYSIS")
	fmt.Fprintln(&buf, "=================================================================================")
	if report.GeneratedFor != "" {
		fmt.Fprintf(&buf, "Prepared for: %s\n", report.GeneratedFor)
	}
	fmt.Fprintln(&buf)

	if report.Insurance != nil {
		writeInsurance(&buf, report.Insurance)
	}
	if report.Giving != nil {
		writeGiving(&buf, report.Giving)
	}
	if report.Contribution != nil {
		writeContribution(&buf, report.Contribution)
	}
	if report.Claiming != nil {
		writeClaiming(&buf, report.Claiming)
	}
	if report.StateTax != nil {
		writeStateTax(&buf, report.StateTax)
	}
	if report.Projection != nil {
		writeProjection(&buf, report.Projection)
	}
	if report.MonteCarlo != nil {
		writeMonteCarlo(&buf, report.MonteCarlo)
	}
	if report.Perpetuity != nil {
		writePerpetuity(&buf, report.Perpetuity)
	}
	if report.Funds != nil {
		writeFunds(&buf, report.Funds)
	}
	if report.Estate != nil {
		writeEstate(&buf, report.Estate)
	}

	return buf.Bytes(), nil
}

func section(buf *bytes.Buffer, title string) {
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, strings.Repeat("=", len(title)))
}

func writeInsurance(buf *bytes.Buffer, r *domain.DIMEResult) {
	section(buf, "LIFE INSURANCE NEEDS (DIME)")
	for _, comp := range r.Breakdown.Components {
		fmt.Fprintf(buf, "  %-22s %s\n", comp.Label+":", FormatCurrency(comp.Amount))
	}
	fmt.Fprintf(buf, "  %-22s %s\n", "TOTAL NEED:", FormatCurrency(r.Breakdown.Total))
	fmt.Fprintf(buf, "  %-22s %s\n", "Current Coverage:", FormatCurrency(r.Gap.Current))
	if r.Gap.OverCovered {
		fmt.Fprintf(buf, "  Coverage exceeds need by %s\n", FormatCurrency(r.Gap.Gap.Neg()))
	} else {
		fmt.Fprintf(buf, "  %-22s %s\n", "Coverage Gap:", FormatCurrency(r.Gap.Gap))
	}
	if r.RecommendedCoverage.GreaterThan(decimal.Zero) {
		fmt.Fprintf(buf, "  Recommended term coverage: %s\n", FormatCurrency(r.RecommendedCoverage))
		fmt.Fprintf(buf, "  Estimated annual premium:  %s (age bracket %d)\n",
			FormatCurrency(r.EstimatedAnnualPremium), r.PremiumAgeBracket)
	}
	fmt.Fprintln(buf)
}

func writeGiving(buf *bytes.Buffer, r *domain.GivingPlan) {
	section(buf, "CHARITABLE GIVING PLAN")
	fmt.Fprintf(buf, "  Annual budget: %s\n", FormatCurrency(r.Budget))
	for _, ch := range r.Channels {
		if ch.Allocation.Allocated.IsZero() {
			continue
		}
		fmt.Fprintf(buf, "  %-14s %12s   saves %s\n",
			ch.Allocation.Name+":", FormatCurrency(ch.Allocation.Allocated), FormatCurrency(ch.EstimatedSavings))
	}
	fmt.Fprintf(buf, "  Total tax savings:   %s\n", FormatCurrency(r.TotalTaxSavings))
	fmt.Fprintf(buf, "  Effective gift cost: %s\n", FormatCurrency(r.EffectiveGiftCost))
	for _, note := range r.Notes {
		fmt.Fprintf(buf, "  Note: %s\n", note)
	}
	fmt.Fprintln(buf)
}

func writeContribution(buf *bytes.Buffer, r *domain.ContributionPlan) {
	section(buf, "MONTHLY CONTRIBUTION ORDER")
	for _, alloc := range r.Allocations {
		if alloc.Allocated.IsZero() {
			continue
		}
		fmt.Fprintf(buf, "  %-12s %12s", alloc.Name+":", FormatCurrency(alloc.Allocated))
		if alloc.Note != "" {
			fmt.Fprintf(buf, "   (%s)", alloc.Note)
		}
		fmt.Fprintln(buf)
	}
	fmt.Fprintf(buf, "  Allocated %s of %s\n", FormatCurrency(r.TotalAllocated), FormatCurrency(r.MonthlyBudget))
	if r.MatchAvailable.GreaterThan(decimal.Zero) {
		fmt.Fprintf(buf, "  Employer match captured: %s of %s\n",
			FormatCurrency(r.MatchCaptured), FormatCurrency(r.MatchAvailable))
	}
	fmt.Fprintln(buf)
}

func writeClaiming(buf *bytes.Buffer, r *domain.ClaimingAnalysis) {
	section(buf, "SOCIAL SECURITY CLAIMING ANALYSIS")
	fmt.Fprintf(buf, "  PIA (monthly at FRA %d): %s\n", r.FRA, FormatCurrency(r.PIA))
	for _, opt := range r.Options {
		marker := " "
		if opt.ClaimAge == r.RecommendedAge {
			marker = "*"
		}
		fmt.Fprintf(buf, "  %s age %d: %s/mo (%s vs FRA)\n",
			marker, opt.ClaimAge, FormatCurrency(opt.MonthlyBenefit), FormatPercentage(opt.AdjustmentPct))
	}
	for _, be := range r.BreakEvens {
		if be.CrossoverAge == 0 {
			fmt.Fprintf(buf, "  Claiming at %d never overtakes claiming at %d\n", be.LateAge, be.EarlyAge)
		} else {
			fmt.Fprintf(buf, "  Claim at %d overtakes claim at %d around age %d\n", be.LateAge, be.EarlyAge, be.CrossoverAge)
		}
	}
	fmt.Fprintf(buf, "  Recommended claim age %d (lifetime through %d: %s)\n",
		r.RecommendedAge, r.LongevityAge, FormatCurrency(r.LifetimeAtRec))
	fmt.Fprintln(buf)
}

func writeStateTax(buf *bytes.Buffer, r *domain.StateTaxComparison) {
	section(buf, "STATE TAX COMPARISON")
	fmt.Fprintf(buf, "  Annual retirement income: %s\n", FormatCurrency(r.ProfileIncome))
	for i, res := range r.Results {
		marker := " "
		if res.State == r.HomeState {
			marker = "*"
		}
		fmt.Fprintf(buf, "  %2d.%s %-3s %12s  (%s effective)", i+1, marker, res.State,
			FormatCurrency(res.AnnualTax), FormatPercentage(res.EffectiveRate))
		if res.Notes != "" {
			fmt.Fprintf(buf, "  %s", res.Notes)
		}
		fmt.Fprintln(buf)
	}
	fmt.Fprintln(buf)
}

func writeProjection(buf *bytes.Buffer, r *domain.ProjectionSummary) {
	section(buf, "RETIREMENT PROJECTION")
	fmt.Fprintf(buf, "  %-6s %-4s %14s %14s %12s %14s\n", "Year", "Age", "Gross", "Taxes", "Medicare", "End Balance")
	for _, yr := range r.Years {
		taxes := yr.FederalTax.Add(yr.CapitalGainsTax).Add(yr.StateTax).Add(yr.FICATax)
		medicare := yr.MedicarePremium.Add(yr.IRMAASurcharge)
		fmt.Fprintf(buf, "  %-6d %-4d %14s %14s %12s %14s\n",
			yr.Year, yr.Age, FormatCurrency(yr.GrossIncome), FormatCurrency(taxes),
			FormatCurrency(medicare), FormatCurrency(yr.TotalBalance()))
	}
	fmt.Fprintf(buf, "  Ending balance: %s\n", FormatCurrency(r.EndingBalance))
	if r.DepletionYear != 0 {
		fmt.Fprintf(buf, "  WARNING: portfolio depleted in %d\n", r.DepletionYear)
	}
	fmt.Fprintf(buf, "  Lifetime taxes: %s  Lifetime IRMAA: %s\n",
		FormatCurrency(r.LifetimeTaxes), FormatCurrency(r.LifetimeIRMAA))
	if r.TotalShortfall.GreaterThan(decimal.Zero) {
		fmt.Fprintf(buf, "  Unfunded spending: %s\n", FormatCurrency(r.TotalShortfall))
	}
	fmt.Fprintln(buf)
}

func writeMonteCarlo(buf *bytes.Buffer, r *domain.MonteCarloResults) {
	section(buf, "MONTE CARLO SIMULATION")
	fmt.Fprintf(buf, "  Paths: %d  Horizon: %d years  Seed: %d\n", r.NumPaths, r.HorizonYears, r.Seed)
	fmt.Fprintf(buf, "  Success rate: %s\n", FormatPercentage(r.SuccessRate))
	fmt.Fprintf(buf, "  Ending balance percentiles:\n")
	fmt.Fprintf(buf, "    P10: %s\n", FormatCurrency(r.Percentiles.P10))
	fmt.Fprintf(buf, "    P25: %s\n", FormatCurrency(r.Percentiles.P25))
	fmt.Fprintf(buf, "    P50: %s\n", FormatCurrency(r.Percentiles.P50))
	fmt.Fprintf(buf, "    P75: %s\n", FormatCurrency(r.Percentiles.P75))
	fmt.Fprintf(buf, "    P90: %s\n", FormatCurrency(r.Percentiles.P90))
	fmt.Fprintln(buf)
}

func writePerpetuity(buf *bytes.Buffer, r *domain.PerpetuityAnalysis) {
	section(buf, "PERPETUAL WITHDRAWAL ANALYSIS")
	fmt.Fprintf(buf, "  Principal:            %s\n", FormatCurrency(r.Principal))
	fmt.Fprintf(buf, "  Annual withdrawal:    %s (%s)\n", FormatCurrency(r.AnnualWithdrawal), FormatPercentage(r.WithdrawalRate))
	fmt.Fprintf(buf, "  Real return:          %s\n", FormatPercentage(r.RealReturn))
	if r.Perpetual {
		fmt.Fprintln(buf, "  Status: PERPETUAL - real spending never touches principal")
	} else {
		fmt.Fprintf(buf, "  Status: NOT perpetual")
		if r.ExhaustionYear != 0 {
			fmt.Fprintf(buf, " - exhausted in year %d", r.ExhaustionYear)
		}
		fmt.Fprintln(buf)
		fmt.Fprintf(buf, "  Sustainable withdrawal: %s\n", FormatCurrency(r.SustainableWithdrawal))
		fmt.Fprintf(buf, "  Principal required:     %s\n", FormatCurrency(r.RequiredPrincipal))
	}
	for _, d := range r.Decades {
		fmt.Fprintf(buf, "  Years %3d-%3d: %s -> %s\n", d.StartYear, d.EndYear,
			FormatCurrency(d.StartingBalance), FormatCurrency(d.EndingBalance))
	}
	fmt.Fprintln(buf)
}

func writeFunds(buf *bytes.Buffer, r *domain.FundComparison) {
	section(buf, "INDEX VS ACTIVE FUNDS")
	fmt.Fprintf(buf, "  Category: %s  Horizon: %d years\n", r.Category, r.Horizon)
	fmt.Fprintf(buf, "  Index fund ending balance:  %s\n", FormatCurrency(r.IndexEndingBalance))
	fmt.Fprintf(buf, "  Active fund ending balance: %s\n", FormatCurrency(r.ActiveEndingBalance))
	fmt.Fprintf(buf, "  Cost drag: %s\n", FormatCurrency(r.CostDrag))
	fmt.Fprintf(buf, "  Odds an active fund underperforms its benchmark: %s\n", FormatPercentage(r.UnderperformanceOdds))
	fmt.Fprintln(buf)
}

func writeEstate(buf *bytes.Buffer, r *domain.EstateChecklist) {
	section(buf, "ESTATE PLANNING CHECKLIST")
	fmt.Fprintf(buf, "  Estimated estate: %s (federal exemption %s)\n",
		FormatCurrency(r.EstateValue), FormatCurrency(r.FederalExemption))
	if r.AboveExemption {
		fmt.Fprintln(buf, "  Estate exceeds the federal exemption - tax planning items escalated.")
	}
	for _, item := range r.Items {
		box := "[ ]"
		if item.Done {
			box = "[x]"
		}
		fmt.Fprintf(buf, "  %s %-45s (%s)\n", box, item.Title, item.Priority)
	}
	fmt.Fprintf(buf, "  Completed %d of %d items\n", r.CompletedCount, len(r.Items))
	fmt.Fprintln(buf)
}
