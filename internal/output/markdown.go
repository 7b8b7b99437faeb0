package output

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/awconrad/finplan/internal/domain"
	"github.com/nao1215/markdown"
)

// MarkdownFormatter renders the report as GitHub-flavored markdown for
// sharing and documentation.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

func (m MarkdownFormatter) Format(report *PlanReport) ([]byte, error) {
	var buf bytes.Buffer
	md := markdown.NewMarkdown(&buf)

	md.H1("Financial Plan Analysis")
	if report.GeneratedFor != "" {
		md.PlainText("Prepared for " + report.GeneratedFor)
	}
	md.PlainText("")

	if report.Insurance != nil {
		mdInsurance(md, report.Insurance)
	}
	if report.Giving != nil {
		mdGiving(md, report.Giving)
	}
	if report.Contribution != nil {
		mdContribution(md, report.Contribution)
	}
	if report.Claiming != nil {
		mdClaiming(md, report.Claiming)
	}
	if report.StateTax != nil {
		mdStateTax(md, report.StateTax)
	}
	if report.Projection != nil {
		mdProjection(md, report.Projection)
	}
	if report.MonteCarlo != nil {
		mdMonteCarlo(md, report.MonteCarlo)
	}
	if report.Perpetuity != nil {
		mdPerpetuity(md, report.Perpetuity)
	}
	if report.Funds != nil {
		mdFunds(md, report.Funds)
	}
	if report.Estate != nil {
		mdEstate(md, report.Estate)
	}

	if err := md.Build(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func mdInsurance(md *markdown.Markdown, r *domain.DIMEResult) {
	md.H2("Life Insurance Needs (DIME)")
	rows := make([][]string, 0, len(r.Breakdown.Components)+2)
	for _, comp := range r.Breakdown.Components {
		rows = append(rows, []string{comp.Label, FormatCurrency(comp.Amount)})
	}
	rows = append(rows, []string{"**Total need**", "**" + FormatCurrency(r.Breakdown.Total) + "**"})
	rows = append(rows, []string{"Current coverage", FormatCurrency(r.Gap.Current)})
	md.Table(markdown.TableSet{Header: []string{"Component", "Amount"}, Rows: rows})
	if r.Gap.OverCovered {
		md.PlainText("Coverage exceeds the computed need.")
	} else {
		md.PlainText(fmt.Sprintf("Coverage gap: %s. Estimated annual premium for the gap: %s (age bracket %d).",
			FormatCurrency(r.Gap.Gap), FormatCurrency(r.EstimatedAnnualPremium), r.PremiumAgeBracket))
	}
	md.PlainText("")
}

func mdGiving(md *markdown.Markdown, r *domain.GivingPlan) {
	md.H2("Charitable Giving Plan")
	rows := make([][]string, 0, len(r.Channels))
	for _, ch := range r.Channels {
		rows = append(rows, []string{ch.Allocation.Name, FormatCurrency(ch.Allocation.Allocated), FormatCurrency(ch.EstimatedSavings)})
	}
	md.Table(markdown.TableSet{Header: []string{"Channel", "Amount", "Tax Savings"}, Rows: rows})
	md.PlainText(fmt.Sprintf("Total tax savings %s; effective cost of giving %s.",
		FormatCurrency(r.TotalTaxSavings), FormatCurrency(r.EffectiveGiftCost)))
	md.PlainText("")
}

func mdContribution(md *markdown.Markdown, r *domain.ContributionPlan) {
	md.H2("Monthly Contribution Order")
	rows := make([][]string, 0, len(r.Allocations))
	for _, alloc := range r.Allocations {
		rows = append(rows, []string{alloc.Name, FormatCurrency(alloc.Allocated), alloc.Note})
	}
	md.Table(markdown.TableSet{Header: []string{"Bucket", "Monthly", "Why"}, Rows: rows})
	md.PlainText("")
}

func mdClaiming(md *markdown.Markdown, r *domain.ClaimingAnalysis) {
	md.H2("Social Security Claiming")
	rows := make([][]string, 0, len(r.Options))
	for _, opt := range r.Options {
		age := strconv.Itoa(opt.ClaimAge)
		if opt.ClaimAge == r.RecommendedAge {
			age += " (recommended)"
		}
		rows = append(rows, []string{age, FormatCurrency(opt.MonthlyBenefit), FormatPercentage(opt.AdjustmentPct)})
	}
	md.Table(markdown.TableSet{Header: []string{"Claim Age", "Monthly Benefit", "vs FRA"}, Rows: rows})
	md.PlainText("")
}

func mdStateTax(md *markdown.Markdown, r *domain.StateTaxComparison) {
	md.H2("State Tax Comparison")
	rows := make([][]string, 0, len(r.Results))
	for _, res := range r.Results {
		state := res.State
		if state == r.HomeState {
			state += " (home)"
		}
		rows = append(rows, []string{state, FormatCurrency(res.AnnualTax), FormatPercentage(res.EffectiveRate)})
	}
	md.Table(markdown.TableSet{Header: []string{"State", "Annual Tax", "Effective Rate"}, Rows: rows})
	md.PlainText("")
}

func mdProjection(md *markdown.Markdown, r *domain.ProjectionSummary) {
	md.H2("Retirement Projection")
	rows := make([][]string, 0, len(r.Years))
	for _, yr := range r.Years {
		rows = append(rows, []string{
			strconv.Itoa(yr.Year),
			strconv.Itoa(yr.Age),
			FormatCurrency(yr.GrossIncome),
			FormatCurrency(yr.NetIncome),
			FormatCurrency(yr.TotalBalance()),
		})
	}
	md.Table(markdown.TableSet{Header: []string{"Year", "Age", "Gross", "Net", "End Balance"}, Rows: rows})
	md.PlainText(fmt.Sprintf("Ending balance %s; lifetime taxes %s.",
		FormatCurrency(r.EndingBalance), FormatCurrency(r.LifetimeTaxes)))
	md.PlainText("")
}

func mdMonteCarlo(md *markdown.Markdown, r *domain.MonteCarloResults) {
	md.H2("Monte Carlo Simulation")
	md.PlainText(fmt.Sprintf("%d paths over %d years; success rate %s.",
		r.NumPaths, r.HorizonYears, FormatPercentage(r.SuccessRate)))
	md.Table(markdown.TableSet{
		Header: []string{"Percentile", "Ending Balance"},
		Rows: [][]string{
			{"P10", FormatCurrency(r.Percentiles.P10)},
			{"P25", FormatCurrency(r.Percentiles.P25)},
			{"P50", FormatCurrency(r.Percentiles.P50)},
			{"P75", FormatCurrency(r.Percentiles.P75)},
			{"P90", FormatCurrency(r.Percentiles.P90)},
		},
	})
	md.PlainText("")
}

func mdPerpetuity(md *markdown.Markdown, r *domain.PerpetuityAnalysis) {
	md.H2("Perpetual Withdrawal Analysis")
	status := "not perpetual"
	if r.Perpetual {
		status = "perpetual"
	}
	md.PlainText(fmt.Sprintf("Withdrawing %s (%s) from %s against a %s real return is %s.",
		FormatCurrency(r.AnnualWithdrawal), FormatPercentage(r.WithdrawalRate),
		FormatCurrency(r.Principal), FormatPercentage(r.RealReturn), status))
	if len(r.Decades) > 0 {
		rows := make([][]string, 0, len(r.Decades))
		for _, d := range r.Decades {
			rows = append(rows, []string{
				fmt.Sprintf("%d-%d", d.StartYear, d.EndYear),
				FormatCurrency(d.StartingBalance),
				FormatCurrency(d.EndingBalance),
			})
		}
		md.Table(markdown.TableSet{Header: []string{"Years", "Start", "End"}, Rows: rows})
	}
	md.PlainText("")
}

func mdFunds(md *markdown.Markdown, r *domain.FundComparison) {
	md.H2("Index vs Active Funds")
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Category", r.Category},
			{"Horizon", strconv.Itoa(r.Horizon) + " years"},
			{"Index ending balance", FormatCurrency(r.IndexEndingBalance)},
			{"Active ending balance", FormatCurrency(r.ActiveEndingBalance)},
			{"Cost drag", FormatCurrency(r.CostDrag)},
			{"Underperformance odds", FormatPercentage(r.UnderperformanceOdds)},
		},
	})
	md.PlainText("")
}

func mdEstate(md *markdown.Markdown, r *domain.EstateChecklist) {
	md.H2("Estate Planning Checklist")
	md.PlainText(fmt.Sprintf("Estimated estate %s against a federal exemption of %s.",
		FormatCurrency(r.EstateValue), FormatCurrency(r.FederalExemption)))
	items := make([]string, 0, len(r.Items))
	for _, item := range r.Items {
		box := "[ ]"
		if item.Done {
			box = "[x]"
		}
		items = append(items, fmt.Sprintf("%s %s (%s)", box, item.Title, item.Priority))
	}
	md.BulletList(items...)
	md.PlainText("")
}
