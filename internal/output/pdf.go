package output

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

const pdfContentWidth = 190.0

// PDFFormatter renders a printable summary report.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(report *PlanReport) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Arial", "B", 22)
	doc.CellFormat(pdfContentWidth, 14, "Financial Plan Analysis", "", 1, "C", false, 0, "")
	doc.SetFont("Arial", "I", 10)
	subtitle := fmt.Sprintf("Generated %s", time.Now().Format("2 January 2006"))
	if report.GeneratedFor != "" {
		subtitle = fmt.Sprintf("Prepared for %s - %s", report.GeneratedFor, subtitle)
	}
	doc.CellFormat(pdfContentWidth, 8, subtitle, "", 1, "C", false, 0, "")
	doc.Ln(6)

	if report.Insurance != nil {
		pdfSection(doc, "Life Insurance Needs (DIME)")
		for _, comp := range report.Insurance.Breakdown.Components {
			pdfRow(doc, comp.Label, FormatCurrency(comp.Amount))
		}
		pdfRow(doc, "Total need", FormatCurrency(report.Insurance.Breakdown.Total))
		pdfRow(doc, "Current coverage", FormatCurrency(report.Insurance.Gap.Current))
		pdfRow(doc, "Coverage gap", FormatCurrency(report.Insurance.Gap.Gap))
		if report.Insurance.RecommendedCoverage.Sign() > 0 {
			pdfRow(doc, "Estimated annual premium", FormatCurrency(report.Insurance.EstimatedAnnualPremium))
		}
	}

	if report.Claiming != nil {
		pdfSection(doc, "Social Security Claiming")
		for _, opt := range report.Claiming.Options {
			label := fmt.Sprintf("Claim at %d", opt.ClaimAge)
			if opt.ClaimAge == report.Claiming.RecommendedAge {
				label += " (recommended)"
			}
			pdfRow(doc, label, FormatCurrency(opt.MonthlyBenefit)+" / month")
		}
	}

	if report.StateTax != nil {
		pdfSection(doc, "State Tax Comparison")
		for _, res := range report.StateTax.Results {
			label := res.State
			if res.State == report.StateTax.HomeState {
				label += " (home)"
			}
			pdfRow(doc, label, FormatCurrency(res.AnnualTax))
		}
	}

	if report.Projection != nil {
		pdfSection(doc, "Retirement Projection")
		pdfRow(doc, "Years simulated", fmt.Sprintf("%d", len(report.Projection.Years)))
		pdfRow(doc, "Ending balance", FormatCurrency(report.Projection.EndingBalance))
		pdfRow(doc, "Lifetime taxes", FormatCurrency(report.Projection.LifetimeTaxes))
		if report.Projection.DepletionYear != 0 {
			pdfRow(doc, "Portfolio depleted", fmt.Sprintf("%d", report.Projection.DepletionYear))
		}
	}

	if report.MonteCarlo != nil {
		pdfSection(doc, "Monte Carlo Simulation")
		pdfRow(doc, "Success rate", FormatPercentage(report.MonteCarlo.SuccessRate))
		pdfRow(doc, "Median ending balance", FormatCurrency(report.MonteCarlo.MedianEndingBalance))
		pdfRow(doc, "10th percentile", FormatCurrency(report.MonteCarlo.Percentiles.P10))
		pdfRow(doc, "90th percentile", FormatCurrency(report.MonteCarlo.Percentiles.P90))
	}

	if report.Perpetuity != nil {
		pdfSection(doc, "Perpetual Withdrawal Analysis")
		status := "Not perpetual"
		if report.Perpetuity.Perpetual {
			status = "Perpetual"
		}
		pdfRow(doc, "Status", status)
		pdfRow(doc, "Withdrawal rate", FormatPercentage(report.Perpetuity.WithdrawalRate))
		pdfRow(doc, "Sustainable withdrawal", FormatCurrency(report.Perpetuity.SustainableWithdrawal))
	}

	if report.Estate != nil {
		pdfSection(doc, "Estate Planning Checklist")
		for _, item := range report.Estate.Items {
			status := "To do"
			if item.Done {
				status = "Done"
			}
			pdfRow(doc, item.Title, status)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func pdfSection(doc *fpdf.Fpdf, title string) {
	doc.Ln(4)
	doc.SetFont("Arial", "B", 13)
	doc.CellFormat(pdfContentWidth, 9, title, "B", 1, "L", false, 0, "")
	doc.SetFont("Arial", "", 10)
}

func pdfRow(doc *fpdf.Fpdf, label, value string) {
	doc.CellFormat(pdfContentWidth*0.6, 7, label, "", 0, "L", false, 0, "")
	doc.CellFormat(pdfContentWidth*0.4, 7, value, "", 1, "R", false, 0, "")
}
