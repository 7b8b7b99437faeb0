package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// CSVFormatter emits the year-by-year projection as one row per year. The
// other report sections are summary-shaped and do not fit a grid; the
// console and json formats carry them.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *PlanReport) ([]byte, error) {
	if report.Projection == nil {
		return nil, fmt.Errorf("csv format requires a projection")
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Year", "Age", "Salary", "SocialSecurity", "RMD",
		"WithdrawalTaxable", "WithdrawalTraditional", "WithdrawalRoth",
		"FederalTax", "CapitalGainsTax", "StateTax", "FICATax",
		"MedicarePremium", "IRMAASurcharge",
		"SpendingTarget", "Shortfall", "NetIncome",
		"BalanceTaxable", "BalanceTraditional", "BalanceRoth", "TotalBalance",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, yr := range report.Projection.Years {
		row := []string{
			strconv.Itoa(yr.Year),
			strconv.Itoa(yr.Age),
			yr.Salary.StringFixed(2),
			yr.SSBenefit.StringFixed(2),
			yr.RMD.StringFixed(2),
			yr.WithdrawalTaxable.StringFixed(2),
			yr.WithdrawalTrad.StringFixed(2),
			yr.WithdrawalRoth.StringFixed(2),
			yr.FederalTax.StringFixed(2),
			yr.CapitalGainsTax.StringFixed(2),
			yr.StateTax.StringFixed(2),
			yr.FICATax.StringFixed(2),
			yr.MedicarePremium.StringFixed(2),
			yr.IRMAASurcharge.StringFixed(2),
			yr.SpendingTarget.StringFixed(2),
			yr.Shortfall.StringFixed(2),
			yr.NetIncome.StringFixed(2),
			yr.BalanceTaxable.StringFixed(2),
			yr.BalanceTraditional.StringFixed(2),
			yr.BalanceRoth.StringFixed(2),
			yr.TotalBalance().StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
