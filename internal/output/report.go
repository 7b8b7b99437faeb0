// Package output renders plan reports in pluggable formats: console, csv,
// json, markdown, and pdf.
package output

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/awconrad/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

// PlanReport aggregates whatever results a run produced. Formatters render
// only the sections that are present.
type PlanReport struct {
	GeneratedFor string                     `json:"generatedFor,omitempty"`
	BaseYear     int                        `json:"baseYear,omitempty"`
	Insurance    *domain.DIMEResult         `json:"insurance,omitempty"`
	Giving       *domain.GivingPlan         `json:"giving,omitempty"`
	Contribution *domain.ContributionPlan   `json:"contribution,omitempty"`
	Claiming     *domain.ClaimingAnalysis   `json:"claiming,omitempty"`
	StateTax     *domain.StateTaxComparison `json:"stateTax,omitempty"`
	Projection   *domain.ProjectionSummary  `json:"projection,omitempty"`
	MonteCarlo   *domain.MonteCarloResults  `json:"monteCarlo,omitempty"`
	Perpetuity   *domain.PerpetuityAnalysis `json:"perpetuity,omitempty"`
	Funds        *domain.FundComparison     `json:"funds,omitempty"`
	Estate       *domain.EstateChecklist    `json:"estate,omitempty"`
}

// Formatter renders a report to bytes.
type Formatter interface {
	Name() string
	Format(report *PlanReport) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc struct {
	FormatterName string
	FormatFn      func(report *PlanReport) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.FormatterName }

func (f FormatterFunc) Format(report *PlanReport) ([]byte, error) {
	return f.FormatFn(report)
}

// WriteFormatted renders the report with the formatter and writes it to w.
func WriteFormatted(w io.Writer, formatter Formatter, report *PlanReport) error {
	data, err := formatter.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter failed: %w", formatter.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

var formatters = map[string]Formatter{
	"console":  ConsoleFormatter{},
	"csv":      CSVFormatter{},
	"json":     JSONFormatter{},
	"markdown": MarkdownFormatter{},
	"pdf":      PDFFormatter{},
}

// GetFormatter looks up a formatter by name.
func GetFormatter(name string) (Formatter, error) {
	f, ok := formatters[name]
	if !ok {
		return nil, fmt.Errorf("unsupported format %q (supported: %v)", name, FormatNames())
	}
	return f, nil
}

// FormatNames lists the registered formats, sorted.
func FormatNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GenerateReport formats the report and writes it to stdout.
func GenerateReport(report *PlanReport, format string) error {
	f, err := GetFormatter(format)
	if err != nil {
		return err
	}
	return WriteFormatted(os.Stdout, f, report)
}

// FormatCurrency formats a decimal as currency.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercentage formats a fractional rate as a percentage.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
