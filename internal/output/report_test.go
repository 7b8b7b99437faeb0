package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/awconrad/finplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *PlanReport {
	return &PlanReport{
		GeneratedFor: "Alice",
		BaseYear:     2025,
		Insurance: &domain.DIMEResult{
			Breakdown: domain.Breakdown{
				Components: []domain.BreakdownComponent{
					{Label: "Debt", Amount: decimal.NewFromInt(20000)},
					{Label: "Income replacement", Amount: decimal.NewFromInt(1000000)},
				},
				Total: decimal.NewFromInt(1020000),
			},
			Gap: domain.CoverageGap{
				Needed:  decimal.NewFromInt(1020000),
				Current: decimal.NewFromInt(200000),
				Gap:     decimal.NewFromInt(820000),
			},
			RecommendedCoverage:    decimal.NewFromInt(820000),
			PremiumAgeBracket:      40,
			EstimatedAnnualPremium: decimal.NewFromFloat(254.20),
		},
	}
}

func TestFormatterFunc(t *testing.T) {
	f := FormatterFunc{
		FormatterName: "stub",
		FormatFn: func(report *PlanReport) ([]byte, error) {
			return []byte(report.GeneratedFor), nil
		},
	}
	assert.Equal(t, "stub", f.Name())

	out, err := f.Format(sampleReport())
	require.NoError(t, err)
	assert.Equal(t, "Alice", string(out))
}

func TestWriteFormatted(t *testing.T) {
	t.Run("Writes formatter output", func(t *testing.T) {
		var buf bytes.Buffer
		f := FormatterFunc{
			FormatterName: "stub",
			FormatFn: func(*PlanReport) ([]byte, error) {
				return []byte("hello"), nil
			},
		}
		require.NoError(t, WriteFormatted(&buf, f, sampleReport()))
		assert.Equal(t, "hello", buf.String())
	})

	t.Run("Wraps formatter errors with the name", func(t *testing.T) {
		sentinel := errors.New("boom")
		f := FormatterFunc{
			FormatterName: "exploding",
			FormatFn: func(*PlanReport) ([]byte, error) {
				return nil, sentinel
			},
		}
		err := WriteFormatted(&bytes.Buffer{}, f, sampleReport())
		require.Error(t, err)
		assert.True(t, errors.Is(err, sentinel), "Should wrap the formatter's error")
		assert.Contains(t, err.Error(), "exploding", "Should name the failing formatter")
	})
}

func TestGetFormatter(t *testing.T) {
	for _, name := range FormatNames() {
		f, err := GetFormatter(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.Name())
	}

	_, err := GetFormatter("xml")
	assert.Error(t, err, "Should error for unsupported format")
}

func TestFormatNames(t *testing.T) {
	names := FormatNames()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Equal(t, []string{"console", "csv", "json", "markdown", "pdf"}, names)
}

func TestConsoleFormatter(t *testing.T) {
	out, err := (ConsoleFormatter{}).Format(sampleReport())
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "FINANCIAL PLAN ANALYSIS", "Should have header")
	assert.Contains(t, text, "Alice")
	assert.Contains(t, text, "Income replacement")
	assert.Contains(t, text, "$820000.00", "Should show the coverage gap")
	assert.Contains(t, text, "$254.20", "Should show the premium estimate")
}

func TestJSONFormatter(t *testing.T) {
	out, err := (JSONFormatter{}).Format(sampleReport())
	require.NoError(t, err)

	var decoded PlanReport
	require.NoError(t, json.Unmarshal(out, &decoded), "Output should be valid JSON")
	assert.Equal(t, "Alice", decoded.GeneratedFor)
	require.NotNil(t, decoded.Insurance)
	assert.True(t, decoded.Insurance.Gap.Gap.Equal(decimal.NewFromInt(820000)))
	assert.Nil(t, decoded.Projection, "Absent sections should stay absent")
}

func TestCSVFormatter(t *testing.T) {
	t.Run("Requires a projection", func(t *testing.T) {
		_, err := (CSVFormatter{}).Format(sampleReport())
		assert.Error(t, err, "Should error without a projection section")
	})

	t.Run("Emits one row per year", func(t *testing.T) {
		report := sampleReport()
		report.Projection = &domain.ProjectionSummary{
			Years: []domain.AnnualProjection{
				{Year: 2025, Age: 65, BalanceTaxable: decimal.NewFromInt(100000)},
				{Year: 2026, Age: 66, BalanceTaxable: decimal.NewFromInt(95000)},
			},
		}
		out, err := (CSVFormatter{}).Format(report)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(out)), "\n")
		require.Len(t, lines, 3, "Should have header plus one row per year")
		assert.True(t, strings.HasPrefix(lines[0], "Year,"))
		assert.True(t, strings.HasPrefix(lines[1], "2025,"))
		assert.True(t, strings.HasPrefix(lines[2], "2026,"))
	})
}

func TestMarkdownFormatter(t *testing.T) {
	out, err := (MarkdownFormatter{}).Format(sampleReport())
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "# Financial Plan Analysis")
	assert.Contains(t, text, "Alice")
}

func TestPDFFormatter(t *testing.T) {
	out, err := (PDFFormatter{}).Format(sampleReport())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "Output should be a PDF document")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "4.25%", FormatPercentage(decimal.NewFromFloat(0.0425)))
}
