package reference

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SPIVARecord holds the share of active funds in a category that
// underperformed their benchmark over each horizon, per the S&P SPIVA
// year-end 2024 US scorecard.
type SPIVARecord struct {
	Category  string
	Benchmark string
	Under5Y   decimal.Decimal
	Under10Y  decimal.Decimal
	Under15Y  decimal.Decimal
}

var spivaTable = map[string]SPIVARecord{
	"large_cap": {
		Category:  "US Large-Cap",
		Benchmark: "S&P 500",
		Under5Y:   decimal.NewFromFloat(0.77),
		Under10Y:  decimal.NewFromFloat(0.84),
		Under15Y:  decimal.NewFromFloat(0.89),
	},
	"mid_cap": {
		Category:  "US Mid-Cap",
		Benchmark: "S&P MidCap 400",
		Under5Y:   decimal.NewFromFloat(0.68),
		Under10Y:  decimal.NewFromFloat(0.79),
		Under15Y:  decimal.NewFromFloat(0.88),
	},
	"small_cap": {
		Category:  "US Small-Cap",
		Benchmark: "S&P SmallCap 600",
		Under5Y:   decimal.NewFromFloat(0.71),
		Under10Y:  decimal.NewFromFloat(0.80),
		Under15Y:  decimal.NewFromFloat(0.86),
	},
	"international": {
		Category:  "International",
		Benchmark: "S&P International 700",
		Under5Y:   decimal.NewFromFloat(0.74),
		Under10Y:  decimal.NewFromFloat(0.82),
		Under15Y:  decimal.NewFromFloat(0.92),
	},
	"bond": {
		Category:  "General Investment-Grade Bond",
		Benchmark: "iBoxx Liquid Investment Grade",
		Under5Y:   decimal.NewFromFloat(0.62),
		Under10Y:  decimal.NewFromFloat(0.74),
		Under15Y:  decimal.NewFromFloat(0.83),
	},
}

// SPIVAFor returns the scorecard record for a category key.
func SPIVAFor(category string) (SPIVARecord, error) {
	rec, ok := spivaTable[category]
	if !ok {
		return SPIVARecord{}, fmt.Errorf("unknown fund category %q", category)
	}
	return rec, nil
}

// UnderperformanceOdds picks the closest reported horizon (5, 10, or 15
// years) for the record.
func (r SPIVARecord) UnderperformanceOdds(horizonYears int) decimal.Decimal {
	switch {
	case horizonYears <= 7:
		return r.Under5Y
	case horizonYears <= 12:
		return r.Under10Y
	default:
		return r.Under15Y
	}
}

// Typical expense ratios used by the cost-drag comparison.
var (
	IndexExpenseRatio  = decimal.NewFromFloat(0.0005) // 5 bps
	ActiveExpenseRatio = decimal.NewFromFloat(0.0066) // 66 bps category average
)
