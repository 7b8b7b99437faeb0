package calculation

import (
	"fmt"

	"github.com/awconrad/finplan/internal/domain"
	"github.com/awconrad/finplan/internal/reference"
	"github.com/shopspring/decimal"
)

// FundComparator projects the same gross return through index-fund and
// active-fund expense ratios and pairs the cost drag with the scorecard
// odds that an active fund underperforms its benchmark over the horizon.
type FundComparator struct{}

func NewFundComparator() *FundComparator { return &FundComparator{} }

// Compare grows an initial investment over the horizon at the gross return
// net of each expense ratio. Category must exist in the scorecard table.
func (fc *FundComparator) Compare(initial decimal.Decimal, horizonYears int, grossReturn decimal.Decimal, category string) (*domain.FundComparison, error) {
	if horizonYears <= 0 {
		return nil, fmt.Errorf("fund comparison requires a positive horizon, got %d", horizonYears)
	}
	record, err := reference.SPIVAFor(category)
	if err != nil {
		return nil, err
	}

	one := decimal.NewFromInt(1)
	indexGrowth := one.Add(grossReturn).Sub(reference.IndexExpenseRatio)
	activeGrowth := one.Add(grossReturn).Sub(reference.ActiveExpenseRatio)

	index := initial
	active := initial
	for y := 0; y < horizonYears; y++ {
		index = index.Mul(indexGrowth)
		active = active.Mul(activeGrowth)
	}

	return &domain.FundComparison{
		Horizon:              horizonYears,
		Category:             record.Category,
		IndexEndingBalance:   index,
		ActiveEndingBalance:  active,
		CostDrag:             index.Sub(active),
		UnderperformanceOdds: record.UnderperformanceOdds(horizonYears),
	}, nil
}
