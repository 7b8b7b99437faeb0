package sequencing

import (
	"fmt"

	"github.com/awconrad/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

// NewStrategy builds the named strategy from a withdrawal policy.
// Supported names: standard, tax_efficient, custom.
func NewStrategy(policy domain.WithdrawalPolicy, bracketHeadroom decimal.Decimal) (Strategy, error) {
	switch policy.Strategy {
	case "", "standard":
		return NewStandardStrategy(), nil
	case "tax_efficient":
		return NewTaxEfficientStrategy(bracketHeadroom), nil
	case "custom":
		if len(policy.CustomOrder) == 0 {
			return nil, fmt.Errorf("custom withdrawal strategy requires a non-empty order")
		}
		order := make([]domain.AccountKind, 0, len(policy.CustomOrder))
		for _, name := range policy.CustomOrder {
			kind, err := domain.ParseAccountKind(name)
			if err != nil {
				return nil, fmt.Errorf("custom withdrawal order: %w", err)
			}
			order = append(order, kind)
		}
		return NewCustomStrategy(order), nil
	default:
		return nil, fmt.Errorf("unknown withdrawal strategy %q", policy.Strategy)
	}
}
