package reference

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// StateRules captures the simplified state income tax treatment of a
// retirement income profile: a flat effective rate plus exemption flags for
// Social Security, pension, and retirement-account withdrawals.
type StateRules struct {
	Name                string
	Rate                decimal.Decimal
	TaxesSocialSecurity bool
	TaxesPension        bool
	TaxesWithdrawals    bool
	Note                string
}

// stateTable is keyed by two-letter postal code.
var stateTable = map[string]StateRules{
	"AZ": {Name: "Arizona", Rate: decimal.NewFromFloat(0.025), TaxesPension: true, TaxesWithdrawals: true},
	"CA": {Name: "California", Rate: decimal.NewFromFloat(0.093), TaxesPension: true, TaxesWithdrawals: true, Note: "No SS tax but all other retirement income taxed at ordinary rates"},
	"CO": {Name: "Colorado", Rate: decimal.NewFromFloat(0.044), TaxesPension: true, TaxesWithdrawals: true, Note: "Retirement income deduction up to $24,000 at 65+"},
	"FL": {Name: "Florida", Rate: decimal.Zero, Note: "No state income tax"},
	"GA": {Name: "Georgia", Rate: decimal.NewFromFloat(0.0539), TaxesPension: true, TaxesWithdrawals: true, Note: "Retirement exclusion up to $65,000 at 65+"},
	"IL": {Name: "Illinois", Rate: decimal.NewFromFloat(0.0495), Note: "Retirement income fully exempt"},
	"NC": {Name: "North Carolina", Rate: decimal.NewFromFloat(0.045), TaxesPension: true, TaxesWithdrawals: true},
	"NV": {Name: "Nevada", Rate: decimal.Zero, Note: "No state income tax"},
	"NY": {Name: "New York", Rate: decimal.NewFromFloat(0.0625), TaxesPension: true, TaxesWithdrawals: true, Note: "First $20,000 of pension/IRA income exempt at 59.5+"},
	"PA": {Name: "Pennsylvania", Rate: decimal.NewFromFloat(0.0307), Note: "Flat tax; retirement income fully exempt"},
	"SC": {Name: "South Carolina", Rate: decimal.NewFromFloat(0.062), TaxesPension: true, TaxesWithdrawals: true, Note: "Retirement deduction up to $10,000; SS exempt"},
	"TN": {Name: "Tennessee", Rate: decimal.Zero, Note: "No state income tax"},
	"TX": {Name: "Texas", Rate: decimal.Zero, Note: "No state income tax"},
	"VA": {Name: "Virginia", Rate: decimal.NewFromFloat(0.0575), TaxesPension: true, TaxesWithdrawals: true, Note: "Age deduction up to $12,000 at 65+"},
	"WA": {Name: "Washington", Rate: decimal.Zero, Note: "No state income tax (capital gains excise above $270K)"},
}

// StateRulesFor returns the rules for a postal code.
func StateRulesFor(code string) (StateRules, error) {
	rules, ok := stateTable[code]
	if !ok {
		return StateRules{}, fmt.Errorf("unknown state code %q", code)
	}
	return rules, nil
}

// StateCodes returns all known postal codes in sorted order.
func StateCodes() []string {
	codes := make([]string, 0, len(stateTable))
	for code := range stateTable {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// KnownState reports whether a postal code is in the table.
func KnownState(code string) bool {
	_, ok := stateTable[code]
	return ok
}
