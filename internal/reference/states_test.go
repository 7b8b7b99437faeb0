package reference

import (
	"sort"
	"testing"

	"github.com/shopspring/decimal"
)

func TestStateRulesFor(t *testing.T) {
	t.Run("Pennsylvania exempts retirement income", func(t *testing.T) {
		rules, err := StateRulesFor("PA")
		if err != nil {
			t.Fatalf("StateRulesFor(PA) error: %v", err)
		}
		if !rules.Rate.Equal(decimal.NewFromFloat(0.0307)) {
			t.Errorf("PA rate = %s, want 0.0307", rules.Rate)
		}
		if rules.TaxesSocialSecurity || rules.TaxesPension || rules.TaxesWithdrawals {
			t.Error("PA should exempt all retirement income")
		}
	})

	t.Run("Florida has no income tax", func(t *testing.T) {
		rules, err := StateRulesFor("FL")
		if err != nil {
			t.Fatalf("StateRulesFor(FL) error: %v", err)
		}
		if !rules.Rate.IsZero() {
			t.Errorf("FL rate = %s, want 0", rules.Rate)
		}
	})

	t.Run("California taxes everything but Social Security", func(t *testing.T) {
		rules, err := StateRulesFor("CA")
		if err != nil {
			t.Fatalf("StateRulesFor(CA) error: %v", err)
		}
		if rules.TaxesSocialSecurity {
			t.Error("no state in the table taxes SS at the CA rate")
		}
		if !rules.TaxesPension || !rules.TaxesWithdrawals {
			t.Error("CA should tax pension and withdrawal income")
		}
	})

	t.Run("Unknown code rejected", func(t *testing.T) {
		if _, err := StateRulesFor("ZZ"); err == nil {
			t.Error("expected error for unknown state code")
		}
	})
}

func TestStateCodes(t *testing.T) {
	codes := StateCodes()
	if len(codes) != 15 {
		t.Fatalf("got %d codes, want 15", len(codes))
	}
	if !sort.StringsAreSorted(codes) {
		t.Errorf("codes not sorted: %v", codes)
	}
	for _, code := range codes {
		if !KnownState(code) {
			t.Errorf("KnownState(%s) = false for a listed code", code)
		}
	}
}
