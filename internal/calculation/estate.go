package calculation

import (
	"github.com/awconrad/finplan/internal/domain"
	"github.com/awconrad/finplan/internal/reference"
	"github.com/shopspring/decimal"
)

// EstatePlanner derives a personalized checklist from the household's
// estate facts: items already handled are marked done, items that do not
// apply are dropped, and estate-tax planning escalates when the estimated
// estate exceeds the federal exemption.
type EstatePlanner struct{}

func NewEstatePlanner() *EstatePlanner { return &EstatePlanner{} }

// BuildChecklist walks the templates against the facts.
func (ep *EstatePlanner) BuildChecklist(facts domain.EstateFacts) domain.EstateChecklist {
	aboveExemption := facts.EstimatedEstateValue.GreaterThan(reference.FederalEstateExemption2025)

	checklist := domain.EstateChecklist{
		EstateValue:      facts.EstimatedEstateValue,
		FederalExemption: reference.FederalEstateExemption2025,
		AboveExemption:   aboveExemption,
	}

	for _, tmpl := range reference.EstateChecklistTemplates {
		item := domain.ChecklistItem{
			Title:    tmpl.Title,
			Priority: tmpl.Priority,
			Detail:   tmpl.Detail,
		}
		switch tmpl.Key {
		case "will":
			item.Done = facts.HasWill
		case "beneficiaries":
			item.Done = facts.BeneficiariesCurrent
		case "poa":
			item.Done = facts.HasPowerOfAttorney
		case "healthcare":
			item.Done = facts.HasHealthcareProxy
		case "guardian":
			if !facts.MinorChildren {
				continue
			}
			// Guardianship rides on the will.
			item.Done = facts.HasWill
		case "trust":
			item.Done = facts.HasTrust
			if aboveExemption {
				item.Priority = "essential"
			}
		case "estate_tax":
			if !aboveExemption {
				continue
			}
			item.Priority = "essential"
			item.Detail = tmpl.Detail + " This estate exceeds the exemption by " +
				facts.EstimatedEstateValue.Sub(reference.FederalEstateExemption2025).StringFixed(0) + "."
		}
		checklist.Items = append(checklist.Items, item)
	}

	for _, item := range checklist.Items {
		if item.Done {
			checklist.CompletedCount++
		}
	}
	return checklist
}

// TaxableEstate returns the amount exposed to federal estate tax, zero
// when under the exemption.
func (ep *EstatePlanner) TaxableEstate(estateValue decimal.Decimal) decimal.Decimal {
	excess := estateValue.Sub(reference.FederalEstateExemption2025)
	if excess.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return excess
}
