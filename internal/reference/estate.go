package reference

// ChecklistTemplate is one estate-planning reference item. Applicability is
// decided by the calculator from household facts; the template carries the
// static text and priority.
type ChecklistTemplate struct {
	Key      string
	Title    string
	Priority string
	Detail   string
}

// EstateChecklistTemplates are the base action items, in recommended order.
var EstateChecklistTemplates = []ChecklistTemplate{
	{
		Key:      "will",
		Title:    "Execute a will",
		Priority: "essential",
		Detail:   "Without a will, state intestacy law decides who inherits and who administers the estate.",
	},
	{
		Key:      "beneficiaries",
		Title:    "Review beneficiary designations",
		Priority: "essential",
		Detail:   "Retirement accounts and life insurance pass by designation, overriding the will. Re-check after marriage, divorce, or a death.",
	},
	{
		Key:      "poa",
		Title:    "Sign a durable financial power of attorney",
		Priority: "essential",
		Detail:   "Names who manages finances during incapacity; avoids a court-appointed conservator.",
	},
	{
		Key:      "healthcare",
		Title:    "Sign a healthcare directive and proxy",
		Priority: "essential",
		Detail:   "Covers medical decisions and end-of-life wishes when you cannot speak for yourself.",
	},
	{
		Key:      "guardian",
		Title:    "Name a guardian for minor children",
		Priority: "essential",
		Detail:   "Done in the will; without it a court chooses.",
	},
	{
		Key:      "trust",
		Title:    "Consider a revocable living trust",
		Priority: "recommended",
		Detail:   "Keeps assets out of probate and provides continuity during incapacity; most useful for larger or multi-state estates.",
	},
	{
		Key:      "estate_tax",
		Title:    "Plan for federal estate tax exposure",
		Priority: "consider",
		Detail:   "Estates above the federal exemption owe up to 40%; lifetime gifting and irrevocable trusts can reduce the taxable estate.",
	},
	{
		Key:      "letter",
		Title:    "Write a letter of instruction",
		Priority: "recommended",
		Detail:   "Account inventory, passwords location, and funeral wishes; not legally binding but spares the executor guesswork.",
	},
}
