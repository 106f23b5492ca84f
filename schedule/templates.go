package schedule

import "github.com/shopspring/decimal"

// DueTrigger is the event or term a milestone falls due on. Closed set.
type DueTrigger string

const (
	DueAtApproval   DueTrigger = "at-approval"
	DueBeforeStart  DueTrigger = "before-start"
	DueAtPickup     DueTrigger = "at-pickup"
	DueNet15        DueTrigger = "net-15"
	DueNet30        DueTrigger = "net-30"
	DueNet45        DueTrigger = "net-45"
	DueNet60        DueTrigger = "net-60"
	DueOnCompletion DueTrigger = "on-completion"
)

// TemplateMilestone is one skeleton row of a schedule template.
type TemplateMilestone struct {
	Name  string          `json:"name"`
	Type  AmountType      `json:"type"`
	Value decimal.Decimal `json:"value"`
	Due   DueTrigger      `json:"due"`
}

// Template is a named, ordered milestone layout. Applying one replaces
// the schedule's milestone set wholesale.
type Template struct {
	Name       string              `json:"name"`
	Milestones []TemplateMilestone `json:"milestones"`
}

var templates = []Template{
	{
		Name: "Default",
		Milestones: []TemplateMilestone{
			{Name: "Deposit", Type: Flat, Value: decimal.NewFromInt(250), Due: DueAtApproval},
			{Name: "50% To Start", Type: Percentage, Value: decimal.NewFromInt(50), Due: DueBeforeStart},
			{Name: "Balance", Type: Percentage, Value: decimal.Zero, Due: DueAtPickup},
		},
	},
	{
		Name: "50/50 Split",
		Milestones: []TemplateMilestone{
			{Name: "50% Deposit", Type: Percentage, Value: decimal.NewFromInt(50), Due: DueAtApproval},
			{Name: "50% On Pickup", Type: Percentage, Value: decimal.NewFromInt(50), Due: DueAtPickup},
		},
	},
	{
		Name: "Net 30",
		Milestones: []TemplateMilestone{
			{Name: "Invoice Net 30", Type: Percentage, Value: decimal.NewFromInt(100), Due: DueNet30},
		},
	},
	{
		Name: "100% Upfront",
		Milestones: []TemplateMilestone{
			{Name: "Paid In Full", Type: Percentage, Value: decimal.NewFromInt(100), Due: DueAtApproval},
		},
	},
	{
		Name: "COD",
		Milestones: []TemplateMilestone{
			{Name: "Due On Pickup", Type: Percentage, Value: decimal.NewFromInt(100), Due: DueAtPickup},
		},
	},
}

// Templates returns the built-in template library.
func Templates() []Template {
	return templates
}

// TemplateByName looks a template up by its display name.
func TemplateByName(name string) (Template, bool) {
	for _, t := range templates {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}
