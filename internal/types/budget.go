package types

import "fmt"

// BudgetCategory is one slice of the budget breakdown.
type BudgetCategory struct {
	Percentage int `json:"percentage"`
	Total      int `json:"total"`
	Daily      int `json:"daily"`
}

// BudgetBreakdown holds the five spending categories. Totals are rounded
// independently per category, so they may drift from the input budget by a
// few currency units.
type BudgetBreakdown struct {
	Accommodation BudgetCategory `json:"accommodation"`
	Food          BudgetCategory `json:"food"`
	Transport     BudgetCategory `json:"transport"`
	Activities    BudgetCategory `json:"activities"`
	Miscellaneous BudgetCategory `json:"miscellaneous"`
}

// BudgetPlan is the budget calculator tool output.
type BudgetPlan struct {
	TotalBudget float64         `json:"totalBudget"`
	DailyBudget float64         `json:"dailyBudget"`
	Breakdown   BudgetBreakdown `json:"breakdown"`
	Tips        []string        `json:"tips"`
}

// BudgetPlanInput is the schema-validated input record for the budget
// calculator tool endpoint. Destination is accepted but unused.
type BudgetPlanInput struct {
	TotalBudget float64 `json:"totalBudget"`
	Duration    int     `json:"duration"`
	Travelers   int     `json:"travelers"`
	TravelStyle string  `json:"travelStyle"`
	Destination string  `json:"destination"`
}

func (in BudgetPlanInput) Validate() error {
	if in.TotalBudget <= 0 {
		return fmt.Errorf("totalBudget must be positive")
	}
	if in.Duration <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if in.Travelers <= 0 {
		return fmt.Errorf("travelers must be a positive integer")
	}
	return nil
}
