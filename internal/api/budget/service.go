package budget

import (
	"math"

	"github.com/wanderplan/wanderplan/internal/types"
)

// allocation is the percentage split of a total budget across the five
// spending categories. Percentages always sum to 100.
type allocation struct {
	Accommodation int
	Food          int
	Transport     int
	Activities    int
	Miscellaneous int
}

var allocationByStyle = map[string]allocation{
	types.StyleBudget:   {Accommodation: 35, Food: 30, Transport: 15, Activities: 15, Miscellaneous: 5},
	types.StyleMidRange: {Accommodation: 40, Food: 25, Transport: 15, Activities: 15, Miscellaneous: 5},
	types.StyleLuxury:   {Accommodation: 45, Food: 20, Transport: 15, Activities: 15, Miscellaneous: 5},
}

var baseTips = []string{
	"Book accommodation in advance for better rates",
	"Use public transport instead of taxis where possible",
	"Look for free walking tours and museum days",
	"Set a daily spending limit and track it",
	"Keep an emergency reserve separate from the daily budget",
}

var lowBudgetTips = []string{
	"Consider hostels or guesthouses to stretch the accommodation budget",
	"Cook some meals yourself if your accommodation has a kitchen",
}

var highBudgetTips = []string{
	"Boutique hotels and fine dining are well within this budget",
	"Consider private guides or premium experiences for highlights",
}

// Calculate is the budget calculator tool: a pure function of its input.
// Destination is accepted for future extension but unused. Category totals
// are rounded independently, so their sum may drift from the input budget by
// a few currency units.
func Calculate(in types.BudgetPlanInput) (*types.BudgetPlan, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	alloc, ok := allocationByStyle[in.TravelStyle]
	if !ok {
		alloc = allocationByStyle[types.StyleMidRange]
	}

	dailyBudget := in.TotalBudget / float64(in.Duration)

	category := func(pct int) types.BudgetCategory {
		return types.BudgetCategory{
			Percentage: pct,
			Total:      int(math.Round(in.TotalBudget * float64(pct) / 100)),
			Daily:      int(math.Round(dailyBudget * float64(pct) / 100)),
		}
	}

	tips := make([]string, 0, len(baseTips)+2)
	tips = append(tips, baseTips...)
	switch {
	case dailyBudget < 50:
		tips = append(tips, lowBudgetTips...)
	case dailyBudget > 200:
		tips = append(tips, highBudgetTips...)
	}

	return &types.BudgetPlan{
		TotalBudget: in.TotalBudget,
		DailyBudget: dailyBudget,
		Breakdown: types.BudgetBreakdown{
			Accommodation: category(alloc.Accommodation),
			Food:          category(alloc.Food),
			Transport:     category(alloc.Transport),
			Activities:    category(alloc.Activities),
			Miscellaneous: category(alloc.Miscellaneous),
		},
		Tips: tips,
	}, nil
}
