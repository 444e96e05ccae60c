package models

// Budget tier categories, cheapest first.
const (
	BudgetCategoryCheap    = "cheap"
	BudgetCategoryMidRange = "mid-range"
	BudgetCategorySplurge  = "splurge"
)

// ItemizedBudget breaks a package's estimate into its four components.
// TotalCostEstimate on the package is always the exact sum of these.
type ItemizedBudget struct {
	Dining         float64 `json:"dining"`
	Activity       float64 `json:"activity"`
	Transportation float64 `json:"transportation"`
	TaxesAndTips   float64 `json:"taxes_and_tips"`
}

// Sum returns the total of all components.
func (b ItemizedBudget) Sum() float64 {
	return b.Dining + b.Activity + b.Transportation + b.TaxesAndTips
}

// DatePackage is one priced date option: exactly one dining candidate plus one
// activity candidate, a cost breakdown, and optional suggested times.
// Never mutated after construction.
type DatePackage struct {
	ID                string          `json:"package_id"`
	Name              string          `json:"name"`
	BudgetCategory    string          `json:"budget_category"`
	TotalCostEstimate float64         `json:"total_cost_estimate"`
	ItemizedBudget    ItemizedBudget  `json:"itemized_budget"`
	Items             []Candidate     `json:"items"` // dining first, then activity
	SuggestedTimes    []CandidateSlot `json:"suggested_times,omitempty"`
}
