package models

import "time"

// Categories is the closed set of spending categories. The extraction and
// insights prompts instruct the model to use only these values.
var Categories = []string{
	"Food", "Grocery", "Transport", "Fuel", "Travel",
	"Utilities", "Rent", "Health", "Pharmacy", "Education",
	"Entertainment", "Shopping", "Electronics", "Home", "Services",
	"Subscriptions", "Fees", "Taxes", "Office", "Misc",
}

var categorySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Categories))
	for _, c := range Categories {
		set[c] = struct{}{}
	}
	return set
}()

// ValidCategory reports whether c is one of the fixed spending categories.
func ValidCategory(c string) bool {
	_, ok := categorySet[c]
	return ok
}

// ExtractedExpense is one line item as returned by the extraction model.
// The expence_name key matches the model output contract and the expenses
// table column, historical spelling included.
type ExtractedExpense struct {
	BillNo   *string `json:"bill_no"`
	Name     string  `json:"expence_name"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Mode     string  `json:"mode"`
}

// Expense is a stored expense row.
type Expense struct {
	ID          string    `json:"id,omitempty"`
	UserID      string    `json:"user_id"`
	BillNo      *string   `json:"bill_no"`
	Name        string    `json:"expence_name"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Mode        string    `json:"mode"`
	CreatedDate time.Time `json:"created_date"`
}

type CategorySummary struct {
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

// ExpenseSummary is the client-side fold over a fetched expense window.
type ExpenseSummary struct {
	Total      float64                    `json:"total"`
	Count      int                        `json:"count"`
	Categories map[string]CategorySummary `json:"categories"`
	PeriodDays int                        `json:"period_days"`
}
