package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category represents a transaction category used for budgeting and
// reporting. Persisted under the "categories" storage key.
type Category struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Color string       `json:"color"`
	Type  CategoryType `json:"type"`

	// Budget is a spending target for expense categories or an expected
	// amount for income categories.
	Budget *float64 `json:"budget,omitempty"`
}
