package models

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single recorded money movement against an
// account and category. Persisted under the "transactions" storage key.
// Amount is always non-negative; the sign is implied by Type. Date is a
// calendar date in yyyy-MM-dd form with no time component.
//
// Type should agree with the type of the referenced category, but the
// system does not enforce that invariant; it is advisory.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
	AccountID   string          `json:"accountId"`
}
