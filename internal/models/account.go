package models

// AccountType represents the type of account
type AccountType string

const (
	AccountTypeBank   AccountType = "bank"
	AccountTypeCash   AccountType = "cash"
	AccountTypeCredit AccountType = "credit"
)

// Account represents a balance-holding entity. Accounts are persisted as a
// JSON array under the "accounts" storage key; field names match the stored
// format exactly so existing backups stay readable.
type Account struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Balance float64     `json:"balance"`
	Type    AccountType `json:"type"`
	Color   string      `json:"color"`

	// CloseDate is the billing-cycle close date, meaningful only for
	// credit accounts.
	CloseDate *string `json:"closeDate,omitempty"`
}
