package models

// PendingItemType classifies a pending item for display
type PendingItemType string

const (
	PendingItemTypeBill   PendingItemType = "bill"
	PendingItemTypeIncome PendingItemType = "income"
	PendingItemTypeGoal   PendingItemType = "goal"
)

// PendingItem is the derived payment status of a calendar event as of
// "now". It is computed 1:1 from the event collection on every read and
// never persisted.
type PendingItem struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Amount    float64         `json:"amount"`
	DueDate   string          `json:"dueDate"`
	Type      PendingItemType `json:"type"`
	IsPaid    bool            `json:"isPaid"`
	IsOverdue bool            `json:"isOverdue"`
}
