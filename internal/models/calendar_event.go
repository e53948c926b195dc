package models

// EventType represents the type of calendar event
type EventType string

const (
	EventTypeIncome  EventType = "income"
	EventTypeExpense EventType = "expense"
	EventTypeInvoice EventType = "invoice"
	EventTypeOther   EventType = "other"
)

// Recurrence represents how often a calendar event repeats
type Recurrence string

const (
	RecurrenceOnce    Recurrence = "once"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// CalendarEvent represents a scheduled, possibly recurring, expected money
// movement, distinct from an actual recorded transaction. Date is the
// anchor (first) occurrence in yyyy-MM-dd form; recurring semantics are
// computed on read and never materialized into extra stored rows.
// Persisted under the "calendarEvents" storage key.
type CalendarEvent struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Date        string     `json:"date"`
	Amount      float64    `json:"amount"`
	Type        EventType  `json:"type"`
	Recurrence  Recurrence `json:"recurrence"`
	Description string     `json:"description,omitempty"`

	// PaidDates holds the dates (yyyy-MM-dd) on which the user marked the
	// event as paid. An entry marks the cycle it falls in as paid.
	PaidDates []string `json:"paidDates,omitempty"`
}
