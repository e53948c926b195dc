package services

import (
	"time"

	"financafacil/internal/models"
)

// UserServicer defines the contract for the mock-local credential list.
type UserServicer interface {
	Register(username, password, fullName string) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
}

// AccountServicer defines the contract for account management.
type AccountServicer interface {
	CreateAccount(name string, accountType models.AccountType, balance float64, color string, closeDate *string) (*models.Account, error)
	GetAccounts() []models.Account
	GetAccountByID(id string) (*models.Account, error)
	UpdateAccount(id, name string, accountType models.AccountType, balance float64, color string, closeDate *string) (*models.Account, error)
	DeleteAccount(id string) error
}

// CategoryServicer defines the contract for category management.
type CategoryServicer interface {
	CreateCategory(name, color string, categoryType models.CategoryType, budget *float64) (*models.Category, error)
	GetCategories() []models.Category
	GetCategoryByID(id string) (*models.Category, error)
	UpdateCategory(id, name, color string, categoryType models.CategoryType, budget *float64) (*models.Category, error)
	DeleteCategory(id string) error
}

// TransactionServicer defines the contract for transaction management.
type TransactionServicer interface {
	CreateTransaction(description string, amount float64, date, categoryID string, transactionType models.TransactionType, accountID string) (*models.Transaction, error)
	GetTransactions(filter TransactionFilter) []models.Transaction
	GetTransactionByID(id string) (*models.Transaction, error)
	UpdateTransaction(id, description string, amount float64, date, categoryID string, transactionType models.TransactionType, accountID string) (*models.Transaction, error)
	DeleteTransaction(id string) error
}

// CalendarServicer defines the contract for calendar event management.
type CalendarServicer interface {
	CreateEvent(title, date string, amount float64, eventType models.EventType, recurrence models.Recurrence, description string) (*models.CalendarEvent, error)
	GetEvents() []models.CalendarEvent
	GetEventByID(id string) (*models.CalendarEvent, error)
	UpdateEvent(id, title, date string, amount float64, eventType models.EventType, recurrence models.Recurrence, description string) (*models.CalendarEvent, error)
	DeleteEvent(id string) error
	MarkPaid(id string, now time.Time) (*models.CalendarEvent, error)
}

// DashboardServicer exposes the derived views feeding the dashboard.
type DashboardServicer interface {
	Summary() Summary
	CategoryDistribution() []CategorySlice
	AccountSplit() []AccountFlow
	MonthlySeries(year int) []MonthPoint
	BudgetUsage() []BudgetUsage
	PendingItems(now time.Time) []models.PendingItem
}

// ReportServicer builds period-filtered reports.
type ReportServicer interface {
	Build(opts ReportOptions, now time.Time) (*Report, error)
}

// BackupServicer handles export/import/reset of the financial collections.
type BackupServicer interface {
	Export() Backup
	Import(raw []byte) error
	Reset() []string
}

// PreferencesServicer manages the ambient user settings.
type PreferencesServicer interface {
	Get() models.Preferences
	Update(prefs models.Preferences) models.Preferences
}
