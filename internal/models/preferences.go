package models

// Preference storage keys. Each preference is persisted as its own slot,
// independent of the financial collections, so a financial-data reset
// leaves them untouched.
const (
	KeyAccounts       = "accounts"
	KeyCategories     = "categories"
	KeyTransactions   = "transactions"
	KeyCalendarEvents = "calendarEvents"
	KeyDarkMode       = "darkMode"
	KeyCurrency       = "currency"
	KeyLanguage       = "language"
	KeyEmailReports   = "emailReports"
	KeyUsers          = "users"
)

// CollectionKeys are the four financial collections, in export order.
var CollectionKeys = []string{KeyAccounts, KeyCategories, KeyTransactions, KeyCalendarEvents}

// Preferences groups the ambient user settings for the API surface.
type Preferences struct {
	DarkMode     bool   `json:"darkMode"`
	Currency     string `json:"currency"`
	Language     string `json:"language"`
	EmailReports bool   `json:"emailReports"`
}

// DefaultPreferences returns the out-of-the-box settings.
func DefaultPreferences() Preferences {
	return Preferences{
		DarkMode:     false,
		Currency:     "BRL",
		Language:     "pt-BR",
		EmailReports: false,
	}
}
