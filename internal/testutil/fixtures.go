package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"financafacil/internal/models"
	"financafacil/internal/store"
	"financafacil/internal/uuid"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestAccount appends a bank account with the given balance to the
// stored account collection.
func CreateTestAccount(t *testing.T, s *store.Store, balance float64) models.Account {
	t.Helper()

	account := models.Account{
		ID:      uuid.New(),
		Name:    fmt.Sprintf("Test Account %d", nextID()),
		Balance: balance,
		Type:    models.AccountTypeBank,
		Color:   "#3B82F6",
	}
	accounts := store.Get(s, models.KeyAccounts, []models.Account{})
	store.Set(s, models.KeyAccounts, append(accounts, account))
	return account
}

// CreateTestCategory appends a category of the given type.
func CreateTestCategory(t *testing.T, s *store.Store, categoryType models.CategoryType) models.Category {
	t.Helper()

	category := models.Category{
		ID:    uuid.New(),
		Name:  fmt.Sprintf("Test Category %d", nextID()),
		Color: "#F59E0B",
		Type:  categoryType,
	}
	categories := store.Get(s, models.KeyCategories, []models.Category{})
	store.Set(s, models.KeyCategories, append(categories, category))
	return category
}

// CreateTestTransaction appends a transaction of the given type and amount,
// dated on the given yyyy-MM-dd date, referencing the given account and
// category ids.
func CreateTestTransaction(t *testing.T, s *store.Store, txType models.TransactionType, amount float64, date, accountID, categoryID string) models.Transaction {
	t.Helper()

	tx := models.Transaction{
		ID:          uuid.New(),
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Amount:      amount,
		Date:        date,
		Category:    categoryID,
		Type:        txType,
		AccountID:   accountID,
	}
	transactions := store.Get(s, models.KeyTransactions, []models.Transaction{})
	store.Set(s, models.KeyTransactions, append(transactions, tx))
	return tx
}

// CreateTestEvent appends a calendar event with the given recurrence,
// anchored on the given yyyy-MM-dd date.
func CreateTestEvent(t *testing.T, s *store.Store, eventType models.EventType, recurrence models.Recurrence, date string, amount float64) models.CalendarEvent {
	t.Helper()

	event := models.CalendarEvent{
		ID:         uuid.New(),
		Title:      fmt.Sprintf("Test Event %d", nextID()),
		Date:       date,
		Amount:     amount,
		Type:       eventType,
		Recurrence: recurrence,
	}
	events := store.Get(s, models.KeyCalendarEvents, []models.CalendarEvent{})
	store.Set(s, models.KeyCalendarEvents, append(events, event))
	return event
}
