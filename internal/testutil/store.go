// Package testutil provides test helpers for setting up in-memory stores,
// creating fixtures, and making assertions.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"financafacil/internal/models"
	"financafacil/internal/store"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// dbCounter ensures each test gets an isolated in-memory database.
var dbCounter atomic.Int64

// SetupTestStore creates a slot store over an isolated in-memory SQLite
// database. The connection is closed when the test finishes.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:teststore%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&store.Slot{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err != nil {
			t.Errorf("failed to get underlying DB for teardown: %v", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	return store.New(db)
}

// SetupEmptyStore creates a test store with all collections explicitly
// set to empty, so the default demo dataset does not leak into tests
// that build their own fixtures.
func SetupEmptyStore(t *testing.T) *store.Store {
	t.Helper()

	s := SetupTestStore(t)
	store.Set(s, models.KeyAccounts, []models.Account{})
	store.Set(s, models.KeyCategories, []models.Category{})
	store.Set(s, models.KeyTransactions, []models.Transaction{})
	store.Set(s, models.KeyCalendarEvents, []models.CalendarEvent{})
	store.Set(s, models.KeyUsers, []models.User{})
	return s
}
