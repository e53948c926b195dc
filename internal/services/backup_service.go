package services

import (
	"encoding/json"

	apperrors "financafacil/internal/errors"
	"financafacil/internal/models"
	"financafacil/internal/store"
)

// Backup is the export/import envelope. Its collection fields mirror the
// storage slots so an exported file round-trips without translation.
// Preferences travel along but are optional on import.
type Backup struct {
	Accounts       []models.Account       `json:"accounts"`
	Categories     []models.Category      `json:"categories"`
	Transactions   []models.Transaction   `json:"transactions"`
	CalendarEvents []models.CalendarEvent `json:"calendarEvents"`
	Preferences    *models.Preferences    `json:"preferences,omitempty"`
}

type backupService struct {
	store *store.Store
	prefs PreferencesServicer
}

// NewBackupService creates a backup service over the store.
func NewBackupService(s *store.Store, prefs PreferencesServicer) BackupServicer {
	return &backupService{store: s, prefs: prefs}
}

func (s *backupService) Export() Backup {
	prefs := s.prefs.Get()
	return Backup{
		Accounts:       store.Get(s.store, models.KeyAccounts, models.DefaultAccounts()),
		Categories:     store.Get(s.store, models.KeyCategories, models.DefaultCategories()),
		Transactions:   store.Get(s.store, models.KeyTransactions, models.DefaultTransactions()),
		CalendarEvents: store.Get(s.store, models.KeyCalendarEvents, models.DefaultCalendarEvents()),
		Preferences:    &prefs,
	}
}

// Import validates the payload before writing anything: all four
// collection keys must be present, otherwise the store is left exactly
// as it was. Absent preferences keep their current values.
func (s *backupService) Import(raw []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return apperrors.Wrap(apperrors.ErrInvalidBackup, err)
	}
	for _, key := range models.CollectionKeys {
		if _, ok := fields[key]; !ok {
			return apperrors.WithMessage(apperrors.ErrInvalidBackup, "backup is missing the '"+key+"' collection")
		}
	}

	var backup Backup
	if err := json.Unmarshal(raw, &backup); err != nil {
		return apperrors.Wrap(apperrors.ErrInvalidBackup, err)
	}

	store.Set(s.store, models.KeyAccounts, backup.Accounts)
	store.Set(s.store, models.KeyCategories, backup.Categories)
	store.Set(s.store, models.KeyTransactions, backup.Transactions)
	store.Set(s.store, models.KeyCalendarEvents, backup.CalendarEvents)
	if backup.Preferences != nil {
		s.prefs.Update(*backup.Preferences)
	}
	return nil
}

// Reset clears the four financial collections and reports which slots
// actually held data. The next read of each re-seeds the demo defaults;
// preferences and registered users survive.
func (s *backupService) Reset() []string {
	cleared := make([]string, 0, len(models.CollectionKeys))
	for _, key := range models.CollectionKeys {
		if !s.store.Has(key) {
			continue
		}
		s.store.Delete(key)
		cleared = append(cleared, key)
	}
	return cleared
}
