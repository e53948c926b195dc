package services

import (
	"financafacil/internal/models"
	"financafacil/internal/store"
)

type preferencesService struct {
	store *store.Store
}

// NewPreferencesService creates a preferences service over the store.
func NewPreferencesService(s *store.Store) PreferencesServicer {
	return &preferencesService{store: s}
}

func (s *preferencesService) Get() models.Preferences {
	defaults := models.DefaultPreferences()
	return models.Preferences{
		DarkMode:     store.Get(s.store, models.KeyDarkMode, defaults.DarkMode),
		Currency:     store.Get(s.store, models.KeyCurrency, defaults.Currency),
		Language:     store.Get(s.store, models.KeyLanguage, defaults.Language),
		EmailReports: store.Get(s.store, models.KeyEmailReports, defaults.EmailReports),
	}
}

// Update persists each preference in its own slot so resets of the
// financial collections never touch them.
func (s *preferencesService) Update(prefs models.Preferences) models.Preferences {
	store.Set(s.store, models.KeyDarkMode, prefs.DarkMode)
	store.Set(s.store, models.KeyCurrency, prefs.Currency)
	store.Set(s.store, models.KeyLanguage, prefs.Language)
	store.Set(s.store, models.KeyEmailReports, prefs.EmailReports)
	return s.Get()
}
