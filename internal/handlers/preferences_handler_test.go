package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"financafacil/internal/models"
	"financafacil/internal/services"
)

// --- mock preferences service ---

type mockPreferencesService struct {
	getFn    func() models.Preferences
	updateFn func(prefs models.Preferences) models.Preferences
}

func (m *mockPreferencesService) Get() models.Preferences {
	if m.getFn != nil {
		return m.getFn()
	}
	return models.DefaultPreferences()
}

func (m *mockPreferencesService) Update(prefs models.Preferences) models.Preferences {
	if m.updateFn != nil {
		return m.updateFn(prefs)
	}
	return prefs
}

// verify interface compliance
var _ services.PreferencesServicer = (*mockPreferencesService)(nil)

func setupPreferencesRouter(handler *PreferencesHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUsername("maria"))
	auth.GET("/preferences", handler.GetPreferences)
	auth.PUT("/preferences", handler.UpdatePreferences)
	return r
}

func TestPreferencesHandler_GetPreferences(t *testing.T) {
	t.Run("returns 200 with settings", func(t *testing.T) {
		prefSvc := &mockPreferencesService{
			getFn: func() models.Preferences {
				return models.Preferences{DarkMode: true, Currency: "BRL", Language: "pt-BR"}
			},
		}
		handler := NewPreferencesHandler(prefSvc)
		r := setupPreferencesRouter(handler)

		rec := doRequest(r, "GET", "/preferences", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		prefs := result["preferences"].(map[string]interface{})
		if prefs["currency"] != "BRL" {
			t.Errorf("expected BRL, got %v", prefs["currency"])
		}
		if prefs["darkMode"] != true {
			t.Errorf("expected dark mode on, got %v", prefs["darkMode"])
		}
	})

	t.Run("returns 401 without auth", func(t *testing.T) {
		handler := NewPreferencesHandler(&mockPreferencesService{})
		r := gin.New()
		r.GET("/preferences", handler.GetPreferences)

		rec := doRequest(r, "GET", "/preferences", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestPreferencesHandler_UpdatePreferences(t *testing.T) {
	t.Run("returns 200 and forwards new settings", func(t *testing.T) {
		var captured models.Preferences
		prefSvc := &mockPreferencesService{
			updateFn: func(prefs models.Preferences) models.Preferences {
				captured = prefs
				return prefs
			},
		}
		handler := NewPreferencesHandler(prefSvc)
		r := setupPreferencesRouter(handler)

		rec := doRequest(r, "PUT", "/preferences",
			`{"darkMode":true,"currency":"EUR","language":"en","emailReports":true}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.Currency != "EUR" || captured.Language != "en" {
			t.Errorf("unexpected forwarded settings: %+v", captured)
		}
		if !captured.DarkMode || !captured.EmailReports {
			t.Errorf("expected boolean flags set: %+v", captured)
		}
	})

	t.Run("returns 400 on unknown currency code", func(t *testing.T) {
		handler := NewPreferencesHandler(&mockPreferencesService{})
		r := setupPreferencesRouter(handler)

		rec := doRequest(r, "PUT", "/preferences",
			`{"currency":"MOEDA","language":"pt-BR"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on missing language", func(t *testing.T) {
		handler := NewPreferencesHandler(&mockPreferencesService{})
		r := setupPreferencesRouter(handler)

		rec := doRequest(r, "PUT", "/preferences", `{"currency":"BRL"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
