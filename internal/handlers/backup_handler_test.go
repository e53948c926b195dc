package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "financafacil/internal/errors"
	"financafacil/internal/models"
	"financafacil/internal/services"
)

// --- mock backup service ---

type mockBackupService struct {
	exportFn func() services.Backup
	importFn func(raw []byte) error
	resetFn  func() []string
}

func (m *mockBackupService) Export() services.Backup {
	if m.exportFn != nil {
		return m.exportFn()
	}
	return services.Backup{}
}

func (m *mockBackupService) Import(raw []byte) error {
	if m.importFn != nil {
		return m.importFn(raw)
	}
	return nil
}

func (m *mockBackupService) Reset() []string {
	if m.resetFn != nil {
		return m.resetFn()
	}
	return nil
}

// verify interface compliance
var _ services.BackupServicer = (*mockBackupService)(nil)

func setupBackupRouter(handler *BackupHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUsername("maria"))
	auth.GET("/backup/export", handler.ExportBackup)
	auth.POST("/backup/import", handler.ImportBackup)
	auth.POST("/backup/reset", handler.ResetData)
	return r
}

func TestBackupHandler_ExportBackup(t *testing.T) {
	t.Run("returns 200 with attachment header", func(t *testing.T) {
		bkpSvc := &mockBackupService{
			exportFn: func() services.Backup {
				return services.Backup{
					Accounts:   []models.Account{{ID: "1", Name: "Conta Corrente"}},
					Categories: []models.Category{{ID: "1", Name: "Alimentação"}},
				}
			},
		}
		handler := NewBackupHandler(bkpSvc)
		r := setupBackupRouter(handler)

		rec := doRequest(r, "GET", "/backup/export", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		disposition := rec.Header().Get("Content-Disposition")
		if !strings.Contains(disposition, "attachment") || !strings.Contains(disposition, "financafacil-backup-") {
			t.Errorf("unexpected Content-Disposition: %q", disposition)
		}
		result := parseJSON(t, rec)
		accounts := result["accounts"].([]interface{})
		if len(accounts) != 1 {
			t.Errorf("expected 1 account in export, got %d", len(accounts))
		}
	})

	t.Run("returns 401 without auth", func(t *testing.T) {
		handler := NewBackupHandler(&mockBackupService{})
		r := gin.New()
		r.GET("/backup/export", handler.ExportBackup)

		rec := doRequest(r, "GET", "/backup/export", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestBackupHandler_ImportBackup(t *testing.T) {
	t.Run("returns 200 and forwards the raw body", func(t *testing.T) {
		var received []byte
		bkpSvc := &mockBackupService{
			importFn: func(raw []byte) error {
				received = raw
				return nil
			},
		}
		handler := NewBackupHandler(bkpSvc)
		r := setupBackupRouter(handler)

		body := `{"accounts":[],"categories":[],"transactions":[],"calendarEvents":[]}`
		rec := doRequest(r, "POST", "/backup/import", body)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if string(received) != body {
			t.Errorf("service did not receive the raw payload: %q", received)
		}
	})

	t.Run("returns 400 on rejected backup", func(t *testing.T) {
		bkpSvc := &mockBackupService{
			importFn: func(_ []byte) error {
				return apperrors.ErrInvalidBackup
			},
		}
		handler := NewBackupHandler(bkpSvc)
		r := setupBackupRouter(handler)

		rec := doRequest(r, "POST", "/backup/import", `{"accounts":[]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_BACKUP")
	})
}

func TestBackupHandler_ResetData(t *testing.T) {
	t.Run("returns 200 with the cleared slots", func(t *testing.T) {
		var resetCalled bool
		bkpSvc := &mockBackupService{
			resetFn: func() []string {
				resetCalled = true
				return []string{models.KeyAccounts, models.KeyTransactions}
			},
		}
		handler := NewBackupHandler(bkpSvc)
		r := setupBackupRouter(handler)

		rec := doRequest(r, "POST", "/backup/reset", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if !resetCalled {
			t.Error("expected reset to be invoked")
		}
		cleared := parseJSON(t, rec)["cleared"].([]interface{})
		if len(cleared) != 2 || cleared[0] != models.KeyAccounts {
			t.Errorf("unexpected cleared slots: %v", cleared)
		}
	})

	t.Run("returns 401 without auth", func(t *testing.T) {
		handler := NewBackupHandler(&mockBackupService{})
		r := gin.New()
		r.POST("/backup/reset", handler.ResetData)

		rec := doRequest(r, "POST", "/backup/reset", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}
