package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "financafacil/internal/errors"
	"financafacil/internal/services"
)

// BackupHandler handles export, import, and reset of the financial data.
type BackupHandler struct {
	backupService services.BackupServicer
}

// NewBackupHandler creates a new BackupHandler.
func NewBackupHandler(backupService services.BackupServicer) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// ExportBackup streams the full dataset as a downloadable JSON file
// @Summary     Export backup
// @Description Download the four financial collections and current preferences as a JSON file
// @Tags        backup
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.Backup "Backup file"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /backup/export [get]
func (h *BackupHandler) ExportBackup(c *gin.Context) {
	if _, err := getUsername(c); err != nil {
		respondWithError(c, err)
		return
	}

	filename := fmt.Sprintf("financafacil-backup-%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.JSON(http.StatusOK, h.backupService.Export())
}

// ImportBackup replaces the dataset with an uploaded backup file
// @Summary     Import backup
// @Description Replace the four financial collections with the uploaded backup. The file is validated before anything is written.
// @Tags        backup
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body services.Backup true "Backup payload"
// @Success     200 {object} map[string]string "Import result"
// @Failure     400 {object} ErrorResponse "Malformed or incomplete backup"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /backup/import [post]
func (h *BackupHandler) ImportBackup(c *gin.Context) {
	if _, err := getUsername(c); err != nil {
		respondWithError(c, err)
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInvalidBackup, err))
		return
	}

	if err := h.backupService.Import(raw); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "backup imported"})
}

// ResetData clears the financial collections back to the seed dataset
// @Summary     Reset data
// @Description Clear the four financial collections and list the slots that held data. Preferences and registered users are kept.
// @Tags        backup
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Reset result"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /backup/reset [post]
func (h *BackupHandler) ResetData(c *gin.Context) {
	if _, err := getUsername(c); err != nil {
		respondWithError(c, err)
		return
	}

	cleared := h.backupService.Reset()
	c.JSON(http.StatusOK, gin.H{"message": "data reset", "cleared": cleared})
}
