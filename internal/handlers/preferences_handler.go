package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "financafacil/internal/errors"
	"financafacil/internal/models"
	"financafacil/internal/services"
)

// PreferencesHandler handles the ambient user settings.
type PreferencesHandler struct {
	preferencesService services.PreferencesServicer
}

// NewPreferencesHandler creates a new PreferencesHandler.
func NewPreferencesHandler(preferencesService services.PreferencesServicer) *PreferencesHandler {
	return &PreferencesHandler{preferencesService: preferencesService}
}

// PreferencesRequest represents the request payload for updating
// preferences. All fields are written as given.
type PreferencesRequest struct {
	DarkMode     bool   `json:"darkMode"`
	Currency     string `json:"currency" binding:"required,iso4217"`
	Language     string `json:"language" binding:"required,min=2,max=10"`
	EmailReports bool   `json:"emailReports"`
}

// GetPreferences returns the current settings
// @Summary     Get preferences
// @Description Get the current dark mode, currency, language, and email report settings
// @Tags        preferences
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.Preferences "Preferences"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /preferences [get]
func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	if _, err := getUsername(c); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": h.preferencesService.Get()})
}

// UpdatePreferences replaces the current settings
// @Summary     Update preferences
// @Description Replace the dark mode, currency, language, and email report settings
// @Tags        preferences
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body PreferencesRequest true "New preferences"
// @Success     200 {object} models.Preferences "Updated preferences"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /preferences [put]
func (h *PreferencesHandler) UpdatePreferences(c *gin.Context) {
	if _, err := getUsername(c); err != nil {
		respondWithError(c, err)
		return
	}

	var req PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	updated := h.preferencesService.Update(models.Preferences{
		DarkMode:     req.DarkMode,
		Currency:     req.Currency,
		Language:     req.Language,
		EmailReports: req.EmailReports,
	})
	c.JSON(http.StatusOK, gin.H{"preferences": updated})
}
