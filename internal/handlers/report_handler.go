package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "financafacil/internal/errors"
	"financafacil/internal/models"
	"financafacil/internal/services"
)

// ReportHandler serves period-filtered reports.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ReportQuery represents the report query options.
type ReportQuery struct {
	Period   string `form:"period" binding:"required,report_period"`
	From     string `form:"from" binding:"omitempty,iso_date"`
	To       string `form:"to" binding:"omitempty,iso_date"`
	Type     string `form:"type" binding:"omitempty,transaction_type"`
	Category string `form:"category"`
	Account  string `form:"account"`
}

// GetReport builds a report for the requested period
// @Summary     Get report
// @Description Build a report over the transactions inside the requested period, optionally narrowed by type, category, or account
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       period   query string true  "Period (month, quarter, year, or custom)"
// @Param       from     query string false "Start date for custom period (YYYY-MM-DD)"
// @Param       to       query string false "End date for custom period (YYYY-MM-DD)"
// @Param       type     query string false "Filter by type (income or expense)"
// @Param       category query string false "Filter by category ID"
// @Param       account  query string false "Filter by account ID"
// @Success     200 {object} services.Report "Report"
// @Failure     400 {object} ErrorResponse "Invalid period or dates"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	if _, err := getUsername(c); err != nil {
		respondWithError(c, err)
		return
	}

	var query ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	report, err := h.reportService.Build(services.ReportOptions{
		Period:   services.ReportPeriod(query.Period),
		From:     query.From,
		To:       query.To,
		Type:     models.TransactionType(query.Type),
		Category: query.Category,
		Account:  query.Account,
	}, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}
