package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "financafacil/internal/errors"
	"financafacil/internal/services"
)

// DashboardHandler serves the derived dashboard views.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary returns the headline totals
// @Summary     Get dashboard summary
// @Description Get the total balance and income/expense totals
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.Summary "Summary figures"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	if _, err := getUsername(c); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": h.dashboardService.Summary()})
}

// GetCategoryDistribution returns the expense-by-category breakdown
// @Summary     Get category distribution
// @Description Get expense totals per category, excluding categories without expenses
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.CategorySlice "Category distribution"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/categories [get]
func (h *DashboardHandler) GetCategoryDistribution(c *gin.Context) {
	if _, err := getUsername(c); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": h.dashboardService.CategoryDistribution()})
}

// GetAccountSplit returns the per-account income/expense breakdown
// @Summary     Get account split
// @Description Get income and expense totals per account
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.AccountFlow "Account split"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/accounts [get]
func (h *DashboardHandler) GetAccountSplit(c *gin.Context) {
	if _, err := getUsername(c); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accounts": h.dashboardService.AccountSplit()})
}

// GetMonthlySeries returns the twelve-month income/expense series
// @Summary     Get monthly series
// @Description Get income and expense totals per month for a year (defaults to the current year)
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       year query int false "Year (default current)"
// @Success     200 {array} services.MonthPoint "Monthly series"
// @Failure     400 {object} ErrorResponse "Invalid year"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/monthly [get]
func (h *DashboardHandler) GetMonthlySeries(c *gin.Context) {
	if _, err := getUsername(c); err != nil {
		respondWithError(c, err)
		return
	}

	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid year"))
			return
		}
		year = parsed
	}

	c.JSON(http.StatusOK, gin.H{"year": year, "months": h.dashboardService.MonthlySeries(year)})
}

// GetBudgetUsage returns spending against category budgets
// @Summary     Get budget usage
// @Description Get spending against each budgeted category
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.BudgetUsage "Budget usage"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/budgets [get]
func (h *DashboardHandler) GetBudgetUsage(c *gin.Context) {
	if _, err := getUsername(c); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": h.dashboardService.BudgetUsage()})
}

// GetPendingItems returns the pending item projection
// @Summary     Get pending items
// @Description Get the derived paid/overdue status for every calendar event as of today
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.PendingItem "Pending items"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/pending [get]
func (h *DashboardHandler) GetPendingItems(c *gin.Context) {
	if _, err := getUsername(c); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pending": h.dashboardService.PendingItems(time.Now())})
}
