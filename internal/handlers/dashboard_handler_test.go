package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"financafacil/internal/models"
	"financafacil/internal/services"
)

// --- mock dashboard service ---

type mockDashboardService struct {
	summaryFn              func() services.Summary
	categoryDistributionFn func() []services.CategorySlice
	accountSplitFn         func() []services.AccountFlow
	monthlySeriesFn        func(year int) []services.MonthPoint
	budgetUsageFn          func() []services.BudgetUsage
	pendingItemsFn         func(now time.Time) []models.PendingItem
}

func (m *mockDashboardService) Summary() services.Summary {
	if m.summaryFn != nil {
		return m.summaryFn()
	}
	return services.Summary{}
}

func (m *mockDashboardService) CategoryDistribution() []services.CategorySlice {
	if m.categoryDistributionFn != nil {
		return m.categoryDistributionFn()
	}
	return nil
}

func (m *mockDashboardService) AccountSplit() []services.AccountFlow {
	if m.accountSplitFn != nil {
		return m.accountSplitFn()
	}
	return nil
}

func (m *mockDashboardService) MonthlySeries(year int) []services.MonthPoint {
	if m.monthlySeriesFn != nil {
		return m.monthlySeriesFn(year)
	}
	return nil
}

func (m *mockDashboardService) BudgetUsage() []services.BudgetUsage {
	if m.budgetUsageFn != nil {
		return m.budgetUsageFn()
	}
	return nil
}

func (m *mockDashboardService) PendingItems(now time.Time) []models.PendingItem {
	if m.pendingItemsFn != nil {
		return m.pendingItemsFn(now)
	}
	return nil
}

// verify interface compliance
var _ services.DashboardServicer = (*mockDashboardService)(nil)

func setupDashboardRouter(handler *DashboardHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUsername("maria"))
	auth.GET("/dashboard/summary", handler.GetSummary)
	auth.GET("/dashboard/categories", handler.GetCategoryDistribution)
	auth.GET("/dashboard/accounts", handler.GetAccountSplit)
	auth.GET("/dashboard/monthly", handler.GetMonthlySeries)
	auth.GET("/dashboard/budgets", handler.GetBudgetUsage)
	auth.GET("/dashboard/pending", handler.GetPendingItems)
	return r
}

func TestDashboardHandler_GetSummary(t *testing.T) {
	t.Run("returns 200 with totals", func(t *testing.T) {
		dashSvc := &mockDashboardService{
			summaryFn: func() services.Summary {
				return services.Summary{
					TotalBalance:     4000,
					TotalIncome:      5000,
					TotalExpense:     1750,
					AccountCount:     3,
					TransactionCount: 4,
				}
			},
		}
		handler := NewDashboardHandler(dashSvc)
		r := setupDashboardRouter(handler)

		rec := doRequest(r, "GET", "/dashboard/summary", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		summary := result["summary"].(map[string]interface{})
		if summary["totalBalance"].(float64) != 4000 {
			t.Errorf("expected totalBalance 4000, got %v", summary["totalBalance"])
		}
		if summary["totalIncome"].(float64) != 5000 {
			t.Errorf("expected totalIncome 5000, got %v", summary["totalIncome"])
		}
	})

	t.Run("returns 401 without auth", func(t *testing.T) {
		handler := NewDashboardHandler(&mockDashboardService{})
		r := gin.New()
		r.GET("/dashboard/summary", handler.GetSummary)

		rec := doRequest(r, "GET", "/dashboard/summary", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestDashboardHandler_GetCategoryDistribution(t *testing.T) {
	dashSvc := &mockDashboardService{
		categoryDistributionFn: func() []services.CategorySlice {
			return []services.CategorySlice{
				{CategoryID: "1", Name: "Alimentação", Value: 350},
				{CategoryID: "2", Name: "Moradia", Value: 1200},
			}
		},
	}
	handler := NewDashboardHandler(dashSvc)
	r := setupDashboardRouter(handler)

	rec := doRequest(r, "GET", "/dashboard/categories", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	categories := result["categories"].([]interface{})
	if len(categories) != 2 {
		t.Errorf("expected 2 slices, got %d", len(categories))
	}
}

func TestDashboardHandler_GetAccountSplit(t *testing.T) {
	dashSvc := &mockDashboardService{
		accountSplitFn: func() []services.AccountFlow {
			return []services.AccountFlow{
				{AccountID: "1", Name: "Conta Corrente", Income: 5000, Expense: 1550},
			}
		},
	}
	handler := NewDashboardHandler(dashSvc)
	r := setupDashboardRouter(handler)

	rec := doRequest(r, "GET", "/dashboard/accounts", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	accounts := result["accounts"].([]interface{})
	if len(accounts) != 1 {
		t.Fatalf("expected 1 account, got %d", len(accounts))
	}
}

func TestDashboardHandler_GetMonthlySeries(t *testing.T) {
	t.Run("passes requested year to service", func(t *testing.T) {
		var capturedYear int
		dashSvc := &mockDashboardService{
			monthlySeriesFn: func(year int) []services.MonthPoint {
				capturedYear = year
				return make([]services.MonthPoint, 12)
			},
		}
		handler := NewDashboardHandler(dashSvc)
		r := setupDashboardRouter(handler)

		rec := doRequest(r, "GET", "/dashboard/monthly?year=2023", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if capturedYear != 2023 {
			t.Errorf("expected year 2023, got %d", capturedYear)
		}
		result := parseJSON(t, rec)
		if result["year"].(float64) != 2023 {
			t.Errorf("expected year 2023 in response, got %v", result["year"])
		}
	})

	t.Run("defaults to current year", func(t *testing.T) {
		var capturedYear int
		dashSvc := &mockDashboardService{
			monthlySeriesFn: func(year int) []services.MonthPoint {
				capturedYear = year
				return nil
			},
		}
		handler := NewDashboardHandler(dashSvc)
		r := setupDashboardRouter(handler)

		doRequest(r, "GET", "/dashboard/monthly", "")

		if capturedYear != time.Now().Year() {
			t.Errorf("expected current year, got %d", capturedYear)
		}
	})

	t.Run("returns 400 on non-numeric year", func(t *testing.T) {
		handler := NewDashboardHandler(&mockDashboardService{})
		r := setupDashboardRouter(handler)

		rec := doRequest(r, "GET", "/dashboard/monthly?year=abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestDashboardHandler_GetBudgetUsage(t *testing.T) {
	dashSvc := &mockDashboardService{
		budgetUsageFn: func() []services.BudgetUsage {
			return []services.BudgetUsage{
				{CategoryID: "1", Name: "Alimentação", Budget: 1000, Spent: 750, Remaining: 250, Percentage: 75},
			}
		},
	}
	handler := NewDashboardHandler(dashSvc)
	r := setupDashboardRouter(handler)

	rec := doRequest(r, "GET", "/dashboard/budgets", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	budgets := result["budgets"].([]interface{})
	entry := budgets[0].(map[string]interface{})
	if entry["percentage"].(float64) != 75 {
		t.Errorf("expected 75 percent, got %v", entry["percentage"])
	}
}

func TestDashboardHandler_GetPendingItems(t *testing.T) {
	dashSvc := &mockDashboardService{
		pendingItemsFn: func(_ time.Time) []models.PendingItem {
			return []models.PendingItem{
				{ID: "1", Title: "Aluguel", Type: models.PendingItemTypeBill, IsOverdue: true},
				{ID: "2", Title: "Salário", Type: models.PendingItemTypeIncome, IsPaid: true},
			}
		},
	}
	handler := NewDashboardHandler(dashSvc)
	r := setupDashboardRouter(handler)

	rec := doRequest(r, "GET", "/dashboard/pending", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	pending := result["pending"].([]interface{})
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending items, got %d", len(pending))
	}
	first := pending[0].(map[string]interface{})
	if first["isOverdue"] != true {
		t.Errorf("expected first item overdue, got %v", first["isOverdue"])
	}
}
