package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"financafacil/internal/handlers"
	"financafacil/internal/logger"
	"financafacil/internal/middleware"
	"financafacil/internal/services"
	"financafacil/internal/store"
	"financafacil/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	Store  *store.Store
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integration%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&store.Slot{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	slotStore := store.New(db)

	// Services
	userService := services.NewUserService(slotStore)
	accountService := services.NewAccountService(slotStore)
	categoryService := services.NewCategoryService(slotStore)
	transactionService := services.NewTransactionService(slotStore)
	calendarService := services.NewCalendarService(slotStore)
	dashboardService := services.NewDashboardService(slotStore)
	reportService := services.NewReportService(slotStore)
	preferencesService := services.NewPreferencesService(slotStore)
	backupService := services.NewBackupService(slotStore, preferencesService)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	accountHandler := handlers.NewAccountHandler(accountService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	calendarHandler := handlers.NewCalendarHandler(calendarService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	reportHandler := handlers.NewReportHandler(reportService)
	backupHandler := handlers.NewBackupHandler(backupService)
	preferencesHandler := handlers.NewPreferencesHandler(preferencesService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	accounts := protected.Group("/accounts")
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("", accountHandler.GetAccounts)
	accounts.GET("/:id", accountHandler.GetAccountByID)
	accounts.PUT("/:id", accountHandler.UpdateAccount)
	accounts.DELETE("/:id", accountHandler.DeleteAccount)

	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	calendar := protected.Group("/calendar")
	calendar.POST("", calendarHandler.CreateEvent)
	calendar.GET("", calendarHandler.GetEvents)
	calendar.GET("/:id", calendarHandler.GetEventByID)
	calendar.PUT("/:id", calendarHandler.UpdateEvent)
	calendar.DELETE("/:id", calendarHandler.DeleteEvent)
	calendar.POST("/:id/paid", calendarHandler.MarkPaid)

	dashboard := protected.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.GetSummary)
	dashboard.GET("/categories", dashboardHandler.GetCategoryDistribution)
	dashboard.GET("/accounts", dashboardHandler.GetAccountSplit)
	dashboard.GET("/monthly", dashboardHandler.GetMonthlySeries)
	dashboard.GET("/budgets", dashboardHandler.GetBudgetUsage)
	dashboard.GET("/pending", dashboardHandler.GetPendingItems)

	protected.GET("/reports", reportHandler.GetReport)

	backup := protected.Group("/backup")
	backup.GET("/export", backupHandler.ExportBackup)
	backup.POST("/import", backupHandler.ImportBackup)
	backup.POST("/reset", backupHandler.ResetData)

	preferences := protected.Group("/preferences")
	preferences.GET("", preferencesHandler.GetPreferences)
	preferences.PUT("", preferencesHandler.UpdatePreferences)

	return &testApp{Store: slotStore, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the token.
func (app *testApp) registerUser(t *testing.T, username, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"password":%q,"fullName":"Test User"}`, username, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["token"].(string)
}

// loginUser logs in and returns the token.
func (app *testApp) loginUser(t *testing.T, username, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["token"].(string)
}
