package main

import (
	"fmt"
	"net/http"
	"os"

	"financafacil/internal/config"
	"financafacil/internal/database"
	"financafacil/internal/handlers"
	"financafacil/internal/logger"
	"financafacil/internal/middleware"
	"financafacil/internal/services"
	"financafacil/internal/store"
	"financafacil/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "financafacil/internal/docs" // Import swagger docs
)

// @title           FinançaFácil API
// @version         1.0
// @description     FinançaFácil is a personal finance application for tracking accounts, transactions, and a financial calendar with recurring events.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize the slot store and services
	slotStore := store.New(dbManager.DB())
	userService := services.NewUserService(slotStore)
	accountService := services.NewAccountService(slotStore)
	categoryService := services.NewCategoryService(slotStore)
	transactionService := services.NewTransactionService(slotStore)
	calendarService := services.NewCalendarService(slotStore)
	dashboardService := services.NewDashboardService(slotStore)
	reportService := services.NewReportService(slotStore)
	preferencesService := services.NewPreferencesService(slotStore)
	backupService := services.NewBackupService(slotStore, preferencesService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	accountHandler := handlers.NewAccountHandler(accountService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	calendarHandler := handlers.NewCalendarHandler(calendarService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	reportHandler := handlers.NewReportHandler(reportService)
	backupHandler := handlers.NewBackupHandler(backupService)
	preferencesHandler := handlers.NewPreferencesHandler(preferencesService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Account routes
	accounts := protected.Group("/accounts")
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("", accountHandler.GetAccounts)
	accounts.GET("/:id", accountHandler.GetAccountByID)
	accounts.PUT("/:id", accountHandler.UpdateAccount)
	accounts.DELETE("/:id", accountHandler.DeleteAccount)

	// Category routes
	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Calendar routes
	calendar := protected.Group("/calendar")
	calendar.POST("", calendarHandler.CreateEvent)
	calendar.GET("", calendarHandler.GetEvents)
	calendar.GET("/:id", calendarHandler.GetEventByID)
	calendar.PUT("/:id", calendarHandler.UpdateEvent)
	calendar.DELETE("/:id", calendarHandler.DeleteEvent)
	calendar.POST("/:id/paid", calendarHandler.MarkPaid)

	// Dashboard routes
	dashboard := protected.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.GetSummary)
	dashboard.GET("/categories", dashboardHandler.GetCategoryDistribution)
	dashboard.GET("/accounts", dashboardHandler.GetAccountSplit)
	dashboard.GET("/monthly", dashboardHandler.GetMonthlySeries)
	dashboard.GET("/budgets", dashboardHandler.GetBudgetUsage)
	dashboard.GET("/pending", dashboardHandler.GetPendingItems)

	// Report routes
	protected.GET("/reports", reportHandler.GetReport)

	// Backup routes
	backup := protected.Group("/backup")
	backup.GET("/export", backupHandler.ExportBackup)
	backup.POST("/import", backupHandler.ImportBackup)
	backup.POST("/reset", backupHandler.ResetData)

	// Preferences routes
	preferences := protected.Group("/preferences")
	preferences.GET("", preferencesHandler.GetPreferences)
	preferences.PUT("", preferencesHandler.UpdatePreferences)

	log.Infof("Starting FinançaFácil backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
