// Package router assembles the HTTP routes.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"baletrack/internal/handlers"
	"baletrack/internal/middleware"
	"baletrack/internal/services"

	_ "baletrack/internal/docs" // Import swagger docs
)

// Deps are the handles every route depends on. They are created once at
// startup.
type Deps struct {
	CORSAllowedOrigin string
	Tokens            *middleware.TokenManager

	Users     services.UserServicer
	Bales     services.BaleServicer
	Expenses  services.ExpenseServicer
	Savings   services.SavingsServicer
	Reports   services.ReportServicer
	Audit     services.AuditServicer
	Assistant handlers.Assistant
}

// New builds the Gin engine with middleware and all API routes.
func New(d Deps) *gin.Engine {
	authHandler := handlers.NewAuthHandler(d.Users, d.Tokens)
	baleHandler := handlers.NewBaleHandler(d.Bales, d.Audit)
	expenseHandler := handlers.NewExpenseHandler(d.Expenses, d.Audit)
	savingsHandler := handlers.NewSavingsHandler(d.Savings, d.Audit)
	reportHandler := handlers.NewReportHandler(d.Reports)
	assistantHandler := handlers.NewAssistantHandler(d.Assistant)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(d.CORSAllowedOrigin))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	user := api.Group("/user")
	user.POST("/signup", authHandler.Signup)
	user.POST("/login", authHandler.Login)

	ai := api.Group("/ai")
	ai.GET("/health", assistantHandler.Health)
	ai.GET("/examples", assistantHandler.Examples)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(d.Tokens))

	protected.GET("/user/profile", authHandler.Profile)
	protected.POST("/ai/chat", assistantHandler.Chat)

	bales := protected.Group("/bales")
	bales.POST("", baleHandler.CreateBale)
	bales.GET("", baleHandler.ListBales)
	bales.GET("/stats", baleHandler.GetBaleStats)
	bales.GET("/:id", baleHandler.GetBale)
	bales.PATCH("/:id", baleHandler.UpdateBale)
	bales.DELETE("/:id", baleHandler.DeleteBale)

	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.GET("/stats", expenseHandler.GetExpenseStats)
	expenses.GET("/:id", expenseHandler.GetExpense)
	expenses.PATCH("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	savings := protected.Group("/savings")
	savings.POST("", savingsHandler.CreateSavings)
	savings.GET("", savingsHandler.ListSavings)
	savings.GET("/stats", savingsHandler.GetSavingsStats)
	savings.GET("/goals", savingsHandler.GetSavingsGoals)
	savings.GET("/:id", savingsHandler.GetSavings)
	savings.PATCH("/:id", savingsHandler.UpdateSavings)
	savings.DELETE("/:id", savingsHandler.DeleteSavings)

	reports := protected.Group("/reports")
	reports.GET("/financial", reportHandler.GetFinancialReport)
	reports.GET("/financial/export", reportHandler.ExportFinancialReport)

	return router
}
