// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/estate-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/estate-ledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	projectController *controller.ProjectController
	expenseController *controller.ExpenseController
	saleController    *controller.SaleController
	reportController  *controller.ReportController
	writeRateLimiter  *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	projectController *controller.ProjectController,
	expenseController *controller.ExpenseController,
	saleController *controller.SaleController,
	reportController *controller.ReportController,
	writeRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:  healthController,
		projectController: projectController,
		expenseController: expenseController,
		saleController:    saleController,
		reportController:  reportController,
		writeRateLimiter:  writeRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	if environment != "test" {
		r.engine.Use(gin.Logger())
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// limitWrites returns the rate limiting handler for mutating routes.
func (r *Router) limitWrites() gin.HandlerFunc {
	if r.writeRateLimiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return r.writeRateLimiter.Middleware()
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	limit := r.limitWrites()

	projects := v1.Group("/projects")
	{
		projects.GET("", r.projectController.List)
		projects.POST("", limit, r.projectController.Create)
		projects.GET("/:id", r.projectController.Get)
		projects.PATCH("/:id", limit, r.projectController.Update)
		projects.DELETE("/:id", limit, r.projectController.Delete)
		projects.GET("/:id/expenses", r.expenseController.ListByProject)
		projects.GET("/:id/sales", r.saleController.ListByProject)
		projects.GET("/:id/summary", r.reportController.GetProjectSummary)
		projects.GET("/:id/expense-summary", r.reportController.GetExpenseSummary)
	}

	expenses := v1.Group("/expenses")
	{
		expenses.POST("", limit, r.expenseController.Create)
		expenses.GET("/:id", r.expenseController.Get)
		expenses.PATCH("/:id", limit, r.expenseController.Update)
		expenses.DELETE("/:id", limit, r.expenseController.Delete)
	}

	sales := v1.Group("/sales")
	{
		sales.GET("", r.saleController.List)
		sales.POST("", limit, r.saleController.Create)
		sales.GET("/:id", r.saleController.Get)
		sales.PATCH("/:id", limit, r.saleController.Update)
		sales.DELETE("/:id", limit, r.saleController.Delete)
		sales.PUT("/:id/payments/:index/paid", limit, r.saleController.SetPaymentPaid)
	}

	reports := v1.Group("/reports")
	{
		reports.GET("/dashboard", r.reportController.GetDashboard)
		reports.GET("/pending-payments", r.reportController.GetPendingPayments)
		reports.GET("/performance", r.reportController.GetPerformance)
		reports.GET("/sales-by-project", r.reportController.GetSalesByProject)
		reports.GET("/overview", r.reportController.GetOverview)
		reports.POST("/overdue/notify", limit, r.reportController.NotifyOverdue)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
