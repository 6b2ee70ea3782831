// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/estate-ledger/backend/config"
	"github.com/estate-ledger/backend/internal/application/adapter"
	"github.com/estate-ledger/backend/internal/application/state"
	"github.com/estate-ledger/backend/internal/application/usecase/expense"
	"github.com/estate-ledger/backend/internal/application/usecase/project"
	"github.com/estate-ledger/backend/internal/application/usecase/report"
	"github.com/estate-ledger/backend/internal/application/usecase/sale"
	"github.com/estate-ledger/backend/internal/infra/cache"
	"github.com/estate-ledger/backend/internal/infra/server/router"
	"github.com/estate-ledger/backend/internal/integration/email"
	"github.com/estate-ledger/backend/internal/integration/email/templates"
	"github.com/estate-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/estate-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/estate-ledger/backend/internal/integration/persistence"
)

// Options carries optional collaborators. The zero value wires production defaults.
type Options struct {
	// Redis backs the rate limiter when the redis backend is configured.
	Redis *redis.Client
	// EmailSender replaces the Resend client built from the email config.
	EmailSender adapter.EmailSender
	// Now replaces the wall clock for overdue evaluation and paid dates.
	Now func() time.Time
}

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) (*Injector, error) {
	// Create repositories
	projectRepo := persistence.NewProjectRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	saleRepo := persistence.NewSaleRepository(db)

	// Create report infrastructure
	loader := state.NewLoader(projectRepo, saleRepo)
	engine := report.NewEngine(expenseRepo)

	// Create email service
	emailService, err := newEmailService(cfg, opts.EmailSender)
	if err != nil {
		return nil, err
	}

	// Create project use cases
	listProjectsUseCase := project.NewListProjectsUseCase(projectRepo)
	createProjectUseCase := project.NewCreateProjectUseCase(projectRepo)
	getProjectUseCase := project.NewGetProjectUseCase(projectRepo)
	updateProjectUseCase := project.NewUpdateProjectUseCase(projectRepo)
	deleteProjectUseCase := project.NewDeleteProjectUseCase(projectRepo)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo, projectRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, projectRepo)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

	// Create sale use cases
	listSalesUseCase := sale.NewListSalesUseCase(saleRepo, projectRepo)
	createSaleUseCase := sale.NewCreateSaleUseCase(saleRepo, projectRepo)
	getSaleUseCase := sale.NewGetSaleUseCase(saleRepo)
	updateSaleUseCase := sale.NewUpdateSaleUseCase(saleRepo, projectRepo)
	deleteSaleUseCase := sale.NewDeleteSaleUseCase(saleRepo)
	setPaymentPaidUseCase := sale.NewSetPaymentPaidUseCase(saleRepo)

	// Create report use cases
	dashboardUseCase := report.NewGetDashboardUseCase(loader, engine)
	projectSummaryUseCase := report.NewGetProjectSummaryUseCase(loader, engine)
	expenseSummaryUseCase := report.NewGetExpenseSummaryUseCase(projectRepo, engine)
	pendingPaymentsUseCase := report.NewGetPendingPaymentsUseCase(loader)
	performanceUseCase := report.NewGetProjectsPerformanceUseCase(loader, engine)
	salesByProjectUseCase := report.NewGetSalesByProjectUseCase(loader)
	overviewUseCase := report.NewGetOverviewUseCase(loader, engine)
	notifyOverdueUseCase := report.NewNotifyOverdueUseCase(loader, emailService)

	// Create controllers
	var cacheHealthChecker func() bool
	if opts.Redis != nil {
		cacheHealthChecker = cache.HealthChecker(opts.Redis)
	}
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, cacheHealthChecker)

	projectController := controller.NewProjectController(
		listProjectsUseCase,
		createProjectUseCase,
		getProjectUseCase,
		updateProjectUseCase,
		deleteProjectUseCase,
	)

	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		createExpenseUseCase,
		getExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)

	saleController := controller.NewSaleController(
		listSalesUseCase,
		createSaleUseCase,
		getSaleUseCase,
		updateSaleUseCase,
		deleteSaleUseCase,
		setPaymentPaidUseCase,
	)

	reportController := controller.NewReportController(
		dashboardUseCase,
		projectSummaryUseCase,
		expenseSummaryUseCase,
		pendingPaymentsUseCase,
		performanceUseCase,
		salesByProjectUseCase,
		overviewUseCase,
		notifyOverdueUseCase,
	)

	if opts.Now != nil {
		loader.WithClock(opts.Now)
		setPaymentPaidUseCase.WithClock(opts.Now)
		projectSummaryUseCase.WithClock(opts.Now)
		pendingPaymentsUseCase.WithClock(opts.Now)
		salesByProjectUseCase.WithClock(opts.Now)
		overviewUseCase.WithClock(opts.Now)
		notifyOverdueUseCase.WithClock(opts.Now)
		saleController.WithClock(opts.Now)
	}

	// Create middleware
	writeRateLimiter := newRateLimiter(cfg, opts.Redis)

	// Create router
	r := router.NewRouter(
		healthController,
		projectController,
		expenseController,
		saleController,
		reportController,
		writeRateLimiter,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}, nil
}

// newEmailService builds the operator notifier. Without an explicit sender or
// a Resend API key the service stays disabled.
func newEmailService(cfg *config.Config, sender adapter.EmailSender) (*email.Service, error) {
	if sender == nil && cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	formatter, err := email.NewMoneyFormatter(cfg.Locale.Tag, cfg.Locale.Currency)
	if err != nil {
		return nil, err
	}

	return email.NewService(sender, renderer, formatter, cfg.Email.OperatorEmail, cfg.Email.OperatorName), nil
}

// newRateLimiter limits mutating routes. Tests run without limits.
func newRateLimiter(cfg *config.Config, redisClient *redis.Client) *middleware.RateLimiter {
	enabled := cfg.RateLimit.Enabled && cfg.Server.Environment != "test"

	var store middleware.RateLimitStore = middleware.NewMemoryRateLimitStore()
	if cfg.RateLimit.Backend == config.RateLimitBackendRedis && redisClient != nil {
		store = middleware.NewRedisRateLimitStore(redisClient)
	}

	return middleware.NewRateLimiterWithConfig(store, enabled, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
}
