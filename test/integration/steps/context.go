// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/estate-ledger/backend/config"
	"github.com/estate-ledger/backend/internal/infra/dependency"
	"github.com/estate-ledger/backend/internal/integration/email"
	"github.com/estate-ledger/backend/test/integration/mock"
)

const (
	operatorEmail = "owner@example.com"
	emailsPath    = "/emails"
)

// suite holds resources shared by every scenario.
type suite struct {
	server   *httptest.Server
	db       *mock.Db
	timeMock *mock.Time
	resend   *mock.ApiMock
}

var shared *suite

// TestContext holds the test state for each scenario.
type TestContext struct {
	client       *http.Client
	baseURL      string
	response     *http.Response
	responseBody []byte
	saved        map[string]string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)

		s, err := newSuite()
		if err != nil {
			panic(err)
		}
		shared = s
	})

	ctx.AfterSuite(func() {
		if shared != nil {
			shared.server.Close()
			shared.resend.Close()
		}
	})
}

func newSuite() (*suite, error) {
	redisClient := mock.NewRedis()

	resend := mock.NewApiServer()
	resend.Start()

	env := map[string]string{
		"ENV":                "test",
		"REDIS_URL":          "redis://" + redisClient.Options().Addr,
		"RATE_LIMIT_BACKEND": config.RateLimitBackendRedis,
		"RESEND_API_KEY":     "re_test",
		"OPERATOR_EMAIL":     operatorEmail,
		"OPERATOR_NAME":      "Owner",
		"LOCALE":             "en-US",
		"CURRENCY_LABEL":     "EGP",
	}
	for k, v := range env {
		if err := os.Setenv(k, v); err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	sender, err := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail).
		WithBaseURL(resend.GetUrl())
	if err != nil {
		return nil, err
	}

	database := mock.NewDb()
	timeMock := mock.NewTime()

	injector, err := dependency.NewInjector(cfg, database.DbConn, dependency.Options{
		Redis:       redisClient,
		EmailSender: sender,
		Now:         timeMock.Now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to wire dependencies: %w", err)
	}

	return &suite{
		server:   httptest.NewServer(injector.Router.Setup(cfg.Server.Environment)),
		db:       database,
		timeMock: timeMock,
		resend:   resend,
	}, nil
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		if err := shared.db.ClearDB(); err != nil {
			return ctx, fmt.Errorf("failed to clear database: %w", err)
		}
		if err := mock.ClearRedis(mock.NewRedis()); err != nil {
			return ctx, fmt.Errorf("failed to clear redis: %w", err)
		}
		shared.resend.Reset()
		shared.resend.SetResponse(http.MethodPost, emailsPath, http.StatusOK, map[string]any{"id": "email-1"})
		shared.timeMock.SetCurrentTime(time.Now().UTC())

		tc := &TestContext{
			client:  &http.Client{Timeout: 10 * time.Second},
			baseURL: shared.server.URL,
			saved:   make(map[string]string),
		}
		return SetTestContext(ctx, tc), nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerDomainSteps(ctx)
}
