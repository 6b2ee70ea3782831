package report

import (
	"context"
	"time"

	"github.com/estate-ledger/backend/internal/application/state"
)

// GetOverviewOutput is the full report: totals, ranking and pending payments.
type GetOverviewOutput struct {
	Totals      Totals
	Performance []ProjectPerformance
	Pending     *GetPendingPaymentsOutput
}

// GetOverviewUseCase builds the full report from one snapshot.
type GetOverviewUseCase struct {
	loader *state.Loader
	engine *Engine
	now    func() time.Time
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(loader *state.Loader, engine *Engine) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		loader: loader,
		engine: engine,
		now:    systemNow,
	}
}

// WithClock overrides the clock used for overdue evaluation.
func (uc *GetOverviewUseCase) WithClock(now func() time.Time) *GetOverviewUseCase {
	uc.now = now
	return uc
}

// Execute builds the report.
func (uc *GetOverviewUseCase) Execute(ctx context.Context) (*GetOverviewOutput, error) {
	portfolio, err := loadPortfolio(ctx, uc.loader)
	if err != nil {
		return nil, err
	}

	performances, err := uc.engine.Performances(ctx, portfolio)
	if err != nil {
		return nil, err
	}
	totals := TotalsFromPerformances(portfolio, performances)
	RankByProfit(performances)

	return &GetOverviewOutput{
		Totals:      totals,
		Performance: performances,
		Pending:     pendingOutput(PendingPayments(portfolio, uc.now())),
	}, nil
}
