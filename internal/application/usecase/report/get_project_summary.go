package report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/estate-ledger/backend/internal/application/state"
	"github.com/estate-ledger/backend/internal/domain/entity"
)

// GetProjectSummaryInput represents the input for a project summary.
type GetProjectSummaryInput struct {
	ProjectID uuid.UUID
}

// GetProjectSummaryOutput is the detail view of one project.
type GetProjectSummaryOutput struct {
	Performance ProjectPerformance
	SoldUnits   int
	TotalUnits  int
	Categories  []CategorySummary
	Expenses    []*entity.Expense // Most recent first
	Sales       []SaleProgress
	EvaluatedAt time.Time
}

// GetProjectSummaryUseCase computes the detail view of one project.
type GetProjectSummaryUseCase struct {
	loader *state.Loader
	engine *Engine
	now    func() time.Time
}

// NewGetProjectSummaryUseCase creates a new GetProjectSummaryUseCase instance.
func NewGetProjectSummaryUseCase(loader *state.Loader, engine *Engine) *GetProjectSummaryUseCase {
	return &GetProjectSummaryUseCase{
		loader: loader,
		engine: engine,
		now:    systemNow,
	}
}

// WithClock overrides the clock used for overdue evaluation.
func (uc *GetProjectSummaryUseCase) WithClock(now func() time.Time) *GetProjectSummaryUseCase {
	uc.now = now
	return uc
}

// Execute computes the project summary.
func (uc *GetProjectSummaryUseCase) Execute(ctx context.Context, input GetProjectSummaryInput) (*GetProjectSummaryOutput, error) {
	portfolio, err := loadPortfolio(ctx, uc.loader)
	if err != nil {
		return nil, err
	}

	project, ok := portfolio.Project(input.ProjectID)
	if !ok {
		return nil, projectNotFound()
	}

	expenses, err := uc.engine.ProjectExpenses(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	sales := portfolio.SalesForProject(project.ID)
	now := uc.now()
	progress := make([]SaleProgress, len(sales))
	for i, sale := range sales {
		progress[i] = ProgressOf(sale, now)
	}

	return &GetProjectSummaryOutput{
		Performance: NewProjectPerformance(project, expenses, sales),
		SoldUnits:   len(sales),
		TotalUnits:  project.TotalUnits(),
		Categories:  SummarizeExpenses(expenses),
		Expenses:    expenses,
		Sales:       progress,
		EvaluatedAt: now,
	}, nil
}
