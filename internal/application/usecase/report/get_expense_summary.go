package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estate-ledger/backend/internal/application/adapter"
)

// GetExpenseSummaryInput represents the input for a category summary.
type GetExpenseSummaryInput struct {
	ProjectID uuid.UUID
}

// GetExpenseSummaryOutput is the per-category breakdown of a project's expenses.
type GetExpenseSummaryOutput struct {
	Categories []CategorySummary
	Total      decimal.Decimal
	Count      int
}

// GetExpenseSummaryUseCase groups a project's expenses by category.
type GetExpenseSummaryUseCase struct {
	projectRepo adapter.ProjectRepository
	engine      *Engine
}

// NewGetExpenseSummaryUseCase creates a new GetExpenseSummaryUseCase instance.
func NewGetExpenseSummaryUseCase(projectRepo adapter.ProjectRepository, engine *Engine) *GetExpenseSummaryUseCase {
	return &GetExpenseSummaryUseCase{
		projectRepo: projectRepo,
		engine:      engine,
	}
}

// Execute computes the category summary.
func (uc *GetExpenseSummaryUseCase) Execute(ctx context.Context, input GetExpenseSummaryInput) (*GetExpenseSummaryOutput, error) {
	if _, err := uc.projectRepo.FindByID(ctx, input.ProjectID); err != nil {
		return nil, projectNotFoundOr(err, "find project")
	}

	categories, err := uc.engine.ExpenseCategorySummary(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	count := 0
	for _, c := range categories {
		total = total.Add(c.Total)
		count += c.Count
	}

	return &GetExpenseSummaryOutput{
		Categories: categories,
		Total:      total,
		Count:      count,
	}, nil
}
