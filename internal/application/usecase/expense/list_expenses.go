package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/estate-ledger/backend/internal/application/adapter"
	"github.com/estate-ledger/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for listing a project's expenses.
type ListExpensesInput struct {
	ProjectID uuid.UUID
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
}

// ListExpensesUseCase lists the expenses of a project, most recent date first.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
	projectRepo adapter.ProjectRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository, projectRepo adapter.ProjectRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
		projectRepo: projectRepo,
	}
}

// Execute lists the expenses.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	if _, err := uc.projectRepo.FindByID(ctx, input.ProjectID); err != nil {
		return nil, projectNotFoundOr(err, "find project")
	}

	expenses, err := uc.expenseRepo.FindByProjectID(ctx, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return &ListExpensesOutput{
		Expenses: expenses,
	}, nil
}
