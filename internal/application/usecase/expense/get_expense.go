package expense

import (
	"context"

	"github.com/google/uuid"

	"github.com/estate-ledger/backend/internal/application/adapter"
	"github.com/estate-ledger/backend/internal/domain/entity"
)

// GetExpenseInput represents the input for fetching an expense.
type GetExpenseInput struct {
	ExpenseID uuid.UUID
}

// GetExpenseOutput represents the output of fetching an expense.
type GetExpenseOutput struct {
	Expense *entity.Expense
}

// GetExpenseUseCase handles fetching a single expense.
type GetExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetExpenseUseCase creates a new GetExpenseUseCase instance.
func NewGetExpenseUseCase(expenseRepo adapter.ExpenseRepository) *GetExpenseUseCase {
	return &GetExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute fetches the expense.
func (uc *GetExpenseUseCase) Execute(ctx context.Context, input GetExpenseInput) (*GetExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		return nil, expenseNotFoundOr(err, "find expense")
	}

	return &GetExpenseOutput{
		Expense: expense,
	}, nil
}
