package expense

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estate-ledger/backend/internal/application/adapter"
	"github.com/estate-ledger/backend/internal/domain/entity"
)

// UpdateExpenseInput represents the input for expense update.
// Nil fields are left unchanged. The owning project cannot be changed.
type UpdateExpenseInput struct {
	ExpenseID      uuid.UUID
	Date           *time.Time
	Category       *entity.ExpenseCategory
	CustomCategory *string
	Amount         *decimal.Decimal
	Recipient      *string
	Notes          *string
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	// Find the existing expense
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		return nil, expenseNotFoundOr(err, "find expense")
	}

	// Category and custom label are validated together
	category := expense.Category
	if input.Category != nil {
		category = *input.Category
	}
	customCategory := expense.CustomCategory
	if input.CustomCategory != nil {
		customCategory = *input.CustomCategory
	}
	customCategory, err = validateCategory(category, customCategory)
	if err != nil {
		return nil, err
	}
	expense.Category = category
	expense.CustomCategory = customCategory

	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
		expense.Amount = *input.Amount
	}

	if input.Date != nil {
		if err := validateDate(*input.Date); err != nil {
			return nil, err
		}
		expense.Date = *input.Date
	}

	if input.Recipient != nil {
		expense.Recipient = strings.TrimSpace(*input.Recipient)
	}
	if input.Notes != nil {
		expense.Notes = strings.TrimSpace(*input.Notes)
	}

	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, expenseNotFoundOr(err, "update expense")
	}

	return &UpdateExpenseOutput{
		Expense: expense,
	}, nil
}
