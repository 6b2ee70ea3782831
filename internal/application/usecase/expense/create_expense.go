package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estate-ledger/backend/internal/application/adapter"
	"github.com/estate-ledger/backend/internal/domain/entity"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	ProjectID      uuid.UUID
	Date           time.Time
	Category       entity.ExpenseCategory
	CustomCategory string // Required when Category is custom
	Amount         decimal.Decimal
	Recipient      string
	Notes          string
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	projectRepo adapter.ProjectRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository, projectRepo adapter.ProjectRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		projectRepo: projectRepo,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	// Validate fields
	customCategory, err := validateCategory(input.Category, input.CustomCategory)
	if err != nil {
		return nil, err
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := validateDate(input.Date); err != nil {
		return nil, err
	}

	// Validate project exists
	if _, err := uc.projectRepo.FindByID(ctx, input.ProjectID); err != nil {
		return nil, projectNotFoundOr(err, "find project")
	}

	expense := entity.NewExpense(
		input.ProjectID,
		input.Date,
		input.Category,
		customCategory,
		input.Amount,
		strings.TrimSpace(input.Recipient),
		strings.TrimSpace(input.Notes),
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{
		Expense: expense,
	}, nil
}
