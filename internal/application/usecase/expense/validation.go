// Package expense contains expense-related use cases.
package expense

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/estate-ledger/backend/internal/domain/entity"
	domainerror "github.com/estate-ledger/backend/internal/domain/error"
	"github.com/estate-ledger/backend/internal/domain/valueobject"
)

// validateCategory checks the category and returns the normalised custom label.
func validateCategory(category entity.ExpenseCategory, customCategory string) (string, error) {
	if !category.IsValid() {
		return "", domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseCategory,
			"category must be 'land', 'contractor', 'engineer', 'labor', or 'custom'",
			domainerror.ErrInvalidExpenseCategory,
		)
	}

	if category != entity.ExpenseCategoryCustom {
		return "", nil
	}

	label := strings.TrimSpace(customCategory)
	if label == "" {
		return "", domainerror.NewExpenseError(
			domainerror.ErrCodeCustomCategoryRequired,
			"custom category label is required",
			domainerror.ErrCustomCategoryRequired,
		)
	}
	return label, nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidExpenseAmount,
		)
	}
	if !valueobject.HasMoneyScale(amount) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount cannot have more than two decimal places",
			domainerror.ErrInvalidExpenseAmount,
		)
	}
	return nil
}

func validateDate(date time.Time) error {
	if date.IsZero() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseDate,
			"expense date is required",
			domainerror.ErrInvalidExpenseDate,
		)
	}
	return nil
}

func expenseNotFoundOr(err error, action string) error {
	if errors.Is(err, domainerror.ErrRecordNotFound) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func projectNotFoundOr(err error, action string) error {
	if errors.Is(err, domainerror.ErrRecordNotFound) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseProjectNotFound,
			"project not found",
			domainerror.ErrExpenseProjectNotFound,
		)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
