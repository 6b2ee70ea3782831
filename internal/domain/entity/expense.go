package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory represents the closed set of expense categories.
type ExpenseCategory string

const (
	ExpenseCategoryLand       ExpenseCategory = "land"
	ExpenseCategoryContractor ExpenseCategory = "contractor"
	ExpenseCategoryEngineer   ExpenseCategory = "engineer"
	ExpenseCategoryLabor      ExpenseCategory = "labor"
	ExpenseCategoryCustom     ExpenseCategory = "custom"
)

// IsValid reports whether the category is one of the known expense categories.
func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseCategoryLand,
		ExpenseCategoryContractor,
		ExpenseCategoryEngineer,
		ExpenseCategoryLabor,
		ExpenseCategoryCustom:
		return true
	default:
		return false
	}
}

// Label returns the fixed display label of a built-in category.
// Custom categories have no built-in label; use Expense.CategoryLabel instead.
func (c ExpenseCategory) Label() string {
	switch c {
	case ExpenseCategoryLand:
		return "أرض"
	case ExpenseCategoryContractor:
		return "مقاول"
	case ExpenseCategoryEngineer:
		return "مهندس"
	case ExpenseCategoryLabor:
		return "صنايعية وعمال"
	case ExpenseCategoryCustom:
		return "أخرى"
	default:
		return string(c)
	}
}

// Expense represents money spent on a project.
type Expense struct {
	ID             uuid.UUID
	ProjectID      uuid.UUID
	Date           time.Time
	Category       ExpenseCategory
	CustomCategory string // Only set when Category is custom
	Amount         decimal.Decimal
	Recipient      string
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	projectID uuid.UUID,
	date time.Time,
	category ExpenseCategory,
	customCategory string,
	amount decimal.Decimal,
	recipient, notes string,
) *Expense {
	now := time.Now().UTC()

	if category != ExpenseCategoryCustom {
		customCategory = ""
	}

	return &Expense{
		ID:             uuid.New(),
		ProjectID:      projectID,
		Date:           date,
		Category:       category,
		CustomCategory: customCategory,
		Amount:         amount,
		Recipient:      recipient,
		Notes:          notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// CategoryKey returns the grouping key for summaries: the custom label for
// custom expenses, the category code otherwise.
func (e *Expense) CategoryKey() string {
	if e.Category == ExpenseCategoryCustom && e.CustomCategory != "" {
		return e.CustomCategory
	}
	return string(e.Category)
}

// CategoryLabel returns the display label for the expense category.
func (e *Expense) CategoryLabel() string {
	if e.Category == ExpenseCategoryCustom && e.CustomCategory != "" {
		return e.CustomCategory
	}
	return e.Category.Label()
}
