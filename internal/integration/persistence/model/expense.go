// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estate-ledger/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID             uuid.UUID           `gorm:"type:uuid;primaryKey"`
	ProjectID      uuid.UUID           `gorm:"type:uuid;not null;index"`
	Date           time.Time           `gorm:"type:date;not null;index"`
	Category       string              `gorm:"type:varchar(30);not null"`
	CustomCategory string              `gorm:"type:varchar(255)"`
	Amount         decimal.NullDecimal `gorm:"type:decimal(15,2)"`
	Recipient      string              `gorm:"type:varchar(255)"`
	Notes          string              `gorm:"type:text"`
	CreatedAt      time.Time           `gorm:"not null"`
	UpdatedAt      time.Time           `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:             m.ID,
		ProjectID:      m.ProjectID,
		Date:           m.Date,
		Category:       entity.ExpenseCategory(m.Category),
		CustomCategory: m.CustomCategory,
		Amount:         decimalOrZero(m.Amount),
		Recipient:      m.Recipient,
		Notes:          m.Notes,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:             expense.ID,
		ProjectID:      expense.ProjectID,
		Date:           expense.Date,
		Category:       string(expense.Category),
		CustomCategory: expense.CustomCategory,
		Amount:         decimal.NewNullDecimal(expense.Amount),
		Recipient:      expense.Recipient,
		Notes:          expense.Notes,
		CreatedAt:      expense.CreatedAt,
		UpdatedAt:      expense.UpdatedAt,
	}
}

func decimalOrZero(v decimal.NullDecimal) decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}
	return v.Decimal
}
