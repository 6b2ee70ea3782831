package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/estate-ledger/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	ProjectID      string          `json:"project_id" binding:"required,uuid"`
	Date           string          `json:"date" binding:"required"`
	Category       string          `json:"category" binding:"required"`
	CustomCategory string          `json:"custom_category,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Recipient      string          `json:"recipient"`
	Notes          string          `json:"notes"`
}

// UpdateExpenseRequest represents the request body for a partial expense update.
type UpdateExpenseRequest struct {
	Date           *string          `json:"date,omitempty"`
	Category       *string          `json:"category,omitempty"`
	CustomCategory *string          `json:"custom_category,omitempty"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	Recipient      *string          `json:"recipient,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID             string          `json:"id"`
	ProjectID      string          `json:"project_id"`
	Date           string          `json:"date"`
	Category       string          `json:"category"`
	CustomCategory string          `json:"custom_category,omitempty"`
	CategoryLabel  string          `json:"category_label"`
	Amount         decimal.Decimal `json:"amount"`
	Recipient      string          `json:"recipient"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:             e.ID.String(),
		ProjectID:      e.ProjectID.String(),
		Date:           formatDate(e.Date),
		Category:       string(e.Category),
		CustomCategory: e.CustomCategory,
		CategoryLabel:  e.CategoryLabel(),
		Amount:         e.Amount,
		Recipient:      e.Recipient,
		Notes:          e.Notes,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

// ToExpenseListResponse converts a slice of expenses to an ExpenseListResponse DTO.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	response := ExpenseListResponse{
		Expenses: make([]ExpenseResponse, len(expenses)),
	}
	for i, e := range expenses {
		response.Expenses[i] = ToExpenseResponse(e)
	}
	return response
}
