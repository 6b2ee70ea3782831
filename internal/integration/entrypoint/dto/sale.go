package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/estate-ledger/backend/internal/domain/entity"
)

// CreateSaleRequest represents the request body for sale creation.
type CreateSaleRequest struct {
	ProjectID         string          `json:"project_id" binding:"required,uuid"`
	UnitType          string          `json:"unit_type" binding:"required"`
	UnitNumber        string          `json:"unit_number"`
	SaleDate          string          `json:"sale_date" binding:"required"`
	CustomerName      string          `json:"customer_name"`
	CustomerPhone     string          `json:"customer_phone"`
	TotalPrice        decimal.Decimal `json:"total_price"`
	PaymentType       string          `json:"payment_type" binding:"required"`
	DownPayment       decimal.Decimal `json:"down_payment"`
	InstallmentsCount int             `json:"installments_count" binding:"gte=0,lte=480"`
	Notes             string          `json:"notes"`
}

// UpdateSaleRequest represents the request body for a partial sale update.
// Payment terms cannot be changed once the schedule exists.
type UpdateSaleRequest struct {
	UnitType      *string          `json:"unit_type,omitempty"`
	UnitNumber    *string          `json:"unit_number,omitempty"`
	SaleDate      *string          `json:"sale_date,omitempty"`
	CustomerName  *string          `json:"customer_name,omitempty"`
	CustomerPhone *string          `json:"customer_phone,omitempty"`
	TotalPrice    *decimal.Decimal `json:"total_price,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

// SetPaymentPaidRequest represents the request body for toggling a payment.
type SetPaymentPaidRequest struct {
	Paid *bool `json:"paid" binding:"required"`
}

// PaymentResponse represents one scheduled payment of a sale.
type PaymentResponse struct {
	Index    int             `json:"index"`
	Type     string          `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	DueDate  string          `json:"due_date"`
	Paid     bool            `json:"paid"`
	PaidDate *string         `json:"paid_date,omitempty"`
	Overdue  bool            `json:"overdue"`
}

// SaleResponse represents a single sale in API responses.
type SaleResponse struct {
	ID                string            `json:"id"`
	ProjectID         string            `json:"project_id"`
	UnitType          string            `json:"unit_type"`
	UnitTypeLabel     string            `json:"unit_type_label"`
	UnitNumber        string            `json:"unit_number"`
	SaleDate          string            `json:"sale_date"`
	CustomerName      string            `json:"customer_name"`
	CustomerPhone     string            `json:"customer_phone"`
	TotalPrice        decimal.Decimal   `json:"total_price"`
	PaymentType       string            `json:"payment_type"`
	DownPayment       decimal.Decimal   `json:"down_payment"`
	InstallmentsCount int               `json:"installments_count"`
	Notes             string            `json:"notes"`
	PaidAmount        decimal.Decimal   `json:"paid_amount"`
	RemainingAmount   decimal.Decimal   `json:"remaining_amount"`
	PaidCount         int               `json:"paid_count"`
	Payments          []PaymentResponse `json:"payments"`
	Version           int               `json:"version"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// SaleListResponse represents the response for listing sales.
type SaleListResponse struct {
	Sales []SaleResponse `json:"sales"`
}

// ToSaleResponse converts a domain Sale entity to a SaleResponse DTO.
// Overdue flags are evaluated against now.
func ToSaleResponse(s *entity.Sale, now time.Time) SaleResponse {
	payments := make([]PaymentResponse, len(s.Payments))
	for i := range s.Payments {
		p := &s.Payments[i]
		payments[i] = PaymentResponse{
			Index:   i,
			Type:    p.Type,
			Amount:  p.Amount,
			DueDate: formatDate(p.DueDate),
			Paid:    p.Paid,
			Overdue: p.IsOverdue(now),
		}
		if p.PaidDate != nil {
			dateStr := formatDate(*p.PaidDate)
			payments[i].PaidDate = &dateStr
		}
	}

	return SaleResponse{
		ID:                s.ID.String(),
		ProjectID:         s.ProjectID.String(),
		UnitType:          string(s.UnitType),
		UnitTypeLabel:     s.UnitType.Label(),
		UnitNumber:        s.UnitNumber,
		SaleDate:          formatDate(s.SaleDate),
		CustomerName:      s.CustomerName,
		CustomerPhone:     s.CustomerPhone,
		TotalPrice:        s.TotalPrice,
		PaymentType:       string(s.PaymentType),
		DownPayment:       s.DownPayment,
		InstallmentsCount: s.InstallmentsCount,
		Notes:             s.Notes,
		PaidAmount:        s.PaidAmount(),
		RemainingAmount:   s.RemainingAmount(),
		PaidCount:         s.PaidCount(),
		Payments:          payments,
		Version:           s.Version,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

// ToSaleListResponse converts a slice of sales to a SaleListResponse DTO.
func ToSaleListResponse(sales []*entity.Sale, now time.Time) SaleListResponse {
	response := SaleListResponse{
		Sales: make([]SaleResponse, len(sales)),
	}
	for i, s := range sales {
		response.Sales[i] = ToSaleResponse(s, now)
	}
	return response
}
