package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnitType represents the kind of unit being sold.
type UnitType string

const (
	UnitTypeApartment UnitType = "apartment"
	UnitTypeShop      UnitType = "shop"
)

// IsValid reports whether the unit type is known.
func (u UnitType) IsValid() bool {
	switch u {
	case UnitTypeApartment, UnitTypeShop:
		return true
	default:
		return false
	}
}

// Label returns the display label of the unit type.
func (u UnitType) Label() string {
	switch u {
	case UnitTypeApartment:
		return "شقة"
	case UnitTypeShop:
		return "محل"
	default:
		return string(u)
	}
}

// PaymentType represents how a sale is paid.
type PaymentType string

const (
	PaymentTypeCash        PaymentType = "cash"
	PaymentTypeInstallment PaymentType = "installment"
)

// IsValid reports whether the payment type is known.
func (p PaymentType) IsValid() bool {
	switch p {
	case PaymentTypeCash, PaymentTypeInstallment:
		return true
	default:
		return false
	}
}

// Sale represents the sale of one unit to a customer.
type Sale struct {
	ID                uuid.UUID
	ProjectID         uuid.UUID
	UnitType          UnitType
	UnitNumber        string
	SaleDate          time.Time
	CustomerName      string
	CustomerPhone     string
	TotalPrice        decimal.Decimal
	PaymentType       PaymentType
	DownPayment       decimal.Decimal // Installment sales only
	InstallmentsCount int             // Installment sales only
	Notes             string
	Payments          []Payment
	Version           int // Incremented on every payments write
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewSale creates a new Sale entity. The payment schedule is attached by the caller.
func NewSale(
	projectID uuid.UUID,
	unitType UnitType,
	unitNumber string,
	saleDate time.Time,
	customerName, customerPhone string,
	totalPrice decimal.Decimal,
	paymentType PaymentType,
	downPayment decimal.Decimal,
	installmentsCount int,
	notes string,
) *Sale {
	now := time.Now().UTC()

	if paymentType == PaymentTypeCash {
		downPayment = decimal.Zero
		installmentsCount = 0
	}

	return &Sale{
		ID:                uuid.New(),
		ProjectID:         projectID,
		UnitType:          unitType,
		UnitNumber:        unitNumber,
		SaleDate:          saleDate,
		CustomerName:      customerName,
		CustomerPhone:     customerPhone,
		TotalPrice:        totalPrice,
		PaymentType:       paymentType,
		DownPayment:       downPayment,
		InstallmentsCount: installmentsCount,
		Notes:             notes,
		Payments:          []Payment{},
		Version:           1,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// PaidAmount returns the sum of paid payment amounts.
func (s *Sale) PaidAmount() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.Payments {
		if p.Paid {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// RemainingAmount returns the part of the total price not yet collected.
func (s *Sale) RemainingAmount() decimal.Decimal {
	return s.TotalPrice.Sub(s.PaidAmount())
}

// PaidCount returns the number of settled payments.
func (s *Sale) PaidCount() int {
	count := 0
	for _, p := range s.Payments {
		if p.Paid {
			count++
		}
	}
	return count
}

// HasOverdue reports whether any unpaid payment is due before now.
func (s *Sale) HasOverdue(now time.Time) bool {
	for _, p := range s.Payments {
		if p.IsOverdue(now) {
			return true
		}
	}
	return false
}
