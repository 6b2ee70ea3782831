// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estate-ledger/backend/internal/domain/entity"
)

// SaleModel represents the sales table in the database.
// The payment schedule is embedded as a JSON array.
type SaleModel struct {
	ID                uuid.UUID           `gorm:"type:uuid;primaryKey"`
	ProjectID         uuid.UUID           `gorm:"type:uuid;not null;index"`
	UnitType          string              `gorm:"type:varchar(20);not null"`
	UnitNumber        string              `gorm:"type:varchar(50)"`
	SaleDate          time.Time           `gorm:"type:date;not null;index"`
	CustomerName      string              `gorm:"type:varchar(255);not null"`
	CustomerPhone     string              `gorm:"type:varchar(50)"`
	TotalPrice        decimal.NullDecimal `gorm:"type:decimal(15,2)"`
	PaymentType       string              `gorm:"type:varchar(20);not null"`
	DownPayment       decimal.NullDecimal `gorm:"type:decimal(15,2)"`
	InstallmentsCount *int                `gorm:"column:installments_count"`
	Notes             string              `gorm:"type:text"`
	Payments          []PaymentModel      `gorm:"type:jsonb;serializer:json"`
	Version           int                 `gorm:"not null;default:1"`
	CreatedAt         time.Time           `gorm:"not null"`
	UpdatedAt         time.Time           `gorm:"not null"`
}

// TableName returns the table name for the SaleModel.
func (SaleModel) TableName() string {
	return "sales"
}

// ToEntity converts a SaleModel to a domain Sale entity.
func (m *SaleModel) ToEntity() *entity.Sale {
	payments := make([]entity.Payment, len(m.Payments))
	for i, p := range m.Payments {
		payments[i] = p.ToEntity()
	}

	return &entity.Sale{
		ID:                m.ID,
		ProjectID:         m.ProjectID,
		UnitType:          entity.UnitType(m.UnitType),
		UnitNumber:        m.UnitNumber,
		SaleDate:          m.SaleDate,
		CustomerName:      m.CustomerName,
		CustomerPhone:     m.CustomerPhone,
		TotalPrice:        decimalOrZero(m.TotalPrice),
		PaymentType:       entity.PaymentType(m.PaymentType),
		DownPayment:       decimalOrZero(m.DownPayment),
		InstallmentsCount: intOrZero(m.InstallmentsCount),
		Notes:             m.Notes,
		Payments:          payments,
		Version:           m.Version,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// SaleFromEntity creates a SaleModel from a domain Sale entity.
func SaleFromEntity(sale *entity.Sale) *SaleModel {
	installments := sale.InstallmentsCount

	return &SaleModel{
		ID:                sale.ID,
		ProjectID:         sale.ProjectID,
		UnitType:          string(sale.UnitType),
		UnitNumber:        sale.UnitNumber,
		SaleDate:          sale.SaleDate,
		CustomerName:      sale.CustomerName,
		CustomerPhone:     sale.CustomerPhone,
		TotalPrice:        decimal.NewNullDecimal(sale.TotalPrice),
		PaymentType:       string(sale.PaymentType),
		DownPayment:       decimal.NewNullDecimal(sale.DownPayment),
		InstallmentsCount: &installments,
		Notes:             sale.Notes,
		Payments:          PaymentsFromEntity(sale.Payments),
		Version:           sale.Version,
		CreatedAt:         sale.CreatedAt,
		UpdatedAt:         sale.UpdatedAt,
	}
}
