package sale

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estate-ledger/backend/internal/application/adapter"
	"github.com/estate-ledger/backend/internal/domain/entity"
	domainerror "github.com/estate-ledger/backend/internal/domain/error"
	"github.com/estate-ledger/backend/internal/domain/valueobject"
)

// CreateSaleInput represents the input for sale creation.
type CreateSaleInput struct {
	ProjectID         uuid.UUID
	UnitType          entity.UnitType
	UnitNumber        string
	SaleDate          time.Time
	CustomerName      string
	CustomerPhone     string
	TotalPrice        decimal.Decimal
	PaymentType       entity.PaymentType
	DownPayment       decimal.Decimal // Ignored for cash sales
	InstallmentsCount int             // Ignored for cash sales
	Notes             string
}

// CreateSaleOutput represents the output of sale creation.
type CreateSaleOutput struct {
	Sale *entity.Sale
}

// CreateSaleUseCase records a sale and generates its payment schedule.
type CreateSaleUseCase struct {
	saleRepo    adapter.SaleRepository
	projectRepo adapter.ProjectRepository
	schedule    valueobject.ScheduleConfig
}

// NewCreateSaleUseCase creates a new CreateSaleUseCase instance.
func NewCreateSaleUseCase(saleRepo adapter.SaleRepository, projectRepo adapter.ProjectRepository) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo:    saleRepo,
		projectRepo: projectRepo,
		schedule:    valueobject.DefaultScheduleConfig(),
	}
}

// Execute performs the sale creation.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, input CreateSaleInput) (*CreateSaleOutput, error) {
	// Validate fields
	customerName, err := validateCustomerName(input.CustomerName)
	if err != nil {
		return nil, err
	}
	if !input.PaymentType.IsValid() {
		return nil, scheduleError(domainerror.ErrInvalidPaymentType)
	}
	if err := validateTotalPrice(input.TotalPrice); err != nil {
		return nil, err
	}
	if err := validateSaleDate(input.SaleDate); err != nil {
		return nil, err
	}

	// Validate project exists and offers the unit type
	project, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, projectNotFoundOr(err, "find project")
	}
	if err := validateUnitType(project, input.UnitType); err != nil {
		return nil, err
	}

	sale := entity.NewSale(
		input.ProjectID,
		input.UnitType,
		strings.TrimSpace(input.UnitNumber),
		input.SaleDate,
		customerName,
		strings.TrimSpace(input.CustomerPhone),
		input.TotalPrice,
		input.PaymentType,
		input.DownPayment,
		input.InstallmentsCount,
		strings.TrimSpace(input.Notes),
	)

	// Generate the payment schedule once; later edits never regenerate it
	payments, err := uc.schedule.Generate(valueobject.ScheduleTerms{
		TotalPrice:        sale.TotalPrice,
		PaymentType:       sale.PaymentType,
		SaleDate:          sale.SaleDate,
		DownPayment:       sale.DownPayment,
		InstallmentsCount: sale.InstallmentsCount,
	})
	if err != nil {
		return nil, scheduleError(err)
	}
	sale.Payments = payments

	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	return &CreateSaleOutput{
		Sale: sale,
	}, nil
}
