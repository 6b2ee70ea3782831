package sale

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estate-ledger/backend/internal/application/adapter"
	"github.com/estate-ledger/backend/internal/domain/entity"
)

// UpdateSaleInput represents the input for sale update.
// Nil fields are left unchanged. Payment terms and the schedule cannot be edited.
type UpdateSaleInput struct {
	SaleID        uuid.UUID
	UnitType      *entity.UnitType
	UnitNumber    *string
	SaleDate      *time.Time
	CustomerName  *string
	CustomerPhone *string
	TotalPrice    *decimal.Decimal
	Notes         *string
}

// UpdateSaleOutput represents the output of sale update.
type UpdateSaleOutput struct {
	Sale *entity.Sale
}

// UpdateSaleUseCase handles sale update logic.
type UpdateSaleUseCase struct {
	saleRepo    adapter.SaleRepository
	projectRepo adapter.ProjectRepository
}

// NewUpdateSaleUseCase creates a new UpdateSaleUseCase instance.
func NewUpdateSaleUseCase(saleRepo adapter.SaleRepository, projectRepo adapter.ProjectRepository) *UpdateSaleUseCase {
	return &UpdateSaleUseCase{
		saleRepo:    saleRepo,
		projectRepo: projectRepo,
	}
}

// Execute performs the sale update.
func (uc *UpdateSaleUseCase) Execute(ctx context.Context, input UpdateSaleInput) (*UpdateSaleOutput, error) {
	// Find the existing sale
	sale, err := uc.saleRepo.FindByID(ctx, input.SaleID)
	if err != nil {
		return nil, saleNotFoundOr(err, "find sale")
	}

	if input.CustomerName != nil {
		name, err := validateCustomerName(*input.CustomerName)
		if err != nil {
			return nil, err
		}
		sale.CustomerName = name
	}

	if input.UnitType != nil && *input.UnitType != sale.UnitType {
		project, err := uc.projectRepo.FindByID(ctx, sale.ProjectID)
		if err != nil {
			return nil, projectNotFoundOr(err, "find project")
		}
		if err := validateUnitType(project, *input.UnitType); err != nil {
			return nil, err
		}
		sale.UnitType = *input.UnitType
	}

	if input.TotalPrice != nil {
		if err := validateTotalPrice(*input.TotalPrice); err != nil {
			return nil, err
		}
		sale.TotalPrice = *input.TotalPrice
	}

	if input.SaleDate != nil {
		if err := validateSaleDate(*input.SaleDate); err != nil {
			return nil, err
		}
		sale.SaleDate = *input.SaleDate
	}

	if input.UnitNumber != nil {
		sale.UnitNumber = strings.TrimSpace(*input.UnitNumber)
	}
	if input.CustomerPhone != nil {
		sale.CustomerPhone = strings.TrimSpace(*input.CustomerPhone)
	}
	if input.Notes != nil {
		sale.Notes = strings.TrimSpace(*input.Notes)
	}

	sale.UpdatedAt = time.Now().UTC()

	if err := uc.saleRepo.Update(ctx, sale); err != nil {
		return nil, saleNotFoundOr(err, "update sale")
	}

	return &UpdateSaleOutput{
		Sale: sale,
	}, nil
}
