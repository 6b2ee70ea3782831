package sale

import (
	"context"

	"github.com/google/uuid"

	"github.com/estate-ledger/backend/internal/application/adapter"
	"github.com/estate-ledger/backend/internal/domain/entity"
)

// GetSaleInput represents the input for fetching a sale.
type GetSaleInput struct {
	SaleID uuid.UUID
}

// GetSaleOutput represents the output of fetching a sale.
type GetSaleOutput struct {
	Sale *entity.Sale
}

// GetSaleUseCase handles fetching a single sale with its schedule.
type GetSaleUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewGetSaleUseCase creates a new GetSaleUseCase instance.
func NewGetSaleUseCase(saleRepo adapter.SaleRepository) *GetSaleUseCase {
	return &GetSaleUseCase{
		saleRepo: saleRepo,
	}
}

// Execute fetches the sale.
func (uc *GetSaleUseCase) Execute(ctx context.Context, input GetSaleInput) (*GetSaleOutput, error) {
	sale, err := uc.saleRepo.FindByID(ctx, input.SaleID)
	if err != nil {
		return nil, saleNotFoundOr(err, "find sale")
	}

	return &GetSaleOutput{
		Sale: sale,
	}, nil
}
