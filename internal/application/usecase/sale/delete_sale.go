package sale

import (
	"context"

	"github.com/google/uuid"

	"github.com/estate-ledger/backend/internal/application/adapter"
)

// DeleteSaleInput represents the input for sale deletion.
type DeleteSaleInput struct {
	SaleID uuid.UUID
}

// DeleteSaleUseCase handles sale deletion.
type DeleteSaleUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewDeleteSaleUseCase creates a new DeleteSaleUseCase instance.
func NewDeleteSaleUseCase(saleRepo adapter.SaleRepository) *DeleteSaleUseCase {
	return &DeleteSaleUseCase{
		saleRepo: saleRepo,
	}
}

// Execute performs the sale deletion.
func (uc *DeleteSaleUseCase) Execute(ctx context.Context, input DeleteSaleInput) error {
	if err := uc.saleRepo.Delete(ctx, input.SaleID); err != nil {
		return saleNotFoundOr(err, "delete sale")
	}
	return nil
}
