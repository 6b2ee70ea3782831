package sale

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/estate-ledger/backend/internal/application/adapter"
	"github.com/estate-ledger/backend/internal/domain/entity"
)

// ListSalesInput represents the input for listing sales.
type ListSalesInput struct {
	ProjectID *uuid.UUID // Optional, restricts the list to one project
}

// ListSalesOutput represents the output of listing sales.
type ListSalesOutput struct {
	Sales []*entity.Sale
}

// ListSalesUseCase lists sales, most recent sale date first.
type ListSalesUseCase struct {
	saleRepo    adapter.SaleRepository
	projectRepo adapter.ProjectRepository
}

// NewListSalesUseCase creates a new ListSalesUseCase instance.
func NewListSalesUseCase(saleRepo adapter.SaleRepository, projectRepo adapter.ProjectRepository) *ListSalesUseCase {
	return &ListSalesUseCase{
		saleRepo:    saleRepo,
		projectRepo: projectRepo,
	}
}

// Execute lists the sales.
func (uc *ListSalesUseCase) Execute(ctx context.Context, input ListSalesInput) (*ListSalesOutput, error) {
	if input.ProjectID == nil {
		sales, err := uc.saleRepo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list sales: %w", err)
		}
		return &ListSalesOutput{Sales: sales}, nil
	}

	if _, err := uc.projectRepo.FindByID(ctx, *input.ProjectID); err != nil {
		return nil, projectNotFoundOr(err, "find project")
	}

	sales, err := uc.saleRepo.FindByProjectID(ctx, *input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project sales: %w", err)
	}

	return &ListSalesOutput{
		Sales: sales,
	}, nil
}
