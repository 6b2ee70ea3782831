package report

import (
	"context"
	"time"

	"github.com/estate-ledger/backend/internal/application/state"
)

// GetSalesByProjectOutput groups sales under their projects.
type GetSalesByProjectOutput struct {
	Groups      []ProjectSales
	EvaluatedAt time.Time
}

// GetSalesByProjectUseCase groups sales with their payment progress by project.
type GetSalesByProjectUseCase struct {
	loader *state.Loader
	now    func() time.Time
}

// NewGetSalesByProjectUseCase creates a new GetSalesByProjectUseCase instance.
func NewGetSalesByProjectUseCase(loader *state.Loader) *GetSalesByProjectUseCase {
	return &GetSalesByProjectUseCase{
		loader: loader,
		now:    systemNow,
	}
}

// WithClock overrides the clock used for overdue evaluation.
func (uc *GetSalesByProjectUseCase) WithClock(now func() time.Time) *GetSalesByProjectUseCase {
	uc.now = now
	return uc
}

// Execute groups the sales.
func (uc *GetSalesByProjectUseCase) Execute(ctx context.Context) (*GetSalesByProjectOutput, error) {
	portfolio, err := loadPortfolio(ctx, uc.loader)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	return &GetSalesByProjectOutput{
		Groups:      GroupSalesByProject(portfolio, now),
		EvaluatedAt: now,
	}, nil
}
