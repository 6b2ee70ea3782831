package report

import (
	"context"

	"github.com/estate-ledger/backend/internal/application/state"
)

// ProjectCard is one project tile on the dashboard.
type ProjectCard struct {
	Performance ProjectPerformance
	SoldUnits   int
	TotalUnits  int
}

// GetDashboardOutput represents the dashboard totals and project cards.
type GetDashboardOutput struct {
	Totals   Totals
	Projects []ProjectCard // Snapshot order, newest project first
}

// GetDashboardUseCase computes the dashboard.
type GetDashboardUseCase struct {
	loader *state.Loader
	engine *Engine
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(loader *state.Loader, engine *Engine) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		loader: loader,
		engine: engine,
	}
}

// Execute computes the dashboard from a fresh snapshot.
func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*GetDashboardOutput, error) {
	portfolio, err := loadPortfolio(ctx, uc.loader)
	if err != nil {
		return nil, err
	}

	performances, err := uc.engine.Performances(ctx, portfolio)
	if err != nil {
		return nil, err
	}

	cards := make([]ProjectCard, len(performances))
	for i, p := range performances {
		cards[i] = ProjectCard{
			Performance: p,
			SoldUnits:   p.SalesCount,
			TotalUnits:  p.Project.TotalUnits(),
		}
	}

	return &GetDashboardOutput{
		Totals:   TotalsFromPerformances(portfolio, performances),
		Projects: cards,
	}, nil
}
