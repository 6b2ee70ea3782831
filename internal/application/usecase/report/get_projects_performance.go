package report

import (
	"context"

	"github.com/estate-ledger/backend/internal/application/state"
)

// GetProjectsPerformanceOutput ranks projects by profit, highest first.
type GetProjectsPerformanceOutput struct {
	Projects []ProjectPerformance
}

// GetProjectsPerformanceUseCase ranks projects by profit.
type GetProjectsPerformanceUseCase struct {
	loader *state.Loader
	engine *Engine
}

// NewGetProjectsPerformanceUseCase creates a new GetProjectsPerformanceUseCase instance.
func NewGetProjectsPerformanceUseCase(loader *state.Loader, engine *Engine) *GetProjectsPerformanceUseCase {
	return &GetProjectsPerformanceUseCase{
		loader: loader,
		engine: engine,
	}
}

// Execute ranks the projects.
func (uc *GetProjectsPerformanceUseCase) Execute(ctx context.Context) (*GetProjectsPerformanceOutput, error) {
	portfolio, err := loadPortfolio(ctx, uc.loader)
	if err != nil {
		return nil, err
	}

	performances, err := uc.engine.ProjectsPerformance(ctx, portfolio)
	if err != nil {
		return nil, err
	}

	return &GetProjectsPerformanceOutput{
		Projects: performances,
	}, nil
}
