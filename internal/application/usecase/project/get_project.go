package project

import (
	"context"

	"github.com/google/uuid"

	"github.com/estate-ledger/backend/internal/application/adapter"
	"github.com/estate-ledger/backend/internal/domain/entity"
)

// GetProjectInput represents the input for fetching a project.
type GetProjectInput struct {
	ProjectID uuid.UUID
}

// GetProjectOutput represents the output of fetching a project.
type GetProjectOutput struct {
	Project *entity.Project
}

// GetProjectUseCase handles fetching a single project.
type GetProjectUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewGetProjectUseCase creates a new GetProjectUseCase instance.
func NewGetProjectUseCase(projectRepo adapter.ProjectRepository) *GetProjectUseCase {
	return &GetProjectUseCase{
		projectRepo: projectRepo,
	}
}

// Execute fetches the project.
func (uc *GetProjectUseCase) Execute(ctx context.Context, input GetProjectInput) (*GetProjectOutput, error) {
	project, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, notFoundOr(err, "find project")
	}

	return &GetProjectOutput{
		Project: project,
	}, nil
}
