package project

import (
	"context"

	"github.com/google/uuid"

	"github.com/estate-ledger/backend/internal/application/adapter"
)

// DeleteProjectInput represents the input for project deletion.
type DeleteProjectInput struct {
	ProjectID uuid.UUID
}

// DeleteProjectUseCase handles project deletion. The project's expenses and
// sales are removed with it.
type DeleteProjectUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewDeleteProjectUseCase creates a new DeleteProjectUseCase instance.
func NewDeleteProjectUseCase(projectRepo adapter.ProjectRepository) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		projectRepo: projectRepo,
	}
}

// Execute performs the project deletion.
func (uc *DeleteProjectUseCase) Execute(ctx context.Context, input DeleteProjectInput) error {
	if err := uc.projectRepo.Delete(ctx, input.ProjectID); err != nil {
		return notFoundOr(err, "delete project")
	}
	return nil
}
