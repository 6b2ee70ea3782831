package project

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/estate-ledger/backend/internal/application/adapter"
	"github.com/estate-ledger/backend/internal/domain/entity"
	domainerror "github.com/estate-ledger/backend/internal/domain/error"
)

// UpdateProjectInput represents the input for project update.
// Nil fields are left unchanged.
type UpdateProjectInput struct {
	ProjectID       uuid.UUID
	Name            *string
	Location        *string
	Status          *entity.ProjectStatus
	ApartmentsCount *int
	ShopsCount      *int
}

// UpdateProjectOutput represents the output of project update.
type UpdateProjectOutput struct {
	Project *entity.Project
}

// UpdateProjectUseCase handles project update logic.
type UpdateProjectUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewUpdateProjectUseCase creates a new UpdateProjectUseCase instance.
func NewUpdateProjectUseCase(projectRepo adapter.ProjectRepository) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo: projectRepo,
	}
}

// Execute performs the project update.
func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	// Find the existing project
	project, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, notFoundOr(err, "find project")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewProjectError(
				domainerror.ErrCodeProjectNameRequired,
				"project name is required",
				domainerror.ErrProjectNameRequired,
			)
		}
		project.Name = name
	}

	if input.Location != nil {
		project.Location = strings.TrimSpace(*input.Location)
	}

	if input.Status != nil {
		if err := validateStatus(*input.Status); err != nil {
			return nil, err
		}
		project.Status = *input.Status
	}

	if input.ApartmentsCount != nil {
		if err := validateUnitCount(*input.ApartmentsCount); err != nil {
			return nil, err
		}
		project.ApartmentsCount = *input.ApartmentsCount
	}

	if input.ShopsCount != nil {
		if err := validateUnitCount(*input.ShopsCount); err != nil {
			return nil, err
		}
		project.ShopsCount = *input.ShopsCount
	}

	project.UpdatedAt = time.Now().UTC()

	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, notFoundOr(err, "update project")
	}

	return &UpdateProjectOutput{
		Project: project,
	}, nil
}
