// Package project contains project-related use cases.
package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/estate-ledger/backend/internal/application/adapter"
	"github.com/estate-ledger/backend/internal/domain/entity"
	domainerror "github.com/estate-ledger/backend/internal/domain/error"
)

// CreateProjectInput represents the input for project creation.
type CreateProjectInput struct {
	Name            string
	Location        string
	Status          entity.ProjectStatus // Optional, defaults to under_construction
	ApartmentsCount int
	ShopsCount      int
}

// CreateProjectOutput represents the output of project creation.
type CreateProjectOutput struct {
	Project *entity.Project
}

// CreateProjectUseCase handles project creation logic.
type CreateProjectUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewCreateProjectUseCase creates a new CreateProjectUseCase instance.
func NewCreateProjectUseCase(projectRepo adapter.ProjectRepository) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: projectRepo,
	}
}

// Execute performs the project creation.
func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeProjectNameRequired,
			"project name is required",
			domainerror.ErrProjectNameRequired,
		)
	}

	status := input.Status
	if status == "" {
		status = entity.ProjectStatusUnderConstruction
	}
	if err := validateStatus(status); err != nil {
		return nil, err
	}

	if err := validateUnitCount(input.ApartmentsCount, input.ShopsCount); err != nil {
		return nil, err
	}

	project := entity.NewProject(
		name,
		strings.TrimSpace(input.Location),
		status,
		input.ApartmentsCount,
		input.ShopsCount,
	)

	if err := uc.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return &CreateProjectOutput{
		Project: project,
	}, nil
}
