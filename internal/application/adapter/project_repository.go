// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/estate-ledger/backend/internal/domain/entity"
)

//go:generate mockgen -source=project_repository.go -destination=mock/project_repository_mock.go -package=mock

// ProjectRepository defines the interface for project persistence operations.
type ProjectRepository interface {
	// Create creates a new project in the database.
	Create(ctx context.Context, project *entity.Project) error

	// FindByID retrieves a project by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// FindAll retrieves all projects, newest first.
	FindAll(ctx context.Context) ([]*entity.Project, error)

	// Update updates an existing project in the database.
	Update(ctx context.Context, project *entity.Project) error

	// Delete removes a project together with its expenses and sales.
	Delete(ctx context.Context, id uuid.UUID) error
}
