// Package state loads the in-memory portfolio snapshot that reports are computed over.
package state

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/estate-ledger/backend/internal/application/adapter"
	"github.com/estate-ledger/backend/internal/domain/entity"
)

// Portfolio is a read-only snapshot of every project and sale taken at LoadedAt.
// Expenses are not part of the snapshot; they are fetched per project on demand.
type Portfolio struct {
	projects     []*entity.Project
	sales        []*entity.Sale
	projectIndex map[uuid.UUID]*entity.Project
	salesIndex   map[uuid.UUID][]*entity.Sale
	LoadedAt     time.Time
}

// NewPortfolio builds a snapshot from already loaded records, preserving their order.
func NewPortfolio(projects []*entity.Project, sales []*entity.Sale, loadedAt time.Time) *Portfolio {
	p := &Portfolio{
		projects:     projects,
		sales:        sales,
		projectIndex: make(map[uuid.UUID]*entity.Project, len(projects)),
		salesIndex:   make(map[uuid.UUID][]*entity.Sale),
		LoadedAt:     loadedAt,
	}
	for _, project := range projects {
		p.projectIndex[project.ID] = project
	}
	for _, sale := range sales {
		p.salesIndex[sale.ProjectID] = append(p.salesIndex[sale.ProjectID], sale)
	}
	return p
}

// Projects returns the projects in store order (newest first).
func (p *Portfolio) Projects() []*entity.Project {
	return p.projects
}

// Sales returns the sales in store order (most recent sale date first).
func (p *Portfolio) Sales() []*entity.Sale {
	return p.sales
}

// Project returns the project with the given ID, if it is part of the snapshot.
func (p *Portfolio) Project(id uuid.UUID) (*entity.Project, bool) {
	project, ok := p.projectIndex[id]
	return project, ok
}

// SalesForProject returns the sales recorded against a project.
func (p *Portfolio) SalesForProject(projectID uuid.UUID) []*entity.Sale {
	return p.salesIndex[projectID]
}

// Loader reads a fresh Portfolio from the repositories.
type Loader struct {
	projectRepo adapter.ProjectRepository
	saleRepo    adapter.SaleRepository
	now         func() time.Time
}

// NewLoader creates a new Loader instance.
func NewLoader(projectRepo adapter.ProjectRepository, saleRepo adapter.SaleRepository) *Loader {
	return &Loader{
		projectRepo: projectRepo,
		saleRepo:    saleRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the clock used to stamp snapshots.
func (l *Loader) WithClock(now func() time.Time) *Loader {
	l.now = now
	return l
}

// Load fetches all projects and sales. Either both lists load or an error is returned.
func (l *Loader) Load(ctx context.Context) (*Portfolio, error) {
	projects, err := l.projectRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	sales, err := l.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	return NewPortfolio(projects, sales, l.now()), nil
}
