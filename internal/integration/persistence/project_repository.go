package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/estate-ledger/backend/internal/application/adapter"
	"github.com/estate-ledger/backend/internal/domain/entity"
	"github.com/estate-ledger/backend/internal/integration/persistence/model"
)

// projectRepository implements the adapter.ProjectRepository interface.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance.
func NewProjectRepository(db *gorm.DB) adapter.ProjectRepository {
	return &projectRepository{
		db: db,
	}
}

// Create creates a new project in the database.
func (r *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	projectModel := model.ProjectFromEntity(project)
	result := r.db.WithContext(ctx).Omit("Expenses", "Sales").Create(projectModel)
	return translateError("projects.create", result.Error)
}

// FindByID retrieves a project by its ID.
func (r *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var projectModel model.ProjectModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&projectModel)
	if result.Error != nil {
		return nil, translateError("projects.find_by_id", result.Error)
	}
	return projectModel.ToEntity(), nil
}

// FindAll retrieves all projects ordered by creation time, newest first.
func (r *projectRepository) FindAll(ctx context.Context) ([]*entity.Project, error) {
	var projectModels []model.ProjectModel
	result := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&projectModels)
	if result.Error != nil {
		return nil, translateError("projects.find_all", result.Error)
	}

	projects := make([]*entity.Project, len(projectModels))
	for i, pm := range projectModels {
		projects[i] = pm.ToEntity()
	}
	return projects, nil
}

// Update updates an existing project in the database.
func (r *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	projectModel := model.ProjectFromEntity(project)
	result := r.db.WithContext(ctx).
		Model(&model.ProjectModel{}).
		Where("id = ?", project.ID).
		Select("name", "location", "status", "apartments_count", "shops_count", "updated_at").
		Updates(projectModel)
	if result.Error != nil {
		return translateError("projects.update", result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError("projects.update", gorm.ErrRecordNotFound)
	}
	return nil
}

// Delete removes a project and everything recorded against it.
func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&model.ExpenseModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.SaleModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&model.ProjectModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translateError("projects.delete", err)
}
