// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/estate-ledger/backend/internal/domain/entity"
)

// ProjectModel represents the projects table in the database.
type ProjectModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name            string         `gorm:"type:varchar(255);not null"`
	Location        string         `gorm:"type:varchar(255)"`
	Status          string         `gorm:"type:varchar(30);not null;default:'under_construction'"`
	ApartmentsCount *int           `gorm:"column:apartments_count"`
	ShopsCount      *int           `gorm:"column:shops_count"`
	Expenses        []ExpenseModel `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Sales           []SaleModel    `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time      `gorm:"not null;index"`
	UpdatedAt       time.Time      `gorm:"not null"`
}

// TableName returns the table name for the ProjectModel.
func (ProjectModel) TableName() string {
	return "projects"
}

// ToEntity converts a ProjectModel to a domain Project entity.
// Missing unit counts read as zero.
func (m *ProjectModel) ToEntity() *entity.Project {
	return &entity.Project{
		ID:              m.ID,
		Name:            m.Name,
		Location:        m.Location,
		Status:          entity.ProjectStatus(m.Status),
		ApartmentsCount: intOrZero(m.ApartmentsCount),
		ShopsCount:      intOrZero(m.ShopsCount),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ProjectFromEntity creates a ProjectModel from a domain Project entity.
func ProjectFromEntity(project *entity.Project) *ProjectModel {
	apartments := project.ApartmentsCount
	shops := project.ShopsCount

	return &ProjectModel{
		ID:              project.ID,
		Name:            project.Name,
		Location:        project.Location,
		Status:          string(project.Status),
		ApartmentsCount: &apartments,
		ShopsCount:      &shops,
		CreatedAt:       project.CreatedAt,
		UpdatedAt:       project.UpdatedAt,
	}
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
