// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus represents the construction status of a project.
type ProjectStatus string

const (
	ProjectStatusUnderConstruction ProjectStatus = "under_construction"
	ProjectStatusCompleted         ProjectStatus = "completed"
)

// IsValid reports whether the status is one of the known project statuses.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusUnderConstruction, ProjectStatusCompleted:
		return true
	default:
		return false
	}
}

// Label returns the display label used in reports.
func (s ProjectStatus) Label() string {
	switch s {
	case ProjectStatusUnderConstruction:
		return "تحت الإنشاء"
	case ProjectStatusCompleted:
		return "مكتمل"
	default:
		return string(s)
	}
}

// Project represents a real-estate development project.
type Project struct {
	ID              uuid.UUID
	Name            string
	Location        string
	Status          ProjectStatus
	ApartmentsCount int
	ShopsCount      int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewProject creates a new Project entity.
func NewProject(name, location string, status ProjectStatus, apartmentsCount, shopsCount int) *Project {
	now := time.Now().UTC()

	return &Project{
		ID:              uuid.New(),
		Name:            name,
		Location:        location,
		Status:          status,
		ApartmentsCount: apartmentsCount,
		ShopsCount:      shopsCount,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// TotalUnits returns the number of sellable units in the project.
func (p *Project) TotalUnits() int {
	return p.ApartmentsCount + p.ShopsCount
}

// OfferedUnitTypes returns the unit types the project has inventory for.
func (p *Project) OfferedUnitTypes() []UnitType {
	types := make([]UnitType, 0, 2)
	if p.ApartmentsCount > 0 {
		types = append(types, UnitTypeApartment)
	}
	if p.ShopsCount > 0 {
		types = append(types, UnitTypeShop)
	}
	return types
}

// Offers reports whether the project has inventory of the given unit type.
func (p *Project) Offers(unitType UnitType) bool {
	switch unitType {
	case UnitTypeApartment:
		return p.ApartmentsCount > 0
	case UnitTypeShop:
		return p.ShopsCount > 0
	default:
		return false
	}
}
