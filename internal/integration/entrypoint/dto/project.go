package dto

import (
	"time"

	"github.com/estate-ledger/backend/internal/domain/entity"
)

// CreateProjectRequest represents the request body for project creation.
type CreateProjectRequest struct {
	Name            string `json:"name" binding:"required"`
	Location        string `json:"location"`
	Status          string `json:"status,omitempty"`
	ApartmentsCount int    `json:"apartments_count"`
	ShopsCount      int    `json:"shops_count"`
}

// UpdateProjectRequest represents the request body for a partial project update.
type UpdateProjectRequest struct {
	Name            *string `json:"name,omitempty"`
	Location        *string `json:"location,omitempty"`
	Status          *string `json:"status,omitempty"`
	ApartmentsCount *int    `json:"apartments_count,omitempty"`
	ShopsCount      *int    `json:"shops_count,omitempty"`
}

// ProjectResponse represents a single project in API responses.
type ProjectResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Location        string    `json:"location"`
	Status          string    `json:"status"`
	StatusLabel     string    `json:"status_label"`
	ApartmentsCount int       `json:"apartments_count"`
	ShopsCount      int       `json:"shops_count"`
	TotalUnits      int       `json:"total_units"`
	UnitTypes       []string  `json:"unit_types"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ProjectListResponse represents the response for listing projects.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// ToProjectResponse converts a domain Project entity to a ProjectResponse DTO.
func ToProjectResponse(p *entity.Project) ProjectResponse {
	offered := p.OfferedUnitTypes()
	unitTypes := make([]string, len(offered))
	for i, t := range offered {
		unitTypes[i] = string(t)
	}

	return ProjectResponse{
		ID:              p.ID.String(),
		Name:            p.Name,
		Location:        p.Location,
		Status:          string(p.Status),
		StatusLabel:     p.Status.Label(),
		ApartmentsCount: p.ApartmentsCount,
		ShopsCount:      p.ShopsCount,
		TotalUnits:      p.TotalUnits(),
		UnitTypes:       unitTypes,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ToProjectListResponse converts a slice of projects to a ProjectListResponse DTO.
func ToProjectListResponse(projects []*entity.Project) ProjectListResponse {
	response := ProjectListResponse{
		Projects: make([]ProjectResponse, len(projects)),
	}
	for i, p := range projects {
		response.Projects[i] = ToProjectResponse(p)
	}
	return response
}
