package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estate-ledger/backend/internal/application/usecase/project"
	"github.com/estate-ledger/backend/internal/domain/entity"
	domainerror "github.com/estate-ledger/backend/internal/domain/error"
	"github.com/estate-ledger/backend/internal/integration/entrypoint/dto"
)

// ProjectController handles project endpoints.
type ProjectController struct {
	listUseCase   *project.ListProjectsUseCase
	createUseCase *project.CreateProjectUseCase
	getUseCase    *project.GetProjectUseCase
	updateUseCase *project.UpdateProjectUseCase
	deleteUseCase *project.DeleteProjectUseCase
}

// NewProjectController creates a new project controller instance.
func NewProjectController(
	listUseCase *project.ListProjectsUseCase,
	createUseCase *project.CreateProjectUseCase,
	getUseCase *project.GetProjectUseCase,
	updateUseCase *project.UpdateProjectUseCase,
	deleteUseCase *project.DeleteProjectUseCase,
) *ProjectController {
	return &ProjectController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /projects requests.
func (c *ProjectController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectListResponse(output.Projects))
}

// Create handles POST /projects requests.
func (c *ProjectController) Create(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingProjectFields))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), project.CreateProjectInput{
		Name:            req.Name,
		Location:        req.Location,
		Status:          entity.ProjectStatus(req.Status),
		ApartmentsCount: req.ApartmentsCount,
		ShopsCount:      req.ShopsCount,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProjectResponse(output.Project))
}

// Get handles GET /projects/:id requests.
func (c *ProjectController) Get(ctx *gin.Context) {
	projectID, ok := parseIDParam(ctx, "id", "project")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), project.GetProjectInput{
		ProjectID: projectID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectResponse(output.Project))
}

// Update handles PATCH /projects/:id requests.
func (c *ProjectController) Update(ctx *gin.Context) {
	projectID, ok := parseIDParam(ctx, "id", "project")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingProjectFields))
		return
	}

	input := project.UpdateProjectInput{
		ProjectID:       projectID,
		Name:            req.Name,
		Location:        req.Location,
		ApartmentsCount: req.ApartmentsCount,
		ShopsCount:      req.ShopsCount,
	}
	if req.Status != nil {
		status := entity.ProjectStatus(*req.Status)
		input.Status = &status
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectResponse(output.Project))
}

// Delete handles DELETE /projects/:id requests.
// The project's expenses and sales are removed with it.
func (c *ProjectController) Delete(ctx *gin.Context) {
	projectID, ok := parseIDParam(ctx, "id", "project")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), project.DeleteProjectInput{
		ProjectID: projectID,
	}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
