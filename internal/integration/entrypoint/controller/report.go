package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estate-ledger/backend/internal/application/usecase/report"
	"github.com/estate-ledger/backend/internal/integration/entrypoint/dto"
)

// ReportController handles report endpoints.
type ReportController struct {
	dashboardUseCase       *report.GetDashboardUseCase
	projectSummaryUseCase  *report.GetProjectSummaryUseCase
	expenseSummaryUseCase  *report.GetExpenseSummaryUseCase
	pendingPaymentsUseCase *report.GetPendingPaymentsUseCase
	performanceUseCase     *report.GetProjectsPerformanceUseCase
	salesByProjectUseCase  *report.GetSalesByProjectUseCase
	overviewUseCase        *report.GetOverviewUseCase
	notifyOverdueUseCase   *report.NotifyOverdueUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	dashboardUseCase *report.GetDashboardUseCase,
	projectSummaryUseCase *report.GetProjectSummaryUseCase,
	expenseSummaryUseCase *report.GetExpenseSummaryUseCase,
	pendingPaymentsUseCase *report.GetPendingPaymentsUseCase,
	performanceUseCase *report.GetProjectsPerformanceUseCase,
	salesByProjectUseCase *report.GetSalesByProjectUseCase,
	overviewUseCase *report.GetOverviewUseCase,
	notifyOverdueUseCase *report.NotifyOverdueUseCase,
) *ReportController {
	return &ReportController{
		dashboardUseCase:       dashboardUseCase,
		projectSummaryUseCase:  projectSummaryUseCase,
		expenseSummaryUseCase:  expenseSummaryUseCase,
		pendingPaymentsUseCase: pendingPaymentsUseCase,
		performanceUseCase:     performanceUseCase,
		salesByProjectUseCase:  salesByProjectUseCase,
		overviewUseCase:        overviewUseCase,
		notifyOverdueUseCase:   notifyOverdueUseCase,
	}
}

// GetDashboard handles GET /reports/dashboard requests.
func (c *ReportController) GetDashboard(ctx *gin.Context) {
	output, err := c.dashboardUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// GetProjectSummary handles GET /projects/:id/summary requests.
func (c *ReportController) GetProjectSummary(ctx *gin.Context) {
	projectID, ok := parseIDParam(ctx, "id", "project")
	if !ok {
		return
	}

	output, err := c.projectSummaryUseCase.Execute(ctx.Request.Context(), report.GetProjectSummaryInput{
		ProjectID: projectID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectSummaryResponse(output))
}

// GetExpenseSummary handles GET /projects/:id/expense-summary requests.
func (c *ReportController) GetExpenseSummary(ctx *gin.Context) {
	projectID, ok := parseIDParam(ctx, "id", "project")
	if !ok {
		return
	}

	output, err := c.expenseSummaryUseCase.Execute(ctx.Request.Context(), report.GetExpenseSummaryInput{
		ProjectID: projectID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseSummaryResponse(output))
}

// GetPendingPayments handles GET /reports/pending-payments requests.
func (c *ReportController) GetPendingPayments(ctx *gin.Context) {
	output, err := c.pendingPaymentsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPendingPaymentsResponse(output))
}

// GetPerformance handles GET /reports/performance requests.
func (c *ReportController) GetPerformance(ctx *gin.Context) {
	output, err := c.performanceUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPerformanceListResponse(output))
}

// GetSalesByProject handles GET /reports/sales-by-project requests.
func (c *ReportController) GetSalesByProject(ctx *gin.Context) {
	output, err := c.salesByProjectUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSalesByProjectResponse(output))
}

// GetOverview handles GET /reports/overview requests.
func (c *ReportController) GetOverview(ctx *gin.Context) {
	output, err := c.overviewUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output))
}

// NotifyOverdue handles POST /reports/overdue/notify requests.
func (c *ReportController) NotifyOverdue(ctx *gin.Context) {
	output, err := c.notifyOverdueUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotifyOverdueResponse(output))
}
