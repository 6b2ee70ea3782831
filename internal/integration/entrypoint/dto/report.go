package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/estate-ledger/backend/internal/application/usecase/report"
)

// TotalsResponse represents portfolio-wide totals.
type TotalsResponse struct {
	ProjectsCount int             `json:"projects_count"`
	Cost          decimal.Decimal `json:"cost"`
	Revenue       decimal.Decimal `json:"revenue"`
	Profit        decimal.Decimal `json:"profit"`
}

// PerformanceResponse represents the financial results of one project.
type PerformanceResponse struct {
	ProjectID     string          `json:"project_id"`
	ProjectName   string          `json:"project_name"`
	Status        string          `json:"status"`
	Cost          decimal.Decimal `json:"cost"`
	Revenue       decimal.Decimal `json:"revenue"`
	Profit        decimal.Decimal `json:"profit"`
	Margin        decimal.Decimal `json:"margin"`
	SalesCount    int             `json:"sales_count"`
	ExpensesCount int             `json:"expenses_count"`
}

// ProjectCardResponse represents a project card on the dashboard.
type ProjectCardResponse struct {
	PerformanceResponse
	SoldUnits  int `json:"sold_units"`
	TotalUnits int `json:"total_units"`
}

// DashboardResponse represents the dashboard report.
type DashboardResponse struct {
	Totals   TotalsResponse        `json:"totals"`
	Projects []ProjectCardResponse `json:"projects"`
}

// CategorySummaryResponse represents the expenses of one category.
type CategorySummaryResponse struct {
	Key   string          `json:"key"`
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// ExpenseSummaryResponse represents the per-category expense summary of a project.
type ExpenseSummaryResponse struct {
	Categories []CategorySummaryResponse `json:"categories"`
	Total      decimal.Decimal           `json:"total"`
	Count      int                       `json:"count"`
}

// SaleProgressResponse represents a sale with its collection progress.
type SaleProgressResponse struct {
	Sale       SaleResponse    `json:"sale"`
	Paid       decimal.Decimal `json:"paid"`
	Remaining  decimal.Decimal `json:"remaining"`
	PaidCount  int             `json:"paid_count"`
	TotalCount int             `json:"total_count"`
	HasOverdue bool            `json:"has_overdue"`
	Completed  bool            `json:"completed"`
}

// ProjectSummaryResponse represents the detailed view of one project.
type ProjectSummaryResponse struct {
	Project     ProjectResponse           `json:"project"`
	Performance PerformanceResponse       `json:"performance"`
	SoldUnits   int                       `json:"sold_units"`
	TotalUnits  int                       `json:"total_units"`
	Categories  []CategorySummaryResponse `json:"categories"`
	Expenses    []ExpenseResponse         `json:"expenses"`
	Sales       []SaleProgressResponse    `json:"sales"`
}

// PendingPaymentResponse represents one unpaid scheduled payment.
type PendingPaymentResponse struct {
	SaleID       string          `json:"sale_id"`
	ProjectID    string          `json:"project_id"`
	ProjectName  string          `json:"project_name"`
	CustomerName string          `json:"customer_name"`
	UnitType     string          `json:"unit_type"`
	UnitNumber   string          `json:"unit_number"`
	Index        int             `json:"index"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	DueDate      string          `json:"due_date"`
	Overdue      bool            `json:"overdue"`
}

// PendingPaymentsResponse represents the pending payments report.
type PendingPaymentsResponse struct {
	Payments     []PendingPaymentResponse `json:"payments"`
	PendingTotal decimal.Decimal          `json:"pending_total"`
	OverdueCount int                      `json:"overdue_count"`
	OverdueTotal decimal.Decimal          `json:"overdue_total"`
}

// PerformanceListResponse represents projects ranked by profit.
type PerformanceListResponse struct {
	Projects []PerformanceResponse `json:"projects"`
}

// ProjectSalesResponse represents the sales of one project.
type ProjectSalesResponse struct {
	Project ProjectResponse        `json:"project"`
	Sales   []SaleProgressResponse `json:"sales"`
}

// SalesByProjectResponse represents sales grouped by project.
type SalesByProjectResponse struct {
	Groups []ProjectSalesResponse `json:"groups"`
}

// OverviewResponse represents the combined portfolio report.
type OverviewResponse struct {
	Totals      TotalsResponse          `json:"totals"`
	Performance []PerformanceResponse   `json:"performance"`
	Pending     PendingPaymentsResponse `json:"pending"`
}

// NotifyOverdueResponse represents the result of mailing the overdue digest.
type NotifyOverdueResponse struct {
	OverdueCount int    `json:"overdue_count"`
	Sent         bool   `json:"sent"`
	ResendID     string `json:"resend_id,omitempty"`
}

// ToTotalsResponse converts report totals to a TotalsResponse DTO.
func ToTotalsResponse(t report.Totals) TotalsResponse {
	return TotalsResponse{
		ProjectsCount: t.ProjectsCount,
		Cost:          t.Cost,
		Revenue:       t.Revenue,
		Profit:        t.Profit,
	}
}

// ToPerformanceResponse converts a project performance to a PerformanceResponse DTO.
func ToPerformanceResponse(p report.ProjectPerformance) PerformanceResponse {
	return PerformanceResponse{
		ProjectID:     p.Project.ID.String(),
		ProjectName:   p.Project.Name,
		Status:        string(p.Project.Status),
		Cost:          p.Cost,
		Revenue:       p.Revenue,
		Profit:        p.Profit,
		Margin:        p.Margin,
		SalesCount:    p.SalesCount,
		ExpensesCount: p.ExpensesCount,
	}
}

func toPerformanceList(performances []report.ProjectPerformance) []PerformanceResponse {
	list := make([]PerformanceResponse, len(performances))
	for i, p := range performances {
		list[i] = ToPerformanceResponse(p)
	}
	return list
}

func toCategoryList(categories []report.CategorySummary) []CategorySummaryResponse {
	list := make([]CategorySummaryResponse, len(categories))
	for i, c := range categories {
		list[i] = CategorySummaryResponse{
			Key:   c.Key,
			Label: c.Label,
			Total: c.Total,
			Count: c.Count,
		}
	}
	return list
}

func toSaleProgressList(progress []report.SaleProgress, now time.Time) []SaleProgressResponse {
	list := make([]SaleProgressResponse, len(progress))
	for i, p := range progress {
		list[i] = SaleProgressResponse{
			Sale:       ToSaleResponse(p.Sale, now),
			Paid:       p.Paid,
			Remaining:  p.Remaining,
			PaidCount:  p.PaidCount,
			TotalCount: p.TotalCount,
			HasOverdue: p.HasOverdue,
			Completed:  p.Completed(),
		}
	}
	return list
}

// ToDashboardResponse converts the dashboard output to a DashboardResponse DTO.
func ToDashboardResponse(output *report.GetDashboardOutput) DashboardResponse {
	response := DashboardResponse{
		Totals:   ToTotalsResponse(output.Totals),
		Projects: make([]ProjectCardResponse, len(output.Projects)),
	}
	for i, card := range output.Projects {
		response.Projects[i] = ProjectCardResponse{
			PerformanceResponse: ToPerformanceResponse(card.Performance),
			SoldUnits:           card.SoldUnits,
			TotalUnits:          card.TotalUnits,
		}
	}
	return response
}

// ToProjectSummaryResponse converts the project summary output to a ProjectSummaryResponse DTO.
func ToProjectSummaryResponse(output *report.GetProjectSummaryOutput) ProjectSummaryResponse {
	return ProjectSummaryResponse{
		Project:     ToProjectResponse(output.Performance.Project),
		Performance: ToPerformanceResponse(output.Performance),
		SoldUnits:   output.SoldUnits,
		TotalUnits:  output.TotalUnits,
		Categories:  toCategoryList(output.Categories),
		Expenses:    ToExpenseListResponse(output.Expenses).Expenses,
		Sales:       toSaleProgressList(output.Sales, output.EvaluatedAt),
	}
}

// ToExpenseSummaryResponse converts the expense summary output to an ExpenseSummaryResponse DTO.
func ToExpenseSummaryResponse(output *report.GetExpenseSummaryOutput) ExpenseSummaryResponse {
	return ExpenseSummaryResponse{
		Categories: toCategoryList(output.Categories),
		Total:      output.Total,
		Count:      output.Count,
	}
}

// ToPendingPaymentsResponse converts the pending payments output to a PendingPaymentsResponse DTO.
func ToPendingPaymentsResponse(output *report.GetPendingPaymentsOutput) PendingPaymentsResponse {
	response := PendingPaymentsResponse{
		Payments:     make([]PendingPaymentResponse, len(output.Payments)),
		PendingTotal: output.PendingTotal,
		OverdueCount: output.OverdueCount,
		OverdueTotal: output.OverdueTotal,
	}
	for i, p := range output.Payments {
		response.Payments[i] = PendingPaymentResponse{
			SaleID:       p.SaleID.String(),
			ProjectID:    p.ProjectID.String(),
			ProjectName:  p.ProjectName,
			CustomerName: p.CustomerName,
			UnitType:     string(p.UnitType),
			UnitNumber:   p.UnitNumber,
			Index:        p.Index,
			Type:         p.Type,
			Amount:       p.Amount,
			DueDate:      formatDate(p.DueDate),
			Overdue:      p.Overdue,
		}
	}
	return response
}

// ToPerformanceListResponse converts ranked performances to a PerformanceListResponse DTO.
func ToPerformanceListResponse(output *report.GetProjectsPerformanceOutput) PerformanceListResponse {
	return PerformanceListResponse{
		Projects: toPerformanceList(output.Projects),
	}
}

// ToSalesByProjectResponse converts grouped sales to a SalesByProjectResponse DTO.
func ToSalesByProjectResponse(output *report.GetSalesByProjectOutput) SalesByProjectResponse {
	response := SalesByProjectResponse{
		Groups: make([]ProjectSalesResponse, len(output.Groups)),
	}
	for i, g := range output.Groups {
		response.Groups[i] = ProjectSalesResponse{
			Project: ToProjectResponse(g.Project),
			Sales:   toSaleProgressList(g.Sales, output.EvaluatedAt),
		}
	}
	return response
}

// ToOverviewResponse converts the overview output to an OverviewResponse DTO.
func ToOverviewResponse(output *report.GetOverviewOutput) OverviewResponse {
	return OverviewResponse{
		Totals:      ToTotalsResponse(output.Totals),
		Performance: toPerformanceList(output.Performance),
		Pending:     ToPendingPaymentsResponse(output.Pending),
	}
}

// ToNotifyOverdueResponse converts the notification output to a NotifyOverdueResponse DTO.
func ToNotifyOverdueResponse(output *report.NotifyOverdueOutput) NotifyOverdueResponse {
	return NotifyOverdueResponse{
		OverdueCount: output.OverdueCount,
		Sent:         output.Sent,
		ResendID:     output.ResendID,
	}
}
