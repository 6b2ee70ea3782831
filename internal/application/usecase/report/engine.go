package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estate-ledger/backend/internal/application/adapter"
	"github.com/estate-ledger/backend/internal/application/state"
	"github.com/estate-ledger/backend/internal/domain/entity"
)

// Engine computes the metrics that need a project's expenses. Expenses are
// fetched fresh on every call and never cached.
type Engine struct {
	expenseRepo adapter.ExpenseRepository
}

// NewEngine creates a new Engine instance.
func NewEngine(expenseRepo adapter.ExpenseRepository) *Engine {
	return &Engine{
		expenseRepo: expenseRepo,
	}
}

// Totals are the portfolio-wide figures shown on the dashboard.
type Totals struct {
	ProjectsCount int
	Cost          decimal.Decimal
	Revenue       decimal.Decimal
	Profit        decimal.Decimal
}

// ProjectExpenses returns the expenses of a project, most recent first.
func (e *Engine) ProjectExpenses(ctx context.Context, projectID uuid.UUID) ([]*entity.Expense, error) {
	expenses, err := e.expenseRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project expenses: %w", err)
	}
	return expenses, nil
}

// ProjectCost returns the sum of a project's expense amounts.
func (e *Engine) ProjectCost(ctx context.Context, projectID uuid.UUID) (decimal.Decimal, error) {
	expenses, err := e.ProjectExpenses(ctx, projectID)
	if err != nil {
		return decimal.Zero, err
	}
	return TotalCost(expenses), nil
}

// ExpenseCategorySummary groups a project's expenses by category.
func (e *Engine) ExpenseCategorySummary(ctx context.Context, projectID uuid.UUID) ([]CategorySummary, error) {
	expenses, err := e.ProjectExpenses(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return SummarizeExpenses(expenses), nil
}

// Performances computes the figures of every project in snapshot order.
func (e *Engine) Performances(ctx context.Context, portfolio *state.Portfolio) ([]ProjectPerformance, error) {
	performances := make([]ProjectPerformance, 0, len(portfolio.Projects()))
	for _, project := range portfolio.Projects() {
		expenses, err := e.ProjectExpenses(ctx, project.ID)
		if err != nil {
			return nil, err
		}
		performances = append(performances, NewProjectPerformance(project, expenses, portfolio.SalesForProject(project.ID)))
	}
	return performances, nil
}

// ProjectsPerformance computes the figures of every project ranked by profit, highest first.
func (e *Engine) ProjectsPerformance(ctx context.Context, portfolio *state.Portfolio) ([]ProjectPerformance, error) {
	performances, err := e.Performances(ctx, portfolio)
	if err != nil {
		return nil, err
	}
	RankByProfit(performances)
	return performances, nil
}

// PortfolioTotals sums cost over every project and revenue over every sale.
func (e *Engine) PortfolioTotals(ctx context.Context, portfolio *state.Portfolio) (Totals, error) {
	cost := decimal.Zero
	for _, project := range portfolio.Projects() {
		projectCost, err := e.ProjectCost(ctx, project.ID)
		if err != nil {
			return Totals{}, err
		}
		cost = cost.Add(projectCost)
	}

	return totalsOf(portfolio, cost), nil
}

// TotalsFromPerformances derives portfolio totals from already computed
// performances, avoiding a second expense fetch per project.
func TotalsFromPerformances(portfolio *state.Portfolio, performances []ProjectPerformance) Totals {
	cost := decimal.Zero
	for _, p := range performances {
		cost = cost.Add(p.Cost)
	}
	return totalsOf(portfolio, cost)
}

func totalsOf(portfolio *state.Portfolio, cost decimal.Decimal) Totals {
	revenue := TotalRevenue(portfolio.Sales())
	return Totals{
		ProjectsCount: len(portfolio.Projects()),
		Cost:          cost,
		Revenue:       revenue,
		Profit:        revenue.Sub(cost),
	}
}
