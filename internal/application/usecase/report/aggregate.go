// Package report derives dashboard and report metrics from a portfolio snapshot.
//
// The functions in this file are pure: they take already loaded records and an
// evaluation time and never touch a repository. Engine adds the expense lookups.
package report

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estate-ledger/backend/internal/application/state"
	"github.com/estate-ledger/backend/internal/domain/entity"
)

// UnknownProjectName labels pending payments whose project is not in the snapshot.
const UnknownProjectName = "غير معروف"

var hundred = decimal.NewFromInt(100)

// ProjectRevenue returns the realised revenue of a project: the sum of every
// paid payment across the project's sales.
func ProjectRevenue(sales []*entity.Sale, projectID uuid.UUID) decimal.Decimal {
	total := decimal.Zero
	for _, sale := range sales {
		if sale.ProjectID == projectID {
			total = total.Add(sale.PaidAmount())
		}
	}
	return total
}

// TotalRevenue returns the sum of paid payments across all sales.
func TotalRevenue(sales []*entity.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, sale := range sales {
		total = total.Add(sale.PaidAmount())
	}
	return total
}

// TotalCost returns the sum of expense amounts.
func TotalCost(expenses []*entity.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(expense.Amount)
	}
	return total
}

// ProfitMargin returns profit as a percentage of cost, rounded to one decimal
// place. It is exactly zero when cost is zero or negative.
func ProfitMargin(profit, cost decimal.Decimal) decimal.Decimal {
	if !cost.IsPositive() {
		return decimal.Zero
	}
	return profit.Div(cost).Mul(hundred).Round(1)
}

// CategorySummary aggregates the expenses sharing a category key.
type CategorySummary struct {
	Key   string
	Label string
	Total decimal.Decimal
	Count int
}

// SummarizeExpenses groups expenses by category key. Groups keep the order in
// which their key is first seen.
func SummarizeExpenses(expenses []*entity.Expense) []CategorySummary {
	summaries := make([]CategorySummary, 0)
	index := make(map[string]int)

	for _, expense := range expenses {
		key := expense.CategoryKey()
		i, ok := index[key]
		if !ok {
			i = len(summaries)
			index[key] = i
			summaries = append(summaries, CategorySummary{
				Key:   key,
				Label: expense.CategoryLabel(),
				Total: decimal.Zero,
			})
		}
		summaries[i].Total = summaries[i].Total.Add(expense.Amount)
		summaries[i].Count++
	}

	return summaries
}

// PendingPayment is an unpaid scheduled payment with the context needed to act on it.
type PendingPayment struct {
	SaleID       uuid.UUID
	ProjectID    uuid.UUID
	ProjectName  string
	CustomerName string
	UnitType     entity.UnitType
	UnitNumber   string
	Index        int
	Type         string
	Amount       decimal.Decimal
	DueDate      time.Time
	Overdue      bool
}

// PendingPayments lists every unpaid payment in the portfolio, stably sorted by
// due date ascending. A payment is overdue when its due date is before now.
func PendingPayments(portfolio *state.Portfolio, now time.Time) []PendingPayment {
	pending := make([]PendingPayment, 0)

	for _, sale := range portfolio.Sales() {
		projectName := UnknownProjectName
		if project, ok := portfolio.Project(sale.ProjectID); ok {
			projectName = project.Name
		}

		for i, payment := range sale.Payments {
			if payment.Paid {
				continue
			}
			pending = append(pending, PendingPayment{
				SaleID:       sale.ID,
				ProjectID:    sale.ProjectID,
				ProjectName:  projectName,
				CustomerName: sale.CustomerName,
				UnitType:     sale.UnitType,
				UnitNumber:   sale.UnitNumber,
				Index:        i,
				Type:         payment.Type,
				Amount:       payment.Amount,
				DueDate:      payment.DueDate,
				Overdue:      payment.IsOverdue(now),
			})
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].DueDate.Before(pending[j].DueDate)
	})

	return pending
}

// Overdue returns the overdue subset of pending payments, preserving order.
func Overdue(pending []PendingPayment) []PendingPayment {
	overdue := make([]PendingPayment, 0)
	for _, p := range pending {
		if p.Overdue {
			overdue = append(overdue, p)
		}
	}
	return overdue
}

// SumPending returns the total amount of the given payments.
func SumPending(pending []PendingPayment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range pending {
		total = total.Add(p.Amount)
	}
	return total
}

// ProjectPerformance holds the financial figures of one project.
type ProjectPerformance struct {
	Project       *entity.Project
	Cost          decimal.Decimal
	Revenue       decimal.Decimal
	Profit        decimal.Decimal
	Margin        decimal.Decimal
	SalesCount    int
	ExpensesCount int
}

// NewProjectPerformance computes the figures of a project from its expenses and sales.
func NewProjectPerformance(project *entity.Project, expenses []*entity.Expense, sales []*entity.Sale) ProjectPerformance {
	cost := TotalCost(expenses)
	revenue := ProjectRevenue(sales, project.ID)
	profit := revenue.Sub(cost)

	salesCount := 0
	for _, sale := range sales {
		if sale.ProjectID == project.ID {
			salesCount++
		}
	}

	return ProjectPerformance{
		Project:       project,
		Cost:          cost,
		Revenue:       revenue,
		Profit:        profit,
		Margin:        ProfitMargin(profit, cost),
		SalesCount:    salesCount,
		ExpensesCount: len(expenses),
	}
}

// RankByProfit stably sorts performances by profit, highest first.
func RankByProfit(performances []ProjectPerformance) {
	sort.SliceStable(performances, func(i, j int) bool {
		return performances[i].Profit.GreaterThan(performances[j].Profit)
	})
}

// SaleProgress summarises how much of a sale has been collected.
type SaleProgress struct {
	Sale       *entity.Sale
	Paid       decimal.Decimal
	Remaining  decimal.Decimal
	PaidCount  int
	TotalCount int
	HasOverdue bool
}

// Completed reports whether every scheduled payment is settled.
func (p SaleProgress) Completed() bool {
	return p.PaidCount == p.TotalCount
}

// ProgressOf computes the payment progress of a sale at now.
func ProgressOf(sale *entity.Sale, now time.Time) SaleProgress {
	return SaleProgress{
		Sale:       sale,
		Paid:       sale.PaidAmount(),
		Remaining:  sale.RemainingAmount(),
		PaidCount:  sale.PaidCount(),
		TotalCount: len(sale.Payments),
		HasOverdue: sale.HasOverdue(now),
	}
}

// ProjectSales groups the sales of one project.
type ProjectSales struct {
	Project *entity.Project
	Sales   []SaleProgress
}

// GroupSalesByProject groups sales under their projects in snapshot order.
// Projects without sales and sales whose project is not in the snapshot are skipped.
func GroupSalesByProject(portfolio *state.Portfolio, now time.Time) []ProjectSales {
	groups := make([]ProjectSales, 0)

	for _, project := range portfolio.Projects() {
		sales := portfolio.SalesForProject(project.ID)
		if len(sales) == 0 {
			continue
		}

		progress := make([]SaleProgress, len(sales))
		for i, sale := range sales {
			progress[i] = ProgressOf(sale, now)
		}
		groups = append(groups, ProjectSales{
			Project: project,
			Sales:   progress,
		})
	}

	return groups
}
