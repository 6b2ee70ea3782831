package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estate-ledger/backend/internal/application/state"
	"github.com/estate-ledger/backend/internal/domain/entity"
)

var now = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(year int, month time.Month, dd int) time.Time {
	return time.Date(year, month, dd, 0, 0, 0, 0, time.UTC)
}

func payment(amount string, due time.Time, paid bool) entity.Payment {
	p := entity.Payment{Amount: d(amount), DueDate: due, Type: "installment"}
	if paid {
		p.MarkPaid(due)
	}
	return p
}

func TestProfitMargin(t *testing.T) {
	tests := []struct {
		name     string
		profit   string
		cost     string
		expected string
	}{
		{name: "positive margin rounds to one place", profit: "2000", cost: "3000", expected: "66.7"},
		{name: "zero cost", profit: "5000", cost: "0", expected: "0"},
		{name: "loss", profit: "-500", cost: "1000", expected: "-50"},
		{name: "break even", profit: "0", cost: "1000", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProfitMargin(d(tt.profit), d(tt.cost))
			if !got.Equal(d(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestNewProjectPerformance_CostRevenueScenario(t *testing.T) {
	project := &entity.Project{ID: uuid.New(), Name: "Palm"}
	expenses := []*entity.Expense{
		{ProjectID: project.ID, Amount: d("1000")},
		{ProjectID: project.ID, Amount: d("2000")},
	}
	sales := []*entity.Sale{
		{ProjectID: project.ID, Payments: []entity.Payment{
			payment("5000", day(2024, 1, 1), true),
			payment("7000", day(2024, 4, 1), false),
		}},
		{ProjectID: uuid.New(), Payments: []entity.Payment{payment("9999", day(2024, 1, 1), true)}},
	}

	got := NewProjectPerformance(project, expenses, sales)

	if !got.Cost.Equal(d("3000")) {
		t.Errorf("expected cost 3000, got %s", got.Cost)
	}
	if !got.Revenue.Equal(d("5000")) {
		t.Errorf("expected revenue 5000, got %s", got.Revenue)
	}
	if !got.Profit.Equal(d("2000")) {
		t.Errorf("expected profit 2000, got %s", got.Profit)
	}
	if !got.Margin.Equal(d("66.7")) {
		t.Errorf("expected margin 66.7, got %s", got.Margin)
	}
	if got.SalesCount != 1 || got.ExpensesCount != 2 {
		t.Errorf("expected 1 sale and 2 expenses, got %d and %d", got.SalesCount, got.ExpensesCount)
	}
}

func TestSummarizeExpenses(t *testing.T) {
	expenses := []*entity.Expense{
		{Category: entity.ExpenseCategoryLabor, Amount: d("100")},
		{Category: entity.ExpenseCategoryCustom, CustomCategory: "Permits", Amount: d("50")},
		{Category: entity.ExpenseCategoryLabor, Amount: d("25.5")},
		{Category: entity.ExpenseCategoryCustom, CustomCategory: "Insurance", Amount: d("10")},
		{Category: entity.ExpenseCategoryCustom, CustomCategory: "Permits", Amount: d("5")},
	}

	got := SummarizeExpenses(expenses)

	expected := []CategorySummary{
		{Key: "labor", Label: "صنايعية وعمال", Total: d("125.5"), Count: 2},
		{Key: "Permits", Label: "Permits", Total: d("55"), Count: 2},
		{Key: "Insurance", Label: "Insurance", Total: d("10"), Count: 1},
	}
	if len(got) != len(expected) {
		t.Fatalf("expected %d groups, got %d", len(expected), len(got))
	}
	for i, want := range expected {
		if got[i].Key != want.Key || got[i].Label != want.Label || got[i].Count != want.Count || !got[i].Total.Equal(want.Total) {
			t.Errorf("group %d: expected %+v, got %+v", i, want, got[i])
		}
	}
}

func TestSummarizeExpenses_Empty(t *testing.T) {
	got := SummarizeExpenses(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil summary, got %v", got)
	}
}

func TestPendingPayments(t *testing.T) {
	project := &entity.Project{ID: uuid.New(), Name: "Palm"}
	known := &entity.Sale{
		ID: uuid.New(), ProjectID: project.ID, CustomerName: "Mona",
		Payments: []entity.Payment{
			payment("50000", day(2024, 1, 1), true),
			payment("100", day(2024, 9, 1), false),
			payment("200", day(2024, 3, 1), false),
		},
	}
	orphan := &entity.Sale{
		ID: uuid.New(), ProjectID: uuid.New(), CustomerName: "Omar",
		Payments: []entity.Payment{
			payment("300", day(2024, 3, 1), false),
			{Amount: d("400"), DueDate: now, Type: "installment"},
		},
	}
	portfolio := state.NewPortfolio([]*entity.Project{project}, []*entity.Sale{known, orphan}, now)

	got := PendingPayments(portfolio, now)

	if len(got) != 4 {
		t.Fatalf("expected 4 pending payments, got %d", len(got))
	}

	// Equal due dates keep snapshot order
	if got[0].SaleID != known.ID || got[0].Index != 2 {
		t.Errorf("expected first pending to be sale %s index 2, got %s index %d", known.ID, got[0].SaleID, got[0].Index)
	}
	if got[1].SaleID != orphan.ID || got[1].ProjectName != UnknownProjectName {
		t.Errorf("expected orphan sale with unknown project name, got %+v", got[1])
	}

	for i := 1; i < len(got); i++ {
		if got[i].DueDate.Before(got[i-1].DueDate) {
			t.Errorf("pending payments not sorted at %d", i)
		}
	}

	overdue := map[string]bool{"200": true, "300": true, "400": false, "100": false}
	for _, p := range got {
		if p.Overdue != overdue[p.Amount.String()] {
			t.Errorf("payment %s: expected overdue=%v, got %v", p.Amount, overdue[p.Amount.String()], p.Overdue)
		}
	}

	if n := len(Overdue(got)); n != 2 {
		t.Errorf("expected 2 overdue, got %d", n)
	}
	if total := SumPending(got); !total.Equal(d("1000")) {
		t.Errorf("expected pending total 1000, got %s", total)
	}
}

func TestRankByProfit(t *testing.T) {
	a := ProjectPerformance{Project: &entity.Project{Name: "a"}, Profit: d("100")}
	b := ProjectPerformance{Project: &entity.Project{Name: "b"}, Profit: d("-50")}
	c := ProjectPerformance{Project: &entity.Project{Name: "c"}, Profit: d("300")}
	e := ProjectPerformance{Project: &entity.Project{Name: "e"}, Profit: d("100")}

	performances := []ProjectPerformance{a, b, c, e}
	RankByProfit(performances)

	expected := []string{"c", "a", "e", "b"}
	for i, name := range expected {
		if performances[i].Project.Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, performances[i].Project.Name)
		}
	}
}

func TestGroupSalesByProject(t *testing.T) {
	withSales := &entity.Project{ID: uuid.New(), Name: "Sold"}
	empty := &entity.Project{ID: uuid.New(), Name: "Empty"}
	sale := &entity.Sale{
		ID: uuid.New(), ProjectID: withSales.ID, TotalPrice: d("300"),
		Payments: []entity.Payment{
			payment("100", day(2024, 1, 1), true),
			payment("100", day(2024, 4, 1), false),
			payment("100", day(2024, 7, 1), false),
		},
	}
	orphan := &entity.Sale{ID: uuid.New(), ProjectID: uuid.New()}
	portfolio := state.NewPortfolio([]*entity.Project{empty, withSales}, []*entity.Sale{sale, orphan}, now)

	groups := GroupSalesByProject(portfolio, now)

	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].Project != withSales || len(groups[0].Sales) != 1 {
		t.Fatalf("unexpected group %+v", groups[0])
	}

	progress := groups[0].Sales[0]
	if !progress.Paid.Equal(d("100")) || !progress.Remaining.Equal(d("200")) {
		t.Errorf("expected paid 100 remaining 200, got %s and %s", progress.Paid, progress.Remaining)
	}
	if progress.PaidCount != 1 || progress.TotalCount != 3 {
		t.Errorf("expected 1/3 paid, got %d/%d", progress.PaidCount, progress.TotalCount)
	}
	if !progress.HasOverdue {
		t.Error("expected sale to have an overdue payment")
	}
	if progress.Completed() {
		t.Error("expected sale to be incomplete")
	}
}
