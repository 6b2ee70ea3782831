package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestProject_OfferedUnitTypes(t *testing.T) {
	tests := []struct {
		name       string
		apartments int
		shops      int
		expected   []UnitType
	}{
		{name: "both", apartments: 12, shops: 2, expected: []UnitType{UnitTypeApartment, UnitTypeShop}},
		{name: "apartments only", apartments: 8, shops: 0, expected: []UnitType{UnitTypeApartment}},
		{name: "shops only", apartments: 0, shops: 4, expected: []UnitType{UnitTypeShop}},
		{name: "none", apartments: 0, shops: 0, expected: []UnitType{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProject("Tower", "Cairo", ProjectStatusUnderConstruction, tt.apartments, tt.shops)

			got := p.OfferedUnitTypes()
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("expected %v, got %v", tt.expected, got)
				}
			}
			if p.TotalUnits() != tt.apartments+tt.shops {
				t.Errorf("expected %d total units, got %d", tt.apartments+tt.shops, p.TotalUnits())
			}
		})
	}
}

func TestEnums_IsValid(t *testing.T) {
	if !ProjectStatusCompleted.IsValid() || ProjectStatus("paused").IsValid() {
		t.Error("project status validation mismatch")
	}
	if !ExpenseCategoryLabor.IsValid() || ExpenseCategory("fuel").IsValid() {
		t.Error("expense category validation mismatch")
	}
	if !UnitTypeShop.IsValid() || UnitType("villa").IsValid() {
		t.Error("unit type validation mismatch")
	}
	if !PaymentTypeInstallment.IsValid() || PaymentType("barter").IsValid() {
		t.Error("payment type validation mismatch")
	}
}

func TestExpense_CategoryKeyAndLabel(t *testing.T) {
	tests := []struct {
		name          string
		category      ExpenseCategory
		custom        string
		expectedKey   string
		expectedLabel string
	}{
		{name: "land", category: ExpenseCategoryLand, expectedKey: "land", expectedLabel: "أرض"},
		{name: "labor", category: ExpenseCategoryLabor, expectedKey: "labor", expectedLabel: "صنايعية وعمال"},
		{name: "custom", category: ExpenseCategoryCustom, custom: "Permits", expectedKey: "Permits", expectedLabel: "Permits"},
		{name: "custom label dropped for built-in", category: ExpenseCategoryEngineer, custom: "ignored", expectedKey: "engineer", expectedLabel: "مهندس"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExpense(uuid.New(), time.Now(), tt.category, tt.custom, decimal.NewFromInt(10), "", "")
			if e.CategoryKey() != tt.expectedKey {
				t.Errorf("expected key '%s', got '%s'", tt.expectedKey, e.CategoryKey())
			}
			if e.CategoryLabel() != tt.expectedLabel {
				t.Errorf("expected label '%s', got '%s'", tt.expectedLabel, e.CategoryLabel())
			}
		})
	}
}

func TestSale_PaymentProgress(t *testing.T) {
	now := time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)
	paidAt := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	sale := NewSale(uuid.New(), UnitTypeApartment, "A-3", paidAt, "Mona", "", decimal.NewFromInt(300),
		PaymentTypeInstallment, decimal.NewFromInt(100), 2, "")
	sale.Payments = []Payment{
		{Amount: decimal.NewFromInt(100), DueDate: paidAt, Paid: true, PaidDate: &paidAt, Type: PaymentLabelDownPayment},
		{Amount: decimal.NewFromInt(100), DueDate: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), Type: InstallmentLabel(1)},
		{Amount: decimal.NewFromInt(100), DueDate: time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC), Type: InstallmentLabel(2)},
	}

	if !sale.PaidAmount().Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected paid 100, got %s", sale.PaidAmount())
	}
	if !sale.RemainingAmount().Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected remaining 200, got %s", sale.RemainingAmount())
	}
	if sale.PaidCount() != 1 {
		t.Errorf("expected 1 paid payment, got %d", sale.PaidCount())
	}
	if !sale.HasOverdue(now) {
		t.Error("expected sale to have an overdue payment")
	}

	sale.Payments[1].MarkPaid(now)
	if sale.HasOverdue(now) {
		t.Error("expected no overdue payment after settling installment #1")
	}
	if sale.Payments[1].PaidDate == nil || !sale.Payments[1].PaidDate.Equal(now) {
		t.Errorf("expected paid date %v, got %v", now, sale.Payments[1].PaidDate)
	}

	sale.Payments[1].MarkUnpaid()
	if sale.Payments[1].Paid || sale.Payments[1].PaidDate != nil {
		t.Error("expected payment to be unpaid with no paid date")
	}
}

func TestNewSale_CashClearsInstallmentTerms(t *testing.T) {
	sale := NewSale(uuid.New(), UnitTypeShop, "S-1", time.Now(), "Karim", "", decimal.NewFromInt(500),
		PaymentTypeCash, decimal.NewFromInt(100), 4, "")

	if !sale.DownPayment.IsZero() || sale.InstallmentsCount != 0 {
		t.Errorf("expected cash sale to drop installment terms, got down=%s count=%d", sale.DownPayment, sale.InstallmentsCount)
	}
	if sale.Version != 1 {
		t.Errorf("expected version 1, got %d", sale.Version)
	}
}

func TestPayment_IsOverdue(t *testing.T) {
	now := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		payment  Payment
		expected bool
	}{
		{name: "past and unpaid", payment: Payment{DueDate: now.Add(-time.Hour)}, expected: true},
		{name: "due exactly now", payment: Payment{DueDate: now}, expected: false},
		{name: "future", payment: Payment{DueDate: now.Add(time.Hour)}, expected: false},
		{name: "past but paid", payment: Payment{DueDate: now.Add(-time.Hour), Paid: true}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.payment.IsOverdue(now); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
