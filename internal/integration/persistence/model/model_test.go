package model

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estate-ledger/backend/internal/domain/entity"
)

var (
	createdAt = time.Date(2024, time.January, 2, 9, 30, 0, 0, time.UTC)
	updatedAt = time.Date(2024, time.February, 3, 10, 45, 0, 0, time.UTC)
)

func TestProjectRoundTrip(t *testing.T) {
	project := &entity.Project{
		ID:              uuid.New(),
		Name:            "Nile Residence",
		Location:        "Giza",
		Status:          entity.ProjectStatusUnderConstruction,
		ApartmentsCount: 24,
		ShopsCount:      3,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}

	got := ProjectFromEntity(project).ToEntity()

	if !reflect.DeepEqual(project, got) {
		t.Errorf("expected %+v, got %+v", project, got)
	}
}

func TestProjectToEntity_NullCounts(t *testing.T) {
	m := &ProjectModel{ID: uuid.New(), Name: "Old", Status: "completed"}

	got := m.ToEntity()
	if got.ApartmentsCount != 0 || got.ShopsCount != 0 {
		t.Errorf("expected null counts to read as zero, got %d and %d", got.ApartmentsCount, got.ShopsCount)
	}
}

func TestExpenseRoundTrip(t *testing.T) {
	expense := &entity.Expense{
		ID:             uuid.New(),
		ProjectID:      uuid.New(),
		Date:           time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		Category:       entity.ExpenseCategoryCustom,
		CustomCategory: "Permits",
		Amount:         decimal.RequireFromString("1250.75"),
		Recipient:      "Municipality",
		Notes:          "Building permit",
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}

	got := ExpenseFromEntity(expense).ToEntity()

	if !got.Amount.Equal(expense.Amount) {
		t.Errorf("expected amount %s, got %s", expense.Amount, got.Amount)
	}
	got.Amount = expense.Amount
	if !reflect.DeepEqual(expense, got) {
		t.Errorf("expected %+v, got %+v", expense, got)
	}
}

func TestExpenseToEntity_NullAmount(t *testing.T) {
	m := &ExpenseModel{ID: uuid.New(), Category: "land"}

	if !m.ToEntity().Amount.IsZero() {
		t.Errorf("expected null amount to read as zero, got %s", m.ToEntity().Amount)
	}
}

func newSale() *entity.Sale {
	saleDate := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	paidAt := saleDate

	return &entity.Sale{
		ID:                uuid.New(),
		ProjectID:         uuid.New(),
		UnitType:          entity.UnitTypeApartment,
		UnitNumber:        "B-12",
		SaleDate:          saleDate,
		CustomerName:      "Ahmed",
		CustomerPhone:     "01000000000",
		TotalPrice:        decimal.RequireFromString("300000"),
		PaymentType:       entity.PaymentTypeInstallment,
		DownPayment:       decimal.RequireFromString("50000"),
		InstallmentsCount: 1,
		Notes:             "corner unit",
		Payments: []entity.Payment{
			{Amount: decimal.RequireFromString("50000"), DueDate: saleDate, Paid: true, PaidDate: &paidAt, Type: "down-payment"},
			{Amount: decimal.RequireFromString("250000"), DueDate: saleDate.AddDate(0, 3, 0), Type: "installment #1"},
		},
		Version:   3,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func TestSaleRoundTrip(t *testing.T) {
	sale := newSale()

	got := SaleFromEntity(sale).ToEntity()

	if !reflect.DeepEqual(sale, got) {
		t.Errorf("expected %+v, got %+v", sale, got)
	}
}

func TestSaleToEntity_NullNumerics(t *testing.T) {
	m := &SaleModel{ID: uuid.New(), PaymentType: "cash"}

	got := m.ToEntity()
	if !got.TotalPrice.IsZero() || !got.DownPayment.IsZero() || got.InstallmentsCount != 0 {
		t.Errorf("expected null numerics to read as zero, got %+v", got)
	}
	if got.Payments == nil || len(got.Payments) != 0 {
		t.Errorf("expected an empty payment schedule, got %v", got.Payments)
	}
}

func TestPaymentJSONRoundTrip(t *testing.T) {
	sale := newSale()
	payments := PaymentsFromEntity(sale.Payments)

	data, err := json.Marshal(payments)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded []PaymentModel
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(decoded) != len(sale.Payments) {
		t.Fatalf("expected %d payments, got %d", len(sale.Payments), len(decoded))
	}

	for i, want := range sale.Payments {
		got := decoded[i].ToEntity()
		if !got.Amount.Equal(want.Amount) {
			t.Errorf("payment %d: expected amount %s, got %s", i, want.Amount, got.Amount)
		}
		if !got.DueDate.Equal(want.DueDate) {
			t.Errorf("payment %d: expected due %v, got %v", i, want.DueDate, got.DueDate)
		}
		if got.Paid != want.Paid || got.Type != want.Type {
			t.Errorf("payment %d: expected %+v, got %+v", i, want, got)
		}
		if (got.PaidDate == nil) != (want.PaidDate == nil) {
			t.Errorf("payment %d: paid date presence mismatch", i)
		}
		if got.PaidDate != nil && !got.PaidDate.Equal(*want.PaidDate) {
			t.Errorf("payment %d: expected paid date %v, got %v", i, *want.PaidDate, *got.PaidDate)
		}
	}
}

func TestPaymentMarshal_AmountIsNumberAndPaidDateOmitted(t *testing.T) {
	p := PaymentModel{
		Amount:  decimal.RequireFromString("62500.5"),
		DueDate: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		Type:    "installment #1",
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := raw["amount"].(float64); !ok {
		t.Errorf("expected amount to be a JSON number, got %T", raw["amount"])
	}
	if raw["dueDate"] != "2024-04-01T00:00:00Z" {
		t.Errorf("expected dueDate '2024-04-01T00:00:00Z', got %v", raw["dueDate"])
	}
	if _, ok := raw["paidDate"]; ok {
		t.Error("expected paidDate to be omitted for unpaid payments")
	}
}

func TestPaymentUnmarshal_Coercion(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedAmount string
		expectedDue    time.Time
		expectPaidDate bool
	}{
		{
			name:           "numeric amount",
			input:          `{"amount": 62500, "dueDate": "2024-04-01T00:00:00.000Z", "paid": false, "type": "installment #1"}`,
			expectedAmount: "62500",
			expectedDue:    time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:           "string amount",
			input:          `{"amount": "1500.25", "dueDate": "2024-01-01", "paid": true, "paidDate": "2024-01-02T08:00:00Z", "type": "cash"}`,
			expectedAmount: "1500.25",
			expectedDue:    time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			expectPaidDate: true,
		},
		{
			name:           "null amount",
			input:          `{"amount": null, "dueDate": "2024-01-01", "paid": false, "type": "installment #2"}`,
			expectedAmount: "0",
			expectedDue:    time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:           "unparsable amount",
			input:          `{"amount": "n/a", "dueDate": "2024-01-01", "paid": false, "type": "installment #3"}`,
			expectedAmount: "0",
			expectedDue:    time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:           "missing amount",
			input:          `{"dueDate": "2024-01-01", "paid": false, "type": "installment #4"}`,
			expectedAmount: "0",
			expectedDue:    time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p PaymentModel
			if err := json.Unmarshal([]byte(tt.input), &p); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !p.Amount.Equal(decimal.RequireFromString(tt.expectedAmount)) {
				t.Errorf("expected amount %s, got %s", tt.expectedAmount, p.Amount)
			}
			if !p.DueDate.Equal(tt.expectedDue) {
				t.Errorf("expected due %v, got %v", tt.expectedDue, p.DueDate)
			}
			if (p.PaidDate != nil) != tt.expectPaidDate {
				t.Errorf("expected paid date present=%v, got %v", tt.expectPaidDate, p.PaidDate)
			}
		})
	}
}
