package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/estate-ledger/backend/internal/domain/entity"
	domainerror "github.com/estate-ledger/backend/internal/domain/error"
	"github.com/estate-ledger/backend/internal/domain/valueobject"
	"github.com/estate-ledger/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.ProjectModel{}, &model.ExpenseModel{}, &model.SaleModel{}))
	return db
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func createProject(t *testing.T, repo interface {
	Create(context.Context, *entity.Project) error
}, name string) *entity.Project {
	t.Helper()
	project := entity.NewProject(name, "Cairo", entity.ProjectStatusUnderConstruction, 10, 2)
	require.NoError(t, repo.Create(context.Background(), project))
	return project
}

func newInstallmentSale(t *testing.T, projectID uuid.UUID, saleDate time.Time) *entity.Sale {
	t.Helper()
	sale := entity.NewSale(
		projectID,
		entity.UnitTypeApartment,
		"A-1",
		saleDate,
		"Mona",
		"01111111111",
		decimal.NewFromInt(300000),
		entity.PaymentTypeInstallment,
		decimal.NewFromInt(50000),
		4,
		"",
	)
	payments, err := valueobject.GenerateSchedule(valueobject.ScheduleTerms{
		TotalPrice:        sale.TotalPrice,
		PaymentType:       sale.PaymentType,
		SaleDate:          sale.SaleDate,
		DownPayment:       sale.DownPayment,
		InstallmentsCount: sale.InstallmentsCount,
	})
	require.NoError(t, err)
	sale.Payments = payments
	return sale
}

func TestProjectRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository(newTestDB(t))

	project := createProject(t, repo, "Nile Towers")

	found, err := repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nile Towers", found.Name)
	assert.Equal(t, 10, found.ApartmentsCount)
	assert.Equal(t, 2, found.ShopsCount)

	found.Name = "Nile Towers II"
	found.Status = entity.ProjectStatusCompleted
	found.ShopsCount = 0
	require.NoError(t, repo.Update(ctx, found))

	updated, err := repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nile Towers II", updated.Name)
	assert.Equal(t, entity.ProjectStatusCompleted, updated.Status)
	assert.Equal(t, 0, updated.ShopsCount)

	require.NoError(t, repo.Delete(ctx, project.ID))

	_, err = repo.FindByID(ctx, project.ID)
	assert.True(t, errors.Is(err, domainerror.ErrRecordNotFound))
}

func TestProjectRepository_FindAllNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository(newTestDB(t))

	older := entity.NewProject("Older", "Alex", entity.ProjectStatusCompleted, 1, 0)
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	require.NoError(t, repo.Create(ctx, older))
	newer := createProject(t, repo, "Newer")

	projects, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, newer.ID, projects[0].ID)
	assert.Equal(t, older.ID, projects[1].ID)
}

func TestProjectRepository_MissingRecords(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository(newTestDB(t))

	missing := entity.NewProject("Ghost", "", entity.ProjectStatusCompleted, 0, 0)

	err := repo.Update(ctx, missing)
	assert.Equal(t, domainerror.StoreErrorNotFound, domainerror.KindOf(err))

	err = repo.Delete(ctx, missing.ID)
	assert.Equal(t, domainerror.StoreErrorNotFound, domainerror.KindOf(err))
}

func TestProjectRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	projects := NewProjectRepository(db)
	expenses := NewExpenseRepository(db)
	sales := NewSaleRepository(db)

	project := createProject(t, projects, "Doomed")
	keep := createProject(t, projects, "Kept")

	require.NoError(t, expenses.Create(ctx, entity.NewExpense(project.ID, date(2024, 1, 5), entity.ExpenseCategoryLand, "", decimal.NewFromInt(1000), "", "")))
	require.NoError(t, expenses.Create(ctx, entity.NewExpense(keep.ID, date(2024, 1, 5), entity.ExpenseCategoryLabor, "", decimal.NewFromInt(500), "", "")))
	require.NoError(t, sales.Create(ctx, newInstallmentSale(t, project.ID, date(2024, 1, 1))))

	require.NoError(t, projects.Delete(ctx, project.ID))

	remainingExpenses, err := expenses.FindByProjectID(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, remainingExpenses)

	remainingSales, err := sales.FindByProjectID(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, remainingSales)

	keptExpenses, err := expenses.FindByProjectID(ctx, keep.ID)
	require.NoError(t, err)
	assert.Len(t, keptExpenses, 1)
}

func TestExpenseRepository_CRUDAndOrdering(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	project := createProject(t, NewProjectRepository(db), "Palm")
	repo := NewExpenseRepository(db)

	first := entity.NewExpense(project.ID, date(2024, 1, 10), entity.ExpenseCategoryContractor, "", decimal.RequireFromString("2500.50"), "Hassan", "")
	second := entity.NewExpense(project.ID, date(2024, 3, 1), entity.ExpenseCategoryCustom, "Permits", decimal.NewFromInt(700), "", "city")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	list, err := repo.FindByProjectID(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.True(t, list[1].Amount.Equal(decimal.RequireFromString("2500.50")))
	assert.Equal(t, "Permits", list[0].CustomCategory)

	first.Amount = decimal.NewFromInt(3000)
	first.Recipient = "Hassan & Sons"
	require.NoError(t, repo.Update(ctx, first))

	found, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, found.Amount.Equal(decimal.NewFromInt(3000)))
	assert.Equal(t, "Hassan & Sons", found.Recipient)

	require.NoError(t, repo.Delete(ctx, first.ID))
	err = repo.Delete(ctx, first.ID)
	assert.Equal(t, domainerror.StoreErrorNotFound, domainerror.KindOf(err))
}

func TestSaleRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	project := createProject(t, NewProjectRepository(db), "Lotus")
	repo := NewSaleRepository(db)

	sale := newInstallmentSale(t, project.ID, date(2024, 1, 1))
	require.NoError(t, repo.Create(ctx, sale))

	found, err := repo.FindByID(ctx, sale.ID)
	require.NoError(t, err)
	require.Len(t, found.Payments, 5)
	assert.Equal(t, entity.PaymentLabelDownPayment, found.Payments[0].Type)
	assert.True(t, found.Payments[1].Amount.Equal(decimal.NewFromInt(62500)))
	assert.True(t, found.Payments[4].DueDate.Equal(date(2025, 1, 1)))
	assert.Equal(t, 1, found.Version)
}

func TestSaleRepository_ListOrdering(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	projects := NewProjectRepository(db)
	first := createProject(t, projects, "One")
	second := createProject(t, projects, "Two")
	repo := NewSaleRepository(db)

	early := newInstallmentSale(t, first.ID, date(2023, 6, 1))
	late := newInstallmentSale(t, second.ID, date(2024, 6, 1))
	require.NoError(t, repo.Create(ctx, early))
	require.NoError(t, repo.Create(ctx, late))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, late.ID, all[0].ID)
	assert.Equal(t, early.ID, all[1].ID)

	byProject, err := repo.FindByProjectID(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, byProject, 1)
	assert.Equal(t, early.ID, byProject[0].ID)
}

func TestSaleRepository_UpdateKeepsSchedule(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	project := createProject(t, NewProjectRepository(db), "Lotus")
	repo := NewSaleRepository(db)

	sale := newInstallmentSale(t, project.ID, date(2024, 1, 1))
	require.NoError(t, repo.Create(ctx, sale))

	sale.CustomerName = "Mona Ali"
	sale.Payments = nil
	require.NoError(t, repo.Update(ctx, sale))

	found, err := repo.FindByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mona Ali", found.CustomerName)
	assert.Len(t, found.Payments, 5)
}

func TestSaleRepository_SetPaymentPaid(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	project := createProject(t, NewProjectRepository(db), "Lotus")
	repo := NewSaleRepository(db)

	sale := newInstallmentSale(t, project.ID, date(2024, 1, 1))
	require.NoError(t, repo.Create(ctx, sale))

	paidAt := time.Date(2024, 4, 2, 12, 0, 0, 0, time.UTC)
	updated, err := repo.SetPaymentPaid(ctx, sale.ID, 1, true, paidAt)
	require.NoError(t, err)
	assert.True(t, updated.Payments[1].Paid)
	require.NotNil(t, updated.Payments[1].PaidDate)
	assert.True(t, updated.Payments[1].PaidDate.Equal(paidAt))
	assert.Equal(t, 2, updated.Version)

	stored, err := repo.FindByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.True(t, stored.Payments[1].Paid)
	assert.False(t, stored.Payments[2].Paid)
	assert.Equal(t, 2, stored.Version)

	updated, err = repo.SetPaymentPaid(ctx, sale.ID, 1, false, paidAt)
	require.NoError(t, err)
	assert.False(t, updated.Payments[1].Paid)
	assert.Nil(t, updated.Payments[1].PaidDate)
	assert.Equal(t, 3, updated.Version)
}

func TestSaleRepository_SetPaymentPaidErrors(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	project := createProject(t, NewProjectRepository(db), "Lotus")
	repo := NewSaleRepository(db)

	sale := newInstallmentSale(t, project.ID, date(2024, 1, 1))
	require.NoError(t, repo.Create(ctx, sale))

	_, err := repo.SetPaymentPaid(ctx, sale.ID, 5, true, time.Now())
	assert.ErrorIs(t, err, domainerror.ErrPaymentIndexOutOfRange)

	_, err = repo.SetPaymentPaid(ctx, sale.ID, -1, true, time.Now())
	assert.ErrorIs(t, err, domainerror.ErrPaymentIndexOutOfRange)

	_, err = repo.SetPaymentPaid(ctx, uuid.New(), 0, true, time.Now())
	assert.Equal(t, domainerror.StoreErrorNotFound, domainerror.KindOf(err))
}

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected domainerror.StoreErrorKind
	}{
		{name: "record not found", err: gorm.ErrRecordNotFound, expected: domainerror.StoreErrorNotFound},
		{name: "duplicated key", err: gorm.ErrDuplicatedKey, expected: domainerror.StoreErrorConstraintViolation},
		{name: "deadline", err: context.DeadlineExceeded, expected: domainerror.StoreErrorConnection},
		{name: "sqlite constraint", err: errors.New("UNIQUE constraint failed: projects.id"), expected: domainerror.StoreErrorConstraintViolation},
		{name: "closed", err: errors.New("sql: database is closed"), expected: domainerror.StoreErrorConnection},
		{name: "other", err: errors.New("boom"), expected: domainerror.StoreErrorUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translateError("op", tt.err)
			assert.Equal(t, tt.expected, domainerror.KindOf(err))
			assert.ErrorIs(t, err, tt.err)
		})
	}

	assert.NoError(t, translateError("op", nil))
}
