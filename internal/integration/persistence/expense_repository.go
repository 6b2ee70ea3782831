package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/estate-ledger/backend/internal/application/adapter"
	"github.com/estate-ledger/backend/internal/domain/entity"
	"github.com/estate-ledger/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Create(expenseModel)
	return translateError("expenses.create", result.Error)
}

// FindByID retrieves an expense by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		return nil, translateError("expenses.find_by_id", result.Error)
	}
	return expenseModel.ToEntity(), nil
}

// FindByProjectID retrieves all expenses of a project, most recent date first.
func (r *expenseRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("date DESC").
		Order("created_at DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, translateError("expenses.find_by_project_id", result.Error)
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses, nil
}

// Update updates an existing expense in the database.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("id = ?", expense.ID).
		Select("date", "category", "custom_category", "amount", "recipient", "notes", "updated_at").
		Updates(expenseModel)
	if result.Error != nil {
		return translateError("expenses.update", result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError("expenses.update", gorm.ErrRecordNotFound)
	}
	return nil
}

// Delete removes an expense from the database.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ExpenseModel{})
	if result.Error != nil {
		return translateError("expenses.delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError("expenses.delete", gorm.ErrRecordNotFound)
	}
	return nil
}
