package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/estate-ledger/backend/internal/application/adapter"
	"github.com/estate-ledger/backend/internal/domain/entity"
	domainerror "github.com/estate-ledger/backend/internal/domain/error"
	"github.com/estate-ledger/backend/internal/integration/persistence/model"
)

// saleRepository implements the adapter.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository instance.
func NewSaleRepository(db *gorm.DB) adapter.SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// Create creates a new sale together with its payment schedule.
func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	saleModel := model.SaleFromEntity(sale)
	result := r.db.WithContext(ctx).Create(saleModel)
	return translateError("sales.create", result.Error)
}

// FindByID retrieves a sale by its ID.
func (r *saleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var saleModel model.SaleModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&saleModel)
	if result.Error != nil {
		return nil, translateError("sales.find_by_id", result.Error)
	}
	return saleModel.ToEntity(), nil
}

// FindAll retrieves all sales, most recent sale date first.
func (r *saleRepository) FindAll(ctx context.Context) ([]*entity.Sale, error) {
	var saleModels []model.SaleModel
	result := r.db.WithContext(ctx).
		Order("sale_date DESC").
		Order("created_at DESC").
		Find(&saleModels)
	if result.Error != nil {
		return nil, translateError("sales.find_all", result.Error)
	}
	return toSaleEntities(saleModels), nil
}

// FindByProjectID retrieves the sales of a project, most recent sale date first.
func (r *saleRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entity.Sale, error) {
	var saleModels []model.SaleModel
	result := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("sale_date DESC").
		Order("created_at DESC").
		Find(&saleModels)
	if result.Error != nil {
		return nil, translateError("sales.find_by_project_id", result.Error)
	}
	return toSaleEntities(saleModels), nil
}

// Update updates the descriptive fields of a sale. Payment terms, the
// schedule and the version are left untouched.
func (r *saleRepository) Update(ctx context.Context, sale *entity.Sale) error {
	saleModel := model.SaleFromEntity(sale)
	result := r.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Where("id = ?", sale.ID).
		Select("unit_type", "unit_number", "sale_date", "customer_name", "customer_phone", "total_price", "notes", "updated_at").
		Updates(saleModel)
	if result.Error != nil {
		return translateError("sales.update", result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError("sales.update", gorm.ErrRecordNotFound)
	}
	return nil
}

// Delete removes a sale from the database.
func (r *saleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SaleModel{})
	if result.Error != nil {
		return translateError("sales.delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError("sales.delete", gorm.ErrRecordNotFound)
	}
	return nil
}

// SetPaymentPaid flips the paid flag of one scheduled payment.
//
// The sale row is locked for the duration of the transaction and the write is
// conditioned on the version read under that lock, so a concurrent writer on a
// store without row locks surfaces as a conflict instead of a lost update.
func (r *saleRepository) SetPaymentPaid(ctx context.Context, saleID uuid.UUID, index int, paid bool, at time.Time) (*entity.Sale, error) {
	var updated *entity.Sale

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var saleModel model.SaleModel
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", saleID).
			First(&saleModel)
		if result.Error != nil {
			return result.Error
		}

		sale := saleModel.ToEntity()
		if index < 0 || index >= len(sale.Payments) {
			return domainerror.ErrPaymentIndexOutOfRange
		}

		if paid {
			sale.Payments[index].MarkPaid(at)
		} else {
			sale.Payments[index].MarkUnpaid()
		}

		readVersion := sale.Version
		sale.Version = readVersion + 1
		sale.UpdatedAt = at

		result = tx.Model(&model.SaleModel{}).
			Where("id = ? AND version = ?", saleID, readVersion).
			Select("payments", "version", "updated_at").
			Updates(&model.SaleModel{
				Payments:  model.PaymentsFromEntity(sale.Payments),
				Version:   sale.Version,
				UpdatedAt: at,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.NewStoreError(domainerror.StoreErrorConflict, "sales.set_payment_paid", domainerror.ErrConcurrentUpdate)
		}

		updated = sale
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrPaymentIndexOutOfRange) {
			return nil, err
		}
		return nil, translateError("sales.set_payment_paid", err)
	}

	return updated, nil
}

func toSaleEntities(saleModels []model.SaleModel) []*entity.Sale {
	sales := make([]*entity.Sale, len(saleModels))
	for i, sm := range saleModels {
		sales[i] = sm.ToEntity()
	}
	return sales
}
