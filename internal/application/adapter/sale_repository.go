// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/estate-ledger/backend/internal/domain/entity"
)

//go:generate mockgen -source=sale_repository.go -destination=mock/sale_repository_mock.go -package=mock

// SaleRepository defines the interface for sale persistence operations.
type SaleRepository interface {
	// Create creates a new sale together with its payment schedule.
	Create(ctx context.Context, sale *entity.Sale) error

	// FindByID retrieves a sale by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)

	// FindAll retrieves all sales, most recent sale date first.
	FindAll(ctx context.Context) ([]*entity.Sale, error)

	// FindByProjectID retrieves the sales of a project, most recent sale date first.
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entity.Sale, error)

	// Update updates the descriptive fields of a sale. The payment schedule is left untouched.
	Update(ctx context.Context, sale *entity.Sale) error

	// Delete removes a sale from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// SetPaymentPaid sets the paid flag of the payment at index and returns the updated sale.
	// Marking paid records at as the paid date; marking unpaid clears it.
	SetPaymentPaid(ctx context.Context, saleID uuid.UUID, index int, paid bool, at time.Time) (*entity.Sale, error)
}
