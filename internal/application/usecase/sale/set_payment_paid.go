package sale

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/estate-ledger/backend/internal/application/adapter"
	"github.com/estate-ledger/backend/internal/domain/entity"
	domainerror "github.com/estate-ledger/backend/internal/domain/error"
)

// SetPaymentPaidInput represents the input for toggling a scheduled payment.
type SetPaymentPaidInput struct {
	SaleID uuid.UUID
	Index  int
	Paid   bool
}

// SetPaymentPaidOutput represents the sale after the payment was updated.
type SetPaymentPaidOutput struct {
	Sale *entity.Sale
}

// SetPaymentPaidUseCase marks one payment of a sale as paid or unpaid.
type SetPaymentPaidUseCase struct {
	saleRepo adapter.SaleRepository
	now      func() time.Time
}

// NewSetPaymentPaidUseCase creates a new SetPaymentPaidUseCase instance.
func NewSetPaymentPaidUseCase(saleRepo adapter.SaleRepository) *SetPaymentPaidUseCase {
	return &SetPaymentPaidUseCase{
		saleRepo: saleRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the clock used to stamp paid dates.
func (uc *SetPaymentPaidUseCase) WithClock(now func() time.Time) *SetPaymentPaidUseCase {
	uc.now = now
	return uc
}

// Execute performs the payment update. Marking paid records the current time
// as the paid date; marking unpaid clears it.
func (uc *SetPaymentPaidUseCase) Execute(ctx context.Context, input SetPaymentPaidInput) (*SetPaymentPaidOutput, error) {
	if input.Index < 0 {
		return nil, indexOutOfRange()
	}

	sale, err := uc.saleRepo.SetPaymentPaid(ctx, input.SaleID, input.Index, input.Paid, uc.now())
	if err != nil {
		switch {
		case errors.Is(err, domainerror.ErrPaymentIndexOutOfRange):
			return nil, indexOutOfRange()
		case errors.Is(err, domainerror.ErrConcurrentUpdate):
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeConcurrentPaymentUpdate,
				"sale was modified concurrently, retry the request",
				err,
			)
		default:
			return nil, saleNotFoundOr(err, "update payment")
		}
	}

	return &SetPaymentPaidOutput{
		Sale: sale,
	}, nil
}

func indexOutOfRange() error {
	return domainerror.NewSaleError(
		domainerror.ErrCodePaymentIndexOutOfRange,
		"payment index does not address a scheduled payment",
		domainerror.ErrPaymentIndexOutOfRange,
	)
}
