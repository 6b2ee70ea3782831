package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/estate-ledger/backend/internal/application/state"
)

// GetPendingPaymentsOutput lists unpaid payments, earliest due first.
type GetPendingPaymentsOutput struct {
	Payments     []PendingPayment
	PendingTotal decimal.Decimal
	OverdueCount int
	OverdueTotal decimal.Decimal
}

// GetPendingPaymentsUseCase lists pending and overdue payments.
type GetPendingPaymentsUseCase struct {
	loader *state.Loader
	now    func() time.Time
}

// NewGetPendingPaymentsUseCase creates a new GetPendingPaymentsUseCase instance.
func NewGetPendingPaymentsUseCase(loader *state.Loader) *GetPendingPaymentsUseCase {
	return &GetPendingPaymentsUseCase{
		loader: loader,
		now:    systemNow,
	}
}

// WithClock overrides the clock used for overdue evaluation.
func (uc *GetPendingPaymentsUseCase) WithClock(now func() time.Time) *GetPendingPaymentsUseCase {
	uc.now = now
	return uc
}

// Execute lists the pending payments.
func (uc *GetPendingPaymentsUseCase) Execute(ctx context.Context) (*GetPendingPaymentsOutput, error) {
	portfolio, err := loadPortfolio(ctx, uc.loader)
	if err != nil {
		return nil, err
	}
	return pendingOutput(PendingPayments(portfolio, uc.now())), nil
}

func pendingOutput(pending []PendingPayment) *GetPendingPaymentsOutput {
	overdue := Overdue(pending)
	return &GetPendingPaymentsOutput{
		Payments:     pending,
		PendingTotal: SumPending(pending),
		OverdueCount: len(overdue),
		OverdueTotal: SumPending(overdue),
	}
}
