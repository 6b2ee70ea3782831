package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/estate-ledger/backend/internal/application/adapter"
	"github.com/estate-ledger/backend/internal/application/state"
	domainerror "github.com/estate-ledger/backend/internal/domain/error"
)

// NotifyOverdueOutput reports what the digest contained.
type NotifyOverdueOutput struct {
	OverdueCount int
	Sent         bool
	ResendID     string
}

// NotifyOverdueUseCase mails the operator a digest of overdue payments.
type NotifyOverdueUseCase struct {
	loader       *state.Loader
	emailService adapter.EmailService
	now          func() time.Time
}

// NewNotifyOverdueUseCase creates a new NotifyOverdueUseCase instance.
func NewNotifyOverdueUseCase(loader *state.Loader, emailService adapter.EmailService) *NotifyOverdueUseCase {
	return &NotifyOverdueUseCase{
		loader:       loader,
		emailService: emailService,
		now:          systemNow,
	}
}

// WithClock overrides the clock used for overdue evaluation.
func (uc *NotifyOverdueUseCase) WithClock(now func() time.Time) *NotifyOverdueUseCase {
	uc.now = now
	return uc
}

// Execute builds the digest and sends it. Nothing is sent when no payment is overdue.
func (uc *NotifyOverdueUseCase) Execute(ctx context.Context) (*NotifyOverdueOutput, error) {
	if uc.emailService == nil || !uc.emailService.Enabled() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeNotificationsDisabled,
			"email notifications are not configured",
			domainerror.ErrNotificationsDisabled,
		)
	}

	portfolio, err := loadPortfolio(ctx, uc.loader)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	overdue := Overdue(PendingPayments(portfolio, now))
	if len(overdue) == 0 {
		return &NotifyOverdueOutput{}, nil
	}

	result, err := uc.emailService.SendOverdueDigest(ctx, buildDigest(overdue, now))
	if err != nil {
		slog.Error("Failed to send overdue digest", "overdueCount", len(overdue), "error", err)
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeNotificationFailed,
			"failed to send overdue digest",
			fmt.Errorf("%w: %w", domainerror.ErrNotificationFailed, err),
		)
	}

	slog.Info("Overdue digest sent", "overdueCount", len(overdue), "resendID", result.ResendID)

	return &NotifyOverdueOutput{
		OverdueCount: len(overdue),
		Sent:         true,
		ResendID:     result.ResendID,
	}, nil
}

func buildDigest(overdue []PendingPayment, now time.Time) adapter.OverdueDigest {
	items := make([]adapter.OverdueDigestItem, len(overdue))
	for i, p := range overdue {
		unit := p.UnitType.Label()
		if p.UnitNumber != "" {
			unit = unit + " " + p.UnitNumber
		}
		items[i] = adapter.OverdueDigestItem{
			ProjectName:  p.ProjectName,
			CustomerName: p.CustomerName,
			UnitLabel:    unit,
			PaymentType:  p.Type,
			Amount:       p.Amount,
			DueDate:      p.DueDate,
			DaysOverdue:  int(now.Sub(p.DueDate).Hours() / 24),
		}
	}

	return adapter.OverdueDigest{
		GeneratedAt: now,
		Items:       items,
		Total:       SumPending(overdue),
	}
}
