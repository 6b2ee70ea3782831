// Package valueobject contains domain value objects for the Estate Ledger system.
package valueobject

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/estate-ledger/backend/internal/domain/entity"
	domainerror "github.com/estate-ledger/backend/internal/domain/error"
)

// MoneyPlaces is the number of fraction digits stored for every amount.
const MoneyPlaces int32 = 2

// MaxInstallments caps the installment count of a sale: 120 years of
// quarterly payments.
const MaxInstallments = 480

// HasMoneyScale reports whether d fits in MoneyPlaces fraction digits.
func HasMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(MoneyPlaces))
}

// ScheduleConfig controls how installment schedules are laid out.
type ScheduleConfig struct {
	IntervalMonths  int   // Months between consecutive installments
	AmountPlaces    int32 // Decimal places installments are rounded down to
	MaxInstallments int   // Largest accepted installment count
}

// DefaultScheduleConfig returns the quarterly schedule with cent precision.
func DefaultScheduleConfig() ScheduleConfig {
	return ScheduleConfig{
		IntervalMonths:  3,
		AmountPlaces:    MoneyPlaces,
		MaxInstallments: MaxInstallments,
	}
}

// ScheduleTerms are the sale terms a payment schedule is derived from.
type ScheduleTerms struct {
	TotalPrice        decimal.Decimal
	PaymentType       entity.PaymentType
	SaleDate          time.Time
	DownPayment       decimal.Decimal
	InstallmentsCount int
}

// GenerateSchedule builds the payment schedule with the default configuration.
func GenerateSchedule(terms ScheduleTerms) ([]entity.Payment, error) {
	return DefaultScheduleConfig().Generate(terms)
}

// Generate builds the ordered payment schedule for a new sale.
//
// A cash sale yields one settled entry at the sale date. An installment sale
// yields an optional settled down-payment entry followed by InstallmentsCount
// unsettled entries spaced IntervalMonths apart, starting one interval after
// the sale date. Installments are rounded down to AmountPlaces and the last
// one absorbs the non-negative residual so the schedule sums to the total price.
func (c ScheduleConfig) Generate(terms ScheduleTerms) ([]entity.Payment, error) {
	switch terms.PaymentType {
	case entity.PaymentTypeCash:
		paidAt := terms.SaleDate
		return []entity.Payment{
			{
				Amount:   terms.TotalPrice,
				DueDate:  terms.SaleDate,
				Paid:     true,
				PaidDate: &paidAt,
				Type:     entity.PaymentLabelCash,
			},
		}, nil
	case entity.PaymentTypeInstallment:
		return c.installments(terms)
	default:
		return nil, domainerror.ErrInvalidPaymentType
	}
}

func (c ScheduleConfig) installments(terms ScheduleTerms) ([]entity.Payment, error) {
	if terms.DownPayment.IsNegative() || terms.DownPayment.GreaterThan(terms.TotalPrice) ||
		!HasMoneyScale(terms.DownPayment) {
		return nil, domainerror.ErrInvalidDownPayment
	}
	if terms.InstallmentsCount < 0 || terms.InstallmentsCount > c.MaxInstallments {
		return nil, domainerror.ErrInvalidInstallmentsCount
	}

	remaining := terms.TotalPrice.Sub(terms.DownPayment)
	if terms.InstallmentsCount == 0 && remaining.IsPositive() {
		return nil, domainerror.ErrInvalidInstallmentsCount
	}

	payments := make([]entity.Payment, 0, terms.InstallmentsCount+1)

	if terms.DownPayment.IsPositive() {
		paidAt := terms.SaleDate
		payments = append(payments, entity.Payment{
			Amount:   terms.DownPayment,
			DueDate:  terms.SaleDate,
			Paid:     true,
			PaidDate: &paidAt,
			Type:     entity.PaymentLabelDownPayment,
		})
	}

	if terms.InstallmentsCount == 0 {
		return payments, nil
	}

	count := decimal.NewFromInt(int64(terms.InstallmentsCount))
	installment := remaining.Div(count).RoundFloor(c.AmountPlaces)
	allocated := decimal.Zero

	for i := 0; i < terms.InstallmentsCount; i++ {
		amount := installment
		if i == terms.InstallmentsCount-1 {
			amount = remaining.Sub(allocated)
		}
		allocated = allocated.Add(amount)

		payments = append(payments, entity.Payment{
			Amount:  amount,
			DueDate: AddMonths(terms.SaleDate, c.IntervalMonths*(i+1)),
			Paid:    false,
			Type:    entity.InstallmentLabel(i + 1),
		})
	}

	return payments, nil
}

// AddMonths adds calendar months to t. Day overflow rolls forward into the
// following month (Jan 31 + 1 month = Mar 3 in a non-leap year), so a
// quarterly step from Jan 31 lands on May 1.
func AddMonths(t time.Time, months int) time.Time {
	return t.AddDate(0, months, 0)
}
