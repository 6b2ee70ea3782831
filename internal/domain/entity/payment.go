package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// PaymentLabelCash labels the single entry of a cash sale.
	PaymentLabelCash = "cash"
	// PaymentLabelDownPayment labels the up-front entry of an installment sale.
	PaymentLabelDownPayment = "down-payment"
)

// InstallmentLabel returns the label of the n-th installment (1-based).
func InstallmentLabel(n int) string {
	return fmt.Sprintf("installment #%d", n)
}

// Payment is one scheduled payment of a sale. Payments are addressed by
// their position in the sale's schedule.
type Payment struct {
	Amount   decimal.Decimal
	DueDate  time.Time
	Paid     bool
	PaidDate *time.Time // Present iff Paid
	Type     string
}

// MarkPaid settles the payment at the given time.
func (p *Payment) MarkPaid(at time.Time) {
	p.Paid = true
	p.PaidDate = &at
}

// MarkUnpaid reverts the payment to unsettled and clears the paid date.
func (p *Payment) MarkUnpaid() {
	p.Paid = false
	p.PaidDate = nil
}

// IsOverdue reports whether the payment is unpaid and due strictly before now.
func (p *Payment) IsOverdue(now time.Time) bool {
	return !p.Paid && p.DueDate.Before(now)
}
