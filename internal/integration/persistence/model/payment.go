package model

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/estate-ledger/backend/internal/domain/entity"
)

// PaymentModel is one element of the sales.payments JSON array.
type PaymentModel struct {
	Amount   decimal.Decimal
	DueDate  time.Time
	Paid     bool
	PaidDate *time.Time
	Type     string
}

// paymentJSON is the stored shape of a payment.
type paymentJSON struct {
	Amount   json.RawMessage `json:"amount"`
	DueDate  *string         `json:"dueDate"`
	Paid     bool            `json:"paid"`
	PaidDate *string         `json:"paidDate,omitempty"`
	Type     string          `json:"type"`
}

// timestampLayouts are accepted when reading stored payment dates.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// MarshalJSON writes the amount as a JSON number and dates as RFC 3339 strings.
func (m PaymentModel) MarshalJSON() ([]byte, error) {
	dueDate := m.DueDate.UTC().Format(time.RFC3339Nano)
	out := paymentJSON{
		Amount:  json.RawMessage(m.Amount.String()),
		DueDate: &dueDate,
		Paid:    m.Paid,
		Type:    m.Type,
	}
	if m.PaidDate != nil {
		paidDate := m.PaidDate.UTC().Format(time.RFC3339Nano)
		out.PaidDate = &paidDate
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads a stored payment. Amounts may be numbers, numeric
// strings, or null; anything unparsable reads as zero.
func (m *PaymentModel) UnmarshalJSON(data []byte) error {
	var in paymentJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	m.Amount = coerceAmount(in.Amount)
	m.DueDate = parseTimestamp(in.DueDate)
	m.Paid = in.Paid
	m.PaidDate = nil
	if in.PaidDate != nil && *in.PaidDate != "" {
		paidDate := parseTimestamp(in.PaidDate)
		m.PaidDate = &paidDate
	}
	m.Type = in.Type
	return nil
}

// ToEntity converts a PaymentModel to a domain Payment.
func (m PaymentModel) ToEntity() entity.Payment {
	var paidDate *time.Time
	if m.PaidDate != nil {
		t := *m.PaidDate
		paidDate = &t
	}

	return entity.Payment{
		Amount:   m.Amount,
		DueDate:  m.DueDate,
		Paid:     m.Paid,
		PaidDate: paidDate,
		Type:     m.Type,
	}
}

// PaymentFromEntity creates a PaymentModel from a domain Payment.
func PaymentFromEntity(p entity.Payment) PaymentModel {
	var paidDate *time.Time
	if p.PaidDate != nil {
		t := *p.PaidDate
		paidDate = &t
	}

	return PaymentModel{
		Amount:   p.Amount,
		DueDate:  p.DueDate,
		Paid:     p.Paid,
		PaidDate: paidDate,
		Type:     p.Type,
	}
}

// PaymentsFromEntity converts a payment schedule to its stored form.
func PaymentsFromEntity(payments []entity.Payment) []PaymentModel {
	models := make([]PaymentModel, len(payments))
	for i, p := range payments {
		models[i] = PaymentFromEntity(p)
	}
	return models
}

func coerceAmount(raw json.RawMessage) decimal.Decimal {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.Zero
	}

	text := string(raw)
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Zero
		}
		text = strings.TrimSpace(s)
	}

	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

func parseTimestamp(value *string) time.Time {
	if value == nil {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, *value); err == nil {
			return t
		}
	}
	return time.Time{}
}
