package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estate-ledger/backend/internal/application/adapter"
	domainerror "github.com/estate-ledger/backend/internal/domain/error"
	"github.com/estate-ledger/backend/internal/integration/email/templates"
)

func newEnglishFormatter(t *testing.T) *MoneyFormatter {
	t.Helper()
	f, err := NewMoneyFormatter("en-US", "EGP")
	require.NoError(t, err)
	return f
}

func TestMoneyFormatter(t *testing.T) {
	f := newEnglishFormatter(t)

	assert.Equal(t, "300,000.00", f.Amount(decimal.NewFromInt(300000)))
	assert.Equal(t, "62,500.50 EGP", f.Money(decimal.RequireFromString("62500.5")))
	assert.Equal(t, "01/04/2024", f.Date(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)))

	arabic, err := NewMoneyFormatter("ar-EG", "ج.م")
	require.NoError(t, err)
	formatted := arabic.Money(decimal.NewFromInt(1500))
	assert.NotEmpty(t, formatted)
	assert.True(t, strings.HasSuffix(formatted, " ج.م"))

	_, err = NewMoneyFormatter("not a locale!", "")
	assert.Error(t, err)
}

func digest() adapter.OverdueDigest {
	return adapter.OverdueDigest{
		GeneratedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Items: []adapter.OverdueDigestItem{
			{
				ProjectName:  "Palm",
				CustomerName: "Mona",
				UnitLabel:    "A-3",
				PaymentType:  "installment #1",
				Amount:       decimal.NewFromInt(4000),
				DueDate:      time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
				DaysOverdue:  61,
			},
		},
		Total: decimal.NewFromInt(4000),
	}
}

func TestService_SendOverdueDigest(t *testing.T) {
	renderer, err := templates.NewRenderer()
	require.NoError(t, err)
	sender := NewRecordingSender()

	service := NewService(sender, renderer, newEnglishFormatter(t), "owner@example.com", "Owner")
	require.True(t, service.Enabled())

	result, err := service.SendOverdueDigest(context.Background(), digest())
	require.NoError(t, err)
	assert.Equal(t, "recorded-1", result.ResendID)

	sent := sender.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "owner@example.com", sent[0].To)
	assert.Contains(t, sent[0].Subject, "4,000.00 EGP")
	assert.Contains(t, sent[0].HTML, "Palm")
	assert.Contains(t, sent[0].Text, "01/04/2024")
}

func TestService_Disabled(t *testing.T) {
	renderer, err := templates.NewRenderer()
	require.NoError(t, err)

	assert.False(t, NewService(nil, renderer, newEnglishFormatter(t), "owner@example.com", "").Enabled())
	assert.False(t, NewService(NewRecordingSender(), renderer, newEnglishFormatter(t), "", "").Enabled())
}

func TestRecordingSender_Failures(t *testing.T) {
	sender := NewRecordingSender()

	sender.FailWith(errors.New("422 validation error"))
	_, err := sender.Send(context.Background(), adapter.SendEmailInput{To: "x@example.com"})
	assert.ErrorIs(t, err, domainerror.ErrPermanentEmailFailure)

	sender.FailWith(errors.New("503 service unavailable"))
	_, err = sender.Send(context.Background(), adapter.SendEmailInput{To: "x@example.com"})
	assert.ErrorIs(t, err, domainerror.ErrTemporaryEmailFailure)

	sender.Reset()
	_, err = sender.Send(context.Background(), adapter.SendEmailInput{To: "x@example.com"})
	assert.NoError(t, err)
	assert.Len(t, sender.Sent(), 1)
}

func TestResendClient_Send(t *testing.T) {
	var received map[string]any
	status := http.StatusOK
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status == http.StatusOK {
			_, _ = w.Write([]byte(`{"id":"email-123"}`))
			return
		}
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"invalid from"}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewResendClient("re_test", "Estate Ledger", "ledger@example.com").WithBaseURL(server.URL)
	require.NoError(t, err)

	result, err := client.Send(context.Background(), adapter.SendEmailInput{
		To:      "owner@example.com",
		Name:    "Owner",
		Subject: "digest",
		HTML:    "<p>hi</p>",
		Text:    "hi",
	})
	require.NoError(t, err)
	assert.Equal(t, "email-123", result.ResendID)
	assert.Equal(t, "Estate Ledger <ledger@example.com>", received["from"])
	assert.Equal(t, []any{"Owner <owner@example.com>"}, received["to"])

	status = http.StatusUnprocessableEntity
	_, err = client.Send(context.Background(), adapter.SendEmailInput{To: "owner@example.com"})
	assert.ErrorIs(t, err, domainerror.ErrPermanentEmailFailure)
}
