package email

import (
	"context"
	"fmt"
	"strconv"

	"github.com/estate-ledger/backend/internal/application/adapter"
	domainerror "github.com/estate-ledger/backend/internal/domain/error"
	"github.com/estate-ledger/backend/internal/integration/email/templates"
)

// Service composes operator notifications and hands them to an EmailSender.
type Service struct {
	sender        adapter.EmailSender
	renderer      *templates.Renderer
	formatter     *MoneyFormatter
	operatorEmail string
	operatorName  string
}

// NewService creates a new email service. A nil sender or an empty operator
// address leaves the service disabled.
func NewService(
	sender adapter.EmailSender,
	renderer *templates.Renderer,
	formatter *MoneyFormatter,
	operatorEmail, operatorName string,
) *Service {
	return &Service{
		sender:        sender,
		renderer:      renderer,
		formatter:     formatter,
		operatorEmail: operatorEmail,
		operatorName:  operatorName,
	}
}

// Enabled reports whether the service can send.
func (s *Service) Enabled() bool {
	return s.sender != nil && s.operatorEmail != ""
}

// SendOverdueDigest renders the overdue digest and sends it to the operator.
func (s *Service) SendOverdueDigest(ctx context.Context, digest adapter.OverdueDigest) (*adapter.SendEmailResult, error) {
	data := templates.OverdueDigestData{
		OperatorName: s.operatorName,
		GeneratedAt:  s.formatter.Date(digest.GeneratedAt),
		Count:        len(digest.Items),
		Total:        s.formatter.Money(digest.Total),
		Items:        make([]templates.OverdueDigestRow, len(digest.Items)),
	}
	for i, item := range digest.Items {
		data.Items[i] = templates.OverdueDigestRow{
			ProjectName:  item.ProjectName,
			CustomerName: item.CustomerName,
			Unit:         item.UnitLabel,
			PaymentType:  item.PaymentType,
			Amount:       s.formatter.Money(item.Amount),
			DueDate:      s.formatter.Date(item.DueDate),
			DaysOverdue:  strconv.Itoa(item.DaysOverdue),
		}
	}

	html, text, err := s.renderer.Render(templates.TemplateOverdueDigest, data)
	if err != nil {
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeTemplateRenderFailed,
			"failed to render overdue digest",
			fmt.Errorf("%w: %w", domainerror.ErrTemplateRenderFailed, err),
		)
	}

	return s.sender.Send(ctx, adapter.SendEmailInput{
		To:      s.operatorEmail,
		Name:    s.operatorName,
		Subject: fmt.Sprintf("دفعات متأخرة (%d) - %s", len(digest.Items), data.Total),
		HTML:    html,
		Text:    text,
	})
}

var _ adapter.EmailService = (*Service)(nil)
