package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"festaloc-backend/internal/domain"
	"festaloc-backend/internal/logger"
	"festaloc-backend/internal/utils"
)

// sendGridEmailService delivers operator alerts through SendGrid. All mail
// goes to the configured operator address; clients are never emailed
// directly.
type sendGridEmailService struct {
	apiKey        string
	fromEmail     string
	fromName      string
	operatorEmail string
}

func NewSendGridEmailService(apiKey, fromEmail, fromName, operatorEmail string) EmailService {
	return &sendGridEmailService{
		apiKey:        apiKey,
		fromEmail:     fromEmail,
		fromName:      fromName,
		operatorEmail: operatorEmail,
	}
}

func (s *sendGridEmailService) send(ctx context.Context, subject, plainText string) error {
	if s.apiKey == "" || s.operatorEmail == "" {
		logger.WarnContext(ctx, "email delivery skipped, sendgrid not configured", "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", s.operatorEmail)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

// SendAlertDigest mails the current alert list in one message. An empty list
// sends nothing.
func (s *sendGridEmailService) SendAlertDigest(ctx context.Context, notifications []domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString("Alertas do dia:\n\n")
	for _, n := range notifications {
		b.WriteString("- " + n.Message + "\n")
	}
	subject := fmt.Sprintf("Resumo de alertas (%d)", len(notifications))
	return s.send(ctx, subject, b.String())
}

func (s *sendGridEmailService) SendPaymentReminder(ctx context.Context, clientName, eventDate string, balanceCents int64) error {
	subject := "Lembrete de pagamento: " + clientName
	body := fmt.Sprintf(
		"O evento de %s acontece em %s e ainda há um saldo em aberto de %s.\nEntre em contato com o cliente para combinar o pagamento final.",
		clientName, eventDate, utils.FormatBRL(balanceCents),
	)
	return s.send(ctx, subject, body)
}

func (s *sendGridEmailService) SendOverdueReminder(ctx context.Context, clientName, returnDate string) error {
	subject := "Devolução atrasada: " + clientName
	body := fmt.Sprintf(
		"A devolução de %s estava prevista para %s e ainda não foi registrada.\nEntre em contato com o cliente para agendar a devolução.",
		clientName, returnDate,
	)
	return s.send(ctx, subject, body)
}
