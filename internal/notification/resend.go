package notification

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

type resendMailer struct {
	client *resend.Client
	from   string
}

// NewResendMailer returns a Mailer backed by the Resend API.
func NewResendMailer(apiKey, from string) Mailer {
	return &resendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (m *resendMailer) Send(ctx context.Context, message Message) error {
	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{message.To},
		Subject: message.Subject,
		Html:    message.HTML,
	})
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", message.To, err)
	}
	return nil
}
