package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/readyforswiss/cvscan/internal/domain/delivery"
)

// Sender delivers reports through the Resend transactional email API.
type Sender struct {
	client *resend.Client
	from   string
}

func NewSender(apiKey, from string) *Sender {
	return &Sender{client: resend.NewClient(apiKey), from: from}
}

func (s *Sender) Send(ctx context.Context, msg delivery.Message) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	if msg.BCC != "" {
		params.Bcc = []string{msg.BCC}
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend send: %w", err)
	}
	return nil
}
