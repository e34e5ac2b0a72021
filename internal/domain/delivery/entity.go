package delivery

import "context"

// Status enum
type Status string

const (
	StatusDelivered Status = "delivered"
	StatusFallback  Status = "fallback"
)

// Outcome describes what happened to the email. There is no retry state:
// a failed send downgrades to fallback and that is final for the request.
type Outcome struct {
	Status    Status `json:"status"`
	Recipient string `json:"recipient"`
	Message   string `json:"message"`
}

// Message is one outbound report email.
type Message struct {
	To      string
	BCC     string
	Subject string
	HTML    string
}

// Sender port (interface for the transactional email provider)
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
