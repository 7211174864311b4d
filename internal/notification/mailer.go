package notification

import (
	"context"
)

//go:generate mockgen -source=mailer.go -destination=../mocks/mock_mailer.go -package=mocks -mock_names=Mailer=MockMailer

// Mailer sends transactional email. Sends are best-effort; callers log
// failures and move on.
type Mailer interface {
	Send(ctx context.Context, message Message) error
}

// Message is a single transactional email.
type Message struct {
	To      string
	Subject string
	HTML    string
}
