package service

import "context"

// Mail is a plain-text e-mail.
type Mail struct {
	To      string
	Subject string
	Body    string
}

// Mailer sends transactional e-mail.
type Mailer interface {
	Send(ctx context.Context, mail *Mail) error
}
