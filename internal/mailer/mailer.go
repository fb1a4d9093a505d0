// Package mailer is the notification-dispatch collaborator. Callers persist
// first and treat delivery failure as a soft warning, never as data loss.
package mailer

import "context"

// Mail is one outbound message.
type Mail struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Notifier delivers rendered mail. Simulated reports whether this
// implementation only pretends to deliver (dev/logging mode).
type Notifier interface {
	Send(ctx context.Context, m Mail) error
	Simulated() bool
}
