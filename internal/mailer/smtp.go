package mailer

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTP delivers mail through a real SMTP server using gomail.
type SMTP struct {
	dialer *gomail.Dialer
	from   string
	sender string
}

// NewSMTP builds the dialer. sender is the display name on the From header.
func NewSMTP(host string, port int, user, pass, from, sender string) *SMTP {
	return &SMTP{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
		sender: sender,
	}
}

// Send dials and delivers one message. The context is checked before the
// blocking dial; gomail itself has no context support.
func (s *SMTP) Send(ctx context.Context, m Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", s.from, s.sender)
	msg.SetHeader("To", m.To)
	if m.ReplyTo != "" {
		msg.SetHeader("Reply-To", m.ReplyTo)
	}
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/html", m.HTML)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", m.To, err)
	}
	return nil
}

// Simulated is false: this notifier really delivers.
func (s *SMTP) Simulated() bool { return false }
