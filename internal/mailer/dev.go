package mailer

import (
	"context"
	"log"
)

// Dev is the no-delivery notifier used when SMTP is not configured. It logs
// the rendered message so local runs can inspect what would have been sent.
type Dev struct{}

// NewDev creates a dev notifier.
func NewDev() *Dev { return &Dev{} }

// Send logs the message and succeeds.
func (d *Dev) Send(ctx context.Context, m Mail) error {
	log.Printf("mailer(dev): to=%q subject=%q bytes=%d", m.To, m.Subject, len(m.HTML))
	return nil
}

// Simulated is true: nothing was actually delivered.
func (d *Dev) Simulated() bool { return true }
