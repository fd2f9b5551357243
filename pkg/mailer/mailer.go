// Package mailer delivers rendered HTML messages over SMTP.
package mailer

import (
	"context"
	"errors"
	"strings"
)

// ErrNoRecipients is returned when a message has no destination address.
var ErrNoRecipients = errors.New("mailer: message has no recipients")

// Message is a single outbound HTML email.
type Message struct {
	To      []string
	Subject string
	HTML    string
}

// Sender delivers a message in a single attempt.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NopSender discards every message. It is used when no SMTP host is configured.
type NopSender struct{}

// Send implements Sender.
func (NopSender) Send(context.Context, Message) error { return nil }

func recipients(to []string) []string {
	out := make([]string, 0, len(to))
	for _, addr := range to {
		if trimmed := strings.TrimSpace(addr); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
