// Package mail sends outbound email through a pluggable provider. Callers
// build a Message and hand it to a Mail; NewFromDriver picks SMTP or SES
// from configuration.
package mail

import (
	"context"
	"errors"
	"io"
	netmail "net/mail"
	"strings"
)

var (
	// ErrNoRecipients is returned when To, Cc and Bcc are all empty.
	ErrNoRecipients = errors.New("mail: no recipients provided")
	// ErrNoSender is returned when neither the message nor the driver names a sender.
	ErrNoSender = errors.New("mail: no sender provided")
)

// Message is a provider neutral email. At least one of TextBody and HTMLBody
// should be set; both together are sent as alternatives.
type Message struct {
	From     string
	To       []string
	Cc       []string
	Bcc      []string
	Subject  string
	TextBody string
	HTMLBody string
}

type Mail interface {
	io.Closer
	Send(ctx context.Context, msg Message) error
}

// recipients returns the bare envelope addresses of To, Cc and Bcc in that
// order. Display names are stripped and blanks dropped.
func (m Message) recipients() []string {
	out := make([]string, 0, len(m.To)+len(m.Cc)+len(m.Bcc))
	for _, list := range [][]string{m.To, m.Cc, m.Bcc} {
		for _, rcpt := range list {
			if rcpt = bareAddress(rcpt); rcpt != "" {
				out = append(out, rcpt)
			}
		}
	}
	return out
}

// sender resolves the From header, falling back to the driver default.
func (m Message) sender(fallback string) (string, error) {
	if from := strings.TrimSpace(m.From); from != "" {
		return from, nil
	}
	if fallback != "" {
		return fallback, nil
	}
	return "", ErrNoSender
}

func bareAddress(s string) string {
	if addr, err := netmail.ParseAddress(s); err == nil {
		return addr.Address
	}
	return strings.TrimSpace(s)
}
