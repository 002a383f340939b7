package email

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/shandysiswandi/gomailbox/internal/mailbox/usecase"
	"github.com/shandysiswandi/gomailbox/internal/pkg/idempotency"
	"github.com/shandysiswandi/gomailbox/internal/pkg/instrument"
	"github.com/shandysiswandi/gomailbox/internal/pkg/mail"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// EmptyBodyPlaceholder replaces a blank message body in outgoing emails.
const EmptyBodyPlaceholder = "(no content)"

var (
	ErrFromAddressEmpty = errors.New("email: from address is empty")
	ErrToAddressEmpty   = errors.New("email: to address is empty")
)

type Config struct {
	// MaxRetries is the number of extra attempts after a failed send; zero disables retrying.
	MaxRetries uint64
	// RetryBase is the first backoff interval.
	RetryBase time.Duration
	// StateTTL is how long a delivered key is remembered.
	StateTTL time.Duration
}

// Mail sends one recipient notification per call. Deliveries are tracked by
// key so a repeated send of the same (message, recipient) pair is skipped.
type Mail struct {
	client mail.Mail
	idemp  idempotency.Idempotency
	ins    instrument.Instrumentation
	cfg    Config
}

func New(client mail.Mail, idemp idempotency.Idempotency, ins instrument.Instrumentation, cfg Config) *Mail {
	if cfg.RetryBase <= 0 {
		cfg.RetryBase = 200 * time.Millisecond
	}
	if cfg.StateTTL <= 0 {
		cfg.StateTTL = 24 * time.Hour
	}

	return &Mail{client: client, idemp: idemp, ins: ins, cfg: cfg}
}

func (m *Mail) SendEmail(ctx context.Context, n usecase.Notification) (err error) {
	ctx, span := m.ins.Tracer("mailbox.outbound.email").Start(ctx, "SendEmail")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	msg, err := buildMessage(n)
	if err != nil {
		return err
	}

	send := func(ctx context.Context) error {
		return m.sendWithRetry(ctx, msg)
	}

	if n.Key == "" || m.idemp == nil {
		return send(ctx)
	}

	err = m.idemp.Exec(ctx, n.Key, send,
		idempotency.WithLockDuration(time.Minute),
		idempotency.WithStateTTL(m.cfg.StateTTL),
		idempotency.WithRetryFailed(),
	)
	if errors.Is(err, idempotency.ErrAlreadyCompleted) {
		span.SetAttributes(attribute.Bool("notify.duplicate", true))
		slog.InfoContext(ctx, "recipient already notified", "key", n.Key)
		return nil
	}

	return err
}

func (m *Mail) sendWithRetry(ctx context.Context, msg mail.Message) error {
	if m.cfg.MaxRetries == 0 {
		return m.client.Send(ctx, msg)
	}

	b := retry.NewExponential(m.cfg.RetryBase)
	b = retry.WithMaxRetries(m.cfg.MaxRetries, b)
	b = retry.WithJitterPercent(10, b)

	return retry.Do(ctx, b, func(ctx context.Context) error {
		if err := m.client.Send(ctx, msg); err != nil {
			slog.WarnContext(ctx, "failed to send email, retrying", "to", msg.To, "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
}

// buildMessage renders the sender as "Name <address>" and substitutes a
// placeholder for an empty body.
func buildMessage(n usecase.Notification) (mail.Message, error) {
	from := strings.TrimSpace(n.FromAddress)
	to := strings.TrimSpace(n.ToAddress)
	if from == "" {
		return mail.Message{}, ErrFromAddressEmpty
	}
	if to == "" {
		return mail.Message{}, ErrToAddressEmpty
	}

	if name := strings.TrimSpace(n.FromName); name != "" {
		from = name + " <" + from + ">"
	}

	body := n.HTMLBody
	if strings.TrimSpace(body) == "" {
		body = EmptyBodyPlaceholder
	}

	return mail.Message{
		From:     from,
		To:       []string{to},
		Subject:  n.Subject,
		HTMLBody: body,
	}, nil
}
