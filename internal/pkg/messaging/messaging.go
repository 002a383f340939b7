package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/shandysiswandi/gomailbox/internal/pkg/stacktrace"
)

// HeaderCorrelationID carries the request correlation id across services.
const HeaderCorrelationID = "x-correlation-id"

var (
	// ErrTopicRequired is returned when the topic name is empty.
	ErrTopicRequired = errors.New("messaging: topic is required")
	// ErrConsumerRequired is returned when a broker needs a consumer name and none was given.
	ErrConsumerRequired = errors.New("messaging: consumer name is required")
	// ErrHandlerRequired is returned when Subscribe is called with a nil handler.
	ErrHandlerRequired = errors.New("messaging: handler is required")
	// ErrClosed is returned after Close has been called.
	ErrClosed = errors.New("messaging: client is closed")
)

// Messaging publishes events and runs subscriptions.
type Messaging interface {
	io.Closer

	// Publish delivers msg to topic. msg.Topic is ignored.
	Publish(ctx context.Context, topic string, msg *Message) error

	// Subscribe blocks, feeding messages of topic to h until ctx is done or
	// the broker connection fails.
	Subscribe(ctx context.Context, topic string, h Handler, opts ...SubscribeOption) error
}

// Message is a single event travelling through a broker.
type Message struct {
	ID        string
	Topic     string
	Body      []byte
	Headers   map[string]string
	Attempt   int
	Timestamp time.Time
}

// Header returns the header value for key, or "".
func (m *Message) Header(key string) string {
	if m == nil || m.Headers == nil {
		return ""
	}
	return m.Headers[key]
}

// Handler processes one message. Returning nil acknowledges it.
type Handler func(ctx context.Context, msg *Message) error

type subscribeConfig struct {
	consumer    string
	workers     int
	maxInFlight int
}

// SubscribeOption tunes a subscription.
type SubscribeOption func(*subscribeConfig)

// WithConsumer names the consumer. It maps to the NSQ channel, the NATS queue
// group, the Kafka consumer group and the Pub/Sub subscription id.
func WithConsumer(name string) SubscribeOption {
	return func(c *subscribeConfig) { c.consumer = name }
}

// WithWorkers sets how many handlers run in parallel.
func WithWorkers(n int) SubscribeOption {
	return func(c *subscribeConfig) { c.workers = n }
}

// WithMaxInFlight limits unacknowledged deliveries held by the client.
func WithMaxInFlight(n int) SubscribeOption {
	return func(c *subscribeConfig) { c.maxInFlight = n }
}

func newSubscribeConfig(opts []SubscribeOption) subscribeConfig {
	c := subscribeConfig{workers: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if c.workers <= 0 {
		c.workers = 1
	}
	if c.maxInFlight < c.workers {
		c.maxInFlight = c.workers
	}
	return c
}

func checkSubscribe(ctx context.Context, topic string, h Handler) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if topic == "" {
		return ErrTopicRequired
	}
	if h == nil {
		return ErrHandlerRequired
	}
	return nil
}

// dispatch runs h and turns a panic into an error so the message gets redelivered.
func dispatch(ctx context.Context, broker string, h Handler, msg *Message) (err error) {
	defer func() {
		rvr := recover()
		if rvr == nil {
			return
		}
		stack := debug.Stack()
		if paths := stacktrace.InternalPaths(stack); len(paths) > 0 {
			slog.ErrorContext(ctx, "panic while handling message", "broker", broker, "topic", msg.Topic, "panic", rvr, "stack", paths)
		} else {
			slog.ErrorContext(ctx, "panic while handling message", "broker", broker, "topic", msg.Topic, "panic", rvr, "stack", string(stack))
		}
		err = fmt.Errorf("messaging: %s handler panic: %v", broker, rvr)
	}()

	return h(ctx, msg)
}

// envelope wraps body and headers for brokers without native headers.
type envelope struct {
	Headers map[string]string `json:"h,omitempty"`
	Body    []byte            `json:"b"`
}

func sealEnvelope(msg *Message) ([]byte, error) {
	return json.Marshal(envelope{Headers: msg.Headers, Body: msg.Body})
}

// openEnvelope returns the headers and body of data. Payloads published
// without an envelope come back unchanged with no headers.
func openEnvelope(data []byte) (map[string]string, []byte) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil || env.Body == nil {
		return nil, data
	}
	return env.Headers, env.Body
}
