package messaging

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
)

// NATSConfig configures the NATS client.
type NATSConfig struct {
	URL     string
	Options []nats.Option
}

// NATS is a core NATS client. Delivery is at-most-once, so a failed handler
// is logged by the caller and the message is dropped.
type NATS struct {
	conn *nats.Conn

	mu     sync.Mutex
	closed bool
}

func NewNATS(cfg NATSConfig) (*NATS, error) {
	if cfg.URL == "" {
		return nil, errors.New("messaging: nats url is required")
	}

	conn, err := nats.Connect(cfg.URL, cfg.Options...)
	if err != nil {
		return nil, fmt.Errorf("messaging: nats connect: %w", err)
	}
	return &NATS{conn: conn}, nil
}

func (n *NATS) Close() error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	n.mu.Unlock()

	err := n.conn.Drain()
	n.conn.Close()
	return err
}

func (n *NATS) Publish(ctx context.Context, topic string, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if topic == "" {
		return ErrTopicRequired
	}

	out := nats.NewMsg(topic)
	out.Data = msg.Body
	for k, v := range msg.Headers {
		out.Header.Set(k, v)
	}
	if err := n.conn.PublishMsg(out); err != nil {
		return fmt.Errorf("messaging: nats publish %s: %w", topic, err)
	}
	return n.conn.FlushWithContext(ctx)
}

func (n *NATS) Subscribe(ctx context.Context, topic string, h Handler, opts ...SubscribeOption) error {
	if err := checkSubscribe(ctx, topic, h); err != nil {
		return err
	}
	n.mu.Lock()
	closed := n.closed
	n.mu.Unlock()
	if closed {
		return ErrClosed
	}

	sc := newSubscribeConfig(opts)
	inbox := make(chan *nats.Msg, sc.maxInFlight)

	sub, err := n.conn.ChanQueueSubscribe(topic, sc.consumer, inbox)
	if err != nil {
		return fmt.Errorf("messaging: nats subscribe %s: %w", topic, err)
	}

	var wg sync.WaitGroup
	for range sc.workers {
		wg.Go(func() {
			for {
				select {
				case <-ctx.Done():
					return
				case m := <-inbox:
					n.handle(ctx, h, m)
				}
			}
		})
	}

	<-ctx.Done()
	uerr := sub.Unsubscribe()
	wg.Wait()
	if errors.Is(uerr, nats.ErrConnectionClosed) || errors.Is(uerr, nats.ErrBadSubscription) {
		uerr = nil
	}

	return errors.Join(ctx.Err(), uerr)
}

func (n *NATS) handle(ctx context.Context, h Handler, m *nats.Msg) {
	headers := make(map[string]string, len(m.Header))
	for k := range m.Header {
		headers[k] = m.Header.Get(k)
	}
	_ = dispatch(ctx, "nats", h, &Message{
		Topic:     m.Subject,
		Body:      m.Data,
		Headers:   headers,
		Attempt:   1,
		Timestamp: time.Now(),
	})
}
