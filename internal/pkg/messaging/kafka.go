package messaging

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaConfig configures the Kafka client.
type KafkaConfig struct {
	Brokers []string
	Dialer  *kafka.Dialer
	// MaxAttempts bounds redelivery of a failing message before its offset
	// is committed anyway. Zero means 5.
	MaxAttempts int
}

// Kafka publishes with one writer per topic and consumes through consumer groups.
type Kafka struct {
	cfg KafkaConfig

	mu      sync.Mutex
	writers map[string]*kafka.Writer
	closed  bool
}

func NewKafka(cfg KafkaConfig) (*Kafka, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("messaging: kafka brokers are required")
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	return &Kafka{cfg: cfg, writers: map[string]*kafka.Writer{}}, nil
}

func (k *Kafka) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.closed {
		return nil
	}
	k.closed = true

	var err error
	for _, w := range k.writers {
		err = errors.Join(err, w.Close())
	}
	k.writers = nil
	return err
}

func (k *Kafka) writer(topic string) (*kafka.Writer, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.closed {
		return nil, ErrClosed
	}
	if w, ok := k.writers[topic]; ok {
		return w, nil
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(k.cfg.Brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
	if k.cfg.Dialer != nil {
		w.Transport = &kafka.Transport{
			Dial: k.cfg.Dialer.DialFunc,
			SASL: k.cfg.Dialer.SASLMechanism,
			TLS:  k.cfg.Dialer.TLS,
		}
	}
	k.writers[topic] = w
	return w, nil
}

func (k *Kafka) Publish(ctx context.Context, topic string, msg *Message) error {
	if topic == "" {
		return ErrTopicRequired
	}
	w, err := k.writer(topic)
	if err != nil {
		return err
	}

	km := kafka.Message{Value: msg.Body, Time: msg.Timestamp}
	if km.Time.IsZero() {
		km.Time = time.Now()
	}
	if msg.ID != "" {
		km.Key = []byte(msg.ID)
	}
	for key, v := range msg.Headers {
		km.Headers = append(km.Headers, kafka.Header{Key: key, Value: []byte(v)})
	}

	if err := w.WriteMessages(ctx, km); err != nil {
		return fmt.Errorf("messaging: kafka publish %s: %w", topic, err)
	}
	return nil
}

// Subscribe reads topic as part of the consumer group. Messages are handled
// in order per partition; an offset is committed once its handler succeeds
// or MaxAttempts is exhausted.
func (k *Kafka) Subscribe(ctx context.Context, topic string, h Handler, opts ...SubscribeOption) error {
	if err := checkSubscribe(ctx, topic, h); err != nil {
		return err
	}
	sc := newSubscribeConfig(opts)
	if sc.consumer == "" {
		return ErrConsumerRequired
	}
	k.mu.Lock()
	closed := k.closed
	k.mu.Unlock()
	if closed {
		return ErrClosed
	}

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  k.cfg.Brokers,
		GroupID:  sc.consumer,
		Topic:    topic,
		MaxBytes: 10e6,
		Dialer:   k.cfg.Dialer,
	})
	defer r.Close()

	for {
		m, err := r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("messaging: kafka fetch %s: %w", topic, err)
		}

		k.deliver(ctx, h, m)

		if err := r.CommitMessages(ctx, m); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("messaging: kafka commit %s: %w", topic, err)
		}
	}
}

func (k *Kafka) deliver(ctx context.Context, h Handler, m kafka.Message) {
	headers := make(map[string]string, len(m.Headers))
	for _, hd := range m.Headers {
		headers[hd.Key] = string(hd.Value)
	}

	backoff := 100 * time.Millisecond
	for attempt := 1; attempt <= k.cfg.MaxAttempts; attempt++ {
		err := dispatch(ctx, "kafka", h, &Message{
			ID:        string(m.Key),
			Topic:     m.Topic,
			Body:      m.Value,
			Headers:   headers,
			Attempt:   attempt,
			Timestamp: m.Time,
		})
		if err == nil {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}
