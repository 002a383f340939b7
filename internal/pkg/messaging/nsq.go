package messaging

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	nsq "github.com/nsqio/go-nsq"
)

// NSQConfig configures the NSQ client.
type NSQConfig struct {
	ProducerAddr   string
	NSQDAddrs      []string
	LookupdAddrs   []string
	ProducerConfig *nsq.Config
	ConsumerConfig *nsq.Config
	// RequeueDelay is applied when a handler fails. Zero lets nsqd back off.
	RequeueDelay time.Duration
}

// NSQ publishes to nsqd and consumes through lookupd or nsqd directly.
// Headers travel inside a JSON envelope.
type NSQ struct {
	cfg      NSQConfig
	producer *nsq.Producer

	mu        sync.Mutex
	consumers map[*nsq.Consumer]struct{}
	closed    bool
}

// NewNSQ connects a producer when ProducerAddr is set.
func NewNSQ(cfg NSQConfig) (*NSQ, error) {
	if cfg.ProducerConfig == nil {
		cfg.ProducerConfig = nsq.NewConfig()
	}
	if cfg.ConsumerConfig == nil {
		cfg.ConsumerConfig = nsq.NewConfig()
	}

	n := &NSQ{cfg: cfg, consumers: map[*nsq.Consumer]struct{}{}}
	if cfg.ProducerAddr == "" {
		return n, nil
	}

	p, err := nsq.NewProducer(cfg.ProducerAddr, cfg.ProducerConfig)
	if err != nil {
		return nil, fmt.Errorf("messaging: nsq producer: %w", err)
	}
	p.SetLoggerLevel(nsq.LogLevelError)
	n.producer = p

	return n, nil
}

func (n *NSQ) Close() error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	consumers := make([]*nsq.Consumer, 0, len(n.consumers))
	for c := range n.consumers {
		consumers = append(consumers, c)
	}
	n.mu.Unlock()

	for _, c := range consumers {
		c.Stop()
		<-c.StopChan
	}
	if n.producer != nil {
		n.producer.Stop()
	}
	return nil
}

func (n *NSQ) Publish(ctx context.Context, topic string, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if topic == "" {
		return ErrTopicRequired
	}
	if n.producer == nil {
		return errors.New("messaging: nsq producer address is not configured")
	}

	data, err := sealEnvelope(msg)
	if err != nil {
		return err
	}
	if err := n.producer.Publish(topic, data); err != nil {
		return fmt.Errorf("messaging: nsq publish %s: %w", topic, err)
	}
	return nil
}

func (n *NSQ) Subscribe(ctx context.Context, topic string, h Handler, opts ...SubscribeOption) error {
	if err := checkSubscribe(ctx, topic, h); err != nil {
		return err
	}
	sc := newSubscribeConfig(opts)
	if sc.consumer == "" {
		return ErrConsumerRequired
	}
	if len(n.cfg.NSQDAddrs) == 0 && len(n.cfg.LookupdAddrs) == 0 {
		return errors.New("messaging: nsq needs nsqd or lookupd addresses")
	}

	ccfg := *n.cfg.ConsumerConfig
	ccfg.MaxInFlight = sc.maxInFlight

	consumer, err := nsq.NewConsumer(topic, sc.consumer, &ccfg)
	if err != nil {
		return fmt.Errorf("messaging: nsq consumer: %w", err)
	}
	consumer.SetLoggerLevel(nsq.LogLevelError)
	consumer.AddConcurrentHandlers(nsq.HandlerFunc(func(m *nsq.Message) error {
		m.DisableAutoResponse()

		headers, body := openEnvelope(m.Body)
		msg := &Message{
			ID:        string(m.ID[:]),
			Topic:     topic,
			Body:      body,
			Headers:   headers,
			Attempt:   int(m.Attempts),
			Timestamp: time.Unix(0, m.Timestamp),
		}
		if err := dispatch(ctx, "nsq", h, msg); err != nil {
			m.Requeue(n.cfg.RequeueDelay)
			return nil
		}
		m.Finish()
		return nil
	}), sc.workers)

	if err := n.track(consumer); err != nil {
		consumer.Stop()
		return err
	}
	defer n.untrack(consumer)

	if len(n.cfg.LookupdAddrs) > 0 {
		err = consumer.ConnectToNSQLookupds(n.cfg.LookupdAddrs)
	} else {
		err = consumer.ConnectToNSQDs(n.cfg.NSQDAddrs)
	}
	if err != nil {
		consumer.Stop()
		<-consumer.StopChan
		return fmt.Errorf("messaging: nsq connect: %w", err)
	}

	select {
	case <-ctx.Done():
		consumer.Stop()
		<-consumer.StopChan
		return ctx.Err()
	case <-consumer.StopChan:
		return nil
	}
}

func (n *NSQ) track(c *nsq.Consumer) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return ErrClosed
	}
	n.consumers[c] = struct{}{}
	return nil
}

func (n *NSQ) untrack(c *nsq.Consumer) {
	n.mu.Lock()
	delete(n.consumers, c)
	n.mu.Unlock()
}
