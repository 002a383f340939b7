package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/gomailbox/internal/pkg/instrument"
	"go.opentelemetry.io/otel/codes"
)

const (
	sendKeyPrefix     = "mailbox:send:"
	defaultSendKeyTTL = 24 * time.Hour
)

// Cache keeps the Idempotency-Key to message id bindings of sends.
type Cache struct {
	client redis.Cmdable
	ins    instrument.Instrumentation
	ttl    time.Duration
}

func NewCache(client redis.Cmdable, ins instrument.Instrumentation, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultSendKeyTTL
	}
	return &Cache{client: client, ins: ins, ttl: ttl}
}

// ReserveMessageID binds key to candidate unless the key is already bound,
// and returns the id the key ends up bound to.
func (c *Cache) ReserveMessageID(ctx context.Context, key string, candidate int64) (id int64, err error) {
	ctx, span := c.ins.Tracer("mailbox.outbound.cache").Start(ctx, "ReserveMessageID")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	k := sendKeyPrefix + key
	// A binding can expire between SETNX and GET; the second pass claims it again.
	for range 2 {
		ok, err := c.client.SetNX(ctx, k, candidate, c.ttl).Result()
		if err != nil {
			return 0, err
		}
		if ok {
			return candidate, nil
		}

		id, err := c.client.Get(ctx, k).Int64()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return 0, err
		}
		return id, nil
	}

	return 0, redis.Nil
}
