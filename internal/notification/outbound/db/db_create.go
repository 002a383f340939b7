package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/gomailbox/internal/notification/entity"
)

func (s *DB) CreateNotifications(ctx context.Context, items []entity.CreateNotification) (err error) {
	ctx, span := s.startSpan(ctx, "CreateNotifications")
	defer func() { s.endSpan(span, err) }()

	if len(items) == 0 {
		return nil
	}

	_, err = s.conn.CopyFrom(ctx,
		pgx.Identifier{"notification_notifications"},
		[]string{"id", "user_id", "trigger_key", "data", "metadata", "created_at"},
		pgx.CopyFromSlice(len(items), func(i int) ([]any, error) {
			n := items[i]
			return []any{n.ID, n.UserID, n.TriggerKey.String(), n.Data, n.Metadata, n.CreatedAt}, nil
		}),
	)
	return s.mapError(err)
}

// CreateNotificationWithDeliveryLog stores the notification and its queued
// delivery log atomically.
func (s *DB) CreateNotificationWithDeliveryLog(ctx context.Context, n entity.CreateNotification, dl entity.CreateDeliveryLog) (err error) {
	ctx, span := s.startSpan(ctx, "CreateNotificationWithDeliveryLog")
	defer func() { s.endSpan(span, err) }()

	tx, err := s.conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return s.mapError(err)
	}
	defer s.rollback(ctx, tx)

	batch := &pgx.Batch{}
	batch.Queue(`
		INSERT INTO notification_notifications (id, user_id, trigger_key, data, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		n.ID, n.UserID, n.TriggerKey.String(), n.Data, n.Metadata, n.CreatedAt,
	)
	batch.Queue(`
		INSERT INTO notification_delivery_logs (id, notification_id, channel, status, provider_response, created_at, updated_at)
		VALUES ($1, $2, $3, $4, '{}'::jsonb, $5, $5)`,
		dl.ID, dl.NotificationID, int16(dl.Channel), int16(dl.Status), n.CreatedAt,
	)

	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return s.mapError(err)
	}

	err = s.mapError(tx.Commit(ctx))
	return err
}
