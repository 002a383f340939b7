package db

import (
	"context"

	"github.com/shandysiswandi/gomailbox/internal/notification/entity"
)

func (s *DB) MarkNotificationRead(ctx context.Context, userID, notificationID int64) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "MarkNotificationRead")
	defer func() { s.endSpan(span, err) }()

	// already-read rows still count as found
	tag, err := s.conn.Exec(ctx, `
		UPDATE notification_notifications
		SET read_at = COALESCE(read_at, NOW())
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`,
		notificationID, userID,
	)
	if err != nil {
		return false, s.mapError(err)
	}

	return tag.RowsAffected() == 1, nil
}

func (s *DB) MarkNotificationsReadAll(ctx context.Context, userID int64) (_ int64, err error) {
	ctx, span := s.startSpan(ctx, "MarkNotificationsReadAll")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `
		UPDATE notification_notifications
		SET read_at = NOW()
		WHERE user_id = $1 AND read_at IS NULL AND deleted_at IS NULL`,
		userID,
	)
	if err != nil {
		return 0, s.mapError(err)
	}

	return tag.RowsAffected(), nil
}

func (s *DB) UpdateDeliveryLogStatus(ctx context.Context, u entity.UpdateDeliveryLog) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateDeliveryLogStatus")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		UPDATE notification_delivery_logs
		SET status = $2, provider_response = $3, next_retry_at = $4::timestamptz,
			attempts = attempts + 1, updated_at = NOW()
		WHERE id = $1`,
		u.ID, int16(u.Status), u.ProviderResponse, u.NextRetryAt,
	)
	err = s.mapError(err)
	return err
}
