package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/gomailbox/internal/notification/entity"
	"github.com/shandysiswandi/gomailbox/internal/pkg/valueobject"
)

// statusCond narrows the feed by read state; it never takes user input directly.
func statusCond(status entity.NotificationStatus) string {
	switch status {
	case entity.NotificationStatusUnread:
		return " AND read_at IS NULL"
	case entity.NotificationStatusRead:
		return " AND read_at IS NOT NULL"
	default:
		return ""
	}
}

func (s *DB) ListNotifications(ctx context.Context, filter entity.NotificationListFilter) (_ []entity.NotificationItem, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "ListNotifications")
	defer func() { s.endSpan(span, err) }()

	where := ` WHERE user_id = $1 AND deleted_at IS NULL` + statusCond(filter.Status)

	var total int64
	if err = s.conn.QueryRow(ctx, `SELECT COUNT(*) FROM notification_notifications`+where, filter.UserID).Scan(&total); err != nil {
		return nil, 0, s.mapError(err)
	}

	rows, err := s.conn.Query(ctx, `
		SELECT id, trigger_key, data, metadata, read_at, created_at
		FROM notification_notifications`+where+`
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`,
		filter.UserID, filter.Size, filter.Offset,
	)
	if err != nil {
		return nil, 0, s.mapError(err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.NotificationItem, error) {
		var (
			item       entity.NotificationItem
			triggerKey string
			data       valueobject.JSONMap
			metadata   valueobject.JSONMap
			readAt     *time.Time
		)
		if err := row.Scan(&item.ID, &triggerKey, &data, &metadata, &readAt, &item.CreatedAt); err != nil {
			return item, err
		}
		item.TriggerKey = entity.TriggerKey(triggerKey)
		item.Data = data
		item.Metadata = metadata
		item.ReadAt = readAt
		return item, nil
	})
	if err != nil {
		return nil, 0, s.mapError(err)
	}

	return items, total, nil
}

func (s *DB) CountUnreadNotifications(ctx context.Context, userID int64) (_ int64, err error) {
	ctx, span := s.startSpan(ctx, "CountUnreadNotifications")
	defer func() { s.endSpan(span, err) }()

	var count int64
	err = s.conn.QueryRow(ctx, `
		SELECT COUNT(*) FROM notification_notifications
		WHERE user_id = $1 AND read_at IS NULL AND deleted_at IS NULL`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, s.mapError(err)
	}

	return count, nil
}
