package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shandysiswandi/gomailbox/internal/mailbox/entity"
)

const previewLength = 140

func (s *DB) GetMessageByID(ctx context.Context, id int64) (_ *entity.Message, err error) {
	ctx, span := startSpan(ctx, s.ins, "GetMessageByID")
	defer func() { endSpan(span, err) }()

	var (
		msg    entity.Message
		sentAt pgtype.Timestamptz
	)
	err = s.conn.QueryRow(ctx, `
		SELECT m.id, m.subject, m.body, m.sender_id, COALESCE(u.full_name, ''), m.is_draft, m.sent_at, m.created_at, m.updated_at
		FROM mailbox_messages m
		LEFT JOIN identity_users u ON u.id = m.sender_id
		WHERE m.id = $1`, id).
		Scan(&msg.ID, &msg.Subject, &msg.Body, &msg.SenderID, &msg.SenderName, &msg.IsDraft, &sentAt, &msg.CreatedAt, &msg.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	msg.SentAt = timePtr(sentAt)

	rows, err := s.conn.Query(ctx, `
		SELECT recipient_id, recipient_type, is_read, read_at
		FROM mailbox_message_recipients
		WHERE message_id = $1
		ORDER BY position`, id)
	if err != nil {
		return nil, mapError(err)
	}

	msg.Recipients, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.RecipientLink, error) {
		var (
			l      entity.RecipientLink
			readAt pgtype.Timestamptz
		)
		err := row.Scan(&l.RecipientID, &l.RecipientKind, &l.IsRead, &readAt)
		l.ReadAt = timePtr(readAt)
		return l, err
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &msg, nil
}

// GetInbox lists sent messages with a user link to filter.UserID.
func (s *DB) GetInbox(ctx context.Context, filter entity.MessageListFilter) (_ []entity.MessageSummary, err error) {
	ctx, span := startSpan(ctx, s.ins, "GetInbox")
	defer func() { endSpan(span, err) }()

	return s.listSummaries(ctx, `
		SELECT m.id, m.subject, LEFT(m.body, $5), m.sender_id, COALESCE(u.full_name, ''), COALESCE(u.email, ''),
			r.is_read, m.sent_at, m.updated_at,
			(SELECT COUNT(*) FROM mailbox_message_recipients c WHERE c.message_id = m.id)::int
		FROM mailbox_message_recipients r
		JOIN mailbox_messages m ON m.id = r.message_id
		LEFT JOIN identity_users u ON u.id = m.sender_id
		WHERE r.recipient_id = $1 AND r.recipient_type = 1 AND NOT m.is_draft
			AND ($2::text = '' OR m.subject ILIKE '%' || $2 || '%')
		ORDER BY m.sent_at DESC, m.id ASC
		LIMIT $3 OFFSET $4`,
		filter.UserID, filter.Search, filter.Size, filter.Offset, previewLength)
}

// GetSent lists sent messages authored by filter.UserID.
func (s *DB) GetSent(ctx context.Context, filter entity.MessageListFilter) (_ []entity.MessageSummary, err error) {
	ctx, span := startSpan(ctx, s.ins, "GetSent")
	defer func() { endSpan(span, err) }()

	return s.listSummaries(ctx, `
		SELECT m.id, m.subject, LEFT(m.body, $5), m.sender_id, COALESCE(u.full_name, ''), COALESCE(u.email, ''),
			TRUE, m.sent_at, m.updated_at,
			(SELECT COUNT(*) FROM mailbox_message_recipients c WHERE c.message_id = m.id)::int
		FROM mailbox_messages m
		LEFT JOIN identity_users u ON u.id = m.sender_id
		WHERE m.sender_id = $1 AND NOT m.is_draft
			AND ($2::text = '' OR m.subject ILIKE '%' || $2 || '%')
		ORDER BY m.sent_at DESC, m.id ASC
		LIMIT $3 OFFSET $4`,
		filter.UserID, filter.Search, filter.Size, filter.Offset, previewLength)
}

// GetDrafts lists drafts authored by filter.UserID, most recently edited first.
func (s *DB) GetDrafts(ctx context.Context, filter entity.MessageListFilter) (_ []entity.MessageSummary, err error) {
	ctx, span := startSpan(ctx, s.ins, "GetDrafts")
	defer func() { endSpan(span, err) }()

	return s.listSummaries(ctx, `
		SELECT m.id, m.subject, LEFT(m.body, $5), m.sender_id, COALESCE(u.full_name, ''), COALESCE(u.email, ''),
			TRUE, m.sent_at, m.updated_at,
			(SELECT COUNT(*) FROM mailbox_message_recipients c WHERE c.message_id = m.id)::int
		FROM mailbox_messages m
		LEFT JOIN identity_users u ON u.id = m.sender_id
		WHERE m.sender_id = $1 AND m.is_draft
			AND ($2::text = '' OR m.subject ILIKE '%' || $2 || '%')
		ORDER BY m.updated_at DESC, m.id ASC
		LIMIT $3 OFFSET $4`,
		filter.UserID, filter.Search, filter.Size, filter.Offset, previewLength)
}

// GetAllMessages lists every sent message in inbox order along with the total count.
func (s *DB) GetAllMessages(ctx context.Context, filter entity.MessageListFilter) (_ []entity.MessageSummary, _ int64, err error) {
	ctx, span := startSpan(ctx, s.ins, "GetAllMessages")
	defer func() { endSpan(span, err) }()

	var total int64
	if err = s.conn.QueryRow(ctx, `
		SELECT COUNT(*) FROM mailbox_messages m
		WHERE NOT m.is_draft AND ($1::text = '' OR m.subject ILIKE '%' || $1 || '%')`, filter.Search).Scan(&total); err != nil {
		return nil, 0, mapError(err)
	}

	msgs, err := s.listSummaries(ctx, `
		SELECT m.id, m.subject, LEFT(m.body, $4), m.sender_id, COALESCE(u.full_name, ''), COALESCE(u.email, ''),
			TRUE, m.sent_at, m.updated_at,
			(SELECT COUNT(*) FROM mailbox_message_recipients c WHERE c.message_id = m.id)::int
		FROM mailbox_messages m
		LEFT JOIN identity_users u ON u.id = m.sender_id
		WHERE NOT m.is_draft AND ($1::text = '' OR m.subject ILIKE '%' || $1 || '%')
		ORDER BY m.sent_at DESC, m.id ASC
		LIMIT $2 OFFSET $3`,
		filter.Search, filter.Size, filter.Offset, previewLength)
	if err != nil {
		return nil, 0, err
	}

	return msgs, total, nil
}

func (s *DB) listSummaries(ctx context.Context, query string, args ...any) ([]entity.MessageSummary, error) {
	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}

	msgs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.MessageSummary, error) {
		var (
			m      entity.MessageSummary
			sentAt pgtype.Timestamptz
		)
		err := row.Scan(&m.ID, &m.Subject, &m.Preview, &m.SenderID, &m.SenderName, &m.SenderEmail,
			&m.IsRead, &sentAt, &m.UpdatedAt, &m.RecipientCount)
		m.SentAt = timePtr(sentAt)
		return m, err
	})
	if err != nil {
		return nil, mapError(err)
	}

	return msgs, nil
}

func (s *DB) CountUnread(ctx context.Context, userID int64) (_ int64, err error) {
	ctx, span := startSpan(ctx, s.ins, "CountUnread")
	defer func() { endSpan(span, err) }()

	var count int64
	err = s.conn.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM mailbox_message_recipients r
		JOIN mailbox_messages m ON m.id = r.message_id
		WHERE r.recipient_id = $1 AND r.recipient_type = 1 AND NOT r.is_read AND NOT m.is_draft`, userID).Scan(&count)
	if err != nil {
		return 0, mapError(err)
	}

	return count, nil
}

// SetRecipientRead updates only the user link of userID on a sent message. A
// nil readAt marks the link unread.
func (s *DB) SetRecipientRead(ctx context.Context, messageID, userID int64, readAt *time.Time) (err error) {
	ctx, span := startSpan(ctx, s.ins, "SetRecipientRead")
	defer func() { endSpan(span, err) }()

	return rowsAffected(s.conn.Exec(ctx, `
		UPDATE mailbox_message_recipients r
		SET is_read = $3::timestamptz IS NOT NULL, read_at = $3::timestamptz
		FROM mailbox_messages m
		WHERE m.id = r.message_id AND NOT m.is_draft
			AND r.message_id = $1 AND r.recipient_id = $2 AND r.recipient_type = 1`,
		messageID, userID, readAt))
}

func timePtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time
	return &t
}
