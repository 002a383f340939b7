package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/gomailbox/internal/mailbox/entity"
	"github.com/shandysiswandi/gomailbox/internal/mailbox/usecase"
	"github.com/shandysiswandi/gomailbox/internal/pkg/instrument"
)

// UnitOfWork writes messages inside a single database transaction.
type UnitOfWork struct {
	tx  pgx.Tx
	ins instrument.Instrumentation
}

// Begin opens a transaction; callers must Commit or Rollback it.
func (s *DB) Begin(ctx context.Context) (_ usecase.UnitOfWork, err error) {
	ctx, span := startSpan(ctx, s.ins, "Begin")
	defer func() { endSpan(span, err) }()

	tx, err := s.conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, mapError(err)
	}

	return &UnitOfWork{tx: tx, ins: s.ins}, nil
}

func (u *UnitOfWork) CreateMessage(ctx context.Context, msg entity.Message) (err error) {
	ctx, span := startSpan(ctx, u.ins, "UnitOfWork.CreateMessage")
	defer func() { endSpan(span, err) }()

	_, err = u.tx.Exec(ctx, `
		INSERT INTO mailbox_messages (id, subject, body, sender_id, is_draft, sent_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		msg.ID, msg.Subject, msg.Body, msg.SenderID, msg.IsDraft, msg.SentAt, msg.CreatedAt, msg.UpdatedAt)
	return mapError(err)
}

// UpdateMessage rewrites the mutable columns. Only drafts can be updated; a
// sent row reports ErrNotFound.
func (u *UnitOfWork) UpdateMessage(ctx context.Context, msg entity.Message) (err error) {
	ctx, span := startSpan(ctx, u.ins, "UnitOfWork.UpdateMessage")
	defer func() { endSpan(span, err) }()

	return rowsAffected(u.tx.Exec(ctx, `
		UPDATE mailbox_messages
		SET subject = $2, body = $3, is_draft = $4, sent_at = $5, updated_at = $6
		WHERE id = $1 AND is_draft`,
		msg.ID, msg.Subject, msg.Body, msg.IsDraft, msg.SentAt, msg.UpdatedAt))
}

// ReplaceRecipients deletes every link of the message and inserts links in
// the given order.
func (u *UnitOfWork) ReplaceRecipients(ctx context.Context, messageID int64, links []entity.RecipientLink) (err error) {
	ctx, span := startSpan(ctx, u.ins, "UnitOfWork.ReplaceRecipients")
	defer func() { endSpan(span, err) }()

	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM mailbox_message_recipients WHERE message_id = $1`, messageID)
	for i, l := range links {
		batch.Queue(`
			INSERT INTO mailbox_message_recipients (message_id, recipient_type, recipient_id, position, is_read, read_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			messageID, l.RecipientKind, l.RecipientID, i, l.IsRead, l.ReadAt)
	}

	return mapError(u.tx.SendBatch(ctx, batch).Close())
}

func (u *UnitOfWork) DeleteMessage(ctx context.Context, id int64) (err error) {
	ctx, span := startSpan(ctx, u.ins, "UnitOfWork.DeleteMessage")
	defer func() { endSpan(span, err) }()

	return rowsAffected(u.tx.Exec(ctx, `DELETE FROM mailbox_messages WHERE id = $1`, id))
}

func (u *UnitOfWork) Commit(ctx context.Context) error {
	return mapError(u.tx.Commit(ctx))
}

// Rollback discards uncommitted work. It is safe to call after Commit.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	if err := u.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}
