package db

import (
	"context"

	"github.com/shandysiswandi/gomailbox/internal/identity/entity"
)

func (s *DB) RevokeRefreshToken(ctx context.Context, token string) (err error) {
	ctx, span := s.startSpan(ctx, "RevokeRefreshToken")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		UPDATE identity_refresh_tokens SET revoked = TRUE, updated_at = now()
		WHERE token = $1 AND NOT revoked`, token)
	err = s.mapError(err)
	return err
}

func (s *DB) RevokeAllRefreshToken(ctx context.Context, userID int64) (err error) {
	ctx, span := s.startSpan(ctx, "RevokeAllRefreshToken")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		UPDATE identity_refresh_tokens SET revoked = TRUE, updated_at = now()
		WHERE user_id = $1 AND NOT revoked`, userID)
	err = s.mapError(err)
	return err
}

func (s *DB) UpdateUserProfile(ctx context.Context, id int64, fullName string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUserProfile")
	defer func() { s.endSpan(span, err) }()

	err = s.exec(ctx, s.conn, `
		UPDATE identity_users SET full_name = $2, updated_at = now(), updated_by = $1
		WHERE id = $1 AND deleted_at IS NULL`, id, fullName)
	return err
}

func (s *DB) UpdateUserAvatar(ctx context.Context, id int64, avatarURL string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUserAvatar")
	defer func() { s.endSpan(span, err) }()

	err = s.exec(ctx, s.conn, `
		UPDATE identity_users SET avatar_url = $2, updated_at = now(), updated_by = $1
		WHERE id = $1 AND deleted_at IS NULL`, id, avatarURL)
	return err
}

// UpdateUserStatus moves the user from oldStatus to newStatus. ErrNotFound
// means the user is gone or no longer in oldStatus.
func (s *DB) UpdateUserStatus(ctx context.Context, id int64, oldStatus, newStatus entity.UserStatus, byID int64) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUserStatus")
	defer func() { s.endSpan(span, err) }()

	err = s.exec(ctx, s.conn, `
		UPDATE identity_users SET status = $3, updated_at = now(), updated_by = $4
		WHERE id = $1 AND status = $2 AND deleted_at IS NULL`,
		id, int16(oldStatus), int16(newStatus), byID)
	return err
}

func (s *DB) UpdateUserCredential(ctx context.Context, userID int64, hash string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUserCredential")
	defer func() { s.endSpan(span, err) }()

	err = s.exec(ctx, s.conn, `
		UPDATE identity_user_credentials
		SET password = $2, password_changed_at = now(), updated_at = now()
		WHERE user_id = $1`, userID, hash)
	return err
}
