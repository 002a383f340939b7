package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/gomailbox/internal/identity/entity"
)

func insertRoles(ctx context.Context, tx pgx.Tx, userID int64, roles []string) error {
	if len(roles) == 0 {
		return nil
	}

	rows := make([][]any, len(roles))
	for i, r := range roles {
		rows[i] = []any{userID, r}
	}

	_, err := tx.CopyFrom(ctx, pgx.Identifier{"identity_user_roles"}, []string{"user_id", "role"}, pgx.CopyFromRows(rows))
	return err
}

func (s *DB) NewUser(ctx context.Context, user entity.NewUser, hash string) (err error) {
	ctx, span := s.startSpan(ctx, "NewUser")
	defer func() { s.endSpan(span, err) }()

	err = s.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO identity_users (id, email, full_name, avatar_url, status, created_by, updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $6)`,
			user.ID, user.Email, user.FullName, user.AvatarURL, int16(user.Status), user.CreatedBy,
		); err != nil {
			return s.mapError(err)
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO identity_user_credentials (user_id, password) VALUES ($1, $2)`,
			user.ID, hash,
		); err != nil {
			return s.mapError(err)
		}

		return s.mapError(insertRoles(ctx, tx, user.ID, user.Roles))
	})
	return err
}

// PatchUser applies the non-zero fields of user. A non-empty hash replaces the
// password and a non-nil Roles replaces all role assignments.
func (s *DB) PatchUser(ctx context.Context, user entity.PatchUser, hash string) (err error) {
	ctx, span := s.startSpan(ctx, "PatchUser")
	defer func() { s.endSpan(span, err) }()

	err = s.inTx(ctx, func(tx pgx.Tx) error {
		if err := s.exec(ctx, tx, `
			UPDATE identity_users SET
				email      = COALESCE(NULLIF($2::text, ''), email),
				full_name  = COALESCE(NULLIF($3::text, ''), full_name),
				avatar_url = COALESCE(NULLIF($4::text, ''), avatar_url),
				status     = COALESCE(NULLIF($5::smallint, 0), status),
				updated_at = now(),
				updated_by = $6
			WHERE id = $1 AND deleted_at IS NULL`,
			user.ID, user.Email, user.FullName, user.AvatarURL, int16(user.Status), user.UpdatedBy,
		); err != nil {
			return err
		}

		if hash != "" {
			if err := s.exec(ctx, tx, `
				UPDATE identity_user_credentials
				SET password = $2, password_changed_at = now(), updated_at = now()
				WHERE user_id = $1`, user.ID, hash,
			); err != nil {
				return err
			}
		}

		if user.Roles != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM identity_user_roles WHERE user_id = $1`, user.ID); err != nil {
				return s.mapError(err)
			}
			if err := insertRoles(ctx, tx, user.ID, user.Roles); err != nil {
				return s.mapError(err)
			}
		}

		return nil
	})
	return err
}

// ActivateUser flips an unverified user to active and consumes the challenge.
func (s *DB) ActivateUser(ctx context.Context, in entity.ActivateUser) (err error) {
	ctx, span := s.startSpan(ctx, "ActivateUser")
	defer func() { s.endSpan(span, err) }()

	err = s.inTx(ctx, func(tx pgx.Tx) error {
		if err := s.exec(ctx, tx, `
			UPDATE identity_users SET status = $2, updated_at = now(), updated_by = $1
			WHERE id = $1 AND status = $3 AND deleted_at IS NULL`,
			in.UserID, int16(entity.UserStatusActive), int16(entity.UserStatusUnverified),
		); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, `DELETE FROM identity_challenges WHERE id = $1`, in.ChallengeID)
		return s.mapError(err)
	})
	return err
}

// MarkUserDeleted soft deletes the user and revokes every open session.
func (s *DB) MarkUserDeleted(ctx context.Context, id, byID int64) (err error) {
	ctx, span := s.startSpan(ctx, "MarkUserDeleted")
	defer func() { s.endSpan(span, err) }()

	err = s.inTx(ctx, func(tx pgx.Tx) error {
		if err := s.exec(ctx, tx, `
			UPDATE identity_users SET deleted_at = now(), deleted_by = $2, updated_at = now(), updated_by = $2
			WHERE id = $1 AND deleted_at IS NULL`, id, byID,
		); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, `
			UPDATE identity_refresh_tokens SET revoked = TRUE, updated_at = now()
			WHERE user_id = $1 AND NOT revoked`, id)
		return s.mapError(err)
	})
	return err
}

// RotateRefreshToken revokes the old token, links it to its replacement and
// stores the replacement. ErrNotFound means the old token was already used.
func (s *DB) RotateRefreshToken(ctx context.Context, ro entity.RotateRefreshToken) (err error) {
	ctx, span := s.startSpan(ctx, "RotateRefreshToken")
	defer func() { s.endSpan(span, err) }()

	err = s.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO identity_refresh_tokens (id, user_id, token, expires_at)
			VALUES ($1, $2, $3, $4)`,
			ro.NewID, ro.UserID, ro.NewToken, ro.NewExpiresAt,
		); err != nil {
			return s.mapError(err)
		}

		return s.exec(ctx, tx, `
			UPDATE identity_refresh_tokens
			SET revoked = TRUE, replaced_by_token_id = $2, updated_at = now()
			WHERE id = $1 AND user_id = $3 AND NOT revoked`,
			ro.OldID, ro.NewID, ro.UserID,
		)
	})
	return err
}
