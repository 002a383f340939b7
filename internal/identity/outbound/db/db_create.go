package db

import (
	"context"

	"github.com/shandysiswandi/gomailbox/internal/identity/entity"
)

func (s *DB) CreateChallenge(ctx context.Context, in entity.Challenge) (err error) {
	ctx, span := s.startSpan(ctx, "CreateChallenge")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO identity_challenges (id, user_id, token, purpose, expires_at)
		VALUES ($1, $2, $3, $4, $5)`,
		in.ID, in.UserID, in.Token, int16(in.Purpose), in.ExpiresAt,
	)
	err = s.mapError(err)
	return err
}

func (s *DB) CreateRefreshToken(ctx context.Context, in entity.RefreshToken) (err error) {
	ctx, span := s.startSpan(ctx, "CreateRefreshToken")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO identity_refresh_tokens (id, user_id, token, expires_at)
		VALUES ($1, $2, $3, $4)`,
		in.ID, in.UserID, in.Token, in.ExpiresAt,
	)
	err = s.mapError(err)
	return err
}
