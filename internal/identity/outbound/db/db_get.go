package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/gomailbox/internal/identity/entity"
)

const rolesOfUser = `COALESCE(ARRAY(SELECT r.role FROM identity_user_roles r WHERE r.user_id = u.id ORDER BY r.role), '{}')`

const selectUser = `
SELECT u.id, u.email, u.full_name, u.avatar_url, u.status, ` + rolesOfUser + ` AS roles,
	c.password_changed_at, u.created_at, u.updated_at, u.deleted_at
FROM identity_users u
LEFT JOIN identity_user_credentials c ON c.user_id = u.id`

func scanUser(row pgx.CollectableRow) (entity.User, error) {
	var (
		u      entity.User
		status int16
	)
	err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.AvatarURL, &status, &u.Roles,
		&u.PasswordChangedAt, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt)
	u.Status = entity.UserStatus(status)
	return u, err
}

func (s *DB) getUser(ctx context.Context, where string, arg any, includeDeleted bool) (*entity.User, error) {
	query := selectUser + ` WHERE ` + where
	if !includeDeleted {
		query += ` AND u.deleted_at IS NULL`
	}

	rows, err := s.conn.Query(ctx, query, arg)
	if err != nil {
		return nil, s.mapError(err)
	}

	user, err := pgx.CollectExactlyOneRow(rows, scanUser)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &user, nil
}

func (s *DB) GetUserByEmail(ctx context.Context, email string, includeDeleted bool) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByEmail")
	defer func() { s.endSpan(span, err) }()

	user, err := s.getUser(ctx, `u.email = $1`, email, includeDeleted)
	return user, err
}

func (s *DB) GetUserByID(ctx context.Context, id int64, includeDeleted bool) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByID")
	defer func() { s.endSpan(span, err) }()

	user, err := s.getUser(ctx, `u.id = $1`, id, includeDeleted)
	return user, err
}

func (s *DB) GetUserLoginInfo(ctx context.Context, email string) (_ *entity.UserLoginInfo, err error) {
	ctx, span := s.startSpan(ctx, "GetUserLoginInfo")
	defer func() { s.endSpan(span, err) }()

	var (
		out    entity.UserLoginInfo
		status int16
	)
	err = s.conn.QueryRow(ctx, `
		SELECT u.id, u.email, u.status, c.password, `+rolesOfUser+`
		FROM identity_users u
		JOIN identity_user_credentials c ON c.user_id = u.id
		WHERE u.email = $1 AND u.deleted_at IS NULL`, email,
	).Scan(&out.ID, &out.Email, &status, &out.Password, &out.Roles)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}
	out.Status = entity.UserStatus(status)

	return &out, nil
}

func (s *DB) GetUserCredentialInfo(ctx context.Context, id int64) (_ *entity.UserCredentialInfo, err error) {
	ctx, span := s.startSpan(ctx, "GetUserCredentialInfo")
	defer func() { s.endSpan(span, err) }()

	var (
		out    entity.UserCredentialInfo
		status int16
	)
	err = s.conn.QueryRow(ctx, `
		SELECT u.id, u.email, u.status, c.password
		FROM identity_users u
		JOIN identity_user_credentials c ON c.user_id = u.id
		WHERE u.id = $1 AND u.deleted_at IS NULL`, id,
	).Scan(&out.ID, &out.Email, &status, &out.Password)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}
	out.Status = entity.UserStatus(status)

	return &out, nil
}

func (s *DB) GetChallengeUserByTokenPurpose(ctx context.Context, token string, p entity.ChallengePurpose) (_ *entity.ChallengeUser, err error) {
	ctx, span := s.startSpan(ctx, "GetChallengeUserByTokenPurpose")
	defer func() { s.endSpan(span, err) }()

	var (
		out             entity.ChallengeUser
		purpose, status int16
	)
	err = s.conn.QueryRow(ctx, `
		SELECT ch.id, ch.purpose, ch.expires_at, u.id, u.email, u.status
		FROM identity_challenges ch
		JOIN identity_users u ON u.id = ch.user_id
		WHERE ch.token = $1 AND ch.purpose = $2 AND u.deleted_at IS NULL`, token, int16(p),
	).Scan(&out.ChallengeID, &purpose, &out.ChallengeExpiresAt, &out.UserID, &out.UserEmail, &status)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}
	out.ChallengePurpose = entity.ChallengePurpose(purpose)
	out.UserStatus = entity.UserStatus(status)

	return &out, nil
}

func (s *DB) GetUserRefreshToken(ctx context.Context, token string) (_ *entity.UserRefreshToken, err error) {
	ctx, span := s.startSpan(ctx, "GetUserRefreshToken")
	defer func() { s.endSpan(span, err) }()

	var (
		out    entity.UserRefreshToken
		status int16
	)
	err = s.conn.QueryRow(ctx, `
		SELECT u.id, u.email, u.status, `+rolesOfUser+`,
			rt.id, rt.revoked, rt.replaced_by_token_id, rt.expires_at
		FROM identity_refresh_tokens rt
		JOIN identity_users u ON u.id = rt.user_id
		WHERE rt.token = $1 AND u.deleted_at IS NULL`, token,
	).Scan(&out.UserID, &out.UserEmail, &status, &out.UserRoles,
		&out.RefreshID, &out.RefreshRevoked, &out.RefreshReplacedByTokenID, &out.RefreshExpiresAt)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}
	out.UserStatus = entity.UserStatus(status)

	return &out, nil
}

// GetUserList pages through non-deleted users, newest first, and returns the
// total matching the filter.
func (s *DB) GetUserList(ctx context.Context, f entity.UserListFilter) (_ []entity.User, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "GetUserList")
	defer func() { s.endSpan(span, err) }()

	var (
		conds = []string{"u.deleted_at IS NULL"}
		args  []any
	)
	if f.Search != "" {
		args = append(args, f.Search)
		conds = append(conds, fmt.Sprintf("(u.full_name ILIKE '%%' || $%d || '%%' OR u.email ILIKE '%%' || $%d || '%%')", len(args), len(args)))
	}
	if len(f.Statuses) > 0 {
		args = append(args, f.Statuses)
		conds = append(conds, fmt.Sprintf("u.status = ANY($%d::smallint[])", len(args)))
	}
	if f.Role != "" {
		args = append(args, f.Role)
		conds = append(conds, fmt.Sprintf("EXISTS (SELECT 1 FROM identity_user_roles r WHERE r.user_id = u.id AND r.role = $%d)", len(args)))
	}
	where := ` WHERE ` + strings.Join(conds, " AND ")

	var total int64
	if err = s.conn.QueryRow(ctx, `SELECT count(*) FROM identity_users u`+where, args...).Scan(&total); err != nil {
		err = s.mapError(err)
		return nil, 0, err
	}

	args = append(args, f.Size, f.Offset)
	query := selectUser + where + fmt.Sprintf(` ORDER BY u.created_at DESC, u.id DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		err = s.mapError(err)
		return nil, 0, err
	}

	users, err := pgx.CollectRows(rows, scanUser)
	if err != nil {
		err = s.mapError(err)
		return nil, 0, err
	}

	return users, total, nil
}
