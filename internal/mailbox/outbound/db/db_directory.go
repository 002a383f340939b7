package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/gomailbox/internal/mailbox/entity"
)

const activeUserStatus int16 = 2

const selectDirectoryUser = `
SELECT u.id, u.email, u.full_name, u.status = $1 AS is_active,
	COALESCE(ARRAY(SELECT r.role FROM identity_user_roles r WHERE r.user_id = u.id ORDER BY r.role), '{}') AS roles
FROM identity_users u
WHERE u.deleted_at IS NULL`

func scanUser(row pgx.CollectableRow) (entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.IsActive, &u.Roles)
	return u, err
}

func (s *DB) GetUserByID(ctx context.Context, id int64) (_ *entity.User, err error) {
	ctx, span := startSpan(ctx, s.ins, "GetUserByID")
	defer func() { endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, selectDirectoryUser+` AND u.id = $2`, activeUserStatus, id)
	if err != nil {
		return nil, mapError(err)
	}

	user, err := pgx.CollectExactlyOneRow(rows, scanUser)
	if err != nil {
		return nil, mapError(err)
	}

	return &user, nil
}

// GetUsersByIDs returns the users found among ids in id order. Missing ids are
// simply absent from the result.
func (s *DB) GetUsersByIDs(ctx context.Context, ids []int64) (_ []entity.User, err error) {
	ctx, span := startSpan(ctx, s.ins, "GetUsersByIDs")
	defer func() { endSpan(span, err) }()

	if len(ids) == 0 {
		return []entity.User{}, nil
	}

	rows, err := s.conn.Query(ctx, selectDirectoryUser+` AND u.id = ANY($2) ORDER BY u.id`, activeUserStatus, ids)
	if err != nil {
		return nil, mapError(err)
	}

	users, err := pgx.CollectRows(rows, scanUser)
	if err != nil {
		return nil, mapError(err)
	}

	return users, nil
}

// SearchUsers matches active users by name or email. A non-empty roles list
// restricts results to users holding at least one of them.
func (s *DB) SearchUsers(ctx context.Context, term string, roles []string, limit int32) (_ []entity.User, err error) {
	ctx, span := startSpan(ctx, s.ins, "SearchUsers")
	defer func() { endSpan(span, err) }()

	query := selectDirectoryUser + `
	AND u.status = $1
	AND (u.full_name ILIKE '%' || $2 || '%' OR u.email ILIKE '%' || $2 || '%')
	AND (cardinality($3::text[]) = 0 OR EXISTS (
		SELECT 1 FROM identity_user_roles r WHERE r.user_id = u.id AND r.role = ANY($3::text[])
	))
	ORDER BY u.full_name, u.id
	LIMIT $4`

	if roles == nil {
		roles = []string{}
	}

	rows, err := s.conn.Query(ctx, query, activeUserStatus, term, roles, limit)
	if err != nil {
		return nil, mapError(err)
	}

	users, err := pgx.CollectRows(rows, scanUser)
	if err != nil {
		return nil, mapError(err)
	}

	return users, nil
}
