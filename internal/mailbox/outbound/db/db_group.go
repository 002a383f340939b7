package db

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/gomailbox/internal/mailbox/entity"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
)

// GetGroupsByIDs loads the requested groups with their member ids in a single
// round trip. Unknown ids are absent from the result.
func (s *DB) GetGroupsByIDs(ctx context.Context, ids []int64) (_ []entity.Group, err error) {
	ctx, span := startSpan(ctx, s.ins, "GetGroupsByIDs")
	defer func() { endSpan(span, err) }()

	if len(ids) == 0 {
		return []entity.Group{}, nil
	}

	rows, err := s.conn.Query(ctx, `
		SELECT g.id, g.name,
			COALESCE(ARRAY(SELECT m.user_id FROM mailbox_group_members m WHERE m.group_id = g.id ORDER BY m.user_id), '{}')
		FROM mailbox_groups g
		WHERE g.id = ANY($1)
		ORDER BY g.id`, ids)
	if err != nil {
		return nil, mapError(err)
	}

	groups, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Group, error) {
		var g entity.Group
		err := row.Scan(&g.ID, &g.Name, &g.MemberIDs)
		return g, err
	})
	if err != nil {
		return nil, mapError(err)
	}

	return groups, nil
}

func (s *DB) GetGroupByID(ctx context.Context, id int64) (_ *entity.Group, err error) {
	ctx, span := startSpan(ctx, s.ins, "GetGroupByID")
	defer func() { endSpan(span, err) }()

	groups, err := s.GetGroupsByIDs(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, goerror.ErrNotFound
	}

	return &groups[0], nil
}

func (s *DB) GetGroupMembers(ctx context.Context, groupID int64) (_ []entity.GroupMember, err error) {
	ctx, span := startSpan(ctx, s.ins, "GetGroupMembers")
	defer func() { endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, `
		SELECT u.id, u.email, u.full_name
		FROM mailbox_group_members m
		JOIN identity_users u ON u.id = m.user_id AND u.deleted_at IS NULL
		WHERE m.group_id = $1
		ORDER BY u.full_name, u.id`, groupID)
	if err != nil {
		return nil, mapError(err)
	}

	members, err := pgx.CollectRows(rows, pgx.RowToStructByPos[entity.GroupMember])
	if err != nil {
		return nil, mapError(err)
	}

	return members, nil
}

func (s *DB) SearchGroups(ctx context.Context, term string, limit int32) (_ []entity.GroupSummary, err error) {
	ctx, span := startSpan(ctx, s.ins, "SearchGroups")
	defer func() { endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, `
		SELECT g.id, g.name, (SELECT COUNT(*) FROM mailbox_group_members m WHERE m.group_id = g.id)::int
		FROM mailbox_groups g
		WHERE g.name ILIKE '%' || $1 || '%'
		ORDER BY g.name, g.id
		LIMIT $2`, term, limit)
	if err != nil {
		return nil, mapError(err)
	}

	groups, err := pgx.CollectRows(rows, pgx.RowToStructByPos[entity.GroupSummary])
	if err != nil {
		return nil, mapError(err)
	}

	return groups, nil
}

func (s *DB) CreateGroup(ctx context.Context, group entity.Group) (err error) {
	ctx, span := startSpan(ctx, s.ins, "CreateGroup")
	defer func() { endSpan(span, err) }()

	return s.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `INSERT INTO mailbox_groups (id, name) VALUES ($1, $2)`, group.ID, group.Name); err != nil {
			return mapError(err)
		}
		return insertGroupMembers(ctx, tx, group.ID, group.MemberIDs)
	})
}

func (s *DB) ReplaceGroupMembers(ctx context.Context, groupID int64, memberIDs []int64) (err error) {
	ctx, span := startSpan(ctx, s.ins, "ReplaceGroupMembers")
	defer func() { endSpan(span, err) }()

	return s.inTx(ctx, func(tx pgx.Tx) error {
		if err := rowsAffected(tx.Exec(ctx, `UPDATE mailbox_groups SET updated_at = NOW() WHERE id = $1`, groupID)); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM mailbox_group_members WHERE group_id = $1`, groupID); err != nil {
			return mapError(err)
		}
		return insertGroupMembers(ctx, tx, groupID, memberIDs)
	})
}

func (s *DB) DeleteGroup(ctx context.Context, id int64) (err error) {
	ctx, span := startSpan(ctx, s.ins, "DeleteGroup")
	defer func() { endSpan(span, err) }()

	return rowsAffected(s.conn.Exec(ctx, `DELETE FROM mailbox_groups WHERE id = $1`, id))
}

func insertGroupMembers(ctx context.Context, tx pgx.Tx, groupID int64, memberIDs []int64) error {
	if len(memberIDs) == 0 {
		return nil
	}

	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"mailbox_group_members"},
		[]string{"group_id", "user_id"},
		pgx.CopyFromSlice(len(memberIDs), func(i int) ([]any, error) {
			return []any{groupID, memberIDs[i]}, nil
		}),
	)
	return mapError(err)
}

func (s *DB) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && !errors.Is(rErr, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "failed to rollback", "error", rErr)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return mapError(tx.Commit(ctx))
}
