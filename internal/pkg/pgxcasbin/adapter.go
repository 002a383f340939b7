package pgxcasbin

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/casbin/casbin/v3/model"
	"github.com/casbin/casbin/v3/persist"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/lo"
)

const (
	defaultTable = "casbin_rules"
	valueColumns = 6
)

var (
	// ErrRuleTooLong is returned for rules with more than six values.
	ErrRuleTooLong = errors.New("pgxcasbin: rule has more than 6 values")

	columns = strings.Join(lo.Times(valueColumns, func(i int) string { return "v" + strconv.Itoa(i) }), ", ")
)

// DB is the subset of pgxpool.Pool the adapter needs.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Adapter keeps casbin rules in a postgres table with columns ptype, v0..v5.
// Unused value columns hold the empty string.
type Adapter struct {
	db    DB
	table string
}

var (
	_ persist.Adapter      = (*Adapter)(nil)
	_ persist.BatchAdapter = (*Adapter)(nil)
)

// Option configures an Adapter.
type Option func(*Adapter)

// WithTableName stores rules in name instead of casbin_rules.
func WithTableName(name string) Option {
	return func(a *Adapter) { a.table = lo.SnakeCase(name) }
}

// NewAdapter checks connectivity and returns an adapter over db.
func NewAdapter(ctx context.Context, db interface {
	DB
	Ping(ctx context.Context) error
}, opts ...Option) (*Adapter, error) {
	if err := db.Ping(ctx); err != nil {
		return nil, fmt.Errorf("pgxcasbin: ping: %w", err)
	}

	a := &Adapter{db: db, table: defaultTable}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

func (a *Adapter) LoadPolicy(m model.Model) error {
	ctx := context.Background()
	rows, err := a.db.Query(ctx, "SELECT ptype, "+columns+" FROM "+a.table+" ORDER BY id")
	if err != nil {
		return fmt.Errorf("pgxcasbin: load: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		line := make([]string, valueColumns+1)
		dest := lo.Map(line, func(_ string, i int) any { return &line[i] })
		if err := rows.Scan(dest...); err != nil {
			return fmt.Errorf("pgxcasbin: scan: %w", err)
		}
		line = lo.DropRightWhile(line, func(v string) bool { return v == "" })
		if err := persist.LoadPolicyArray(line, m); err != nil {
			return err
		}
	}
	return rows.Err()
}

// SavePolicy replaces the whole table with the rules held by m.
func (a *Adapter) SavePolicy(m model.Model) error {
	ctx := context.Background()

	var rows [][]any
	for _, sec := range []string{"p", "g"} {
		for ptype, ast := range m[sec] {
			for _, rule := range ast.Policy {
				row, err := ruleArgs(ptype, rule)
				if err != nil {
					return err
				}
				rows = append(rows, row)
			}
		}
	}

	return pgx.BeginFunc(ctx, a.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "DELETE FROM "+a.table); err != nil {
			return fmt.Errorf("pgxcasbin: clear: %w", err)
		}
		return a.execBatch(ctx, tx, a.insertSQL(), rows)
	})
}

func (a *Adapter) AddPolicy(_ string, ptype string, rule []string) error {
	args, err := ruleArgs(ptype, rule)
	if err != nil {
		return err
	}
	if _, err := a.db.Exec(context.Background(), a.insertSQL(), args...); err != nil {
		return fmt.Errorf("pgxcasbin: insert: %w", err)
	}
	return nil
}

func (a *Adapter) AddPolicies(_ string, ptype string, rules [][]string) error {
	return a.batch(ptype, rules, a.insertSQL())
}

func (a *Adapter) RemovePolicy(_ string, ptype string, rule []string) error {
	args, err := ruleArgs(ptype, rule)
	if err != nil {
		return err
	}
	if _, err := a.db.Exec(context.Background(), a.deleteSQL(), args...); err != nil {
		return fmt.Errorf("pgxcasbin: delete: %w", err)
	}
	return nil
}

func (a *Adapter) RemovePolicies(_ string, ptype string, rules [][]string) error {
	return a.batch(ptype, rules, a.deleteSQL())
}

// RemoveFilteredPolicy deletes rules of ptype whose values starting at
// fieldIndex match fieldValues. Empty filter values match anything.
func (a *Adapter) RemoveFilteredPolicy(_ string, ptype string, fieldIndex int, fieldValues ...string) error {
	if fieldIndex < 0 || fieldIndex+len(fieldValues) > valueColumns {
		return ErrRuleTooLong
	}

	where := []string{"ptype = $1"}
	args := []any{ptype}
	for i, v := range fieldValues {
		if v == "" {
			continue
		}
		args = append(args, v)
		where = append(where, fmt.Sprintf("v%d = $%d", fieldIndex+i, len(args)))
	}

	sql := "DELETE FROM " + a.table + " WHERE " + strings.Join(where, " AND ")
	if _, err := a.db.Exec(context.Background(), sql, args...); err != nil {
		return fmt.Errorf("pgxcasbin: delete filtered: %w", err)
	}
	return nil
}

func (a *Adapter) batch(ptype string, rules [][]string, sql string) error {
	rows := make([][]any, 0, len(rules))
	for _, rule := range rules {
		row, err := ruleArgs(ptype, rule)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	ctx := context.Background()
	return pgx.BeginFunc(ctx, a.db, func(tx pgx.Tx) error {
		return a.execBatch(ctx, tx, sql, rows)
	})
}

func (a *Adapter) execBatch(ctx context.Context, tx pgx.Tx, sql string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}

	b := &pgx.Batch{}
	for _, row := range rows {
		b.Queue(sql, row...)
	}
	if err := tx.SendBatch(ctx, b).Close(); err != nil {
		return fmt.Errorf("pgxcasbin: batch: %w", err)
	}
	return nil
}

func (a *Adapter) insertSQL() string {
	return "INSERT INTO " + a.table + " (ptype, " + columns + ") VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT DO NOTHING"
}

func (a *Adapter) deleteSQL() string {
	return "DELETE FROM " + a.table + " WHERE ptype = $1 AND (" + columns + ") = ($2, $3, $4, $5, $6, $7)"
}

// ruleArgs pads rule to the six value columns, prefixed by ptype.
func ruleArgs(ptype string, rule []string) ([]any, error) {
	if len(rule) > valueColumns {
		return nil, ErrRuleTooLong
	}

	args := make([]any, valueColumns+1)
	args[0] = ptype
	for i := range valueColumns {
		args[i+1] = ""
		if i < len(rule) {
			args[i+1] = rule[i]
		}
	}
	return args, nil
}
