package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gqlug/internal/domain"
	"gqlug/internal/filter"
)

// buildListQuery renders a paged SELECT with an optional translated where
// predicate and a windowed total count. Column and table names never come from
// client input; the filter package binds all literals as args.
func buildListQuery(table, columns string, where filter.Expr, orderBy string, limit, offset int) (string, []any, error) {
	clause, args, err := filter.ToSQL(where, 1)
	if err != nil {
		return "", nil, err
	}

	query := fmt.Sprintf(
		"SELECT %s, COUNT(*) OVER() AS total_count FROM %s WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		columns, table, clause, orderBy, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)
	return query, args, nil
}

// setClauseBuilder accumulates SET fragments for partial updates, persisting
// only the fields the client actually sent.
type setClauseBuilder struct {
	clauses []string
	args    []any
}

func (b *setClauseBuilder) add(column string, value any) {
	b.args = append(b.args, value)
	b.clauses = append(b.clauses, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *setClauseBuilder) set() string {
	return strings.Join(b.clauses, ", ")
}

// next returns the next placeholder index after the accumulated args.
func (b *setClauseBuilder) next() int {
	return len(b.args) + 1
}

// buildUpdateQuery renders an UPDATE guarded by the optimistic-lock stamp.
// changedby/lastchange always move together with the data fields.
func buildUpdateQuery(table, returning string, b *setClauseBuilder, id uuid.UUID, stamp time.Time, actor uuid.UUID) (string, []any) {
	b.add("changedby", actor)
	b.clauses = append(b.clauses, "lastchange = now()")

	idArg := b.next()
	b.args = append(b.args, id)
	stampArg := b.next()
	b.args = append(b.args, stamp)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d AND lastchange = $%d RETURNING %s",
		table, b.set(), idArg, stampArg, returning,
	)
	return query, b.args
}

// resolveUpdateMiss distinguishes a stale lastchange stamp from a missing row
// after an optimistic-locked UPDATE matched nothing.
func resolveUpdateMiss(ctx context.Context, pool *pgxpool.Pool, table string, id uuid.UUID) error {
	var exists bool
	err := pool.QueryRow(ctx, fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)", table), id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check %s existence: %w", table, err)
	}
	if exists {
		return domain.ErrStaleLastChange
	}
	return domain.ErrNotFound
}

func mapScanError(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}

// orUUID returns the supplied id, generating a fresh one when the client left
// it unset.
func orUUID(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.New()
	}
	return id
}

func orBool(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
