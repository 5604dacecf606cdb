package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gqlug/internal/domain"
	"gqlug/internal/filter"
)

const membershipColumns = "id, user_id, group_id, valid, startdate, enddate, createdby, changedby, created, lastchange"

// membershipRepository implements MembershipRepository backed by Postgres.
type membershipRepository struct {
	pool *pgxpool.Pool
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(pool *pgxpool.Pool) MembershipRepository {
	return &membershipRepository{pool: pool}
}

func scanMembership(row pgx.Row) (domain.Membership, error) {
	var m domain.Membership
	err := row.Scan(
		&m.ID, &m.UserID, &m.GroupID, &m.Valid, &m.StartDate, &m.EndDate,
		&m.CreatedBy, &m.ChangedBy, &m.Created, &m.LastChange,
	)
	return m, err
}

func (r *membershipRepository) queryMemberships(ctx context.Context, query string, args ...any) ([]domain.Membership, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query memberships: %w", err)
	}
	defer rows.Close()

	var memberships []domain.Membership
	for rows.Next() {
		membership, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, membership)
	}
	return memberships, rows.Err()
}

// Insert creates a new membership stamped with the acting user.
func (r *membershipRepository) Insert(ctx context.Context, ins domain.MembershipInsert, actor uuid.UUID) (domain.Membership, error) {
	query := `INSERT INTO memberships (id, user_id, group_id, valid, startdate, enddate, createdby, changedby)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING ` + membershipColumns

	row := r.pool.QueryRow(ctx, query,
		orUUID(ins.ID), ins.UserID, ins.GroupID, orBool(ins.Valid, true),
		ins.StartDate, ins.EndDate, actor,
	)
	membership, err := scanMembership(row)
	if err != nil {
		return domain.Membership{}, fmt.Errorf("failed to insert membership: %w", err)
	}
	return membership, nil
}

// GetByID retrieves a membership by ID
func (r *membershipRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Membership, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+membershipColumns+" FROM memberships WHERE id = $1", id)
	membership, err := scanMembership(row)
	if err != nil {
		return domain.Membership{}, mapScanError(err, "membership")
	}
	return membership, nil
}

// List retrieves a page of memberships matching the translated where expression.
func (r *membershipRepository) List(ctx context.Context, where filter.Expr, limit, offset int) ([]domain.Membership, int, error) {
	query, args, err := buildListQuery("memberships", membershipColumns, where, "created, id", limit, offset)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	var memberships []domain.Membership
	totalCount := 0
	for rows.Next() {
		var m domain.Membership
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.GroupID, &m.Valid, &m.StartDate, &m.EndDate,
			&m.CreatedBy, &m.ChangedBy, &m.Created, &m.LastChange, &totalCount,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, m)
	}
	return memberships, totalCount, rows.Err()
}

// ListByUserIDs retrieves memberships for a batch of users, for dataloaders.
func (r *membershipRepository) ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]domain.Membership, error) {
	if len(userIDs) == 0 {
		return []domain.Membership{}, nil
	}
	return r.queryMemberships(ctx,
		"SELECT "+membershipColumns+" FROM memberships WHERE user_id = ANY($1) ORDER BY created", userIDs)
}

// ListByGroupIDs retrieves memberships for a batch of groups, for dataloaders.
func (r *membershipRepository) ListByGroupIDs(ctx context.Context, groupIDs []uuid.UUID) ([]domain.Membership, error) {
	if len(groupIDs) == 0 {
		return []domain.Membership{}, nil
	}
	return r.queryMemberships(ctx,
		"SELECT "+membershipColumns+" FROM memberships WHERE group_id = ANY($1) ORDER BY created", groupIDs)
}

// Update applies a partial update guarded by the lastchange stamp. The user
// and group of a membership never change.
func (r *membershipRepository) Update(ctx context.Context, upd domain.MembershipUpdate, actor uuid.UUID) (domain.Membership, error) {
	b := &setClauseBuilder{}
	if upd.Valid != nil {
		b.add("valid", *upd.Valid)
	}
	if upd.StartDate != nil {
		b.add("startdate", *upd.StartDate)
	}
	if upd.EndDate != nil {
		b.add("enddate", *upd.EndDate)
	}

	query, args := buildUpdateQuery("memberships", membershipColumns, b, upd.ID, upd.LastChange, actor)
	membership, err := scanMembership(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Membership{}, resolveUpdateMiss(ctx, r.pool, "memberships", upd.ID)
		}
		return domain.Membership{}, fmt.Errorf("failed to update membership: %w", err)
	}
	return membership, nil
}
