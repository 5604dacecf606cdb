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

const groupColumns = "id, name, name_en, valid, grouptype_id, mastergroup_id, createdby, changedby, created, lastchange"

// groupRepository implements GroupRepository backed by Postgres.
type groupRepository struct {
	pool *pgxpool.Pool
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(pool *pgxpool.Pool) GroupRepository {
	return &groupRepository{pool: pool}
}

func scanGroup(row pgx.Row) (domain.Group, error) {
	var g domain.Group
	err := row.Scan(
		&g.ID, &g.Name, &g.NameEn, &g.Valid, &g.GroupTypeID, &g.MasterGroupID,
		&g.CreatedBy, &g.ChangedBy, &g.Created, &g.LastChange,
	)
	return g, err
}

func (r *groupRepository) queryGroups(ctx context.Context, query string, args ...any) ([]domain.Group, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}
	defer rows.Close()

	var groups []domain.Group
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}

// Insert creates a new group stamped with the acting user.
func (r *groupRepository) Insert(ctx context.Context, ins domain.GroupInsert, actor uuid.UUID) (domain.Group, error) {
	query := `INSERT INTO groups (id, name, name_en, valid, grouptype_id, mastergroup_id, createdby, changedby)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING ` + groupColumns

	row := r.pool.QueryRow(ctx, query,
		orUUID(ins.ID), ins.Name, ins.NameEn, orBool(ins.Valid, true),
		ins.GroupTypeID, ins.MasterGroupID, actor,
	)
	group, err := scanGroup(row)
	if err != nil {
		return domain.Group{}, fmt.Errorf("failed to insert group: %w", err)
	}
	return group, nil
}

// GetByID retrieves a group by ID
func (r *groupRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Group, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+groupColumns+" FROM groups WHERE id = $1", id)
	group, err := scanGroup(row)
	if err != nil {
		return domain.Group{}, mapScanError(err, "group")
	}
	return group, nil
}

// GetByIDs retrieves multiple groups by their IDs.
func (r *groupRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Group, error) {
	if len(ids) == 0 {
		return []domain.Group{}, nil
	}
	return r.queryGroups(ctx, "SELECT "+groupColumns+" FROM groups WHERE id = ANY($1)", ids)
}

// List retrieves a page of groups matching the translated where expression.
func (r *groupRepository) List(ctx context.Context, where filter.Expr, limit, offset int) ([]domain.Group, int, error) {
	query, args, err := buildListQuery("groups", groupColumns, where, "created, id", limit, offset)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []domain.Group
	totalCount := 0
	for rows.Next() {
		var g domain.Group
		if err := rows.Scan(
			&g.ID, &g.Name, &g.NameEn, &g.Valid, &g.GroupTypeID, &g.MasterGroupID,
			&g.CreatedBy, &g.ChangedBy, &g.Created, &g.LastChange, &totalCount,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, totalCount, rows.Err()
}

// SearchByLetters finds groups whose name contains the letters. Fewer than
// three letters yields no rows.
func (r *groupRepository) SearchByLetters(ctx context.Context, letters string, validity *bool) ([]domain.Group, error) {
	if len(letters) < 3 {
		return []domain.Group{}, nil
	}

	query := "SELECT " + groupColumns + ` FROM groups WHERE name ILIKE '%' || $1 || '%'`
	args := []any{letters}
	if validity != nil {
		query += " AND valid = $2"
		args = append(args, *validity)
	}
	query += " ORDER BY name"

	return r.queryGroups(ctx, query, args...)
}

// ListByMasterGroup retrieves the directly subordinated groups.
func (r *groupRepository) ListByMasterGroup(ctx context.Context, masterID uuid.UUID) ([]domain.Group, error) {
	return r.queryGroups(ctx,
		"SELECT "+groupColumns+" FROM groups WHERE mastergroup_id = $1 ORDER BY name", masterID)
}

// ListByGroupType retrieves all groups of the given type.
func (r *groupRepository) ListByGroupType(ctx context.Context, groupTypeID uuid.UUID) ([]domain.Group, error) {
	return r.queryGroups(ctx,
		"SELECT "+groupColumns+" FROM groups WHERE grouptype_id = $1 ORDER BY name", groupTypeID)
}

// Update applies a partial update guarded by the lastchange stamp.
func (r *groupRepository) Update(ctx context.Context, upd domain.GroupUpdate, actor uuid.UUID) (domain.Group, error) {
	b := &setClauseBuilder{}
	if upd.Name != nil {
		b.add("name", *upd.Name)
	}
	if upd.NameEn != nil {
		b.add("name_en", *upd.NameEn)
	}
	if upd.GroupTypeID != nil {
		b.add("grouptype_id", *upd.GroupTypeID)
	}
	if upd.MasterGroupID != nil {
		b.add("mastergroup_id", *upd.MasterGroupID)
	}
	if upd.Valid != nil {
		b.add("valid", *upd.Valid)
	}

	query, args := buildUpdateQuery("groups", groupColumns, b, upd.ID, upd.LastChange, actor)
	group, err := scanGroup(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Group{}, resolveUpdateMiss(ctx, r.pool, "groups", upd.ID)
		}
		return domain.Group{}, fmt.Errorf("failed to update group: %w", err)
	}
	return group, nil
}
