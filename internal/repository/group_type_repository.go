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

const groupTypeColumns = "id, name, name_en, valid, createdby, changedby, created, lastchange"

// groupTypeRepository implements GroupTypeRepository backed by Postgres.
type groupTypeRepository struct {
	pool *pgxpool.Pool
}

// NewGroupTypeRepository creates a new group type repository
func NewGroupTypeRepository(pool *pgxpool.Pool) GroupTypeRepository {
	return &groupTypeRepository{pool: pool}
}

func scanGroupType(row pgx.Row) (domain.GroupType, error) {
	var gt domain.GroupType
	err := row.Scan(
		&gt.ID, &gt.Name, &gt.NameEn, &gt.Valid,
		&gt.CreatedBy, &gt.ChangedBy, &gt.Created, &gt.LastChange,
	)
	return gt, err
}

// Insert creates a new group type stamped with the acting user.
func (r *groupTypeRepository) Insert(ctx context.Context, ins domain.GroupTypeInsert, actor uuid.UUID) (domain.GroupType, error) {
	query := `INSERT INTO group_types (id, name, name_en, valid, createdby, changedby)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING ` + groupTypeColumns

	row := r.pool.QueryRow(ctx, query,
		orUUID(ins.ID), ins.Name, ins.NameEn, orBool(ins.Valid, true), actor,
	)
	groupType, err := scanGroupType(row)
	if err != nil {
		return domain.GroupType{}, fmt.Errorf("failed to insert group type: %w", err)
	}
	return groupType, nil
}

// GetByID retrieves a group type by ID
func (r *groupTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.GroupType, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+groupTypeColumns+" FROM group_types WHERE id = $1", id)
	groupType, err := scanGroupType(row)
	if err != nil {
		return domain.GroupType{}, mapScanError(err, "group type")
	}
	return groupType, nil
}

// GetByIDs retrieves multiple group types by their IDs.
func (r *groupTypeRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.GroupType, error) {
	if len(ids) == 0 {
		return []domain.GroupType{}, nil
	}

	rows, err := r.pool.Query(ctx, "SELECT "+groupTypeColumns+" FROM group_types WHERE id = ANY($1)", ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get group types by IDs: %w", err)
	}
	defer rows.Close()

	var groupTypes []domain.GroupType
	for rows.Next() {
		groupType, err := scanGroupType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group type: %w", err)
		}
		groupTypes = append(groupTypes, groupType)
	}
	return groupTypes, rows.Err()
}

// List retrieves a page of group types matching the translated where expression.
func (r *groupTypeRepository) List(ctx context.Context, where filter.Expr, limit, offset int) ([]domain.GroupType, int, error) {
	query, args, err := buildListQuery("group_types", groupTypeColumns, where, "created, id", limit, offset)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list group types: %w", err)
	}
	defer rows.Close()

	var groupTypes []domain.GroupType
	totalCount := 0
	for rows.Next() {
		var gt domain.GroupType
		if err := rows.Scan(
			&gt.ID, &gt.Name, &gt.NameEn, &gt.Valid,
			&gt.CreatedBy, &gt.ChangedBy, &gt.Created, &gt.LastChange, &totalCount,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan group type: %w", err)
		}
		groupTypes = append(groupTypes, gt)
	}
	return groupTypes, totalCount, rows.Err()
}

// Update applies a partial update guarded by the lastchange stamp.
func (r *groupTypeRepository) Update(ctx context.Context, upd domain.GroupTypeUpdate, actor uuid.UUID) (domain.GroupType, error) {
	b := &setClauseBuilder{}
	if upd.Name != nil {
		b.add("name", *upd.Name)
	}
	if upd.NameEn != nil {
		b.add("name_en", *upd.NameEn)
	}
	if upd.Valid != nil {
		b.add("valid", *upd.Valid)
	}

	query, args := buildUpdateQuery("group_types", groupTypeColumns, b, upd.ID, upd.LastChange, actor)
	groupType, err := scanGroupType(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.GroupType{}, resolveUpdateMiss(ctx, r.pool, "group_types", upd.ID)
		}
		return domain.GroupType{}, fmt.Errorf("failed to update group type: %w", err)
	}
	return groupType, nil
}
