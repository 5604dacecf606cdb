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

const userColumns = "id, name, surname, email, valid, createdby, changedby, created, lastchange"

// userRepository implements UserRepository backed by Postgres.
type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Surname, &u.Email, &u.Valid,
		&u.CreatedBy, &u.ChangedBy, &u.Created, &u.LastChange,
	)
	return u, err
}

// Insert creates a new user stamped with the acting user.
func (r *userRepository) Insert(ctx context.Context, ins domain.UserInsert, actor uuid.UUID) (domain.User, error) {
	query := `INSERT INTO users (id, name, surname, email, valid, createdby, changedby)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING ` + userColumns

	row := r.pool.QueryRow(ctx, query,
		orUUID(ins.ID), ins.Name, ins.Surname, ins.Email, orBool(ins.Valid, true), actor,
	)
	user, err := scanUser(row)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return user, nil
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
	user, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapScanError(err, "user")
	}
	return user, nil
}

// GetByIDs retrieves multiple users by their IDs.
func (r *userRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	rows, err := r.pool.Query(ctx, "SELECT "+userColumns+" FROM users WHERE id = ANY($1)", ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get users by IDs: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// List retrieves a page of users matching the translated where expression.
func (r *userRepository) List(ctx context.Context, where filter.Expr, limit, offset int) ([]domain.User, int, error) {
	query, args, err := buildListQuery("users", userColumns, where, "created, id", limit, offset)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	totalCount := 0
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Surname, &u.Email, &u.Valid,
			&u.CreatedBy, &u.ChangedBy, &u.Created, &u.LastChange, &totalCount,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, totalCount, rows.Err()
}

// SearchByLetters finds users whose "name surname" contains the letters.
// Fewer than three letters yields no rows.
func (r *userRepository) SearchByLetters(ctx context.Context, letters string, validity *bool) ([]domain.User, error) {
	if len(letters) < 3 {
		return []domain.User{}, nil
	}

	query := "SELECT " + userColumns + ` FROM users WHERE (name || ' ' || surname) ILIKE '%' || $1 || '%'`
	args := []any{letters}
	if validity != nil {
		query += " AND valid = $2"
		args = append(args, *validity)
	}
	query += " ORDER BY surname, name"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// Update applies a partial update guarded by the lastchange stamp.
func (r *userRepository) Update(ctx context.Context, upd domain.UserUpdate, actor uuid.UUID) (domain.User, error) {
	b := &setClauseBuilder{}
	if upd.Name != nil {
		b.add("name", *upd.Name)
	}
	if upd.Surname != nil {
		b.add("surname", *upd.Surname)
	}
	if upd.Email != nil {
		b.add("email", *upd.Email)
	}
	if upd.Valid != nil {
		b.add("valid", *upd.Valid)
	}

	query, args := buildUpdateQuery("users", userColumns, b, upd.ID, upd.LastChange, actor)
	user, err := scanUser(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, resolveUpdateMiss(ctx, r.pool, "users", upd.ID)
		}
		return domain.User{}, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}
