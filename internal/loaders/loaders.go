package loaders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader"

	"gqlug/internal/domain"
	"gqlug/internal/repository"
)

// Loaders bundles the per-request dataloaders. Nested GraphQL fields resolve
// through these so one page of users costs one memberships query, not one per
// row.
type Loaders struct {
	Users              *dataloader.Loader
	Groups             *dataloader.Loader
	GroupTypes         *dataloader.Loader
	MembershipsByUser  *dataloader.Loader
	MembershipsByGroup *dataloader.Loader
}

// New creates a fresh set of loaders. Call once per request, the caches must
// not outlive it.
func New(
	users repository.UserRepository,
	groups repository.GroupRepository,
	groupTypes repository.GroupTypeRepository,
	memberships repository.MembershipRepository,
) *Loaders {
	return &Loaders{
		Users: newByIDLoader(func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]any, error) {
			rows, err := users.GetByIDs(ctx, ids)
			if err != nil {
				return nil, err
			}
			byID := make(map[uuid.UUID]any, len(rows))
			for _, row := range rows {
				byID[row.ID] = row
			}
			return byID, nil
		}),
		Groups: newByIDLoader(func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]any, error) {
			rows, err := groups.GetByIDs(ctx, ids)
			if err != nil {
				return nil, err
			}
			byID := make(map[uuid.UUID]any, len(rows))
			for _, row := range rows {
				byID[row.ID] = row
			}
			return byID, nil
		}),
		GroupTypes: newByIDLoader(func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]any, error) {
			rows, err := groupTypes.GetByIDs(ctx, ids)
			if err != nil {
				return nil, err
			}
			byID := make(map[uuid.UUID]any, len(rows))
			for _, row := range rows {
				byID[row.ID] = row
			}
			return byID, nil
		}),
		MembershipsByUser: newGroupedLoader(memberships.ListByUserIDs, func(m domain.Membership) uuid.UUID {
			return m.UserID
		}),
		MembershipsByGroup: newGroupedLoader(memberships.ListByGroupIDs, func(m domain.Membership) uuid.UUID {
			return m.GroupID
		}),
	}
}

func parseKeys(keys dataloader.Keys) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(keys))
	for i, k := range keys {
		id, err := uuid.Parse(k.String())
		if err != nil {
			return nil, fmt.Errorf("invalid UUID key: %w", err)
		}
		ids[i] = id
	}
	return ids, nil
}

func errorResults(n int, err error) []*dataloader.Result {
	results := make([]*dataloader.Result, n)
	for i := range results {
		results[i] = &dataloader.Result{Error: err}
	}
	return results
}

// newByIDLoader batches id lookups. Missing rows yield nil data, not errors,
// matching the reference-resolution semantics of the API (unknown id => null).
func newByIDLoader(fetch func(context.Context, []uuid.UUID) (map[uuid.UUID]any, error)) *dataloader.Loader {
	batchFn := func(ctx context.Context, keys dataloader.Keys) []*dataloader.Result {
		ids, err := parseKeys(keys)
		if err != nil {
			return errorResults(len(keys), err)
		}

		byID, err := fetch(ctx, ids)
		if err != nil {
			return errorResults(len(keys), err)
		}

		results := make([]*dataloader.Result, len(keys))
		for i, id := range ids {
			if row, ok := byID[id]; ok {
				results[i] = &dataloader.Result{Data: row}
			} else {
				results[i] = &dataloader.Result{Data: nil}
			}
		}
		return results
	}

	return dataloader.NewBatchedLoader(batchFn, dataloader.WithWait(5*time.Millisecond))
}

// newGroupedLoader batches one-to-many lookups, returning a []domain.Membership
// per key (empty slice for keys with no rows).
func newGroupedLoader(
	fetch func(context.Context, []uuid.UUID) ([]domain.Membership, error),
	keyOf func(domain.Membership) uuid.UUID,
) *dataloader.Loader {
	batchFn := func(ctx context.Context, keys dataloader.Keys) []*dataloader.Result {
		ids, err := parseKeys(keys)
		if err != nil {
			return errorResults(len(keys), err)
		}

		rows, err := fetch(ctx, ids)
		if err != nil {
			return errorResults(len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.Membership, len(ids))
		for _, row := range rows {
			key := keyOf(row)
			grouped[key] = append(grouped[key], row)
		}

		results := make([]*dataloader.Result, len(keys))
		for i, id := range ids {
			memberships := grouped[id]
			if memberships == nil {
				memberships = []domain.Membership{}
			}
			results[i] = &dataloader.Result{Data: memberships}
		}
		return results
	}

	return dataloader.NewBatchedLoader(batchFn, dataloader.WithWait(5*time.Millisecond))
}

// User loads one user through the batch loader; nil when the id is unknown.
func (l *Loaders) User(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return loadOne[domain.User](ctx, l.Users, id)
}

// Group loads one group through the batch loader; nil when the id is unknown.
func (l *Loaders) Group(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	return loadOne[domain.Group](ctx, l.Groups, id)
}

// GroupType loads one group type through the batch loader; nil when the id is
// unknown.
func (l *Loaders) GroupType(ctx context.Context, id uuid.UUID) (*domain.GroupType, error) {
	return loadOne[domain.GroupType](ctx, l.GroupTypes, id)
}

// UserMemberships loads the memberships of one user.
func (l *Loaders) UserMemberships(ctx context.Context, userID uuid.UUID) ([]domain.Membership, error) {
	return loadMany(ctx, l.MembershipsByUser, userID)
}

// GroupMemberships loads the memberships of one group.
func (l *Loaders) GroupMemberships(ctx context.Context, groupID uuid.UUID) ([]domain.Membership, error) {
	return loadMany(ctx, l.MembershipsByGroup, groupID)
}

func loadOne[T any](ctx context.Context, loader *dataloader.Loader, id uuid.UUID) (*T, error) {
	thunk := loader.Load(ctx, dataloader.StringKey(id.String()))
	raw, err := thunk()
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	row, ok := raw.(T)
	if !ok {
		return nil, fmt.Errorf("unexpected loader result type %T", raw)
	}
	return &row, nil
}

func loadMany(ctx context.Context, loader *dataloader.Loader, id uuid.UUID) ([]domain.Membership, error) {
	thunk := loader.Load(ctx, dataloader.StringKey(id.String()))
	raw, err := thunk()
	if err != nil {
		return nil, err
	}
	rows, ok := raw.([]domain.Membership)
	if !ok {
		return nil, fmt.Errorf("unexpected loader result type %T", raw)
	}
	return rows, nil
}
