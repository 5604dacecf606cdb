package loaders

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader"

	"gqlug/internal/domain"
)

func TestByIDLoader_BatchesAndPreservesOrder(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	missing := uuid.New()

	var calls int32
	loader := newByIDLoader(func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]any, error) {
		atomic.AddInt32(&calls, 1)
		byID := map[uuid.UUID]any{}
		for _, id := range ids {
			if id == first || id == second {
				byID[id] = domain.User{ID: id}
			}
		}
		return byID, nil
	})

	ctx := context.Background()
	thunks := []dataloader.Thunk{
		loader.Load(ctx, dataloader.StringKey(first.String())),
		loader.Load(ctx, dataloader.StringKey(missing.String())),
		loader.Load(ctx, dataloader.StringKey(second.String())),
	}

	values := make([]any, len(thunks))
	for i, thunk := range thunks {
		value, err := thunk()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		values[i] = value
	}

	if got := values[0].(domain.User); got.ID != first {
		t.Fatalf("first result out of order: %v", got.ID)
	}
	if values[1] != nil {
		t.Fatalf("missing id should resolve to nil, got %#v", values[1])
	}
	if got := values[2].(domain.User); got.ID != second {
		t.Fatalf("second result out of order: %v", got.ID)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected one batched fetch, got %d", calls)
	}
}

func TestByIDLoader_RejectsMalformedKey(t *testing.T) {
	loader := newByIDLoader(func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]any, error) {
		t.Error("fetch must not run for malformed keys")
		return nil, nil
	})

	thunk := loader.Load(context.Background(), dataloader.StringKey("nope"))
	if _, err := thunk(); err == nil {
		t.Fatal("expected error for malformed key")
	}
}

func TestGroupedLoader_GroupsRowsByKey(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()
	groupID := uuid.New()

	loader := newGroupedLoader(
		func(ctx context.Context, ids []uuid.UUID) ([]domain.Membership, error) {
			return []domain.Membership{
				{ID: uuid.New(), UserID: alice, GroupID: groupID},
				{ID: uuid.New(), UserID: bob, GroupID: groupID},
				{ID: uuid.New(), UserID: alice, GroupID: groupID},
			}, nil
		},
		func(m domain.Membership) uuid.UUID { return m.UserID },
	)

	ctx := context.Background()
	aliceThunk := loader.Load(ctx, dataloader.StringKey(alice.String()))
	bobThunk := loader.Load(ctx, dataloader.StringKey(bob.String()))
	carolThunk := loader.Load(ctx, dataloader.StringKey(carol.String()))

	aliceRows, err := aliceThunk()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(aliceRows.([]domain.Membership)) != 2 {
		t.Fatalf("expected two memberships for alice, got %v", aliceRows)
	}

	bobRows, _ := bobThunk()
	if len(bobRows.([]domain.Membership)) != 1 {
		t.Fatalf("expected one membership for bob, got %v", bobRows)
	}

	carolRows, _ := carolThunk()
	if rows := carolRows.([]domain.Membership); len(rows) != 0 {
		t.Fatalf("expected empty slice for carol, got %v", rows)
	}
}
