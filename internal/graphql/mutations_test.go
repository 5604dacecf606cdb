package graphql

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"gqlug/graph"
	"gqlug/internal/auth"
	"gqlug/internal/domain"
)

func actorContext(t *testing.T) (context.Context, uuid.UUID) {
	t.Helper()
	actor := uuid.New()
	return auth.ContextWithActorID(context.Background(), actor), actor
}

func TestUserInsert_StampsActor(t *testing.T) {
	repo := &stubUserRepo{}
	resolver := NewResolver(repo, nil, nil, &stubMembershipRepo{}, testLogger())
	ctx, actor := actorContext(t)

	result, err := resolver.UserInsert(ctx, graph.UserInsertInput{Name: "Jana", Surname: "Novakova"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Msg != msgOk {
		t.Fatalf("expected msg %q, got %q", msgOk, result.Msg)
	}
	if repo.insertActor != actor {
		t.Fatalf("expected actor %s to reach the repository, got %s", actor, repo.insertActor)
	}
	if _, err := uuid.Parse(result.ID); err != nil {
		t.Fatalf("expected a generated id, got %q", result.ID)
	}
}

func TestUserInsert_MissingActorFails(t *testing.T) {
	resolver := NewResolver(&stubUserRepo{}, nil, nil, &stubMembershipRepo{}, testLogger())

	if _, err := resolver.UserInsert(context.Background(), graph.UserInsertInput{Name: "x", Surname: "y"}); err == nil {
		t.Fatal("expected mutation without actor to fail")
	}
}

func TestUserUpdate_OkCarriesStampAndFields(t *testing.T) {
	id := uuid.New()
	repo := &stubUserRepo{users: map[uuid.UUID]domain.User{id: testUser(id)}}
	resolver := NewResolver(repo, nil, nil, &stubMembershipRepo{}, testLogger())
	ctx, actor := actorContext(t)

	stamp := time.Date(2025, 5, 17, 12, 0, 0, 0, time.UTC)
	name := "Marie"
	result, err := resolver.UserUpdate(ctx, graph.UserUpdateInput{
		ID:         id.String(),
		LastChange: stamp.Format(time.RFC3339),
		Name:       &name,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Msg != msgOk {
		t.Fatalf("expected msg %q, got %q", msgOk, result.Msg)
	}
	if repo.updated == nil || !repo.updated.LastChange.Equal(stamp) {
		t.Fatalf("expected the lastchange stamp to reach the repository, got %#v", repo.updated)
	}
	if repo.updated.Name == nil || *repo.updated.Name != "Marie" {
		t.Fatalf("expected the name change to reach the repository, got %#v", repo.updated)
	}
	if repo.updateActor != actor {
		t.Fatalf("expected actor %s, got %s", actor, repo.updateActor)
	}
}

func TestUserUpdate_StaleStampFailsSoftly(t *testing.T) {
	id := uuid.New()
	repo := &stubUserRepo{
		users:     map[uuid.UUID]domain.User{id: testUser(id)},
		updateErr: domain.ErrStaleLastChange,
	}
	resolver := NewResolver(repo, nil, nil, &stubMembershipRepo{}, testLogger())
	ctx, _ := actorContext(t)

	result, err := resolver.UserUpdate(ctx, graph.UserUpdateInput{
		ID:         id.String(),
		LastChange: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		t.Fatalf("stale stamp must not surface as an error: %v", err)
	}
	if result.Msg != msgFail {
		t.Fatalf("expected msg %q for stale stamp, got %q", msgFail, result.Msg)
	}
	if result.ID != id.String() {
		t.Fatalf("expected the id to round-trip, got %q", result.ID)
	}
}

func TestUserUpdate_UnknownRowFailsSoftly(t *testing.T) {
	repo := &stubUserRepo{users: map[uuid.UUID]domain.User{}, updateErr: domain.ErrNotFound}
	resolver := NewResolver(repo, nil, nil, &stubMembershipRepo{}, testLogger())
	ctx, _ := actorContext(t)

	result, err := resolver.UserUpdate(ctx, graph.UserUpdateInput{
		ID:         uuid.New().String(),
		LastChange: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		t.Fatalf("missing row must not surface as an error: %v", err)
	}
	if result.Msg != msgFail {
		t.Fatalf("expected msg %q, got %q", msgFail, result.Msg)
	}
}

func TestMembershipUpdate_StaleStampFailsSoftly(t *testing.T) {
	repo := &stubMembershipRepo{updateErr: domain.ErrStaleLastChange}
	resolver := NewResolver(&stubUserRepo{}, nil, nil, repo, testLogger())
	ctx, _ := actorContext(t)

	result, err := resolver.MembershipUpdate(ctx, graph.MembershipUpdateInput{
		ID:         uuid.New().String(),
		LastChange: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		t.Fatalf("stale stamp must not surface as an error: %v", err)
	}
	if result.Msg != msgFail {
		t.Fatalf("expected msg %q, got %q", msgFail, result.Msg)
	}
}

func TestGroupUpdateMaster_RejectsSelfReference(t *testing.T) {
	resolver := NewResolver(&stubUserRepo{}, nil, nil, &stubMembershipRepo{}, testLogger())
	ctx, _ := actorContext(t)

	id := uuid.New().String()
	_, err := resolver.GroupUpdateMaster(ctx, graph.GroupUpdateMasterInput{
		ID:            id,
		LastChange:    time.Now().UTC().Format(time.RFC3339),
		MasterGroupID: id,
	})
	if err == nil {
		t.Fatal("expected self-referencing master to be rejected")
	}
}
