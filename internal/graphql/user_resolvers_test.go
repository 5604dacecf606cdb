package graphql

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"gqlug/graph"
	"gqlug/internal/domain"
)

func testUser(id uuid.UUID) domain.User {
	now := time.Now().UTC()
	return domain.User{
		ID:      id,
		Name:    "Jana",
		Surname: "Novakova",
		Valid:   true,
		Audit:   domain.Audit{Created: now, LastChange: now},
	}
}

func TestUserPage_DefaultsAndFilterReachRepository(t *testing.T) {
	id := uuid.New()
	repo := &stubUserRepo{users: map[uuid.UUID]domain.User{id: testUser(id)}}
	resolver := NewResolver(repo, nil, nil, &stubMembershipRepo{}, testLogger())

	where := &graph.UserWhereFilter{Valid: &graph.BoolFilter{Eq: boolPtr(true)}}
	conn, err := resolver.UserPage(context.Background(), nil, nil, where)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.listLimit != 10 || repo.listOffset != 0 {
		t.Fatalf("expected default page bounds 10/0, got %d/%d", repo.listLimit, repo.listOffset)
	}
	if repo.listExpr == nil {
		t.Fatal("expected the parsed filter to reach the repository")
	}
	if len(conn.Users) != 1 || conn.Users[0].ID != id.String() {
		t.Fatalf("unexpected connection: %#v", conn)
	}
	if conn.PageInfo.TotalCount != 1 || conn.PageInfo.HasNextPage {
		t.Fatalf("unexpected page info: %#v", conn.PageInfo)
	}
}

func TestUserPage_HasNextPageFromTotalCount(t *testing.T) {
	id := uuid.New()
	repo := &stubUserRepo{users: map[uuid.UUID]domain.User{id: testUser(id)}, listTotal: 40}
	resolver := NewResolver(repo, nil, nil, &stubMembershipRepo{}, testLogger())

	skip, limit := 10, 10
	conn, err := resolver.UserPage(context.Background(), &skip, &limit, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !conn.PageInfo.HasNextPage || !conn.PageInfo.HasPreviousPage {
		t.Fatalf("expected both page flags for a middle page, got %#v", conn.PageInfo)
	}
	if repo.listOffset != 10 {
		t.Fatalf("expected offset 10, got %d", repo.listOffset)
	}
}

func TestParseWhere_UnsupportedOperatorRejected(t *testing.T) {
	// _like is a string operator, the id attribute only takes _eq and _in.
	// The typed inputs cannot express that, so drive parseWhere directly.
	flat := map[string]any{"id": map[string]any{"_like": "abc%"}}
	if _, err := parseWhere(flat, domain.UserFilterDescriptor()); err == nil {
		t.Fatal("expected invalid filter to be rejected")
	}
}

func TestUserByID_UnknownIDResolvesToNil(t *testing.T) {
	resolver := NewResolver(&stubUserRepo{users: map[uuid.UUID]domain.User{}}, nil, nil, &stubMembershipRepo{}, testLogger())

	user, err := resolver.UserByID(context.Background(), uuid.New().String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil for unknown id, got %#v", user)
	}
}

func TestUserByID_MalformedIDFails(t *testing.T) {
	resolver := NewResolver(&stubUserRepo{}, nil, nil, &stubMembershipRepo{}, testLogger())

	if _, err := resolver.UserByID(context.Background(), "not-a-uuid"); err == nil {
		t.Fatal("expected error for malformed id")
	}
}

func TestUserMemberships_LoadsThroughFallbackLoaders(t *testing.T) {
	userID := uuid.New()
	membershipRepo := &stubMembershipRepo{
		memberships: []domain.Membership{
			{ID: uuid.New(), UserID: userID, GroupID: uuid.New(), Valid: true},
		},
	}
	resolver := NewResolver(&stubUserRepo{}, nil, nil, membershipRepo, testLogger())

	memberships, err := resolver.UserMemberships(context.Background(), &graph.User{ID: userID.String()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(memberships) != 1 {
		t.Fatalf("expected one membership, got %d", len(memberships))
	}
}
