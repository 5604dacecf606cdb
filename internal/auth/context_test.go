package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestActorIDRoundTrip(t *testing.T) {
	id := uuid.New()
	ctx := ContextWithActorID(context.Background(), id)

	got, ok := ActorIDFromContext(ctx)
	if !ok || got != id {
		t.Fatalf("expected %s, got %s (ok=%v)", id, got, ok)
	}
}

func TestActorIDFromContext_MissingOrNil(t *testing.T) {
	if _, ok := ActorIDFromContext(context.Background()); ok {
		t.Fatal("empty context must not yield an actor")
	}
	ctx := ContextWithActorID(context.Background(), uuid.Nil)
	if _, ok := ActorIDFromContext(ctx); ok {
		t.Fatal("nil uuid must not count as an actor")
	}
}

func TestRequireActor_ErrorNamesHeader(t *testing.T) {
	_, err := RequireActor(context.Background())
	if err == nil {
		t.Fatal("expected error without actor")
	}
}

func TestMiddleware_ParsesHeader(t *testing.T) {
	id := uuid.New()
	var got uuid.UUID
	var ok bool

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = ActorIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/query", nil)
	req.Header.Set(ActorHeader, id.String())
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !ok || got != id {
		t.Fatalf("actor not propagated: got %s ok=%v", got, ok)
	}
}

func TestMiddleware_IgnoresMalformedHeader(t *testing.T) {
	var ok bool
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok = ActorIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/query", nil)
	req.Header.Set(ActorHeader, "not-a-uuid")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if ok {
		t.Fatal("malformed header must not produce an actor")
	}
}
