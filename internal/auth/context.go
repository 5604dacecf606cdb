package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const actorIDKey contextKey = "actorID"

// ActorHeader names the request header carrying the acting user's id.
const ActorHeader = "X-Actor-Id"

// ContextWithActorID returns a new context carrying the acting user.
func ContextWithActorID(ctx context.Context, id uuid.UUID) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, actorIDKey, id)
}

// ActorIDFromContext retrieves the acting user from the context, if any.
func ActorIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	if ctx == nil {
		return uuid.Nil, false
	}
	id, ok := ctx.Value(actorIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// RequireActor returns the acting user or an error suitable for mutation
// resolvers. Every audited write needs an actor for createdby/changedby.
func RequireActor(ctx context.Context) (uuid.UUID, error) {
	id, ok := ActorIDFromContext(ctx)
	if !ok {
		return uuid.Nil, fmt.Errorf("missing %s header: mutations require an acting user", ActorHeader)
	}
	return id, nil
}

// Middleware extracts the actor header into the request context. Requests
// without the header pass through, read-only queries do not need an actor.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw := r.Header.Get(ActorHeader); raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				r = r.WithContext(ContextWithActorID(r.Context(), id))
			}
		}
		next.ServeHTTP(w, r)
	})
}
