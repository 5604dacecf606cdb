package middleware

import (
	"context"
	"net/http"

	"gqlug/internal/loaders"
	"gqlug/internal/repository"
)

type ctxKey string

const loadersKey ctxKey = "loaders"

// DataLoaderMiddleware attaches a fresh set of per-request loaders to the
// request context so the batch caches never leak across requests.
func DataLoaderMiddleware(
	users repository.UserRepository,
	groups repository.GroupRepository,
	groupTypes repository.GroupTypeRepository,
	memberships repository.MembershipRepository,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := loaders.New(users, groups, groupTypes, memberships)
			ctx := context.WithValue(r.Context(), loadersKey, l)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoadersFromContext retrieves the request-scoped loaders, or nil when the
// middleware did not run (e.g. in unit tests exercising resolvers directly).
func LoadersFromContext(ctx context.Context) *loaders.Loaders {
	if l, ok := ctx.Value(loadersKey).(*loaders.Loaders); ok {
		return l
	}
	return nil
}
