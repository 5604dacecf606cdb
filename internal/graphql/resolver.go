package graphql

import (
	"context"

	"github.com/sirupsen/logrus"

	"gqlug/internal/loaders"
	"gqlug/internal/middleware"
	"gqlug/internal/repository"
)

// Resolver handles GraphQL queries and mutations
type Resolver struct {
	userRepo       repository.UserRepository
	groupRepo      repository.GroupRepository
	groupTypeRepo  repository.GroupTypeRepository
	membershipRepo repository.MembershipRepository
	log            *logrus.Logger
}

// NewResolver creates a new GraphQL resolver
func NewResolver(
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
	groupTypeRepo repository.GroupTypeRepository,
	membershipRepo repository.MembershipRepository,
	log *logrus.Logger,
) *Resolver {
	return &Resolver{
		userRepo:       userRepo,
		groupRepo:      groupRepo,
		groupTypeRepo:  groupTypeRepo,
		membershipRepo: membershipRepo,
		log:            log,
	}
}

// loaders returns the request-scoped batch loaders, falling back to a fresh
// unbatched set when the middleware did not run (direct resolver tests).
func (r *Resolver) loaders(ctx context.Context) *loaders.Loaders {
	if l := middleware.LoadersFromContext(ctx); l != nil {
		return l
	}
	return loaders.New(r.userRepo, r.groupRepo, r.groupTypeRepo, r.membershipRepo)
}

func pageBounds(skip, limit *int) (int, int) {
	offset := 0
	if skip != nil && *skip > 0 {
		offset = *skip
	}
	size := 10
	if limit != nil && *limit > 0 {
		size = *limit
	}
	return size, offset
}
