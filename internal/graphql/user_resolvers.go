package graphql

import (
	"context"
	"errors"
	"fmt"

	"gqlug/graph"
	"gqlug/internal/domain"
)

// UserPage returns a page of users matching the optional where filter.
func (r *Resolver) UserPage(ctx context.Context, skip, limit *int, where *graph.UserWhereFilter) (*graph.UserConnection, error) {
	expr, err := parseWhere(where, domain.UserFilterDescriptor())
	if err != nil {
		return nil, err
	}

	size, offset := pageBounds(skip, limit)

	users, totalCount, err := r.userRepo.List(ctx, expr, size, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return &graph.UserConnection{
		Users:    toGraphUsers(users),
		PageInfo: pageInfo(offset, size, totalCount),
	}, nil
}

// UserByID returns a single user, or nil when the id is unknown.
func (r *Resolver) UserByID(ctx context.Context, id string) (*graph.User, error) {
	userID, err := parseUUID("user ID", id)
	if err != nil {
		return nil, err
	}

	user, err := r.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toGraphUser(user), nil
}

// UserByLetters searches users by a fragment of their full name. Fragments
// shorter than three letters match nothing.
func (r *Resolver) UserByLetters(ctx context.Context, letters string, validity *bool) ([]*graph.User, error) {
	users, err := r.userRepo.SearchByLetters(ctx, letters, validity)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return toGraphUsers(users), nil
}

// UserMemberships resolves the memberships field of a user through the
// request-scoped batch loader.
func (r *Resolver) UserMemberships(ctx context.Context, obj *graph.User) ([]*graph.Membership, error) {
	userID, err := parseUUID("user ID", obj.ID)
	if err != nil {
		return nil, err
	}

	memberships, err := r.loaders(ctx).UserMemberships(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load memberships: %w", err)
	}
	return toGraphMemberships(memberships), nil
}
