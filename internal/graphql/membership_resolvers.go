package graphql

import (
	"context"
	"errors"
	"fmt"

	"gqlug/graph"
	"gqlug/internal/domain"
)

// MembershipPage returns a page of memberships matching the optional filter.
func (r *Resolver) MembershipPage(ctx context.Context, skip, limit *int, where *graph.MembershipWhereFilter) (*graph.MembershipConnection, error) {
	expr, err := parseWhere(where, domain.MembershipFilterDescriptor())
	if err != nil {
		return nil, err
	}

	size, offset := pageBounds(skip, limit)

	memberships, totalCount, err := r.membershipRepo.List(ctx, expr, size, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	return &graph.MembershipConnection{
		Memberships: toGraphMemberships(memberships),
		PageInfo:    pageInfo(offset, size, totalCount),
	}, nil
}

// MembershipByID returns a single membership, or nil when the id is unknown.
func (r *Resolver) MembershipByID(ctx context.Context, id string) (*graph.Membership, error) {
	membershipID, err := parseUUID("membership ID", id)
	if err != nil {
		return nil, err
	}

	membership, err := r.membershipRepo.GetByID(ctx, membershipID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return toGraphMembership(membership), nil
}

// MembershipUser resolves the user side of a membership through the batch
// loader. The row always references an existing user.
func (r *Resolver) MembershipUser(ctx context.Context, obj *graph.Membership) (*graph.User, error) {
	userID, err := parseUUID("user ID", obj.UserID)
	if err != nil {
		return nil, err
	}

	user, err := r.loaders(ctx).User(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("membership %s references unknown user %s", obj.ID, obj.UserID)
	}
	return toGraphUser(*user), nil
}

// MembershipGroup resolves the group side of a membership.
func (r *Resolver) MembershipGroup(ctx context.Context, obj *graph.Membership) (*graph.Group, error) {
	groupID, err := parseUUID("group ID", obj.GroupID)
	if err != nil {
		return nil, err
	}

	group, err := r.loaders(ctx).Group(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load group: %w", err)
	}
	if group == nil {
		return nil, fmt.Errorf("membership %s references unknown group %s", obj.ID, obj.GroupID)
	}
	return toGraphGroup(*group), nil
}
