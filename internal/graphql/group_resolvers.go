package graphql

import (
	"context"
	"errors"
	"fmt"

	"gqlug/graph"
	"gqlug/internal/domain"
)

// GroupPage returns a page of groups matching the optional where filter.
func (r *Resolver) GroupPage(ctx context.Context, skip, limit *int, where *graph.GroupWhereFilter) (*graph.GroupConnection, error) {
	expr, err := parseWhere(where, domain.GroupFilterDescriptor())
	if err != nil {
		return nil, err
	}

	size, offset := pageBounds(skip, limit)

	groups, totalCount, err := r.groupRepo.List(ctx, expr, size, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	return &graph.GroupConnection{
		Groups:   toGraphGroups(groups),
		PageInfo: pageInfo(offset, size, totalCount),
	}, nil
}

// GroupByID returns a single group, or nil when the id is unknown.
func (r *Resolver) GroupByID(ctx context.Context, id string) (*graph.Group, error) {
	groupID, err := parseUUID("group ID", id)
	if err != nil {
		return nil, err
	}

	group, err := r.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return toGraphGroup(group), nil
}

// GroupByLetters searches groups by a fragment of their name.
func (r *Resolver) GroupByLetters(ctx context.Context, letters string, validity *bool) ([]*graph.Group, error) {
	groups, err := r.groupRepo.SearchByLetters(ctx, letters, validity)
	if err != nil {
		return nil, fmt.Errorf("failed to search groups: %w", err)
	}
	return toGraphGroups(groups), nil
}

// GroupGroupType resolves the group's type through the batch loader.
func (r *Resolver) GroupGroupType(ctx context.Context, obj *graph.Group) (*graph.GroupType, error) {
	if obj.GroupTypeID == nil {
		return nil, nil
	}
	groupTypeID, err := parseUUID("group type ID", *obj.GroupTypeID)
	if err != nil {
		return nil, err
	}

	groupType, err := r.loaders(ctx).GroupType(ctx, groupTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load group type: %w", err)
	}
	if groupType == nil {
		return nil, nil
	}
	return toGraphGroupType(*groupType), nil
}

// GroupMasterGroup resolves the parent group through the batch loader.
func (r *Resolver) GroupMasterGroup(ctx context.Context, obj *graph.Group) (*graph.Group, error) {
	if obj.MasterGroupID == nil {
		return nil, nil
	}
	masterID, err := parseUUID("master group ID", *obj.MasterGroupID)
	if err != nil {
		return nil, err
	}

	master, err := r.loaders(ctx).Group(ctx, masterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load master group: %w", err)
	}
	if master == nil {
		return nil, nil
	}
	return toGraphGroup(*master), nil
}

// GroupSubgroups lists the groups whose master is this group.
func (r *Resolver) GroupSubgroups(ctx context.Context, obj *graph.Group) ([]*graph.Group, error) {
	groupID, err := parseUUID("group ID", obj.ID)
	if err != nil {
		return nil, err
	}

	subgroups, err := r.groupRepo.ListByMasterGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subgroups: %w", err)
	}
	return toGraphGroups(subgroups), nil
}

// GroupMemberships resolves the memberships field of a group through the
// request-scoped batch loader.
func (r *Resolver) GroupMemberships(ctx context.Context, obj *graph.Group) ([]*graph.Membership, error) {
	groupID, err := parseUUID("group ID", obj.ID)
	if err != nil {
		return nil, err
	}

	memberships, err := r.loaders(ctx).GroupMemberships(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load memberships: %w", err)
	}
	return toGraphMemberships(memberships), nil
}
