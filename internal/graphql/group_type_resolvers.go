package graphql

import (
	"context"
	"errors"
	"fmt"

	"gqlug/graph"
	"gqlug/internal/domain"
)

// GroupTypePage returns a page of group types matching the optional filter.
func (r *Resolver) GroupTypePage(ctx context.Context, skip, limit *int, where *graph.GroupTypeWhereFilter) (*graph.GroupTypeConnection, error) {
	expr, err := parseWhere(where, domain.GroupTypeFilterDescriptor())
	if err != nil {
		return nil, err
	}

	size, offset := pageBounds(skip, limit)

	groupTypes, totalCount, err := r.groupTypeRepo.List(ctx, expr, size, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list group types: %w", err)
	}

	return &graph.GroupTypeConnection{
		GroupTypes: toGraphGroupTypes(groupTypes),
		PageInfo:   pageInfo(offset, size, totalCount),
	}, nil
}

// GroupTypeByID returns a single group type, or nil when the id is unknown.
func (r *Resolver) GroupTypeByID(ctx context.Context, id string) (*graph.GroupType, error) {
	groupTypeID, err := parseUUID("group type ID", id)
	if err != nil {
		return nil, err
	}

	groupType, err := r.groupTypeRepo.GetByID(ctx, groupTypeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group type: %w", err)
	}

	return toGraphGroupType(groupType), nil
}

// GroupTypeGroups lists the groups classified by this type.
func (r *Resolver) GroupTypeGroups(ctx context.Context, obj *graph.GroupType) ([]*graph.Group, error) {
	groupTypeID, err := parseUUID("group type ID", obj.ID)
	if err != nil {
		return nil, err
	}

	groups, err := r.groupRepo.ListByGroupType(ctx, groupTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups by type: %w", err)
	}
	return toGraphGroups(groups), nil
}
