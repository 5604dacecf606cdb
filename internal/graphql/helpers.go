package graphql

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"gqlug/graph"
	"gqlug/internal/domain"
)

func uuidPtrToString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func parseUUID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", field, err)
	}
	return id, nil
}

func parseUUIDPtr(field string, raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := parseUUID(field, *raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseStamp(raw string) (time.Time, error) {
	stamp, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid lastchange stamp: %w", err)
	}
	return stamp, nil
}

func parseTimePtr(field string, raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", field, err)
	}
	return &t, nil
}

func toGraphUser(u domain.User) *graph.User {
	return &graph.User{
		ID:         u.ID.String(),
		Name:       u.Name,
		Surname:    u.Surname,
		Email:      u.Email,
		Valid:      u.Valid,
		Created:    u.Created.Format(time.RFC3339),
		LastChange: u.LastChange.Format(time.RFC3339),
		CreatedBy:  uuidPtrToString(u.CreatedBy),
		ChangedBy:  uuidPtrToString(u.ChangedBy),
	}
}

func toGraphGroup(g domain.Group) *graph.Group {
	return &graph.Group{
		ID:            g.ID.String(),
		Name:          g.Name,
		NameEn:        g.NameEn,
		Valid:         g.Valid,
		Created:       g.Created.Format(time.RFC3339),
		LastChange:    g.LastChange.Format(time.RFC3339),
		CreatedBy:     uuidPtrToString(g.CreatedBy),
		ChangedBy:     uuidPtrToString(g.ChangedBy),
		GroupTypeID:   uuidPtrToString(g.GroupTypeID),
		MasterGroupID: uuidPtrToString(g.MasterGroupID),
	}
}

func toGraphGroupType(gt domain.GroupType) *graph.GroupType {
	return &graph.GroupType{
		ID:         gt.ID.String(),
		Name:       gt.Name,
		NameEn:     gt.NameEn,
		Valid:      gt.Valid,
		Created:    gt.Created.Format(time.RFC3339),
		LastChange: gt.LastChange.Format(time.RFC3339),
		CreatedBy:  uuidPtrToString(gt.CreatedBy),
		ChangedBy:  uuidPtrToString(gt.ChangedBy),
	}
}

func toGraphMembership(m domain.Membership) *graph.Membership {
	return &graph.Membership{
		ID:         m.ID.String(),
		Valid:      m.Valid,
		StartDate:  timePtrToString(m.StartDate),
		EndDate:    timePtrToString(m.EndDate),
		Created:    m.Created.Format(time.RFC3339),
		LastChange: m.LastChange.Format(time.RFC3339),
		CreatedBy:  uuidPtrToString(m.CreatedBy),
		ChangedBy:  uuidPtrToString(m.ChangedBy),
		UserID:     m.UserID.String(),
		GroupID:    m.GroupID.String(),
	}
}

func toGraphUsers(users []domain.User) []*graph.User {
	result := make([]*graph.User, len(users))
	for i, u := range users {
		result[i] = toGraphUser(u)
	}
	return result
}

func toGraphGroups(groups []domain.Group) []*graph.Group {
	result := make([]*graph.Group, len(groups))
	for i, g := range groups {
		result[i] = toGraphGroup(g)
	}
	return result
}

func toGraphGroupTypes(groupTypes []domain.GroupType) []*graph.GroupType {
	result := make([]*graph.GroupType, len(groupTypes))
	for i, gt := range groupTypes {
		result[i] = toGraphGroupType(gt)
	}
	return result
}

func toGraphMemberships(memberships []domain.Membership) []*graph.Membership {
	result := make([]*graph.Membership, len(memberships))
	for i, m := range memberships {
		result[i] = toGraphMembership(m)
	}
	return result
}

func pageInfo(offset, limit, totalCount int) *graph.PageInfo {
	return &graph.PageInfo{
		HasNextPage:     offset+limit < totalCount,
		HasPreviousPage: offset > 0,
		TotalCount:      totalCount,
	}
}
