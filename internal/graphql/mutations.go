package graphql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"gqlug/graph"
	"gqlug/internal/auth"
	"gqlug/internal/domain"
)

// Mutation results carry msg "ok" or "fail". A fail means the write was
// refused because the row is missing or the lastchange stamp is stale, both
// legitimate outcomes of concurrent editing rather than server errors.
const (
	msgOk   = "ok"
	msgFail = "fail"
)

func insertID(raw *string) (uuid.UUID, error) {
	if raw == nil {
		return uuid.Nil, nil
	}
	return parseUUID("id", *raw)
}

// updateOutcome maps an update error to the ok/fail protocol. Stale stamps
// and missing rows fail the mutation, anything else is a real error.
func (r *Resolver) updateOutcome(entity, id string, err error) (string, error) {
	if err == nil {
		return msgOk, nil
	}
	if errors.Is(err, domain.ErrStaleLastChange) || errors.Is(err, domain.ErrNotFound) {
		r.log.WithFields(logrus.Fields{
			"entity": entity,
			"id":     id,
			"reason": err.Error(),
		}).Warn("update refused")
		return msgFail, nil
	}
	return "", fmt.Errorf("failed to update %s: %w", entity, err)
}

// UserInsert creates a new user stamped with the acting user.
func (r *Resolver) UserInsert(ctx context.Context, user graph.UserInsertInput) (*graph.UserResult, error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}

	id, err := insertID(user.ID)
	if err != nil {
		return nil, err
	}

	created, err := r.userRepo.Insert(ctx, domain.UserInsert{
		ID:      id,
		Name:    user.Name,
		Surname: user.Surname,
		Email:   user.Email,
		Valid:   user.Valid,
	}, actor)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return &graph.UserResult{ID: created.ID.String(), Msg: msgOk}, nil
}

// UserUpdate applies a partial update guarded by the lastchange stamp.
func (r *Resolver) UserUpdate(ctx context.Context, user graph.UserUpdateInput) (*graph.UserResult, error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseUUID("user ID", user.ID)
	if err != nil {
		return nil, err
	}
	stamp, err := parseStamp(user.LastChange)
	if err != nil {
		return nil, err
	}

	_, err = r.userRepo.Update(ctx, domain.UserUpdate{
		ID:         id,
		LastChange: stamp,
		Name:       user.Name,
		Surname:    user.Surname,
		Email:      user.Email,
		Valid:      user.Valid,
	}, actor)

	msg, err := r.updateOutcome("user", user.ID, err)
	if err != nil {
		return nil, err
	}
	return &graph.UserResult{ID: user.ID, Msg: msg}, nil
}

// GroupInsert creates a new group stamped with the acting user.
func (r *Resolver) GroupInsert(ctx context.Context, group graph.GroupInsertInput) (*graph.GroupResult, error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}

	id, err := insertID(group.ID)
	if err != nil {
		return nil, err
	}
	groupTypeID, err := parseUUIDPtr("group type ID", group.GroupTypeID)
	if err != nil {
		return nil, err
	}
	masterGroupID, err := parseUUIDPtr("master group ID", group.MasterGroupID)
	if err != nil {
		return nil, err
	}

	created, err := r.groupRepo.Insert(ctx, domain.GroupInsert{
		ID:            id,
		Name:          group.Name,
		NameEn:        group.NameEn,
		GroupTypeID:   groupTypeID,
		MasterGroupID: masterGroupID,
		Valid:         group.Valid,
	}, actor)
	if err != nil {
		return nil, fmt.Errorf("failed to insert group: %w", err)
	}

	return &graph.GroupResult{ID: created.ID.String(), Msg: msgOk}, nil
}

// GroupUpdate applies a partial update guarded by the lastchange stamp. The
// master group is deliberately outside this mutation, moving a group in the
// hierarchy goes through GroupUpdateMaster.
func (r *Resolver) GroupUpdate(ctx context.Context, group graph.GroupUpdateInput) (*graph.GroupResult, error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseUUID("group ID", group.ID)
	if err != nil {
		return nil, err
	}
	stamp, err := parseStamp(group.LastChange)
	if err != nil {
		return nil, err
	}
	groupTypeID, err := parseUUIDPtr("group type ID", group.GroupTypeID)
	if err != nil {
		return nil, err
	}

	_, err = r.groupRepo.Update(ctx, domain.GroupUpdate{
		ID:          id,
		LastChange:  stamp,
		Name:        group.Name,
		NameEn:      group.NameEn,
		GroupTypeID: groupTypeID,
		Valid:       group.Valid,
	}, actor)

	msg, err := r.updateOutcome("group", group.ID, err)
	if err != nil {
		return nil, err
	}
	return &graph.GroupResult{ID: group.ID, Msg: msg}, nil
}

// GroupUpdateMaster moves a group under a new master group.
func (r *Resolver) GroupUpdateMaster(ctx context.Context, group graph.GroupUpdateMasterInput) (*graph.GroupResult, error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseUUID("group ID", group.ID)
	if err != nil {
		return nil, err
	}
	stamp, err := parseStamp(group.LastChange)
	if err != nil {
		return nil, err
	}
	masterGroupID, err := parseUUID("master group ID", group.MasterGroupID)
	if err != nil {
		return nil, err
	}
	if masterGroupID == id {
		return nil, fmt.Errorf("group cannot be its own master")
	}

	_, err = r.groupRepo.Update(ctx, domain.GroupUpdate{
		ID:            id,
		LastChange:    stamp,
		MasterGroupID: &masterGroupID,
	}, actor)

	msg, err := r.updateOutcome("group", group.ID, err)
	if err != nil {
		return nil, err
	}
	return &graph.GroupResult{ID: group.ID, Msg: msg}, nil
}

// GroupTypeInsert creates a new group type stamped with the acting user.
func (r *Resolver) GroupTypeInsert(ctx context.Context, groupType graph.GroupTypeInsertInput) (*graph.GroupTypeResult, error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}

	id, err := insertID(groupType.ID)
	if err != nil {
		return nil, err
	}

	created, err := r.groupTypeRepo.Insert(ctx, domain.GroupTypeInsert{
		ID:     id,
		Name:   groupType.Name,
		NameEn: groupType.NameEn,
		Valid:  groupType.Valid,
	}, actor)
	if err != nil {
		return nil, fmt.Errorf("failed to insert group type: %w", err)
	}

	return &graph.GroupTypeResult{ID: created.ID.String(), Msg: msgOk}, nil
}

// GroupTypeUpdate applies a partial update guarded by the lastchange stamp.
func (r *Resolver) GroupTypeUpdate(ctx context.Context, groupType graph.GroupTypeUpdateInput) (*graph.GroupTypeResult, error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseUUID("group type ID", groupType.ID)
	if err != nil {
		return nil, err
	}
	stamp, err := parseStamp(groupType.LastChange)
	if err != nil {
		return nil, err
	}

	_, err = r.groupTypeRepo.Update(ctx, domain.GroupTypeUpdate{
		ID:         id,
		LastChange: stamp,
		Name:       groupType.Name,
		NameEn:     groupType.NameEn,
		Valid:      groupType.Valid,
	}, actor)

	msg, err := r.updateOutcome("group type", groupType.ID, err)
	if err != nil {
		return nil, err
	}
	return &graph.GroupTypeResult{ID: groupType.ID, Msg: msg}, nil
}

// MembershipInsert links a user to a group.
func (r *Resolver) MembershipInsert(ctx context.Context, membership graph.MembershipInsertInput) (*graph.MembershipResult, error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}

	id, err := insertID(membership.ID)
	if err != nil {
		return nil, err
	}
	userID, err := parseUUID("user ID", membership.UserID)
	if err != nil {
		return nil, err
	}
	groupID, err := parseUUID("group ID", membership.GroupID)
	if err != nil {
		return nil, err
	}
	startDate, err := parseTimePtr("startdate", membership.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseTimePtr("enddate", membership.EndDate)
	if err != nil {
		return nil, err
	}

	created, err := r.membershipRepo.Insert(ctx, domain.MembershipInsert{
		ID:        id,
		UserID:    userID,
		GroupID:   groupID,
		Valid:     membership.Valid,
		StartDate: startDate,
		EndDate:   endDate,
	}, actor)
	if err != nil {
		return nil, fmt.Errorf("failed to insert membership: %w", err)
	}

	return &graph.MembershipResult{ID: created.ID.String(), Msg: msgOk}, nil
}

// MembershipUpdate applies a partial update guarded by the lastchange stamp.
// The linked user and group never change on an existing membership.
func (r *Resolver) MembershipUpdate(ctx context.Context, membership graph.MembershipUpdateInput) (*graph.MembershipResult, error) {
	actor, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseUUID("membership ID", membership.ID)
	if err != nil {
		return nil, err
	}
	stamp, err := parseStamp(membership.LastChange)
	if err != nil {
		return nil, err
	}
	startDate, err := parseTimePtr("startdate", membership.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseTimePtr("enddate", membership.EndDate)
	if err != nil {
		return nil, err
	}

	_, err = r.membershipRepo.Update(ctx, domain.MembershipUpdate{
		ID:         id,
		LastChange: stamp,
		Valid:      membership.Valid,
		StartDate:  startDate,
		EndDate:    endDate,
	}, actor)

	msg, err := r.updateOutcome("membership", membership.ID, err)
	if err != nil {
		return nil, err
	}
	return &graph.MembershipResult{ID: membership.ID, Msg: msg}, nil
}

// UserResultUser lazily resolves the entity behind a mutation result.
func (r *Resolver) UserResultUser(ctx context.Context, obj *graph.UserResult) (*graph.User, error) {
	return r.UserByID(ctx, obj.ID)
}

// GroupResultGroup lazily resolves the entity behind a mutation result.
func (r *Resolver) GroupResultGroup(ctx context.Context, obj *graph.GroupResult) (*graph.Group, error) {
	return r.GroupByID(ctx, obj.ID)
}

// GroupTypeResultGroupType lazily resolves the entity behind a mutation result.
func (r *Resolver) GroupTypeResultGroupType(ctx context.Context, obj *graph.GroupTypeResult) (*graph.GroupType, error) {
	return r.GroupTypeByID(ctx, obj.ID)
}

// MembershipResultMembership lazily resolves the entity behind a mutation result.
func (r *Resolver) MembershipResultMembership(ctx context.Context, obj *graph.MembershipResult) (*graph.Membership, error) {
	return r.MembershipByID(ctx, obj.ID)
}
