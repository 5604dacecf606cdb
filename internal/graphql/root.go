package graphql

import (
	"context"

	"gqlug/graph"
)

// ResolverRoot adapters wiring the generated gqlgen interfaces to the
// flat resolver methods defined on *Resolver.

func (r *Resolver) Query() graph.QueryResolver                     { return &queryResolver{r} }
func (r *Resolver) Mutation() graph.MutationResolver               { return &mutationResolver{r} }
func (r *Resolver) User() graph.UserResolver                       { return &userResolver{r} }
func (r *Resolver) Group() graph.GroupResolver                     { return &groupResolver{r} }
func (r *Resolver) GroupType() graph.GroupTypeResolver             { return &groupTypeResolver{r} }
func (r *Resolver) Membership() graph.MembershipResolver           { return &membershipResolver{r} }
func (r *Resolver) UserResult() graph.UserResultResolver           { return &userResultResolver{r} }
func (r *Resolver) GroupResult() graph.GroupResultResolver         { return &groupResultResolver{r} }
func (r *Resolver) GroupTypeResult() graph.GroupTypeResultResolver { return &groupTypeResultResolver{r} }
func (r *Resolver) MembershipResult() graph.MembershipResultResolver {
	return &membershipResultResolver{r}
}

type queryResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type userResolver struct{ *Resolver }
type groupResolver struct{ *Resolver }
type groupTypeResolver struct{ *Resolver }
type membershipResolver struct{ *Resolver }
type userResultResolver struct{ *Resolver }
type groupResultResolver struct{ *Resolver }
type groupTypeResultResolver struct{ *Resolver }
type membershipResultResolver struct{ *Resolver }

func (r *userResolver) Memberships(ctx context.Context, obj *graph.User) ([]*graph.Membership, error) {
	return r.UserMemberships(ctx, obj)
}

func (r *groupResolver) GroupType(ctx context.Context, obj *graph.Group) (*graph.GroupType, error) {
	return r.GroupGroupType(ctx, obj)
}

func (r *groupResolver) MasterGroup(ctx context.Context, obj *graph.Group) (*graph.Group, error) {
	return r.GroupMasterGroup(ctx, obj)
}

func (r *groupResolver) Subgroups(ctx context.Context, obj *graph.Group) ([]*graph.Group, error) {
	return r.GroupSubgroups(ctx, obj)
}

func (r *groupResolver) Memberships(ctx context.Context, obj *graph.Group) ([]*graph.Membership, error) {
	return r.GroupMemberships(ctx, obj)
}

func (r *groupTypeResolver) Groups(ctx context.Context, obj *graph.GroupType) ([]*graph.Group, error) {
	return r.GroupTypeGroups(ctx, obj)
}

func (r *membershipResolver) User(ctx context.Context, obj *graph.Membership) (*graph.User, error) {
	return r.MembershipUser(ctx, obj)
}

func (r *membershipResolver) Group(ctx context.Context, obj *graph.Membership) (*graph.Group, error) {
	return r.MembershipGroup(ctx, obj)
}

func (r *userResultResolver) User(ctx context.Context, obj *graph.UserResult) (*graph.User, error) {
	return r.UserResultUser(ctx, obj)
}

func (r *groupResultResolver) Group(ctx context.Context, obj *graph.GroupResult) (*graph.Group, error) {
	return r.GroupResultGroup(ctx, obj)
}

func (r *groupTypeResultResolver) GroupType(ctx context.Context, obj *graph.GroupTypeResult) (*graph.GroupType, error) {
	return r.GroupTypeResultGroupType(ctx, obj)
}

func (r *membershipResultResolver) Membership(ctx context.Context, obj *graph.MembershipResult) (*graph.Membership, error) {
	return r.MembershipResultMembership(ctx, obj)
}
