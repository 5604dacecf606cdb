package repository

import (
	"context"

	"github.com/google/uuid"

	"gqlug/internal/domain"
	"gqlug/internal/filter"
)

// UserRepository defines the interface for user operations
type UserRepository interface {
	Insert(ctx context.Context, ins domain.UserInsert, actor uuid.UUID) (domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
	List(ctx context.Context, where filter.Expr, limit, offset int) ([]domain.User, int, error)
	SearchByLetters(ctx context.Context, letters string, validity *bool) ([]domain.User, error)
	Update(ctx context.Context, upd domain.UserUpdate, actor uuid.UUID) (domain.User, error)
}

// GroupRepository defines the interface for group operations
type GroupRepository interface {
	Insert(ctx context.Context, ins domain.GroupInsert, actor uuid.UUID) (domain.Group, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Group, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Group, error)
	List(ctx context.Context, where filter.Expr, limit, offset int) ([]domain.Group, int, error)
	SearchByLetters(ctx context.Context, letters string, validity *bool) ([]domain.Group, error)
	ListByMasterGroup(ctx context.Context, masterID uuid.UUID) ([]domain.Group, error)
	ListByGroupType(ctx context.Context, groupTypeID uuid.UUID) ([]domain.Group, error)
	Update(ctx context.Context, upd domain.GroupUpdate, actor uuid.UUID) (domain.Group, error)
}

// GroupTypeRepository defines the interface for group type operations
type GroupTypeRepository interface {
	Insert(ctx context.Context, ins domain.GroupTypeInsert, actor uuid.UUID) (domain.GroupType, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.GroupType, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.GroupType, error)
	List(ctx context.Context, where filter.Expr, limit, offset int) ([]domain.GroupType, int, error)
	Update(ctx context.Context, upd domain.GroupTypeUpdate, actor uuid.UUID) (domain.GroupType, error)
}

// MembershipRepository defines the interface for membership operations
type MembershipRepository interface {
	Insert(ctx context.Context, ins domain.MembershipInsert, actor uuid.UUID) (domain.Membership, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Membership, error)
	List(ctx context.Context, where filter.Expr, limit, offset int) ([]domain.Membership, int, error)
	ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]domain.Membership, error)
	ListByGroupIDs(ctx context.Context, groupIDs []uuid.UUID) ([]domain.Membership, error)
	Update(ctx context.Context, upd domain.MembershipUpdate, actor uuid.UUID) (domain.Membership, error)
}
