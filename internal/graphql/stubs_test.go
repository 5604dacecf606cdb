package graphql

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"gqlug/internal/domain"
	"gqlug/internal/filter"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type stubUserRepo struct {
	users map[uuid.UUID]domain.User

	listExpr   filter.Expr
	listLimit  int
	listOffset int
	listTotal  int

	inserted    *domain.UserInsert
	insertActor uuid.UUID

	updated     *domain.UserUpdate
	updateActor uuid.UUID
	updateErr   error
}

func (s *stubUserRepo) Insert(ctx context.Context, ins domain.UserInsert, actor uuid.UUID) (domain.User, error) {
	s.inserted = &ins
	s.insertActor = actor
	id := ins.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return domain.User{ID: id, Name: ins.Name, Surname: ins.Surname, Email: ins.Email, Valid: true}, nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	user, ok := s.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return user, nil
}

func (s *stubUserRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	var result []domain.User
	for _, id := range ids {
		if user, ok := s.users[id]; ok {
			result = append(result, user)
		}
	}
	return result, nil
}

func (s *stubUserRepo) List(ctx context.Context, where filter.Expr, limit, offset int) ([]domain.User, int, error) {
	s.listExpr = where
	s.listLimit = limit
	s.listOffset = offset
	var result []domain.User
	for _, user := range s.users {
		result = append(result, user)
	}
	total := s.listTotal
	if total == 0 {
		total = len(result)
	}
	return result, total, nil
}

func (s *stubUserRepo) SearchByLetters(ctx context.Context, letters string, validity *bool) ([]domain.User, error) {
	if len(letters) < 3 {
		return []domain.User{}, nil
	}
	var result []domain.User
	for _, user := range s.users {
		result = append(result, user)
	}
	return result, nil
}

func (s *stubUserRepo) Update(ctx context.Context, upd domain.UserUpdate, actor uuid.UUID) (domain.User, error) {
	s.updated = &upd
	s.updateActor = actor
	if s.updateErr != nil {
		return domain.User{}, s.updateErr
	}
	user := s.users[upd.ID]
	return user, nil
}

type stubMembershipRepo struct {
	memberships []domain.Membership
	updateErr   error
	updated     *domain.MembershipUpdate
}

func (s *stubMembershipRepo) Insert(ctx context.Context, ins domain.MembershipInsert, actor uuid.UUID) (domain.Membership, error) {
	id := ins.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return domain.Membership{ID: id, UserID: ins.UserID, GroupID: ins.GroupID, Valid: true}, nil
}

func (s *stubMembershipRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Membership, error) {
	for _, m := range s.memberships {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.Membership{}, domain.ErrNotFound
}

func (s *stubMembershipRepo) List(ctx context.Context, where filter.Expr, limit, offset int) ([]domain.Membership, int, error) {
	return s.memberships, len(s.memberships), nil
}

func (s *stubMembershipRepo) ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]domain.Membership, error) {
	var result []domain.Membership
	for _, m := range s.memberships {
		for _, id := range userIDs {
			if m.UserID == id {
				result = append(result, m)
			}
		}
	}
	return result, nil
}

func (s *stubMembershipRepo) ListByGroupIDs(ctx context.Context, groupIDs []uuid.UUID) ([]domain.Membership, error) {
	var result []domain.Membership
	for _, m := range s.memberships {
		for _, id := range groupIDs {
			if m.GroupID == id {
				result = append(result, m)
			}
		}
	}
	return result, nil
}

func (s *stubMembershipRepo) Update(ctx context.Context, upd domain.MembershipUpdate, actor uuid.UUID) (domain.Membership, error) {
	s.updated = &upd
	if s.updateErr != nil {
		return domain.Membership{}, s.updateErr
	}
	return domain.Membership{ID: upd.ID}, nil
}
