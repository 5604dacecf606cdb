package domain

import (
	"time"

	"github.com/google/uuid"
)

// Membership links a user to a group for a period of time. The user and group
// of an existing membership never change; only validity and the period do.
type Membership struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	GroupID   uuid.UUID  `json:"group_id"`
	Valid     bool       `json:"valid"`
	StartDate *time.Time `json:"startdate"`
	EndDate   *time.Time `json:"enddate"`
	Audit
}

// MembershipInsert carries the client-supplied fields for a new membership.
type MembershipInsert struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	GroupID   uuid.UUID
	Valid     *bool
	StartDate *time.Time
	EndDate   *time.Time
}

// MembershipUpdate carries a partial update guarded by the LastChange stamp.
type MembershipUpdate struct {
	ID         uuid.UUID
	LastChange time.Time
	Valid      *bool
	StartDate  *time.Time
	EndDate    *time.Time
}
