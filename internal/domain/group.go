package domain

import (
	"time"

	"github.com/google/uuid"
)

// Group represents an organizational unit. Groups form a hierarchy through
// MasterGroupID and are classified by their GroupType (faculty, department...).
type Group struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	NameEn        *string    `json:"name_en"`
	Valid         bool       `json:"valid"`
	GroupTypeID   *uuid.UUID `json:"grouptype_id"`
	MasterGroupID *uuid.UUID `json:"mastergroup_id"`
	Audit
}

// GroupInsert carries the client-supplied fields for a new group.
type GroupInsert struct {
	ID            uuid.UUID
	Name          string
	NameEn        *string
	GroupTypeID   *uuid.UUID
	MasterGroupID *uuid.UUID
	Valid         *bool
}

// GroupUpdate carries a partial update guarded by the LastChange stamp.
type GroupUpdate struct {
	ID            uuid.UUID
	LastChange    time.Time
	Name          *string
	NameEn        *string
	GroupTypeID   *uuid.UUID
	MasterGroupID *uuid.UUID
	Valid         *bool
}

// GroupType classifies groups (like Faculty or Department).
type GroupType struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	NameEn *string   `json:"name_en"`
	Valid  bool      `json:"valid"`
	Audit
}

// GroupTypeInsert carries the client-supplied fields for a new group type.
type GroupTypeInsert struct {
	ID     uuid.UUID
	Name   string
	NameEn *string
	Valid  *bool
}

// GroupTypeUpdate carries a partial update guarded by the LastChange stamp.
type GroupTypeUpdate struct {
	ID         uuid.UUID
	LastChange time.Time
	Name       *string
	NameEn     *string
	Valid      *bool
}
