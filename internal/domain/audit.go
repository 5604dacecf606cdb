package domain

import (
	"time"

	"github.com/google/uuid"
)

// Audit carries the bookkeeping fields every entity shares. Created and
// CreatedBy are set once at insertion and never move; LastChange and ChangedBy
// move together on every mutation, so Created <= LastChange always holds.
type Audit struct {
	CreatedBy  *uuid.UUID `json:"createdby"`
	ChangedBy  *uuid.UUID `json:"changedby"`
	Created    time.Time  `json:"created"`
	LastChange time.Time  `json:"lastchange"`
}

// NewAudit stamps a freshly inserted entity for the given actor.
func NewAudit(actor uuid.UUID) Audit {
	now := time.Now().UTC()
	actorRef := actor
	return Audit{
		CreatedBy:  &actorRef,
		ChangedBy:  &actorRef,
		Created:    now,
		LastChange: now,
	}
}

// Touch records a mutation by the given actor.
func (a *Audit) Touch(actor uuid.UUID) {
	actorRef := actor
	a.ChangedBy = &actorRef
	a.LastChange = time.Now().UTC()
}
