package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a person registered in the system.
type User struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Surname string    `json:"surname"`
	Email   *string   `json:"email"`
	Valid   bool      `json:"valid"`
	Audit
}

// UserInsert carries the client-supplied fields for a new user. ID may be
// pre-assigned by the caller; uuid.Nil means the repository generates one.
type UserInsert struct {
	ID      uuid.UUID
	Name    string
	Surname string
	Email   *string
	Valid   *bool
}

// UserUpdate carries a partial update. LastChange is the stamp the client read
// previously; a stale stamp rejects the update.
type UserUpdate struct {
	ID         uuid.UUID
	LastChange time.Time
	Name       *string
	Surname    *string
	Email      *string
	Valid      *bool
}
