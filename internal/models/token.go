package models

import (
	"time"

	"github.com/google/uuid"
)

// AuthToken is the opaque bearer token bound 1:1 to a user. Re-issuing a
// token for the same user returns the stored key unchanged.
type AuthToken struct {
	ID        uuid.UUID `json:"-"`
	UserID    uuid.UUID `json:"-"`
	Key       string    `json:"token"`
	CreatedAt time.Time `json:"-"`
}
