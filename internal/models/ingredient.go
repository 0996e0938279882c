package models

import (
	"time"

	"github.com/google/uuid"
)

// Ingredient has the same shape as Tag but its own table and identity.
type Ingredient struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"-"`
}

func (i Ingredient) String() string {
	return i.Name
}
