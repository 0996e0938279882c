package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag classifies recipes and belongs to exactly one user.
type Tag struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"-"`
}

func (t Tag) String() string {
	return t.Name
}
