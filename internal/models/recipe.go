package models

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is owned by one user and references any number of the owner's
// tags and ingredients. Image holds the stored file path relative to the
// media root, or nil when no image has been uploaded.
type Recipe struct {
	ID            uuid.UUID   `json:"id"`
	UserID        uuid.UUID   `json:"-"`
	Title         string      `json:"title"`
	TimeMinutes   int         `json:"time_minutes"`
	Price         float64     `json:"price"`
	Link          *string     `json:"link"`
	Image         *string     `json:"image"`
	TagIDs        []uuid.UUID `json:"tags"`
	IngredientIDs []uuid.UUID `json:"ingredients"`
	CreatedAt     time.Time   `json:"-"`
}

func (r Recipe) String() string {
	return r.Title
}

// RecipeDetail is the retrieve representation: relations are expanded to
// full objects instead of id lists.
type RecipeDetail struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	TimeMinutes int          `json:"time_minutes"`
	Price       float64      `json:"price"`
	Link        *string      `json:"link"`
	Image       *string      `json:"image"`
	Tags        []Tag        `json:"tags"`
	Ingredients []Ingredient `json:"ingredients"`
}
