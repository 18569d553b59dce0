// Package entity defines the domain models for the analytics feature.
package entity

import "time"

// Event is an append-only record of an ingredient-generation or favorite
// action. Events are never mutated or deleted by users.
type Event struct {
	ID          uint
	UserID      uint
	Ingredients []string // snapshot of the ingredient list at event time
	RecipeTitle string
	Action      string // optional tag, e.g. "favorited" / "unfavorited"
	GeneratedAt time.Time
	CreatedAt   time.Time
}
