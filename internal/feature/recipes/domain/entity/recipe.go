// Package entity defines the domain models for the recipes feature.
package entity

import "time"

// YouTubeLink is an external media reference attached to a recipe.
type YouTubeLink struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
}

// Recipe represents a recipe saved by a user.
// UserID is the owning identity and is immutable after creation; every
// mutating operation is gated on it.
type Recipe struct {
	ID           uint
	UserID       uint
	Title        string
	Ingredients  []string      // ordered
	Instructions []string      // ordered
	CookTime     string        // free-form, e.g. "45 min"
	Servings     string        // free-form, e.g. "4"
	Description  string
	IsFavorite   bool
	YouTubeLinks []YouTubeLink // ordered
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
