// Package api defines the shared response envelope for all HTTP endpoints.
// Every response carries a success flag; failures carry a message and no
// payload, successes carry their payload under a stable field name.
package api

import "time"

// ErrorResponse is the envelope for any failed request.
// Success is intentionally left at its zero value (false).
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse is the envelope for successful requests without a payload.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// User is the outward representation of a user account.
// The password digest is never part of this payload.
type User struct {
	ID               uint   `json:"id"`
	Email            string `json:"email"`
	FullName         string `json:"fullName"`
	RecipesSaved     int    `json:"recipesSaved"`
	RecipesGenerated int    `json:"recipesGenerated"`
}

// AuthResponse is returned by signup and signin with a fresh token.
type AuthResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// ProfileResponse is returned by profile reads and updates.
type ProfileResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

// YouTubeLink is an external media reference attached to a recipe.
type YouTubeLink struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
}

// Recipe is the outward representation of a saved recipe.
type Recipe struct {
	ID           uint          `json:"id"`
	UserID       uint          `json:"userId"`
	Title        string        `json:"title"`
	Ingredients  []string      `json:"ingredients"`
	Instructions []string      `json:"instructions"`
	CookTime     string        `json:"cookTime,omitempty"`
	Servings     string        `json:"servings,omitempty"`
	Description  string        `json:"description,omitempty"`
	IsFavorite   bool          `json:"isFavorite"`
	YouTubeLinks []YouTubeLink `json:"youtubeLinks"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// RecipeResponse is returned by save and favorite-toggle operations.
type RecipeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Recipe  Recipe `json:"recipe"`
}

// RecipeListResponse is returned by the saved-recipes listing.
type RecipeListResponse struct {
	Success bool     `json:"success"`
	Recipes []Recipe `json:"recipes"`
}

// AnalyticsEvent is the outward representation of a generation event.
type AnalyticsEvent struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"userId"`
	Ingredients []string  `json:"ingredients"`
	RecipeTitle string    `json:"recipeTitle"`
	Action      string    `json:"action,omitempty"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// AnalyticsResponse is returned by the analytics event listing.
type AnalyticsResponse struct {
	Success   bool             `json:"success"`
	Analytics []AnalyticsEvent `json:"analytics"`
}

// DashboardStats aggregates live counts with the denormalized user counters.
type DashboardStats struct {
	TotalRecipes     int64 `json:"totalRecipes"`
	TotalGenerations int64 `json:"totalGenerations"`
	RecipesSaved     int   `json:"recipesSaved"`
	RecipesGenerated int   `json:"recipesGenerated"`
}

// StatsResponse is returned by the dashboard stats endpoint.
type StatsResponse struct {
	Success bool           `json:"success"`
	Stats   DashboardStats `json:"stats"`
}
