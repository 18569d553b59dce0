// Package dto defines data transfer objects for the analytics feature's HTTP transport layer.
package dto

// LogGenerationReq represents the request body for the /recipes/log endpoint.
// All fields are optional; an empty ingredient list is recorded as-is.
type LogGenerationReq struct {
	Ingredients []string `json:"ingredients"`
	RecipeTitle string   `json:"recipeTitle"`
}
