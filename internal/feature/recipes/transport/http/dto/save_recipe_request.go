// Package dto defines data transfer objects for the recipes feature's HTTP transport layer.
package dto

// YouTubeLinkReq is an external media reference in a save request.
type YouTubeLinkReq struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
}

// SaveRecipeReq represents the request body for the /recipes/save endpoint.
// Only the title is required; all other fields are optional.
type SaveRecipeReq struct {
	Title        string           `json:"title" binding:"required"`
	Ingredients  []string         `json:"ingredients"`
	Instructions []string         `json:"instructions"`
	CookTime     string           `json:"cookTime"`
	Servings     string           `json:"servings"`
	Description  string           `json:"description"`
	YouTubeLinks []YouTubeLinkReq `json:"youtubeLinks"`
}
