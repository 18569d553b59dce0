// Package usecase implements the business logic for the recipes feature.
package usecase

import "errors"

var (
	// ErrRecipeNotFound is returned when a recipe cannot be found by ID.
	// Existence is always checked before ownership.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrNotRecipeOwner is returned when the authenticated user is not the
	// owner of the recipe being mutated. Distinct from an authentication
	// failure: the caller is known but lacks rights.
	ErrNotRecipeOwner = errors.New("not the owner of this recipe")

	// ErrTitleRequired is returned when saving a recipe without a title.
	ErrTitleRequired = errors.New("recipe title is required")
)
