// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and the denormalized usage counters
// maintained by the recipes and analytics features.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It is stored case-normalized and must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// FullName is the user's display name.
	FullName string `gorm:"size:255;not null"`

	// Password is the bcrypt digest of the user's password.
	// This never stores plaintext and is never serialized outward.
	Password string `gorm:"size:255;not null" json:"-"`

	// IsVerified marks the account as verified. Accounts are auto-verified
	// at signup; there is no verification flow.
	IsVerified bool `gorm:"not null;default:false"`

	// RecipesSaved counts the user's currently saved recipes.
	RecipesSaved int `gorm:"not null;default:0"`

	// RecipesGenerated counts the generation events the user has logged.
	RecipesGenerated int `gorm:"not null;default:0"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
