package models

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is owned content with no invariants beyond ownership
type Recipe struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Description string    `json:"description" gorm:"size:2000;not null"`
	Ingredients string    `json:"ingredients" gorm:"size:2000;not null"`
	Calories    *int      `json:"calories,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty" gorm:"size:500"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// RecipeRequest defines the request body for creating or updating a recipe
type RecipeRequest struct {
	Title       string `json:"title" form:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" form:"description" validate:"required,min=1,max=2000"`
	Ingredients string `json:"ingredients" form:"ingredients" validate:"required,min=1,max=2000"`
	Calories    *int   `json:"calories,omitempty" form:"calories" validate:"omitempty,gt=0"`
}

// RecipeResponse is a recipe annotated with its author's display name
type RecipeResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Ingredients     string    `json:"ingredients"`
	Calories        *int      `json:"calories,omitempty"`
	ImageURL        *string   `json:"imageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	UserID          uuid.UUID `json:"userId"`
	UserDisplayName string    `json:"userDisplayName"`
}
