package models

import (
	"time"

	"github.com/google/uuid"
)

// DietLog is owned content with no invariants beyond ownership and the
// positive-calories rule
type DietLog struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	Title       string    `json:"title" gorm:"size:100;not null"`
	Description string    `json:"description"`
	Calories    int       `json:"calories" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// DietLogRequest defines the request body for creating or updating a diet log
type DietLogRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=100"`
	Description string `json:"description"`
	Calories    int    `json:"calories" validate:"required,gt=0"`
}

// DietLogResponse is a diet log annotated with its author's display name
type DietLogResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Calories        int       `json:"calories"`
	CreatedAt       time.Time `json:"createdAt"`
	UserID          uuid.UUID `json:"userId"`
	UserDisplayName string    `json:"userDisplayName"`
}
