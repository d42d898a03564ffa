package models

import (
	"time"

	"github.com/google/uuid"
)

// Post represents a social media post
type Post struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"` // ID of the user who created the post
	Content   string    `json:"content" gorm:"size:500;not null"`
	ImageURL  *string   `json:"image_url,omitempty" gorm:"size:500"` // opaque stored filename, served under /images
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// CreatePostRequest defines the request body for creating a new post.
// The image arrives as a separate multipart part, not in this struct.
type CreatePostRequest struct {
	Content string `json:"content" form:"content" validate:"required,min=1,max=500"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Content     string `json:"content" form:"content" validate:"required,min=1,max=500"`
	RemoveImage bool   `json:"remove_image" form:"remove_image"`
}

// PostResponse is a post annotated with live counts and author info.
// Counts are recomputed from the engagement rows on every read; the
// schema carries no denormalized counters.
type PostResponse struct {
	ID              uuid.UUID `json:"id"`
	Content         string    `json:"content"`
	ImageURL        *string   `json:"imageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	UserID          uuid.UUID `json:"userId"`
	UserDisplayName string    `json:"userDisplayName"`
	LikeCount       int64     `json:"likeCount"`
	CommentCount    int64     `json:"commentCount"`
}
