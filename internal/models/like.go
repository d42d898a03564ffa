package models

import (
	"time"

	"github.com/google/uuid"
)

// Like represents a like on a post. The composite unique index is the
// authoritative guard against duplicate likes: concurrent inserts for the
// same (user, post) pair race on the constraint, not on application code.
type Like struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	PostID    uuid.UUID `json:"post_id" gorm:"type:uuid;index;uniqueIndex:idx_post_user_like;not null"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;index;uniqueIndex:idx_post_user_like;not null"`
	CreatedAt time.Time `json:"created_at"`

	Post *Post `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// LikeCountResponse is returned by the like count endpoints
type LikeCountResponse struct {
	Count int64 `json:"count"`
}

// HasLikedResponse is returned by the has-liked endpoints
type HasLikedResponse struct {
	HasLiked bool `json:"hasLiked"`
}
