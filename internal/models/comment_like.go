package models

import (
	"time"

	"github.com/google/uuid"
)

// CommentLike represents a like on a comment. The user-side delete is
// CASCADE, matching Like; see DESIGN.md for the policy decision.
type CommentLike struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CommentID uuid.UUID `json:"comment_id" gorm:"type:uuid;index;uniqueIndex:idx_comment_user_like;not null"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;index;uniqueIndex:idx_comment_user_like;not null"`
	CreatedAt time.Time `json:"created_at"`

	Comment *Comment `json:"-" gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE"`
	User    *User    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
