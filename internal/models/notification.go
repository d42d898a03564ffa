package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification kinds
const (
	NotificationLike        = "like"
	NotificationComment     = "comment"
	NotificationFollow      = "follow"
	NotificationCommentLike = "comment_like"
)

// Notification is a derived row created only as a side effect of a like,
// comment, comment like or follow. It is written in the same transaction
// as its trigger and mutated only by the mark-all-read operation.
type Notification struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `json:"user_id" gorm:"type:uuid;index;not null"` // recipient
	Type      string     `json:"type" gorm:"size:30;index"`
	Message   string     `json:"message" gorm:"size:500"`
	PostID    *uuid.UUID `json:"post_id,omitempty" gorm:"type:uuid"`
	IsRead    bool       `json:"is_read" gorm:"default:false;index"`
	CreatedAt time.Time  `json:"created_at" gorm:"index"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Post *Post `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:SET NULL"`
}

// NotificationResponse is the per-notification shape returned to clients
type NotificationResponse struct {
	ID        uuid.UUID  `json:"id"`
	Type      string     `json:"type"`
	Message   string     `json:"message"`
	PostID    *uuid.UUID `json:"postId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	IsRead    bool       `json:"isRead"`
}

// UnreadCountResponse is returned by the unread-count endpoint
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
