package models

import (
	"time"

	"github.com/google/uuid"
)

// Follow represents a directed follow edge from FollowerID to FollowedID.
// The composite unique index keeps each directed edge singular; the check
// constraint rejects self-follows at the storage layer.
type Follow struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FollowerID uuid.UUID `json:"follower_id" gorm:"type:uuid;index;uniqueIndex:idx_follower_followed;not null;check:chk_no_self_follow,follower_id <> followed_id"`
	FollowedID uuid.UUID `json:"followed_id" gorm:"type:uuid;index;uniqueIndex:idx_follower_followed;not null"`
	CreatedAt  time.Time `json:"created_at"`

	Follower *User `json:"-" gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Followed *User `json:"-" gorm:"foreignKey:FollowedID;constraint:OnDelete:CASCADE"`
}

// FollowStatusResponse is returned by the follow-status endpoint. All three
// quantities are computed fresh from the edge rows on each call.
type FollowStatusResponse struct {
	IsFollowing    bool  `json:"isFollowing"`
	FollowerCount  int64 `json:"followerCount"`
	FollowingCount int64 `json:"followingCount"`
}
