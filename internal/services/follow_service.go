package services

import (
	"errors"
	"log/slog"
	"time"

	"github.com/dietsocial/backend/internal/apperror"
	"github.com/dietsocial/backend/internal/models"
	"github.com/dietsocial/backend/internal/repositories"
	"github.com/google/uuid"
)

// FollowService handles the directed social graph
type FollowService struct {
	follows repositories.FollowRepository
	users   repositories.UserRepository
	logger  *slog.Logger
}

// NewFollowService creates a new FollowService
func NewFollowService(followRepo repositories.FollowRepository, userRepo repositories.UserRepository, logger *slog.Logger) *FollowService {
	return &FollowService{follows: followRepo, users: userRepo, logger: logger}
}

// Follow creates the directed edge follower -> followed. Self-follows are
// rejected up front (and again by the check constraint). The follower must
// exist; the followed user's existence is intentionally not verified —
// see DESIGN.md. A duplicate edge loses on the unique index and gets
// Conflict. The follow notification commits with the edge.
func (s *FollowService) Follow(followerID, followedID uuid.UUID) error {
	if followerID == followedID {
		return apperror.ValidationFailed("followedId", "you cannot follow yourself")
	}

	follower, err := s.users.GetUserByID(followerID)
	if err != nil {
		return err
	}

	follow := &models.Follow{
		ID:         uuid.New(),
		FollowerID: followerID,
		FollowedID: followedID,
		CreatedAt:  time.Now().UTC(),
	}
	notif := composeNotification(followerID, follower.DisplayName, followedID, models.NotificationFollow, nil)

	if err := s.follows.CreateFollow(follow, notif); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return apperror.Conflict("you are already following this user")
		}
		return err
	}

	s.logger.Debug("follow created", "follower_id", followerID, "followed_id", followedID)
	return nil
}

// Unfollow removes the directed edge. Unfollowing someone you do not
// follow is an invalid operation, not NotFound.
func (s *FollowService) Unfollow(followerID, followedID uuid.UUID) error {
	if err := s.follows.DeleteFollow(followerID, followedID); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return apperror.ValidationFailed("followedId", "you are not following this user")
		}
		return err
	}
	return nil
}

// Status reports the viewer's relationship to the target plus the
// target's live edge counts, all computed fresh from the rows.
func (s *FollowService) Status(viewerID, targetID uuid.UUID) (*models.FollowStatusResponse, error) {
	isFollowing, err := s.follows.IsFollowing(viewerID, targetID)
	if err != nil {
		return nil, err
	}
	followerCount, err := s.follows.GetFollowersCount(targetID)
	if err != nil {
		return nil, err
	}
	followingCount, err := s.follows.GetFollowingCount(targetID)
	if err != nil {
		return nil, err
	}
	return &models.FollowStatusResponse{
		IsFollowing:    isFollowing,
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
	}, nil
}

// Followers returns the users following userID, in compact form
func (s *FollowService) Followers(userID uuid.UUID) ([]models.UserResponse, error) {
	users, err := s.follows.GetFollowers(userID)
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

// Following returns the users userID follows, in compact form
func (s *FollowService) Following(userID uuid.UUID) ([]models.UserResponse, error) {
	users, err := s.follows.GetFollowing(userID)
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

func toUserResponses(users []models.User) []models.UserResponse {
	responses := make([]models.UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}
	return responses
}
