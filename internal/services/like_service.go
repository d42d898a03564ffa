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

// LikeService handles post-level engagement
type LikeService struct {
	likes  repositories.LikeRepository
	posts  repositories.PostRepository
	users  repositories.UserRepository
	logger *slog.Logger
}

// NewLikeService creates a new LikeService
func NewLikeService(likeRepo repositories.LikeRepository, postRepo repositories.PostRepository, userRepo repositories.UserRepository, logger *slog.Logger) *LikeService {
	return &LikeService{likes: likeRepo, posts: postRepo, users: userRepo, logger: logger}
}

// AddLike records that actorID liked postID. The post must exist; the
// actor must resolve to a known user. There is deliberately no
// has-already-liked pre-check: the unique (user, post) index decides the
// winner under concurrency and the loser gets Conflict. When the liker is
// not the post's owner, a like notification for the owner commits in the
// same transaction.
func (s *LikeService) AddLike(actorID, postID uuid.UUID) (*models.Like, error) {
	post, err := s.posts.GetPostByID(postID)
	if err != nil {
		return nil, err
	}

	actor, err := s.users.GetUserByID(actorID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Unauthorized("authenticated user not found")
		}
		return nil, err
	}

	like := &models.Like{
		ID:        uuid.New(),
		PostID:    postID,
		UserID:    actorID,
		CreatedAt: time.Now().UTC(),
	}
	notif := composeNotification(actorID, actor.DisplayName, post.UserID, models.NotificationLike, &postID)

	if err := s.likes.CreateLike(like, notif); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return nil, apperror.Conflict("you have already liked this post")
		}
		return nil, err
	}

	s.logger.Debug("post liked", "post_id", postID, "user_id", actorID)
	return like, nil
}

// RemoveLike deletes the actor's like on the post. Removing a like that
// does not exist is NotFound, not a silent no-op.
func (s *LikeService) RemoveLike(actorID, postID uuid.UUID) error {
	return s.likes.DeleteLike(postID, actorID)
}

// LikeCount counts likes on a post. Reads are permissive: an unknown or
// unliked post counts zero.
func (s *LikeService) LikeCount(postID uuid.UUID) (int64, error) {
	return s.likes.GetLikesCountByPostID(postID)
}

// HasLiked reports whether actorID has liked postID
func (s *LikeService) HasLiked(actorID, postID uuid.UUID) (bool, error) {
	return s.likes.HasUserLikedPost(postID, actorID)
}

// LikedBy returns the users who liked the post, in compact form
func (s *LikeService) LikedBy(postID uuid.UUID) ([]models.UserResponse, error) {
	users, err := s.likes.GetUsersWhoLikedPost(postID)
	if err != nil {
		return nil, err
	}
	responses := make([]models.UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}
	return responses, nil
}
