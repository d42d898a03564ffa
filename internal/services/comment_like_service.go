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

// CommentLikeService handles comment-level engagement. Unlike post like
// counts, the comment-side read operations verify the comment exists
// first; that asymmetry mirrors the behavior this service replaces.
type CommentLikeService struct {
	commentLikes repositories.CommentLikeRepository
	comments     repositories.CommentRepository
	users        repositories.UserRepository
	logger       *slog.Logger
}

// NewCommentLikeService creates a new CommentLikeService
func NewCommentLikeService(commentLikeRepo repositories.CommentLikeRepository, commentRepo repositories.CommentRepository, userRepo repositories.UserRepository, logger *slog.Logger) *CommentLikeService {
	return &CommentLikeService{commentLikes: commentLikeRepo, comments: commentRepo, users: userRepo, logger: logger}
}

// AddLike records that actorID liked commentID. Duplicate pairs lose on
// the unique (comment, user) index and get Conflict. A comment_like
// notification for the comment's owner commits in the same transaction
// unless the actor owns the comment.
func (s *CommentLikeService) AddLike(actorID, commentID uuid.UUID) (*models.CommentLike, error) {
	comment, err := s.comments.GetCommentByID(commentID)
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

	like := &models.CommentLike{
		ID:        uuid.New(),
		CommentID: commentID,
		UserID:    actorID,
		CreatedAt: time.Now().UTC(),
	}
	notif := composeNotification(actorID, actor.DisplayName, comment.UserID, models.NotificationCommentLike, &comment.PostID)

	if err := s.commentLikes.CreateCommentLike(like, notif); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return nil, apperror.Conflict("you have already liked this comment")
		}
		return nil, err
	}

	s.logger.Debug("comment liked", "comment_id", commentID, "user_id", actorID)
	return like, nil
}

// RemoveLike deletes the actor's like on the comment. The comment must
// exist; an absent like is NotFound.
func (s *CommentLikeService) RemoveLike(actorID, commentID uuid.UUID) error {
	if _, err := s.comments.GetCommentByID(commentID); err != nil {
		return err
	}
	return s.commentLikes.DeleteCommentLike(commentID, actorID)
}

// LikeCount counts likes on an existing comment
func (s *CommentLikeService) LikeCount(commentID uuid.UUID) (int64, error) {
	if _, err := s.comments.GetCommentByID(commentID); err != nil {
		return 0, err
	}
	return s.commentLikes.GetLikesCount(commentID)
}

// HasLiked reports whether actorID has liked commentID
func (s *CommentLikeService) HasLiked(actorID, commentID uuid.UUID) (bool, error) {
	if _, err := s.comments.GetCommentByID(commentID); err != nil {
		return false, err
	}
	return s.commentLikes.HasUserLikedComment(commentID, actorID)
}

// LikedBy returns the users who liked an existing comment
func (s *CommentLikeService) LikedBy(commentID uuid.UUID) ([]models.UserResponse, error) {
	if _, err := s.comments.GetCommentByID(commentID); err != nil {
		return nil, err
	}
	users, err := s.commentLikes.GetUsersWhoLikedComment(commentID)
	if err != nil {
		return nil, err
	}
	responses := make([]models.UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}
	return responses, nil
}
