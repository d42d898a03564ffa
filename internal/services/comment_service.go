package services

import (
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dietsocial/backend/internal/apperror"
	"github.com/dietsocial/backend/internal/models"
	"github.com/dietsocial/backend/internal/repositories"
	"github.com/google/uuid"
)

// CommentService handles comment CRUD and its notification fan-out
type CommentService struct {
	comments repositories.CommentRepository
	posts    repositories.PostRepository
	users    repositories.UserRepository
	logger   *slog.Logger
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository, userRepo repositories.UserRepository, logger *slog.Logger) *CommentService {
	return &CommentService{comments: commentRepo, posts: postRepo, users: userRepo, logger: logger}
}

// CreateComment adds a comment to an existing post. When the commenter is
// not the post's owner, a comment notification for the owner commits in
// the same transaction as the comment row.
func (s *CommentService) CreateComment(actorID, postID uuid.UUID, content string) (*models.CommentResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.ValidationFailed("content", "comment content cannot be empty")
	}
	if utf8.RuneCountInString(content) > 500 {
		return nil, apperror.ValidationFailed("content", "comment content cannot exceed 500 characters")
	}

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

	comment := &models.Comment{
		ID:        uuid.New(),
		PostID:    postID,
		UserID:    actorID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	notif := composeNotification(actorID, actor.DisplayName, post.UserID, models.NotificationComment, &postID)

	if err := s.comments.CreateComment(comment, notif); err != nil {
		return nil, err
	}

	s.logger.Debug("comment created", "comment_id", comment.ID, "post_id", postID)
	return &models.CommentResponse{
		ID:              comment.ID,
		PostID:          comment.PostID,
		Content:         comment.Content,
		CreatedAt:       comment.CreatedAt,
		UserID:          actorID,
		UserDisplayName: actor.DisplayName,
	}, nil
}

// ListByPost returns the comments on a post, newest first, annotated with
// commenter display names. Reads are permissive: an unknown post yields an
// empty list.
func (s *CommentService) ListByPost(postID uuid.UUID) ([]models.CommentResponse, error) {
	comments, err := s.comments.GetCommentsByPostID(postID)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string)
	responses := make([]models.CommentResponse, len(comments))
	for i, c := range comments {
		name, ok := names[c.UserID]
		if !ok {
			if author, err := s.users.GetUserByID(c.UserID); err == nil {
				name = author.DisplayName
			}
			names[c.UserID] = name
		}
		responses[i] = models.CommentResponse{
			ID:              c.ID,
			PostID:          c.PostID,
			Content:         c.Content,
			CreatedAt:       c.CreatedAt,
			UpdatedAt:       c.UpdatedAt,
			UserID:          c.UserID,
			UserDisplayName: name,
		}
	}
	return responses, nil
}

// UpdateComment replaces a comment's content. Only the owner may update;
// a missing comment is NotFound before the ownership check.
func (s *CommentService) UpdateComment(actorID, commentID uuid.UUID, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.ValidationFailed("content", "comment content cannot be empty")
	}
	if utf8.RuneCountInString(content) > 500 {
		return nil, apperror.ValidationFailed("content", "comment content cannot exceed 500 characters")
	}

	comment, err := s.comments.GetCommentByID(commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != actorID {
		return nil, apperror.Forbidden("you are not authorized to update this comment")
	}

	now := time.Now().UTC()
	comment.Content = content
	comment.UpdatedAt = &now
	if err := s.comments.UpdateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment deletes the actor's comment. Comment likes cascade at the
// schema level.
func (s *CommentService) DeleteComment(actorID, commentID uuid.UUID) error {
	comment, err := s.comments.GetCommentByID(commentID)
	if err != nil {
		return err
	}
	if comment.UserID != actorID {
		return apperror.Forbidden("you are not authorized to delete this comment")
	}
	return s.comments.DeleteComment(commentID)
}
