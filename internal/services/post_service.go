package services

import (
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dietsocial/backend/internal/apperror"
	"github.com/dietsocial/backend/internal/models"
	"github.com/dietsocial/backend/internal/repositories"
	"github.com/dietsocial/backend/pkg/storage"
	"github.com/google/uuid"
)

// PostService handles post CRUD, feed composition and profile reads
type PostService struct {
	posts    repositories.PostRepository
	users    repositories.UserRepository
	likes    repositories.LikeRepository
	comments repositories.CommentRepository
	follows  repositories.FollowRepository
	images   storage.FileStorage
	logger   *slog.Logger
}

// NewPostService creates a new PostService
func NewPostService(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	likeRepo repositories.LikeRepository,
	commentRepo repositories.CommentRepository,
	followRepo repositories.FollowRepository,
	images storage.FileStorage,
	logger *slog.Logger,
) *PostService {
	return &PostService{
		posts:    postRepo,
		users:    userRepo,
		likes:    likeRepo,
		comments: commentRepo,
		follows:  followRepo,
		images:   images,
		logger:   logger,
	}
}

// CreatePost creates a post for the actor. imageURL is the opaque stored
// filename of an already-saved upload, or nil.
func (s *PostService) CreatePost(actorID uuid.UUID, content string, imageURL *string) (*models.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.ValidationFailed("content", "content cannot be empty")
	}
	if utf8.RuneCountInString(content) > 500 {
		return nil, apperror.ValidationFailed("content", "content cannot exceed 500 characters")
	}

	now := time.Now().UTC()
	post := &models.Post{
		ID:        uuid.New(),
		UserID:    actorID,
		Content:   content,
		ImageURL:  imageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.posts.CreatePost(post); err != nil {
		return nil, err
	}
	s.logger.Debug("post created", "post_id", post.ID, "user_id", actorID)
	return post, nil
}

// GetPost returns a single post with live counts and author name
func (s *PostService) GetPost(postID uuid.UUID) (*models.PostResponse, error) {
	post, err := s.posts.GetPostByID(postID)
	if err != nil {
		return nil, err
	}
	responses, err := s.toResponses([]models.Post{*post})
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

// UpdatePost replaces the post's content and optionally its image. Only
// the owner may update; a missing post is NotFound before the ownership
// check.
func (s *PostService) UpdatePost(actorID, postID uuid.UUID, content string, newImageURL *string, removeImage bool) (*models.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.ValidationFailed("content", "content cannot be empty")
	}
	if utf8.RuneCountInString(content) > 500 {
		return nil, apperror.ValidationFailed("content", "content cannot exceed 500 characters")
	}

	post, err := s.posts.GetPostByID(postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != actorID {
		return nil, apperror.Forbidden("you are not authorized to update this post")
	}

	if newImageURL != nil {
		if post.ImageURL != nil {
			s.images.DeleteImage(*post.ImageURL)
		}
		post.ImageURL = newImageURL
	} else if removeImage && post.ImageURL != nil {
		s.images.DeleteImage(*post.ImageURL)
		post.ImageURL = nil
	}

	post.Content = content
	post.UpdatedAt = time.Now().UTC()
	if err := s.posts.UpdatePost(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost deletes the actor's post. The stored image file goes with
// it; comments and likes cascade at the schema level.
func (s *PostService) DeletePost(actorID, postID uuid.UUID) error {
	post, err := s.posts.GetPostByID(postID)
	if err != nil {
		return err
	}
	if post.UserID != actorID {
		return apperror.Forbidden("you are not authorized to delete this post")
	}

	if post.ImageURL != nil {
		s.images.DeleteImage(*post.ImageURL)
	}
	if err := s.posts.DeletePost(postID); err != nil {
		return err
	}
	s.logger.Debug("post deleted", "post_id", postID, "user_id", actorID)
	return nil
}

// GlobalFeed returns every post, newest first, annotated with live counts
// and author display names.
func (s *PostService) GlobalFeed() ([]models.PostResponse, error) {
	posts, err := s.posts.GetAllPosts()
	if err != nil {
		return nil, err
	}
	return s.toResponses(posts)
}

// FollowingFeed returns the posts authored by users the viewer follows,
// newest first. The follow set is read at call time, so the result is
// exactly the global feed filtered to those authors in the same order.
func (s *PostService) FollowingFeed(viewerID uuid.UUID) ([]models.PostResponse, error) {
	followedIDs, err := s.follows.GetFollowingIDs(viewerID)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.GetPostsByUserIDs(followedIDs)
	if err != nil {
		return nil, err
	}
	return s.toResponses(posts)
}

// UserProfile returns a user's public profile: display name plus their
// posts with counts.
func (s *PostService) UserProfile(userID uuid.UUID) (*models.ProfileResponse, error) {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.GetPostsByUserID(userID)
	if err != nil {
		return nil, err
	}
	responses, err := s.toResponses(posts)
	if err != nil {
		return nil, err
	}
	return &models.ProfileResponse{
		UserID:      user.ID,
		DisplayName: user.DisplayName,
		PostCount:   len(responses),
		Posts:       responses,
	}, nil
}

// toResponses annotates posts with like/comment counts recomputed from
// the engagement rows and the author's display name. Author lookups are
// cached per call.
func (s *PostService) toResponses(posts []models.Post) ([]models.PostResponse, error) {
	names := make(map[uuid.UUID]string)
	responses := make([]models.PostResponse, len(posts))
	for i, p := range posts {
		name, ok := names[p.UserID]
		if !ok {
			author, err := s.users.GetUserByID(p.UserID)
			if err == nil {
				name = author.DisplayName
			}
			names[p.UserID] = name
		}

		likeCount, err := s.likes.GetLikesCountByPostID(p.ID)
		if err != nil {
			return nil, err
		}
		commentCount, err := s.comments.CountByPostID(p.ID)
		if err != nil {
			return nil, err
		}

		responses[i] = models.PostResponse{
			ID:              p.ID,
			Content:         p.Content,
			ImageURL:        p.ImageURL,
			CreatedAt:       p.CreatedAt,
			UpdatedAt:       p.UpdatedAt,
			UserID:          p.UserID,
			UserDisplayName: name,
			LikeCount:       likeCount,
			CommentCount:    commentCount,
		}
	}
	return responses, nil
}
