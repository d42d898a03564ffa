package repositories

import (
	"github.com/dietsocial/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	// CreateComment inserts the comment and, when notif is non-nil, the
	// derived notification in one transaction. Either both rows commit or
	// neither does.
	CreateComment(comment *models.Comment, notif *models.Notification) error
	GetCommentByID(id uuid.UUID) (*models.Comment, error)
	GetCommentsByPostID(postID uuid.UUID) ([]models.Comment, error)
	CountByPostID(postID uuid.UUID) (int64, error)
	UpdateComment(comment *models.Comment) error
	DeleteComment(id uuid.UUID) error
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

func (r *PostgresCommentRepository) CreateComment(comment *models.Comment, notif *models.Notification) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		if notif != nil {
			return tx.Create(notif).Error
		}
		return nil
	})
	return translate(err, "comment", comment.ID.String())
}

// GetCommentByID retrieves a comment by ID
func (r *PostgresCommentRepository) GetCommentByID(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, "id = ?", id).Error; err != nil {
		return nil, translate(err, "comment", id.String())
	}
	return &comment, nil
}

// GetCommentsByPostID retrieves all comments for a post, newest first
func (r *PostgresCommentRepository) GetCommentsByPostID(postID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Where("post_id = ?", postID).Order("created_at DESC").Find(&comments).Error; err != nil {
		return nil, translate(err, "comment", "")
	}
	return comments, nil
}

// CountByPostID counts comments on a post
func (r *PostgresCommentRepository) CountByPostID(postID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, translate(err, "comment", "")
	}
	return count, nil
}

// UpdateComment updates an existing comment
func (r *PostgresCommentRepository) UpdateComment(comment *models.Comment) error {
	return translate(r.db.Save(comment).Error, "comment", comment.ID.String())
}

// DeleteComment deletes a comment by ID. Comment likes go with it via the
// FK cascade rule.
func (r *PostgresCommentRepository) DeleteComment(id uuid.UUID) error {
	return translate(r.db.Delete(&models.Comment{}, "id = ?", id).Error, "comment", id.String())
}
