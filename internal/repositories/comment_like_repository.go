package repositories

import (
	"github.com/dietsocial/backend/internal/apperror"
	"github.com/dietsocial/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentLikeRepository defines the interface for comment like operations
type CommentLikeRepository interface {
	// CreateCommentLike inserts the like and, when notif is non-nil, the
	// derived notification in one transaction.
	CreateCommentLike(like *models.CommentLike, notif *models.Notification) error
	DeleteCommentLike(commentID, userID uuid.UUID) error
	GetLikesCount(commentID uuid.UUID) (int64, error)
	HasUserLikedComment(commentID, userID uuid.UUID) (bool, error)
	GetUsersWhoLikedComment(commentID uuid.UUID) ([]models.User, error)
}

type postgresCommentLikeRepository struct {
	db *gorm.DB
}

// NewPostgresCommentLikeRepository creates a CommentLikeRepository backed
// by PostgreSQL
func NewPostgresCommentLikeRepository(db *gorm.DB) CommentLikeRepository {
	return &postgresCommentLikeRepository{db: db}
}

func (r *postgresCommentLikeRepository) CreateCommentLike(like *models.CommentLike, notif *models.Notification) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(like).Error; err != nil {
			return err
		}
		if notif != nil {
			return tx.Create(notif).Error
		}
		return nil
	})
	return translate(err, "comment like", like.ID.String())
}

func (r *postgresCommentLikeRepository) DeleteCommentLike(commentID, userID uuid.UUID) error {
	res := r.db.Where("comment_id = ? AND user_id = ?", commentID, userID).Delete(&models.CommentLike{})
	if res.Error != nil {
		return translate(res.Error, "comment like", "")
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("like", commentID.String())
	}
	return nil
}

func (r *postgresCommentLikeRepository) GetLikesCount(commentID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.CommentLike{}).Where("comment_id = ?", commentID).Count(&count).Error; err != nil {
		return 0, translate(err, "comment like", "")
	}
	return count, nil
}

func (r *postgresCommentLikeRepository) HasUserLikedComment(commentID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Model(&models.CommentLike{}).Where("comment_id = ? AND user_id = ?", commentID, userID).Count(&count).Error; err != nil {
		return false, translate(err, "comment like", "")
	}
	return count > 0, nil
}

func (r *postgresCommentLikeRepository) GetUsersWhoLikedComment(commentID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Model(&models.CommentLike{}).Select("user_id").Where("comment_id = ?", commentID),
	).Find(&users).Error
	if err != nil {
		return nil, translate(err, "comment like", "")
	}
	return users, nil
}
