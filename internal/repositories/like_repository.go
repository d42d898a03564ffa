package repositories

import (
	"github.com/dietsocial/backend/internal/apperror"
	"github.com/dietsocial/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	// CreateLike inserts the like and, when notif is non-nil, the derived
	// notification in one transaction. A duplicate (user, post) pair trips
	// the unique index and returns Conflict; in that case the notification
	// is rolled back with it.
	CreateLike(like *models.Like, notif *models.Notification) error
	DeleteLike(postID, userID uuid.UUID) error
	GetLikesCountByPostID(postID uuid.UUID) (int64, error)
	HasUserLikedPost(postID, userID uuid.UUID) (bool, error)
	GetUsersWhoLikedPost(postID uuid.UUID) ([]models.User, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

func (r *PostgresLikeRepository) CreateLike(like *models.Like, notif *models.Notification) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(like).Error; err != nil {
			return err
		}
		if notif != nil {
			return tx.Create(notif).Error
		}
		return nil
	})
	return translate(err, "like", like.ID.String())
}

// DeleteLike deletes the like row for (postID, userID). Absent rows are
// NotFound; deleting twice is one success and one NotFound.
func (r *PostgresLikeRepository) DeleteLike(postID, userID uuid.UUID) error {
	res := r.db.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Like{})
	if res.Error != nil {
		return translate(res.Error, "like", "")
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("like", postID.String())
	}
	return nil
}

// GetLikesCountByPostID counts likes on a post. No existence check: an
// unknown post simply counts zero.
func (r *PostgresLikeRepository) GetLikesCountByPostID(postID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, translate(err, "like", "")
	}
	return count, nil
}

// HasUserLikedPost checks if a user has liked a specific post
func (r *PostgresLikeRepository) HasUserLikedPost(postID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error; err != nil {
		return false, translate(err, "like", "")
	}
	return count > 0, nil
}

// GetUsersWhoLikedPost retrieves the users who liked a post
func (r *PostgresLikeRepository) GetUsersWhoLikedPost(postID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Model(&models.Like{}).Select("user_id").Where("post_id = ?", postID),
	).Find(&users).Error
	if err != nil {
		return nil, translate(err, "like", "")
	}
	return users, nil
}
