package repositories

import (
	"github.com/dietsocial/backend/internal/apperror"
	"github.com/dietsocial/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow data operations
type FollowRepository interface {
	// CreateFollow inserts the edge and the derived notification in one
	// transaction. A duplicate edge trips the unique index and returns
	// Conflict; a self-edge trips the check constraint.
	CreateFollow(follow *models.Follow, notif *models.Notification) error
	DeleteFollow(followerID, followedID uuid.UUID) error
	IsFollowing(followerID, followedID uuid.UUID) (bool, error)
	GetFollowers(userID uuid.UUID) ([]models.User, error)
	GetFollowing(userID uuid.UUID) ([]models.User, error)
	GetFollowersCount(userID uuid.UUID) (int64, error)
	GetFollowingCount(userID uuid.UUID) (int64, error)
	GetFollowingIDs(userID uuid.UUID) ([]uuid.UUID, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

func (r *PostgresFollowRepository) CreateFollow(follow *models.Follow, notif *models.Notification) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(follow).Error; err != nil {
			return err
		}
		if notif != nil {
			return tx.Create(notif).Error
		}
		return nil
	})
	return translate(err, "follow", follow.ID.String())
}

func (r *PostgresFollowRepository) DeleteFollow(followerID, followedID uuid.UUID) error {
	res := r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).Delete(&models.Follow{})
	if res.Error != nil {
		return translate(res.Error, "follow", "")
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("follow", followedID.String())
	}
	return nil
}

func (r *PostgresFollowRepository) IsFollowing(followerID, followedID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).Where("follower_id = ? AND followed_id = ?", followerID, followedID).Count(&count).Error; err != nil {
		return false, translate(err, "follow", "")
	}
	return count > 0, nil
}

func (r *PostgresFollowRepository) GetFollowers(userID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Model(&models.Follow{}).Select("follower_id").Where("followed_id = ?", userID),
	).Find(&users).Error
	if err != nil {
		return nil, translate(err, "follow", "")
	}
	return users, nil
}

func (r *PostgresFollowRepository) GetFollowing(userID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Model(&models.Follow{}).Select("followed_id").Where("follower_id = ?", userID),
	).Find(&users).Error
	if err != nil {
		return nil, translate(err, "follow", "")
	}
	return users, nil
}

func (r *PostgresFollowRepository) GetFollowersCount(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("followed_id = ?", userID).Count(&count).Error
	return count, translate(err, "follow", "")
}

func (r *PostgresFollowRepository) GetFollowingCount(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, translate(err, "follow", "")
}

func (r *PostgresFollowRepository) GetFollowingIDs(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Pluck("followed_id", &ids).Error
	if err != nil {
		return nil, translate(err, "follow", "")
	}
	return ids, nil
}
