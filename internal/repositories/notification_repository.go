package repositories

import (
	"github.com/dietsocial/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification reads and
// the mark-read mutation. Notification creation happens inside the
// like/comment/follow repositories, transactionally with the trigger.
type NotificationRepository interface {
	GetByRecipientID(recipientID uuid.UUID) ([]models.Notification, error)
	GetUnreadCount(recipientID uuid.UUID) (int64, error)
	MarkAllAsRead(recipientID uuid.UUID) error
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

// NewPostgresNotificationRepository creates a NotificationRepository
// backed by PostgreSQL
func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

// GetByRecipientID returns all notifications for the recipient, newest
// first, unfiltered by read state.
func (r *postgresNotificationRepository) GetByRecipientID(recipientID uuid.UUID) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("user_id = ?", recipientID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, translate(err, "notification", "")
	}
	return notifications, nil
}

func (r *postgresNotificationRepository) GetUnreadCount(recipientID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).Where("user_id = ? AND is_read = false", recipientID).Count(&count).Error
	return count, translate(err, "notification", "")
}

// MarkAllAsRead flips every currently-unread notification in one batch.
// A notification committed after the update's snapshot stays unread,
// which is the correct state for the next poll.
func (r *postgresNotificationRepository) MarkAllAsRead(recipientID uuid.UUID) error {
	err := r.db.Model(&models.Notification{}).Where("user_id = ? AND is_read = false", recipientID).Update("is_read", true).Error
	return translate(err, "notification", "")
}
