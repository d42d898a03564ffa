// Package services contains the business logic layer: the engagement and
// social graph invariants, notification fan-out, feed composition and the
// ownership checks applied before every mutation. Every operation takes
// the acting user's id as an explicit parameter; nothing here reads
// ambient request state, so the whole layer is callable without HTTP.
package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dietsocial/backend/internal/models"
	"github.com/dietsocial/backend/internal/repositories"
	"github.com/google/uuid"
)

// Per-kind message templates. The %s is the actor's display name.
var notificationTemplates = map[string]string{
	models.NotificationLike:        "%s liked your post",
	models.NotificationComment:     "%s commented on your post",
	models.NotificationFollow:      "%s started following you",
	models.NotificationCommentLike: "%s liked your comment",
}

// composeNotification builds the derived notification for a completed
// mutation, or returns nil when the actor is the affected owner (a user is
// never notified about their own actions). The caller persists the result
// in the same transaction as the triggering insert.
func composeNotification(actorID uuid.UUID, actorName string, recipientID uuid.UUID, kind string, postID *uuid.UUID) *models.Notification {
	if actorID == recipientID {
		return nil
	}
	return &models.Notification{
		ID:        uuid.New(),
		UserID:    recipientID,
		Type:      kind,
		Message:   fmt.Sprintf(notificationTemplates[kind], actorName),
		PostID:    postID,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}
}

// NotificationService handles notification reads and the mark-read bulk
// mutation
type NotificationService struct {
	notifications repositories.NotificationRepository
	logger        *slog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notifRepo repositories.NotificationRepository, logger *slog.Logger) *NotificationService {
	return &NotificationService{notifications: notifRepo, logger: logger}
}

// List returns every notification for the user, newest first, regardless
// of read state.
func (s *NotificationService) List(userID uuid.UUID) ([]models.NotificationResponse, error) {
	notifications, err := s.notifications.GetByRecipientID(userID)
	if err != nil {
		return nil, err
	}
	responses := make([]models.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = models.NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Message:   n.Message,
			PostID:    n.PostID,
			CreatedAt: n.CreatedAt,
			IsRead:    n.IsRead,
		}
	}
	return responses, nil
}

// MarkAllRead marks the user's currently-unread notifications as read in
// one batch.
func (s *NotificationService) MarkAllRead(userID uuid.UUID) error {
	if err := s.notifications.MarkAllAsRead(userID); err != nil {
		return err
	}
	s.logger.Debug("notifications marked read", "user_id", userID)
	return nil
}

// UnreadCount returns the number of unread notifications for the user
func (s *NotificationService) UnreadCount(userID uuid.UUID) (int64, error) {
	return s.notifications.GetUnreadCount(userID)
}
