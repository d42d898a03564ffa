package handlers

import (
	"net/http"

	"github.com/dietsocial/backend/internal/models"
	"github.com/dietsocial/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// NotificationHandler handles HTTP requests for the caller's notifications
type NotificationHandler struct {
	notifications *services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifications *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// RegisterNotificationRoutes registers protected notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.List)
	g.GET("/notifications/unread-count", h.UnreadCount)
	g.POST("/notifications/mark-read", h.MarkAllRead)
}

// List returns the caller's notifications, newest first
func (h *NotificationHandler) List(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}

	notifications, err := h.notifications.List(actorID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, notifications)
}

// UnreadCount returns the number of unread notifications for the caller
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}

	count, err := h.notifications.UnreadCount(actorID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, models.UnreadCountResponse{Count: count})
}

// MarkAllRead marks all of the caller's notifications as read
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}

	if err := h.notifications.MarkAllRead(actorID); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusOK)
}
