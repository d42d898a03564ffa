package handlers

import (
	"net/http"

	"github.com/dietsocial/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles HTTP requests related to follow relationships
type FollowHandler struct {
	follows *services.FollowService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(follows *services.FollowService) *FollowHandler {
	return &FollowHandler{follows: follows}
}

// RegisterFollowRoutes registers protected follow routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/follow", h.Follow)
	g.DELETE("/users/:id/follow", h.Unfollow)
	g.GET("/users/:id/follow-status", h.Status)
}

// RegisterPublicFollowRoutes registers follow routes readable without a token
func (h *FollowHandler) RegisterPublicFollowRoutes(g *echo.Group) {
	g.GET("/users/:id/followers", h.Followers)
	g.GET("/users/:id/following", h.Following)
}

// Follow makes the caller follow the target user
func (h *FollowHandler) Follow(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	targetID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.follows.Follow(actorID, targetID); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusOK)
}

// Unfollow removes the caller's follow of the target user
func (h *FollowHandler) Unfollow(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	targetID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.follows.Unfollow(actorID, targetID); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusOK)
}

// Status returns whether the caller follows the target plus fresh counts
func (h *FollowHandler) Status(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	targetID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	status, err := h.follows.Status(actorID, targetID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, status)
}

// Followers lists the users following the target user
func (h *FollowHandler) Followers(c echo.Context) error {
	targetID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	users, err := h.follows.Followers(targetID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// Following lists the users the target user follows
func (h *FollowHandler) Following(c echo.Context) error {
	targetID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	users, err := h.follows.Following(targetID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, users)
}
