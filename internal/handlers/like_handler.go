package handlers

import (
	"net/http"

	"github.com/dietsocial/backend/internal/models"
	"github.com/dietsocial/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to post likes
type LikeHandler struct {
	likes *services.LikeService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likes *services.LikeService) *LikeHandler {
	return &LikeHandler{likes: likes}
}

// RegisterLikeRoutes registers protected like routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/likes", h.AddLike)
	g.DELETE("/posts/:post_id/likes", h.RemoveLike)
	g.GET("/posts/:post_id/likes/mine", h.HasLiked)
	g.GET("/posts/:post_id/likes/users", h.LikedBy)
}

// RegisterPublicLikeRoutes registers like routes readable without a token
func (h *LikeHandler) RegisterPublicLikeRoutes(g *echo.Group) {
	g.GET("/posts/:post_id/likes/count", h.LikeCount)
}

// AddLike records the caller's like on a post
func (h *LikeHandler) AddLike(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	postID, err := parseUUIDParam(c, "post_id")
	if err != nil {
		return err
	}

	like, err := h.likes.AddLike(actorID, postID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, like)
}

// RemoveLike removes the caller's like from a post
func (h *LikeHandler) RemoveLike(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	postID, err := parseUUIDParam(c, "post_id")
	if err != nil {
		return err
	}

	if err := h.likes.RemoveLike(actorID, postID); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// LikeCount returns the number of likes on a post
func (h *LikeHandler) LikeCount(c echo.Context) error {
	postID, err := parseUUIDParam(c, "post_id")
	if err != nil {
		return err
	}

	count, err := h.likes.LikeCount(postID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, models.LikeCountResponse{Count: count})
}

// HasLiked reports whether the caller has liked a post
func (h *LikeHandler) HasLiked(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	postID, err := parseUUIDParam(c, "post_id")
	if err != nil {
		return err
	}

	liked, err := h.likes.HasLiked(actorID, postID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, models.HasLikedResponse{HasLiked: liked})
}

// LikedBy lists the users who liked a post
func (h *LikeHandler) LikedBy(c echo.Context) error {
	postID, err := parseUUIDParam(c, "post_id")
	if err != nil {
		return err
	}

	users, err := h.likes.LikedBy(postID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, users)
}
