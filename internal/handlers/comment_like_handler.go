package handlers

import (
	"net/http"

	"github.com/dietsocial/backend/internal/models"
	"github.com/dietsocial/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// CommentLikeHandler handles HTTP requests related to comment likes
type CommentLikeHandler struct {
	likes *services.CommentLikeService
}

// NewCommentLikeHandler creates a new CommentLikeHandler
func NewCommentLikeHandler(likes *services.CommentLikeService) *CommentLikeHandler {
	return &CommentLikeHandler{likes: likes}
}

// RegisterCommentLikeRoutes registers protected comment like routes
func (h *CommentLikeHandler) RegisterCommentLikeRoutes(g *echo.Group) {
	g.POST("/comments/:comment_id/likes", h.AddLike)
	g.DELETE("/comments/:comment_id/likes", h.RemoveLike)
	g.GET("/comments/:comment_id/likes/mine", h.HasLiked)
	g.GET("/comments/:comment_id/likes/users", h.LikedBy)
}

// RegisterPublicCommentLikeRoutes registers comment like routes readable without a token
func (h *CommentLikeHandler) RegisterPublicCommentLikeRoutes(g *echo.Group) {
	g.GET("/comments/:comment_id/likes/count", h.LikeCount)
}

// AddLike records the caller's like on a comment
func (h *CommentLikeHandler) AddLike(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	commentID, err := parseUUIDParam(c, "comment_id")
	if err != nil {
		return err
	}

	like, err := h.likes.AddLike(actorID, commentID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, like)
}

// RemoveLike removes the caller's like from a comment
func (h *CommentLikeHandler) RemoveLike(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	commentID, err := parseUUIDParam(c, "comment_id")
	if err != nil {
		return err
	}

	if err := h.likes.RemoveLike(actorID, commentID); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// LikeCount returns the number of likes on a comment
func (h *CommentLikeHandler) LikeCount(c echo.Context) error {
	commentID, err := parseUUIDParam(c, "comment_id")
	if err != nil {
		return err
	}

	count, err := h.likes.LikeCount(commentID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, models.LikeCountResponse{Count: count})
}

// HasLiked reports whether the caller has liked a comment
func (h *CommentLikeHandler) HasLiked(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	commentID, err := parseUUIDParam(c, "comment_id")
	if err != nil {
		return err
	}

	liked, err := h.likes.HasLiked(actorID, commentID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, models.HasLikedResponse{HasLiked: liked})
}

// LikedBy lists the users who liked a comment
func (h *CommentLikeHandler) LikedBy(c echo.Context) error {
	commentID, err := parseUUIDParam(c, "comment_id")
	if err != nil {
		return err
	}

	users, err := h.likes.LikedBy(commentID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, users)
}
