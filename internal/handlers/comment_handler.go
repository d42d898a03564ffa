package handlers

import (
	"net/http"

	"github.com/dietsocial/backend/internal/models"
	"github.com/dietsocial/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	comments *services.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// RegisterCommentRoutes registers protected comment routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.CreateComment)
	g.PUT("/comments/:comment_id", h.UpdateComment)
	g.DELETE("/comments/:comment_id", h.DeleteComment)
}

// RegisterPublicCommentRoutes registers comment routes readable without a token
func (h *CommentHandler) RegisterPublicCommentRoutes(g *echo.Group) {
	g.GET("/posts/:post_id/comments", h.ListComments)
}

// CreateComment adds a comment to a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	postID, err := parseUUIDParam(c, "post_id")
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	comment, err := h.comments.CreateComment(actorID, postID, req.Content)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, comment)
}

// ListComments returns a post's comments, newest first
func (h *CommentHandler) ListComments(c echo.Context) error {
	postID, err := parseUUIDParam(c, "post_id")
	if err != nil {
		return err
	}

	comments, err := h.comments.ListByPost(postID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, comments)
}

// UpdateComment edits a comment's content
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	commentID, err := parseUUIDParam(c, "comment_id")
	if err != nil {
		return err
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	comment, err := h.comments.UpdateComment(actorID, commentID, req.Content)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, comment)
}

// DeleteComment removes a comment
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	commentID, err := parseUUIDParam(c, "comment_id")
	if err != nil {
		return err
	}

	if err := h.comments.DeleteComment(actorID, commentID); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
