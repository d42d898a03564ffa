package handlers

import (
	"net/http"

	"github.com/dietsocial/backend/internal/models"
	"github.com/dietsocial/backend/internal/services"
	"github.com/dietsocial/backend/pkg/storage"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts and feeds
type PostHandler struct {
	posts  *services.PostService
	images storage.FileStorage
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(posts *services.PostService, images storage.FileStorage) *PostHandler {
	return &PostHandler{posts: posts, images: images}
}

// RegisterPostRoutes registers protected post routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.PUT("/posts/:post_id", h.UpdatePost)
	g.DELETE("/posts/:post_id", h.DeletePost)
	g.GET("/posts/following", h.FollowingFeed)
}

// RegisterPublicPostRoutes registers post routes readable without a token
func (h *PostHandler) RegisterPublicPostRoutes(g *echo.Group) {
	g.GET("/posts", h.GlobalFeed)
	g.GET("/posts/:post_id", h.GetPost)
	g.GET("/profile/:user_id", h.UserProfile)
}

// saveUploadedImage stores the optional "image" multipart part and
// returns the stored filename, or nil when no image was sent.
func (h *PostHandler) saveUploadedImage(c echo.Context) (*string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return nil, nil // no image part
	}
	src, err := file.Open()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Could not read uploaded image")
	}
	defer src.Close()

	name, err := h.images.SaveImage(src, file.Filename, file.Size)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return &name, nil
}

// CreatePost creates a new post, optionally with an image
func (h *PostHandler) CreatePost(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	imageURL, err := h.saveUploadedImage(c)
	if err != nil {
		return err
	}

	post, err := h.posts.CreatePost(actorID, req.Content, imageURL)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, post)
}

// GetPost retrieves a post with its live counts
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := parseUUIDParam(c, "post_id")
	if err != nil {
		return err
	}

	post, err := h.posts.GetPost(postID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, post)
}

// GlobalFeed returns all posts, newest first
func (h *PostHandler) GlobalFeed(c echo.Context) error {
	posts, err := h.posts.GlobalFeed()
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// FollowingFeed returns posts authored by users the caller follows
func (h *PostHandler) FollowingFeed(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}

	posts, err := h.posts.FollowingFeed(actorID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// UserProfile returns a user's public profile with their posts
func (h *PostHandler) UserProfile(c echo.Context) error {
	userID, err := parseUUIDParam(c, "user_id")
	if err != nil {
		return err
	}

	profile, err := h.posts.UserProfile(userID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdatePost updates an existing post's content and image
func (h *PostHandler) UpdatePost(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	postID, err := parseUUIDParam(c, "post_id")
	if err != nil {
		return err
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	imageURL, err := h.saveUploadedImage(c)
	if err != nil {
		return err
	}

	post, err := h.posts.UpdatePost(actorID, postID, req.Content, imageURL, req.RemoveImage)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post and its stored image
func (h *PostHandler) DeletePost(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	postID, err := parseUUIDParam(c, "post_id")
	if err != nil {
		return err
	}

	if err := h.posts.DeletePost(actorID, postID); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
