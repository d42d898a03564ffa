package handlers

import (
	"errors"
	"io/fs"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/dietsocial/backend/pkg/storage"
	"github.com/labstack/echo/v4"
)

// ImageHandler serves stored images by their opaque filename
type ImageHandler struct {
	images storage.FileStorage
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(images storage.FileStorage) *ImageHandler {
	return &ImageHandler{images: images}
}

// RegisterImageRoutes registers the public image route
func (h *ImageHandler) RegisterImageRoutes(g *echo.Group) {
	g.GET("/images/:filename", h.GetImage)
}

// GetImage streams a stored image to the client
func (h *ImageHandler) GetImage(c echo.Context) error {
	fileName := c.Param("filename")

	f, err := h.images.Open(fileName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return echo.NewHTTPError(http.StatusNotFound, "Image not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}
	defer f.Close()

	contentType := mime.TypeByExtension(filepath.Ext(fileName))
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	return c.Stream(http.StatusOK, contentType, f)
}
