// Package storage holds the image file collaborator. Images are addressed
// by opaque filename only; callers never see paths.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const maxImageSize = 5 << 20 // 5MB

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// FileStorage saves and deletes image files by opaque filename
type FileStorage interface {
	SaveImage(r io.Reader, originalName string, size int64) (string, error)
	DeleteImage(fileName string)
	Open(fileName string) (io.ReadCloser, error)
}

// LocalFileStorage implements FileStorage on the local filesystem
type LocalFileStorage struct {
	dir string
}

// NewLocalFileStorage creates a LocalFileStorage rooted at dir, creating
// the directory if needed.
func NewLocalFileStorage(dir string) (*LocalFileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image directory: %w", err)
	}
	return &LocalFileStorage{dir: dir}, nil
}

// SaveImage validates the upload and stores it under a generated opaque
// filename, which is returned without any path component.
func (s *LocalFileStorage) SaveImage(r io.Reader, originalName string, size int64) (string, error) {
	if size == 0 {
		return "", fmt.Errorf("no file was uploaded")
	}
	if size > maxImageSize {
		return "", fmt.Errorf("file size exceeds the maximum limit of 5MB")
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("invalid file type, only .jpg, .jpeg, .png and .gif files are allowed")
	}

	fileName := uuid.New().String() + ext
	path := filepath.Join(s.dir, fileName)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(r, maxImageSize)); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("save image: %w", err)
	}
	return fileName, nil
}

// DeleteImage removes a stored file. Missing files and empty names are
// ignored; image cleanup must never fail the owning mutation.
func (s *LocalFileStorage) DeleteImage(fileName string) {
	if fileName == "" {
		return
	}
	// Strip any path the caller may have kept from an older URL form.
	clean := filepath.Base(strings.ReplaceAll(fileName, "\\", "/"))
	os.Remove(filepath.Join(s.dir, clean))
}

// Open returns the stored file for serving
func (s *LocalFileStorage) Open(fileName string) (io.ReadCloser, error) {
	clean := filepath.Base(strings.ReplaceAll(fileName, "\\", "/"))
	return os.Open(filepath.Join(s.dir, clean))
}
