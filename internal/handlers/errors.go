// Package handlers contains the HTTP layer: request binding, auth claims
// extraction and translation of service errors to HTTP responses.
package handlers

import (
	"errors"
	"net/http"

	"github.com/dietsocial/backend/internal/apperror"
	"github.com/dietsocial/backend/internal/models"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// toHTTPError maps service errors onto HTTP status codes. Conflicts are
// reported as 400, matching the rest of the validation failures. Internal
// errors never leak their cause to the client.
func toHTTPError(err error) *echo.HTTPError {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		return echo.NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}

	switch {
	case errors.Is(appErr.Err, apperror.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, appErr.Message)
	case errors.Is(appErr.Err, apperror.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, appErr.Message)
	case errors.Is(appErr.Err, apperror.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, appErr.Message)
	case errors.Is(appErr.Err, apperror.ErrConflict), errors.Is(appErr.Err, apperror.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, appErr.Message)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred")
	}
}

// getUserIDFromContext reads the authenticated user's ID from the JWT
// claims stored by the auth middleware.
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok || claims == nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
	}
	return claims.UserID, nil
}

// parseUUIDParam parses a path parameter as a UUID.
func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return id, nil
}
