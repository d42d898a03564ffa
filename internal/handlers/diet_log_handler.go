package handlers

import (
	"net/http"

	"github.com/dietsocial/backend/internal/models"
	"github.com/dietsocial/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// DietLogHandler handles HTTP requests for the caller's diet logs
type DietLogHandler struct {
	logs *services.DietLogService
}

// NewDietLogHandler creates a new DietLogHandler
func NewDietLogHandler(logs *services.DietLogService) *DietLogHandler {
	return &DietLogHandler{logs: logs}
}

// RegisterDietLogRoutes registers protected diet log routes
func (h *DietLogHandler) RegisterDietLogRoutes(g *echo.Group) {
	g.POST("/diet-logs", h.CreateDietLog)
	g.GET("/diet-logs", h.ListDietLogs)
	g.PUT("/diet-logs/:id", h.UpdateDietLog)
	g.DELETE("/diet-logs/:id", h.DeleteDietLog)
}

// CreateDietLog creates a diet log for the caller
func (h *DietLogHandler) CreateDietLog(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}

	var req models.DietLogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	log, err := h.logs.CreateDietLog(actorID, req)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, log)
}

// ListDietLogs returns the caller's diet logs, newest first
func (h *DietLogHandler) ListDietLogs(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}

	logs, err := h.logs.ListDietLogs(actorID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, logs)
}

// UpdateDietLog updates one of the caller's diet logs
func (h *DietLogHandler) UpdateDietLog(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	logID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.DietLogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	log, err := h.logs.UpdateDietLog(actorID, logID, req)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, log)
}

// DeleteDietLog removes one of the caller's diet logs
func (h *DietLogHandler) DeleteDietLog(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	logID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.logs.DeleteDietLog(actorID, logID); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
