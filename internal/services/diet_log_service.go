package services

import (
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dietsocial/backend/internal/apperror"
	"github.com/dietsocial/backend/internal/models"
	"github.com/dietsocial/backend/internal/repositories"
	"github.com/google/uuid"
)

// DietLogService handles diet log CRUD with ownership checks
type DietLogService struct {
	logs   repositories.DietLogRepository
	users  repositories.UserRepository
	logger *slog.Logger
}

// NewDietLogService creates a new DietLogService
func NewDietLogService(logRepo repositories.DietLogRepository, userRepo repositories.UserRepository, logger *slog.Logger) *DietLogService {
	return &DietLogService{logs: logRepo, users: userRepo, logger: logger}
}

func validateDietLog(title string, calories int) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return apperror.ValidationFailed("title", "title is required")
	}
	if utf8.RuneCountInString(title) > 100 {
		return apperror.ValidationFailed("title", "title cannot exceed 100 characters")
	}
	if calories <= 0 {
		return apperror.ValidationFailed("calories", "calories must be greater than 0")
	}
	return nil
}

// CreateDietLog creates a diet log for the actor
func (s *DietLogService) CreateDietLog(actorID uuid.UUID, req models.DietLogRequest) (*models.DietLog, error) {
	if err := validateDietLog(req.Title, req.Calories); err != nil {
		return nil, err
	}
	log := &models.DietLog{
		ID:          uuid.New(),
		UserID:      actorID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Calories:    req.Calories,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.logs.CreateDietLog(log); err != nil {
		return nil, err
	}
	return log, nil
}

// ListDietLogs returns the actor's own diet logs, newest first
func (s *DietLogService) ListDietLogs(actorID uuid.UUID) ([]models.DietLogResponse, error) {
	actor, err := s.users.GetUserByID(actorID)
	if err != nil {
		return nil, err
	}
	logs, err := s.logs.GetDietLogsByUserID(actorID)
	if err != nil {
		return nil, err
	}
	responses := make([]models.DietLogResponse, len(logs))
	for i, l := range logs {
		responses[i] = models.DietLogResponse{
			ID:              l.ID,
			Title:           l.Title,
			Description:     l.Description,
			Calories:        l.Calories,
			CreatedAt:       l.CreatedAt,
			UserID:          l.UserID,
			UserDisplayName: actor.DisplayName,
		}
	}
	return responses, nil
}

// UpdateDietLog replaces a diet log's fields. Only the owner may update;
// a missing log is NotFound before the ownership check.
func (s *DietLogService) UpdateDietLog(actorID, logID uuid.UUID, req models.DietLogRequest) (*models.DietLog, error) {
	if err := validateDietLog(req.Title, req.Calories); err != nil {
		return nil, err
	}
	log, err := s.logs.GetDietLogByID(logID)
	if err != nil {
		return nil, err
	}
	if log.UserID != actorID {
		return nil, apperror.Forbidden("you are not authorized to update this diet log")
	}

	log.Title = strings.TrimSpace(req.Title)
	log.Description = req.Description
	log.Calories = req.Calories
	if err := s.logs.UpdateDietLog(log); err != nil {
		return nil, err
	}
	return log, nil
}

// DeleteDietLog deletes the actor's diet log
func (s *DietLogService) DeleteDietLog(actorID, logID uuid.UUID) error {
	log, err := s.logs.GetDietLogByID(logID)
	if err != nil {
		return err
	}
	if log.UserID != actorID {
		return apperror.Forbidden("you are not authorized to delete this diet log")
	}
	return s.logs.DeleteDietLog(logID)
}
