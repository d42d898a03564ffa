package repositories

import (
	"github.com/dietsocial/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DietLogRepository defines the interface for diet log data operations
type DietLogRepository interface {
	CreateDietLog(log *models.DietLog) error
	GetDietLogByID(id uuid.UUID) (*models.DietLog, error)
	GetDietLogsByUserID(userID uuid.UUID) ([]models.DietLog, error)
	UpdateDietLog(log *models.DietLog) error
	DeleteDietLog(id uuid.UUID) error
}

// PostgresDietLogRepository implements DietLogRepository for PostgreSQL
type PostgresDietLogRepository struct {
	db *gorm.DB
}

// NewPostgresDietLogRepository creates a new PostgresDietLogRepository
func NewPostgresDietLogRepository(db *gorm.DB) *PostgresDietLogRepository {
	return &PostgresDietLogRepository{db: db}
}

func (r *PostgresDietLogRepository) CreateDietLog(log *models.DietLog) error {
	return translate(r.db.Create(log).Error, "diet log", log.ID.String())
}

func (r *PostgresDietLogRepository) GetDietLogByID(id uuid.UUID) (*models.DietLog, error) {
	var log models.DietLog
	if err := r.db.First(&log, "id = ?", id).Error; err != nil {
		return nil, translate(err, "diet log", id.String())
	}
	return &log, nil
}

func (r *PostgresDietLogRepository) GetDietLogsByUserID(userID uuid.UUID) ([]models.DietLog, error) {
	var logs []models.DietLog
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&logs).Error; err != nil {
		return nil, translate(err, "diet log", "")
	}
	return logs, nil
}

func (r *PostgresDietLogRepository) UpdateDietLog(log *models.DietLog) error {
	return translate(r.db.Save(log).Error, "diet log", log.ID.String())
}

func (r *PostgresDietLogRepository) DeleteDietLog(id uuid.UUID) error {
	return translate(r.db.Delete(&models.DietLog{}, "id = ?", id).Error, "diet log", id.String())
}
