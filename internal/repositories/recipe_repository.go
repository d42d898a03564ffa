package repositories

import (
	"github.com/dietsocial/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeRepository defines the interface for recipe data operations
type RecipeRepository interface {
	CreateRecipe(recipe *models.Recipe) error
	GetRecipeByID(id uuid.UUID) (*models.Recipe, error)
	GetAllRecipes() ([]models.Recipe, error)
	GetRecipesByUserID(userID uuid.UUID) ([]models.Recipe, error)
	UpdateRecipe(recipe *models.Recipe) error
	DeleteRecipe(id uuid.UUID) error
}

// PostgresRecipeRepository implements RecipeRepository for PostgreSQL
type PostgresRecipeRepository struct {
	db *gorm.DB
}

// NewPostgresRecipeRepository creates a new PostgresRecipeRepository
func NewPostgresRecipeRepository(db *gorm.DB) *PostgresRecipeRepository {
	return &PostgresRecipeRepository{db: db}
}

func (r *PostgresRecipeRepository) CreateRecipe(recipe *models.Recipe) error {
	return translate(r.db.Create(recipe).Error, "recipe", recipe.ID.String())
}

func (r *PostgresRecipeRepository) GetRecipeByID(id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.First(&recipe, "id = ?", id).Error; err != nil {
		return nil, translate(err, "recipe", id.String())
	}
	return &recipe, nil
}

func (r *PostgresRecipeRepository) GetAllRecipes() ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := r.db.Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, translate(err, "recipe", "")
	}
	return recipes, nil
}

func (r *PostgresRecipeRepository) GetRecipesByUserID(userID uuid.UUID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, translate(err, "recipe", "")
	}
	return recipes, nil
}

func (r *PostgresRecipeRepository) UpdateRecipe(recipe *models.Recipe) error {
	return translate(r.db.Save(recipe).Error, "recipe", recipe.ID.String())
}

func (r *PostgresRecipeRepository) DeleteRecipe(id uuid.UUID) error {
	return translate(r.db.Delete(&models.Recipe{}, "id = ?", id).Error, "recipe", id.String())
}
