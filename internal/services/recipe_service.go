package services

import (
	"log/slog"
	"time"

	"github.com/dietsocial/backend/internal/apperror"
	"github.com/dietsocial/backend/internal/models"
	"github.com/dietsocial/backend/internal/repositories"
	"github.com/dietsocial/backend/pkg/storage"
	"github.com/google/uuid"
)

// RecipeService handles recipe CRUD with ownership checks
type RecipeService struct {
	recipes repositories.RecipeRepository
	users   repositories.UserRepository
	images  storage.FileStorage
	logger  *slog.Logger
}

// NewRecipeService creates a new RecipeService
func NewRecipeService(recipeRepo repositories.RecipeRepository, userRepo repositories.UserRepository, images storage.FileStorage, logger *slog.Logger) *RecipeService {
	return &RecipeService{recipes: recipeRepo, users: userRepo, images: images, logger: logger}
}

// CreateRecipe creates a recipe for the actor
func (s *RecipeService) CreateRecipe(actorID uuid.UUID, req models.RecipeRequest, imageURL *string) (*models.Recipe, error) {
	now := time.Now().UTC()
	recipe := &models.Recipe{
		ID:          uuid.New(),
		UserID:      actorID,
		Title:       req.Title,
		Description: req.Description,
		Ingredients: req.Ingredients,
		Calories:    req.Calories,
		ImageURL:    imageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.recipes.CreateRecipe(recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// GetRecipe returns a single recipe with its author's display name
func (s *RecipeService) GetRecipe(recipeID uuid.UUID) (*models.RecipeResponse, error) {
	recipe, err := s.recipes.GetRecipeByID(recipeID)
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(*recipe, make(map[uuid.UUID]string))
	return &resp, nil
}

// ListRecipes returns all recipes, newest first
func (s *RecipeService) ListRecipes() ([]models.RecipeResponse, error) {
	recipes, err := s.recipes.GetAllRecipes()
	if err != nil {
		return nil, err
	}
	return s.toResponses(recipes), nil
}

// ListRecipesByUser returns one user's recipes, newest first
func (s *RecipeService) ListRecipesByUser(userID uuid.UUID) ([]models.RecipeResponse, error) {
	recipes, err := s.recipes.GetRecipesByUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(recipes), nil
}

// UpdateRecipe replaces a recipe's fields. Only the owner may update; a
// missing recipe is NotFound before the ownership check.
func (s *RecipeService) UpdateRecipe(actorID, recipeID uuid.UUID, req models.RecipeRequest, newImageURL *string, removeImage bool) (*models.Recipe, error) {
	recipe, err := s.recipes.GetRecipeByID(recipeID)
	if err != nil {
		return nil, err
	}
	if recipe.UserID != actorID {
		return nil, apperror.Forbidden("you are not authorized to update this recipe")
	}

	if newImageURL != nil {
		if recipe.ImageURL != nil {
			s.images.DeleteImage(*recipe.ImageURL)
		}
		recipe.ImageURL = newImageURL
	} else if removeImage && recipe.ImageURL != nil {
		s.images.DeleteImage(*recipe.ImageURL)
		recipe.ImageURL = nil
	}

	recipe.Title = req.Title
	recipe.Description = req.Description
	recipe.Ingredients = req.Ingredients
	recipe.Calories = req.Calories
	recipe.UpdatedAt = time.Now().UTC()
	if err := s.recipes.UpdateRecipe(recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// DeleteRecipe deletes the actor's recipe along with its stored image
func (s *RecipeService) DeleteRecipe(actorID, recipeID uuid.UUID) error {
	recipe, err := s.recipes.GetRecipeByID(recipeID)
	if err != nil {
		return err
	}
	if recipe.UserID != actorID {
		return apperror.Forbidden("you are not authorized to delete this recipe")
	}
	if recipe.ImageURL != nil {
		s.images.DeleteImage(*recipe.ImageURL)
	}
	return s.recipes.DeleteRecipe(recipeID)
}

func (s *RecipeService) toResponses(recipes []models.Recipe) []models.RecipeResponse {
	names := make(map[uuid.UUID]string)
	responses := make([]models.RecipeResponse, len(recipes))
	for i, r := range recipes {
		responses[i] = s.toResponse(r, names)
	}
	return responses
}

func (s *RecipeService) toResponse(r models.Recipe, names map[uuid.UUID]string) models.RecipeResponse {
	name, ok := names[r.UserID]
	if !ok {
		if author, err := s.users.GetUserByID(r.UserID); err == nil {
			name = author.DisplayName
		}
		names[r.UserID] = name
	}
	return models.RecipeResponse{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		Ingredients:     r.Ingredients,
		Calories:        r.Calories,
		ImageURL:        r.ImageURL,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		UserID:          r.UserID,
		UserDisplayName: name,
	}
}
