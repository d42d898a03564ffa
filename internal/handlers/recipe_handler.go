package handlers

import (
	"net/http"
	"strconv"

	"github.com/dietsocial/backend/internal/models"
	"github.com/dietsocial/backend/internal/services"
	"github.com/dietsocial/backend/pkg/storage"
	"github.com/labstack/echo/v4"
)

// RecipeHandler handles HTTP requests related to recipes
type RecipeHandler struct {
	recipes *services.RecipeService
	images  storage.FileStorage
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(recipes *services.RecipeService, images storage.FileStorage) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, images: images}
}

// RegisterRecipeRoutes registers protected recipe routes
func (h *RecipeHandler) RegisterRecipeRoutes(g *echo.Group) {
	g.POST("/recipes", h.CreateRecipe)
	g.PUT("/recipes/:id", h.UpdateRecipe)
	g.DELETE("/recipes/:id", h.DeleteRecipe)
}

// RegisterPublicRecipeRoutes registers recipe routes readable without a token
func (h *RecipeHandler) RegisterPublicRecipeRoutes(g *echo.Group) {
	g.GET("/recipes", h.ListRecipes)
	g.GET("/recipes/:id", h.GetRecipe)
	g.GET("/users/:id/recipes", h.ListRecipesByUser)
}

func (h *RecipeHandler) saveUploadedImage(c echo.Context) (*string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return nil, nil
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

// CreateRecipe creates a new recipe, optionally with an image
func (h *RecipeHandler) CreateRecipe(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}

	var req models.RecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	imageURL, err := h.saveUploadedImage(c)
	if err != nil {
		return err
	}

	recipe, err := h.recipes.CreateRecipe(actorID, req, imageURL)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, recipe)
}

// GetRecipe retrieves a recipe by ID
func (h *RecipeHandler) GetRecipe(c echo.Context) error {
	recipeID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	recipe, err := h.recipes.GetRecipe(recipeID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, recipe)
}

// ListRecipes returns all recipes, newest first
func (h *RecipeHandler) ListRecipes(c echo.Context) error {
	recipes, err := h.recipes.ListRecipes()
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, recipes)
}

// ListRecipesByUser returns a user's recipes, newest first
func (h *RecipeHandler) ListRecipesByUser(c echo.Context) error {
	userID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	recipes, err := h.recipes.ListRecipesByUser(userID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, recipes)
}

// UpdateRecipe updates an existing recipe
func (h *RecipeHandler) UpdateRecipe(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	recipeID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.RecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	removeImage, _ := strconv.ParseBool(c.FormValue("remove_image"))

	imageURL, err := h.saveUploadedImage(c)
	if err != nil {
		return err
	}

	recipe, err := h.recipes.UpdateRecipe(actorID, recipeID, req, imageURL, removeImage)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe deletes a recipe and its stored image
func (h *RecipeHandler) DeleteRecipe(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	recipeID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.recipes.DeleteRecipe(actorID, recipeID); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
