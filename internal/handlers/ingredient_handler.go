package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipeapi/internal/models"
	"recipeapi/internal/responses"
	"recipeapi/internal/services"
)

type IngredientHandler struct {
	ingredientService *services.IngredientService
}

func NewIngredientHandler(ingredientService *services.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService}
}

// ListIngredients handles GET /api/recipe/ingredients
func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	ingredients, err := h.ingredientService.List(c.Request.Context(), userID)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve ingredients")
		return
	}

	responses.Success(c, http.StatusOK, ingredients, "Ingredients retrieved successfully")
}

// CreateIngredient handles POST /api/recipe/ingredients
func (h *IngredientHandler) CreateIngredient(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	ingredient, err := h.ingredientService.Create(c.Request.Context(), userID, req.Name)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			responses.Fail(c, http.StatusBadRequest, err, "Could not create ingredient")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to create ingredient")
		return
	}

	responses.Success(c, http.StatusCreated, ingredient, "Ingredient created successfully")
}
