package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"recipeapi/internal/models"
	"recipeapi/internal/responses"
	"recipeapi/internal/services"
)

type RecipeHandler struct {
	recipeService *services.RecipeService
}

func NewRecipeHandler(recipeService *services.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// ListRecipes handles GET /api/recipe/recipes
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	recipes, err := h.recipeService.List(c.Request.Context(), userID)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve recipes")
		return
	}

	responses.Success(c, http.StatusOK, recipes, "Recipes retrieved successfully")
}

// CreateRecipe handles POST /api/recipe/recipes
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	var req services.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	recipe, err := h.recipeService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.failRecipe(c, err, "Could not create recipe")
		return
	}

	responses.Success(c, http.StatusCreated, recipe, "Recipe created successfully")
}

// GetRecipe handles GET /api/recipe/recipes/:id and returns the detail
// representation with nested tags and ingredients.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusNotFound, nil, "Recipe not found")
		return
	}

	detail, err := h.recipeService.Get(c.Request.Context(), userID, recipeID)
	if err != nil {
		h.failRecipe(c, err, "Could not retrieve recipe")
		return
	}

	responses.Success(c, http.StatusOK, detail, "Recipe retrieved successfully")
}

// UpdateRecipe handles PUT /api/recipe/recipes/:id with full-replace
// semantics: relation lists left out of the payload are cleared.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusNotFound, nil, "Recipe not found")
		return
	}

	var req services.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	recipe, err := h.recipeService.Update(c.Request.Context(), userID, recipeID, req)
	if err != nil {
		h.failRecipe(c, err, "Could not update recipe")
		return
	}

	responses.Success(c, http.StatusOK, recipe, "Recipe updated successfully")
}

// PatchRecipe handles PATCH /api/recipe/recipes/:id with merge semantics.
func (h *RecipeHandler) PatchRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusNotFound, nil, "Recipe not found")
		return
	}

	var req services.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	recipe, err := h.recipeService.PartialUpdate(c.Request.Context(), userID, recipeID, req)
	if err != nil {
		h.failRecipe(c, err, "Could not update recipe")
		return
	}

	responses.Success(c, http.StatusOK, recipe, "Recipe updated successfully")
}

// DeleteRecipe handles DELETE /api/recipe/recipes/:id
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusNotFound, nil, "Recipe not found")
		return
	}

	if err := h.recipeService.Delete(c.Request.Context(), userID, recipeID); err != nil {
		h.failRecipe(c, err, "Could not delete recipe")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Recipe deleted successfully")
}

// UploadImage handles POST /api/recipe/recipes/:id/upload-image with a
// multipart "image" field.
func (h *RecipeHandler) UploadImage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusNotFound, nil, "Recipe not found")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "An image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not read uploaded file")
		return
	}

	recipe, err := h.recipeService.UploadImage(c.Request.Context(), userID, recipeID, data, fileHeader.Filename)
	if err != nil {
		h.failRecipe(c, err, "Could not upload image")
		return
	}

	responses.Success(c, http.StatusOK, recipe, "Image uploaded successfully")
}

func (h *RecipeHandler) failRecipe(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		responses.Fail(c, http.StatusNotFound, err, "Recipe not found")
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrInvalidReference),
		errors.Is(err, models.ErrInvalidImage):
		responses.Fail(c, http.StatusBadRequest, err, message)
	default:
		responses.Fail(c, http.StatusInternalServerError, err, message)
	}
}
