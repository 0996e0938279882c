package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipeapi/internal/models"
	"recipeapi/internal/responses"
	"recipeapi/internal/services"
)

type TagHandler struct {
	tagService *services.TagService
}

func NewTagHandler(tagService *services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// ListTags handles GET /api/recipe/tags
func (h *TagHandler) ListTags(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	tags, err := h.tagService.List(c.Request.Context(), userID)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve tags")
		return
	}

	responses.Success(c, http.StatusOK, tags, "Tags retrieved successfully")
}

// CreateTag handles POST /api/recipe/tags
func (h *TagHandler) CreateTag(c *gin.Context) {
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

	tag, err := h.tagService.Create(c.Request.Context(), userID, req.Name)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			responses.Fail(c, http.StatusBadRequest, err, "Could not create tag")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to create tag")
		return
	}

	responses.Success(c, http.StatusCreated, tag, "Tag created successfully")
}
