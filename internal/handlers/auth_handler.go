package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipeapi/internal/models"
	"recipeapi/internal/responses"
	"recipeapi/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// CreateToken handles POST /api/user/token. Re-issuing for the same user
// returns the stored token. Bad credentials, unknown accounts and missing
// fields all get the same 400.
func (h *AuthHandler) CreateToken(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	token, err := h.authService.IssueToken(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			responses.Fail(c, http.StatusBadRequest, err, "Could not issue token")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to issue token")
		return
	}

	responses.Success(c, http.StatusOK, token, "Token issued successfully")
}
