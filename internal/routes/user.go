package routes

import (
	"github.com/gin-gonic/gin"

	"recipeapi/internal/handlers"
)

type UserRoutes struct {
	userHandler *handlers.UserHandler
	authHandler *handlers.AuthHandler
}

func NewUserRoutes(userHandler *handlers.UserHandler, authHandler *handlers.AuthHandler) *UserRoutes {
	return &UserRoutes{
		userHandler: userHandler,
		authHandler: authHandler,
	}
}

func (r *UserRoutes) RegisterRoutes(router *gin.RouterGroup, authenticate gin.HandlerFunc) {
	users := router.Group("/user")
	{
		// Public: signup and token issuance
		users.POST("/create", r.userHandler.CreateUser)
		users.POST("/token", r.authHandler.CreateToken)

		// Profile endpoints require authentication
		users.GET("/me", authenticate, r.userHandler.GetMe)
		users.PATCH("/me", authenticate, r.userHandler.UpdateMe)
	}
}
