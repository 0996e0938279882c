package routes

import (
	"github.com/gin-gonic/gin"

	"recipeapi/internal/handlers"
	"recipeapi/internal/middlewares"
)

type AdminRoutes struct {
	userHandler *handlers.UserHandler
}

func NewAdminRoutes(userHandler *handlers.UserHandler) *AdminRoutes {
	return &AdminRoutes{userHandler: userHandler}
}

func (r *AdminRoutes) RegisterRoutes(router *gin.RouterGroup, authenticate gin.HandlerFunc) {
	admin := router.Group("/admin")
	admin.Use(authenticate, middlewares.RequireStaff())
	{
		admin.GET("/users", r.userHandler.ListUsers)
	}
}
