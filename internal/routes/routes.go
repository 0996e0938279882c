package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recipeapi/internal/handlers"
)

func RegisterRoutes(
	router *gin.Engine,
	userHandler *handlers.UserHandler,
	authHandler *handlers.AuthHandler,
	tagHandler *handlers.TagHandler,
	ingredientHandler *handlers.IngredientHandler,
	recipeHandler *handlers.RecipeHandler,
	authenticate gin.HandlerFunc,
) {
	api := router.Group("/api")

	userRoutes := NewUserRoutes(userHandler, authHandler)
	userRoutes.RegisterRoutes(api, authenticate)

	recipeRoutes := NewRecipeRoutes(tagHandler, ingredientHandler, recipeHandler)
	recipeRoutes.RegisterRoutes(api, authenticate)

	adminRoutes := NewAdminRoutes(userHandler)
	adminRoutes.RegisterRoutes(api, authenticate)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
