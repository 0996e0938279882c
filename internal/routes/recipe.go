package routes

import (
	"github.com/gin-gonic/gin"

	"recipeapi/internal/handlers"
)

type RecipeRoutes struct {
	tagHandler        *handlers.TagHandler
	ingredientHandler *handlers.IngredientHandler
	recipeHandler     *handlers.RecipeHandler
}

func NewRecipeRoutes(
	tagHandler *handlers.TagHandler,
	ingredientHandler *handlers.IngredientHandler,
	recipeHandler *handlers.RecipeHandler,
) *RecipeRoutes {
	return &RecipeRoutes{
		tagHandler:        tagHandler,
		ingredientHandler: ingredientHandler,
		recipeHandler:     recipeHandler,
	}
}

func (r *RecipeRoutes) RegisterRoutes(router *gin.RouterGroup, authenticate gin.HandlerFunc) {
	recipe := router.Group("/recipe")
	recipe.Use(authenticate)
	{
		recipe.GET("/tags", r.tagHandler.ListTags)
		recipe.POST("/tags", r.tagHandler.CreateTag)

		recipe.GET("/ingredients", r.ingredientHandler.ListIngredients)
		recipe.POST("/ingredients", r.ingredientHandler.CreateIngredient)

		recipe.GET("/recipes", r.recipeHandler.ListRecipes)
		recipe.POST("/recipes", r.recipeHandler.CreateRecipe)
		recipe.GET("/recipes/:id", r.recipeHandler.GetRecipe)
		recipe.PUT("/recipes/:id", r.recipeHandler.UpdateRecipe)
		recipe.PATCH("/recipes/:id", r.recipeHandler.PatchRecipe)
		recipe.DELETE("/recipes/:id", r.recipeHandler.DeleteRecipe)
		recipe.POST("/recipes/:id/upload-image", r.recipeHandler.UploadImage)
	}
}
