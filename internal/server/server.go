package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"recipeapi/internal/database"
	"recipeapi/internal/handlers"
	"recipeapi/internal/middlewares"
	"recipeapi/internal/repositories"
	"recipeapi/internal/routes"
	"recipeapi/internal/services"
	"recipeapi/internal/storage"
)

func NewServer() *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	pool, err := database.Connect(logger)
	if err != nil {
		logger.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(pool, logger); err != nil {
		logger.Fatalf("failed to run migrations: %v", err)
	}

	mediaRoot := os.Getenv("MEDIA_ROOT")
	if mediaRoot == "" {
		mediaRoot = "media"
	}

	// Dependency injection
	userRepo := repositories.NewUserRepository(pool)
	tokenRepo := repositories.NewTokenRepository(pool)
	tagRepo := repositories.NewTagRepository(pool)
	ingredientRepo := repositories.NewIngredientRepository(pool)
	recipeRepo := repositories.NewRecipeRepository(pool)

	imageStore := storage.NewImageStore(mediaRoot)

	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userRepo, tokenRepo)
	tagService := services.NewTagService(tagRepo)
	ingredientService := services.NewIngredientService(ingredientRepo)
	recipeService := services.NewRecipeService(recipeRepo, tagRepo, ingredientRepo, imageStore)

	userHandler := handlers.NewUserHandler(userService)
	authHandler := handlers.NewAuthHandler(authService)
	tagHandler := handlers.NewTagHandler(tagService)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService)
	recipeHandler := handlers.NewRecipeHandler(recipeService)

	router := NewRouter(logger, userHandler, authHandler, tagHandler, ingredientHandler, recipeHandler, authService)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// NewRouter assembles the gin engine with middleware and all routes.
func NewRouter(
	logger *logrus.Logger,
	userHandler *handlers.UserHandler,
	authHandler *handlers.AuthHandler,
	tagHandler *handlers.TagHandler,
	ingredientHandler *handlers.IngredientHandler,
	recipeHandler *handlers.RecipeHandler,
	resolver middlewares.TokenResolver,
) *gin.Engine {
	router := gin.New()
	router.Use(middlewares.Logger(logger))
	router.Use(middlewares.Recovery(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// A defined path with the wrong verb answers 405, not 404.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method not allowed"})
	})

	routes.RegisterRoutes(
		router,
		userHandler,
		authHandler,
		tagHandler,
		ingredientHandler,
		recipeHandler,
		middlewares.Authenticate(resolver),
	)

	return router
}
