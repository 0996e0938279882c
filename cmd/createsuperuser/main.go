package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"recipeapi/internal/database"
	"recipeapi/internal/repositories"
	"recipeapi/internal/services"
)

// createsuperuser provisions a staff account with full admin access.
//
//	go run ./cmd/createsuperuser -email admin@example.com -password secret
func main() {
	email := flag.String("email", "", "email address for the superuser")
	password := flag.String("password", "", "password for the superuser")
	name := flag.String("name", "", "display name (optional)")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: createsuperuser -email <email> -password <password> [-name <name>]")
		os.Exit(2)
	}

	logger := logrus.New()

	pool, err := database.Connect(logger)
	if err != nil {
		logger.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(pool, logger); err != nil {
		logger.Fatalf("failed to run migrations: %v", err)
	}

	userService := services.NewUserService(repositories.NewUserRepository(pool))

	user, err := userService.CreateSuperuser(context.Background(), *email, *password, *name)
	if err != nil {
		logger.Fatalf("failed to create superuser: %v", err)
	}

	fmt.Printf("superuser %s created (id %s)\n", user.Email, user.ID)
}
