package main

import (
	"context"
	"errors"
	"log"
	"os"

	"fixitsl-be/errs"
	"fixitsl-be/models"
	"fixitsl-be/repositories"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	users := repositories.NewMongoUserRepository()
	ctx := context.Background()

	if _, err := users.FindByUsername(ctx, username); err == nil {
		log.Println("Admin already exists")
		return
	} else if !errors.Is(err, errs.ErrNotFound) {
		log.Fatalf("Failed to check for existing admin: %v", err)
	}

	admin := &models.User{
		Username: username,
		Password: password,
	}
	if err := admin.HashPassword(); err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	if _, err := users.Insert(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("Admin Created: username=%s", username)
}
