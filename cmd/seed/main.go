package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"autocare/internal/config"
	"autocare/internal/database"
	"autocare/internal/domain"
	"autocare/internal/repository"
)

// Creates or refreshes the dashboard admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Run once before the first deploy and after any password
// rotation.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}

	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Workshop Owner"
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("password hashing failed:", err)
	}

	ctx := context.Background()
	admins := repository.NewAdminRepository(db)

	if existing, err := admins.GetByEmail(ctx, email); err == nil {
		db.Table("admin_users").
			Where("id = ?", existing.ID).
			Update("password_hash", string(hash))
		log.Printf("Updated password for %s", email)
		return
	}

	admin := &domain.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         domain.RoleOwner,
	}
	if err := admins.Create(ctx, admin); err != nil {
		log.Fatal("admin creation failed:", err)
	}

	log.Printf("Created admin %s (id=%d)", email, admin.ID)
}
