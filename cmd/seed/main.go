package main

import (
	"log"
	"os"

	"nec-chat-be/internal/model"
	"nec-chat-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the default accounts. Existing usernames are left untouched, so
// running this repeatedly is safe.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding default users\n")

	seedUser(db, "Administrador", "admin", "admin@nec.local", envOr("SEED_ADMIN_PASSWORD", "admin123"), "ADMIN")
	seedUser(db, "Usuario Demo", "demo", "demo@nec.local", envOr("SEED_DEMO_PASSWORD", "demo123"), "USER")

	color.Green("Done.")
}

func seedUser(db *gorm.DB, name, username, email, password, role string) {
	var count int64
	if err := db.Model(&model.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		color.Red("Failed to check %s: %v", username, err)
		return
	}
	if count > 0 {
		color.Yellow("User %q already exists, skipping", username)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		color.Red("Failed to hash password for %s: %v", username, err)
		return
	}

	user := model.User{
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := db.Create(&user).Error; err != nil {
		color.Red("Failed to create %s: %v", username, err)
		return
	}
	color.Green("Created %s (%s)", username, role)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
