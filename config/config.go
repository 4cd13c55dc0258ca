package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/Syed-Bipul-Rahman/call-server/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

type Config struct {
	Port        string
	JWTSecret   []byte
	PushBackend string // "fcm" | "sns"
}

// Load reads the environment. A missing JWT_SECRET is a hard failure:
// falling back to a default would deploy a guessable signing key.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	backend := os.Getenv("PUSH_BACKEND")
	if backend == "" {
		backend = "fcm"
	}

	return &Config{
		Port:        port,
		JWTSecret:   []byte(secret),
		PushBackend: backend,
	}, nil
}

func InitDB() error {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	// TranslateError surfaces unique-index violations as
	// gorm.ErrDuplicatedKey, which the auth service maps to a conflict.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := DB.AutoMigrate(&models.User{}); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}
	return nil
}
