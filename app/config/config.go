package config

import (
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB *sql.DB

	SecretKey         string
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
	Port              string
}

var AppConfig *Config

// Load reads .env (when present) plus environment variables and opens the
// database connection.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost port=5432 user=postgres dbname=bright_horizon sslmode=disable"
		log.Println("DATABASE_URL not set, using local PostgreSQL database")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	AppConfig = &Config{
		DB:                db,
		SecretKey:         os.Getenv("SECRET_KEY"),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		Port:              getEnv("PORT", "5000"),
	}

	if AppConfig.SecretKey == "" {
		log.Println("WARNING: SECRET_KEY not set, sessions use an insecure default key")
	}

	log.Println("Database connected successfully")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
