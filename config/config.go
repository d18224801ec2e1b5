package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI  string
	MongoDB   string
	Port      string
	JWTSecret string
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// LoadConfig reads the .env file (if present) and the process environment.
// JWT_SECRET has no fallback: login tokens cannot be signed without it.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	cfg := Config{
		MongoURI:  getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "isoflow3"),
		Port:      getEnv("PORT", "5000"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}
	return cfg
}
