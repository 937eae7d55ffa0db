package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv     string
	Port       string
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	MongoURI        string
	MongoDBName     string
	MongoCollection string

	JWTSecret string
}

var (
	cfg  *Config
	once sync.Once
)

// LoadConfig reads the .env file once and builds the process configuration.
// A missing .env file is not fatal; plain environment variables still apply.
func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: .env file not found. Relying on environment variables.")
		}
		cfg = &Config{
			AppEnv:     os.Getenv("APP_ENV"),
			Port:       os.Getenv("PORT"),
			DBUser:     os.Getenv("DB_USER"),
			DBPassword: os.Getenv("DB_PASSWORD"),
			DBHost:     os.Getenv("DB_HOST"),
			DBPort:     os.Getenv("DB_PORT"),
			DBName:     os.Getenv("DB_NAME"),

			MongoURI:        os.Getenv("MONGO_URI"),
			MongoDBName:     os.Getenv("MONGO_DB_NAME"),
			MongoCollection: os.Getenv("MONGO_COLLECTION"),

			JWTSecret: os.Getenv("JWT_SECRET_KEY"),
		}
		if cfg.Port == "" {
			cfg.Port = "8080"
		}
		if cfg.MongoCollection == "" {
			cfg.MongoCollection = "stroke_data"
		}
	})
	return cfg
}
