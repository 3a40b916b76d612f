package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	MongoURI        string
	DBName          string
	JWTSecret       string
	StripeSecretKey string
	SendGridAPIKey  string
	EmailSender     string
	CORSOrigins     []string
	AppEnv          string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            os.Getenv("PORT"),
		MongoURI:        os.Getenv("MONGO_URI"),
		DBName:          os.Getenv("DB_NAME"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		SendGridAPIKey:  os.Getenv("SENDGRID_API_KEY"),
		EmailSender:     os.Getenv("EMAIL_SENDER"),
		AppEnv:          os.Getenv("APP_ENV"),
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.DBName == "" {
		cfg.DBName = "plantnet"
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			cfg.CORSOrigins = append(cfg.CORSOrigins, strings.TrimSpace(o))
		}
	} else {
		cfg.CORSOrigins = []string{"http://localhost:5173", "http://localhost:5174"}
	}

	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is not set")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	return cfg
}

// IsProduction toggles cookie security flags and log encoding.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
