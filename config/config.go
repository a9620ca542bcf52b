package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Razorpay RazorpayConfig
	Admin    AdminConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// RazorpayConfig holds the gateway credentials. KeyID is safe to hand to
// clients for checkout; KeySecret signs orders and must never leave the server.
type RazorpayConfig struct {
	KeyID     string
	KeySecret string
}

type AdminConfig struct {
	PasswordHash string // bcrypt hash; empty disables admin login
	JWTSecret    string
	TokenExpiry  time.Duration
	Issuer       string
}

type CORSConfig struct {
	Origins []string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         env("PORT", "8080"),
			Env:          env("ENV", "development"),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:             env("MYSQL_DSN", "cupid:cupid@tcp(localhost:3306)/cupid?charset=utf8mb4&parseTime=True&loc=Local"),
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
		},
		Razorpay: RazorpayConfig{
			KeyID:     os.Getenv("RAZORPAY_KEY_ID"),
			KeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		},
		Admin: AdminConfig{
			PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
			JWTSecret:    env("ADMIN_JWT_SECRET", "change-me-in-production"),
			TokenExpiry:  12 * time.Hour,
			Issuer:       "cupid",
		},
		CORS: CORSConfig{
			Origins: strings.Split(env("CORS_ORIGINS", "*"), ","),
		},
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
