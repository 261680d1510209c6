package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Slots  SlotsConfig
	JWT    JWTConfig
	Admin  AdminConfig
}

type ServerConfig struct {
	Port string
}

type SlotsConfig struct {
	Path string
}

type JWTConfig struct {
	Secret string
}

// AdminConfig is the single hardcoded agency account. There is no user
// database behind the login flow.
type AdminConfig struct {
	Name     string
	Email    string
	Password string
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Slots: SlotsConfig{
			Path: getEnv("SLOTS_PATH", "inmosalta.db"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "inmosalta-super-secret-key-2024"),
		},
		Admin: AdminConfig{
			Name:     getEnv("ADMIN_NAME", "Lucas Admin"),
			Email:    getEnv("ADMIN_EMAIL", "lucas@mail.com"),
			Password: getEnv("ADMIN_PASSWORD", "12341234"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
