package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Port          string `env:"PORT" env-default:"5000"`
	SQLitePath    string `env:"SQLITE_PATH" env-default:"clickshop.db"`
	DatabaseURL   string `env:"DATABASE_URL"`
	SessionSecret string `env:"SESSION_SECRET" env-required:"true"`
}

// MustLoad reads the environment (optionally seeded from a .env file) into a
// Config and exits the process when the session secret is missing.
func MustLoad() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("❌ Failed to read configuration: %v", err)
	}
	return &cfg
}
