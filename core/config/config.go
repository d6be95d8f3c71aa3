package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration in a structured way.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Discord  DiscordConfig
}

type AppConfig struct {
	Version            string
	Port               string
	Debug              bool
	Environment        string
	BasePath           string
	CorsAllowedOrigins []string
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string // File path for SQLite, DB name for Postgres

	ValkeyEnabled   bool
	ValkeyAddress   string
	ValkeyPassword  string
	ValkeyDB        int
	ValkeyKeyPrefix string
}

type DiscordConfig struct {
	Token string
}

// Global provides access to the loaded configuration globally.
var Global *Config

// LoadConfig loads configuration from a .env file (if present) and
// environment variables, falling back to defaults.
func LoadConfig() (*Config, error) {
	// Missing .env is fine; plain env vars still apply.
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", false)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_BASE_PATH", "")
	viper.SetDefault("APP_CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "")
	viper.SetDefault("DB_NAME", "storages/javabot.db")

	viper.SetDefault("VALKEY_ENABLED", false)
	viper.SetDefault("VALKEY_ADDRESS", "localhost:6379")
	viper.SetDefault("VALKEY_PASSWORD", "")
	viper.SetDefault("VALKEY_DB", 0)
	viper.SetDefault("VALKEY_KEY_PREFIX", "javabot:")

	viper.SetDefault("DISCORD_TOKEN", "")

	cfg := &Config{
		App: AppConfig{
			Version:            "v1.0.0",
			Port:               viper.GetString("APP_PORT"),
			Debug:              viper.GetBool("APP_DEBUG"),
			Environment:        viper.GetString("APP_ENV"),
			BasePath:           viper.GetString("APP_BASE_PATH"),
			CorsAllowedOrigins: strings.Split(viper.GetString("APP_CORS_ALLOWED_ORIGINS"), ","),
		},
		Database: DatabaseConfig{
			Driver:          viper.GetString("DB_DRIVER"),
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			ValkeyEnabled:   viper.GetBool("VALKEY_ENABLED"),
			ValkeyAddress:   viper.GetString("VALKEY_ADDRESS"),
			ValkeyPassword:  viper.GetString("VALKEY_PASSWORD"),
			ValkeyDB:        viper.GetInt("VALKEY_DB"),
			ValkeyKeyPrefix: viper.GetString("VALKEY_KEY_PREFIX"),
		},
		Discord: DiscordConfig{
			Token: viper.GetString("DISCORD_TOKEN"),
		},
	}

	Global = cfg
	return cfg, nil
}
