package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	AI        AIConfig
	Roboflow  RoboflowConfig
	Translate TranslateConfig
	Digest    DigestConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// DatabaseConfig locates the SQLite database file.
type DatabaseConfig struct {
	Path string
}

// AIConfig holds settings for the LLM provider behind the chatbot.
type AIConfig struct {
	GeminiKey   string
	GeminiModel string
}

// RoboflowConfig identifies the hosted breed-detection model.
type RoboflowConfig struct {
	APIKey     string
	ProjectID  string
	Version    int
	Confidence int
	Overlap    int
}

// TranslateConfig holds Cloud Translation credentials for the
// multilingual chatbot.
type TranslateConfig struct {
	APIKey    string
	ProjectID string
}

// DigestConfig holds scheduler-related settings for the activity digest.
type DigestConfig struct {
	CronSchedule string
	Timezone     string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Path: getenvWithDefault("DATABASE_PATH", "data/cows.db"),
		},
		AI: AIConfig{
			GeminiKey:   os.Getenv("GEMINI_API_KEY"),
			GeminiModel: getenvWithDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		},
		Roboflow: RoboflowConfig{
			APIKey:     os.Getenv("ROBOFLOW_API_KEY"),
			ProjectID:  getenvWithDefault("ROBOFLOW_PROJECT_ID", "cattle-breed-9rfl6-xqimv-mqao3"),
			Version:    getenvIntWithDefault("ROBOFLOW_MODEL_VERSION", 6),
			Confidence: getenvIntWithDefault("ROBOFLOW_CONFIDENCE", 40),
			Overlap:    getenvIntWithDefault("ROBOFLOW_OVERLAP", 30),
		},
		Translate: TranslateConfig{
			APIKey:    os.Getenv("TRANSLATE_API_KEY"),
			ProjectID: os.Getenv("TRANSLATE_PROJECT_ID"),
		},
		Digest: DigestConfig{
			CronSchedule: getenvWithDefault("DIGEST_CRON_SCHEDULE", "0 8 * * 1"),
			Timezone:     getenvWithDefault("TIMEZONE", "Asia/Kolkata"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
// API keys for the external services are intentionally not required;
// the server starts with those features disabled when keys are absent.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Database.Path == "" {
		return errors.New("DATABASE_PATH must be provided")
	}

	if c.AI.GeminiModel == "" {
		return errors.New("GEMINI_MODEL must not be empty")
	}

	if c.Roboflow.ProjectID == "" {
		return errors.New("ROBOFLOW_PROJECT_ID must not be empty")
	}
	if c.Roboflow.Version <= 0 {
		return errors.New("ROBOFLOW_MODEL_VERSION must be a positive integer")
	}
	if c.Roboflow.Confidence < 0 || c.Roboflow.Confidence > 100 {
		return errors.New("ROBOFLOW_CONFIDENCE must be between 0 and 100")
	}
	if c.Roboflow.Overlap < 0 || c.Roboflow.Overlap > 100 {
		return errors.New("ROBOFLOW_OVERLAP must be between 0 and 100")
	}

	if c.Digest.CronSchedule == "" {
		return errors.New("DIGEST_CRON_SCHEDULE must be provided")
	}

	if c.Digest.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvIntWithDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
