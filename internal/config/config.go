package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

type Config struct {
	App    AppConfig
	Mongo  MongoConfig
	Gemini GeminiConfig
	Email  EmailConfig
}

type AppConfig struct {
	AppName        string
	Environment    string
	HTTPPort       string
	FrontendOrigin string
}

type MongoConfig struct {
	URI      string
	Database string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type EmailConfig struct {
	BrevoAPIKey   string
	SenderName    string
	SenderAddress string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:        opt("APP_NAME", "career-assistant"),
		Environment:    opt("APP_ENV", "production"),
		HTTPPort:       opt("HTTP_PORT", "5000"),
		FrontendOrigin: opt("FRONTEND_ORIGIN", "http://localhost:3000"),
	}

	cfg.Mongo = MongoConfig{
		URI:      req("MONGO_URI"),
		Database: opt("MONGO_DB", "career_assistant"),
	}

	cfg.Gemini = GeminiConfig{
		APIKey: req("GEMINI_API_KEY"),
		Model:  opt("GEMINI_MODEL", "gemini-2.0-flash"),
	}

	cfg.Email = EmailConfig{
		BrevoAPIKey:   req("BREVO_API_KEY"),
		SenderName:    opt("EMAIL_SENDER_NAME", "Career Assistant"),
		SenderAddress: opt("EMAIL_SENDER_ADDRESS", "no-reply@career-assistant.app"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}
