package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("GEMINI_API_KEY", "test-gemini-key")
	t.Setenv("BREVO_API_KEY", "test-brevo-key")
}

func TestLoad_MissingRequiredVars(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("BREVO_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "MONGO_URI")
	require.Contains(t, err.Error(), "GEMINI_API_KEY")
	require.Contains(t, err.Error(), "BREVO_API_KEY")
}

func TestLoad_DefaultsApplied(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_PORT", "")
	t.Setenv("FRONTEND_ORIGIN", "")
	t.Setenv("GEMINI_MODEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "5000", cfg.App.HTTPPort)
	require.Equal(t, "http://localhost:3000", cfg.App.FrontendOrigin)
	require.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	require.Equal(t, "career_assistant", cfg.Mongo.Database)
	require.Equal(t, "Career Assistant", cfg.Email.SenderName)
}

func TestLoad_ExplicitValuesWin(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("MONGO_DB", "careers_test")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.App.HTTPPort)
	require.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	require.Equal(t, "careers_test", cfg.Mongo.Database)
}
