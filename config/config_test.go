package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docassist/docassist-be/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfigFile(t, "model: qwen2.5-7b-instruct\n")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, "exports", cfg.ExportDir)
	assert.Equal(t, "openai", cfg.AIProvider)
	assert.Equal(t, "qwen2.5-7b-instruct", cfg.Model)

	assert.Equal(t, 500, cfg.Summary.MaxChunkSize)
	assert.Equal(t, 50, cfg.Summary.OverlapSize)
	assert.Equal(t, 60, cfg.Summary.TimeoutSeconds)
	assert.Equal(t, 1000, cfg.Answer.MaxChunkSize)
	assert.Equal(t, 100, cfg.Answer.OverlapSize)
	assert.Equal(t, 30, cfg.Answer.TimeoutSeconds)
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
port: "9090"
ai_provider: gemini
gemini_api_keys:
  - key-one
  - key-two
summary:
  max_chunk_size: 800
  overlap_size: 80
  timeout_seconds: 90
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "gemini", cfg.AIProvider)
	assert.Equal(t, []string{"key-one", "key-two"}, cfg.GeminiAPIKeys)
	assert.Equal(t, 800, cfg.Summary.MaxChunkSize)
	assert.Equal(t, 80, cfg.Summary.OverlapSize)
	assert.Equal(t, 90, cfg.Summary.TimeoutSeconds)
	// Untouched section keeps its defaults.
	assert.Equal(t, 1000, cfg.Answer.MaxChunkSize)
}

func TestLoadConfig_ReadsSecretsFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	path := writeConfigFile(t, "model: test-model\n")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}
