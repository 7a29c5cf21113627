package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "genre", cfg.WebRouter)
	assert.Equal(t, "xlsx", cfg.DatasetSource)
	assert.Equal(t, "games.xlsx", cfg.DatasetPath)
	assert.Equal(t, "ollama", cfg.LLMProvider)
	assert.Equal(t, "llama3", cfg.OllamaModel)
	assert.Equal(t, 2*time.Minute, cfg.LLMTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("WEB_ROUTER", "Query")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LLM_TIMEOUT", "15s")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "query", cfg.WebRouter)
	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.Equal(t, 15*time.Second, cfg.LLMTimeout)
}

func TestLoadFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gamebot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dataset_path: /data/listings.xlsx\nollama_model: mistral\n"), 0o644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "/data/listings.xlsx", cfg.DatasetPath)
	assert.Equal(t, "mistral", cfg.OllamaModel)
}

func TestLoadValidation(t *testing.T) {
	cases := map[string]map[string]string{
		"openai without key":   {"LLM_PROVIDER": "openai"},
		"postgres without dsn": {"DATASET_SOURCE": "postgres"},
		"unknown source":       {"DATASET_SOURCE": "csv"},
		"unknown router":       {"WEB_ROUTER": "smart"},
		"unknown provider":     {"LLM_PROVIDER": "t5"},
		"bad timeout":          {"LLM_TIMEOUT": "soon"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load(viper.New())
			assert.Error(t, err)
		})
	}
}
