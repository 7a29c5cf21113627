package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"gamestore/gamebot/internal/app/config"
)

func TestConfigCmdMasksSecrets(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-live")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("WEB_ROUTER", "query")
	viper.Reset()

	var out bytes.Buffer
	ConfigCmd.SetOut(&out)
	require.NoError(t, ConfigCmd.RunE(ConfigCmd, nil))

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &cfg))
	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.Equal(t, "query", cfg.WebRouter)
	assert.Equal(t, "***", cfg.OpenAIAPIKey)
	assert.NotContains(t, out.String(), "sk-live")
}

func TestMask(t *testing.T) {
	assert.Equal(t, "", mask(""))
	assert.Equal(t, "***", mask("secret"))
}
