package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonathan/remote-pathfinder/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"api_key": "file-key",
		"provider": "genai",
		"model": "gemini-2.5-pro",
		"port": 9090,
		"loose_validation": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "genai", cfg.Provider)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.LooseValidation)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644))

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "empty config", cfg: Config{}},
		{name: "full config", cfg: Config{Provider: "gemini", Tier: "advanced", Port: 8080, Temperature: 0.7, ShutdownTimeout: "10s"}},
		{name: "unknown provider", cfg: Config{Provider: "openai"}, wantErr: "unknown LLM provider"},
		{name: "unknown tier", cfg: Config{Tier: "ultra"}, wantErr: "unknown tier"},
		{name: "bad port", cfg: Config{Port: 70000}, wantErr: "'port'"},
		{name: "bad temperature", cfg: Config{Temperature: 3}, wantErr: "'temperature'"},
		{name: "bad shutdown timeout", cfg: Config{ShutdownTimeout: "soon"}, wantErr: "'shutdown_timeout'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		APIKey:          "env-key",
		Provider:        "gemini",
		Port:            8080,
		AllowOrigin:     "*",
		ShutdownTimeout: "30s",
		LooseValidation: true,
	}

	partial := Config{
		Model: "gemini-2.5-pro",
		Port:  9090,
	}

	merged := partial.MergeWithDefaults(defaults)

	assert.Equal(t, "gemini-2.5-pro", merged.Model)
	assert.Equal(t, 9090, merged.Port)
	assert.Equal(t, "env-key", merged.APIKey)
	assert.Equal(t, "gemini", merged.Provider)
	assert.Equal(t, "*", merged.AllowOrigin)
	assert.True(t, merged.LooseValidation)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{APIKey: "k", Port: 1234}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "k", merged.APIKey)
	assert.Equal(t, 1234, merged.Port)
	assert.False(t, merged.LooseValidation)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvProvider, "genai")
	t.Setenv(EnvModel, "gemini-2.5-flash-lite")
	t.Setenv(EnvPort, "3000")
	t.Setenv(EnvLooseValidation, "true")
	t.Setenv(EnvAllowOrigin, "https://pathfinder.example")
	t.Setenv(EnvShutdownTimeout, "")

	cfg := FromEnv()

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "genai", cfg.Provider)
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.Model)
	assert.Equal(t, 3000, cfg.Port)
	assert.True(t, cfg.LooseValidation)
	assert.Equal(t, "https://pathfinder.example", cfg.AllowOrigin)
	assert.Equal(t, "30s", cfg.ShutdownTimeout)
}

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{EnvAPIKey, EnvProvider, EnvModel, EnvTier, EnvPort, EnvLooseValidation, EnvAllowOrigin, EnvShutdownTimeout} {
		t.Setenv(key, "")
	}
	t.Setenv(EnvPort, "not-a-number")

	cfg := FromEnv()

	assert.Equal(t, "", cfg.APIKey)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.False(t, cfg.LooseValidation)
	assert.Equal(t, "*", cfg.AllowOrigin)
}

func TestLLMConfig(t *testing.T) {
	cfg := Config{Provider: "genai", Model: "gemini-2.5-pro", Temperature: 0.2}

	llmCfg := cfg.LLMConfig()

	assert.Equal(t, llm.ProviderGenAI, llmCfg.Provider)
	assert.Equal(t, "gemini-2.5-pro", llmCfg.GetModel(llm.TierStandard))
	assert.Equal(t, "gemini-2.5-flash-lite", llmCfg.GetModel(llm.TierLite))
	assert.Equal(t, float32(0.2), llmCfg.Temperature)
}

func TestLLMConfig_ModelOnConfiguredTier(t *testing.T) {
	cfg := Config{Model: "custom", Tier: "advanced"}

	llmCfg := cfg.LLMConfig()

	assert.Equal(t, llm.ProviderGemini, llmCfg.Provider)
	assert.Equal(t, "custom", llmCfg.GetModel(llm.TierAdvanced))
	assert.Equal(t, llm.DefaultModel, llmCfg.GetModel(llm.TierStandard))
	assert.Equal(t, llm.TierAdvanced, cfg.ModelTier())
}

func TestShutdownDuration(t *testing.T) {
	assert.Equal(t, 5*time.Second, (&Config{ShutdownTimeout: "5s"}).ShutdownDuration())
	assert.Equal(t, 30*time.Second, (&Config{}).ShutdownDuration())
	assert.Equal(t, 30*time.Second, (&Config{ShutdownTimeout: "bad"}).ShutdownDuration())
}
