package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"LLM_PROVIDER", "LLM_MODEL", "LLM_UTILITY_MODEL", "LLM_BASE_URL",
	"OPENAI_API_KEY", "GEMINI_API_KEY", "UNSPLASH_ACCESS_KEY",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "IMAGE_CACHE_TTL",
	"SERVER_ADDR", "REQUEST_TIMEOUT", "LOG_LEVEL",
}

// clearEnv blanks every variable Load reads; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.UtilityModel)
	assert.Empty(t, cfg.LLM.Model)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, 5*time.Minute, cfg.RequestTimeout.Std())
	assert.Equal(t, 24*time.Hour, cfg.Redis.TTL.Std())
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_LogLevelFromFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(writeConfig(t, `{"log_level": "warn"}`))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `{
		"llm": {"provider": "OpenAI", "model": "gpt-5.2", "api_key": "file-key"},
		"server_addr": ":9000",
		"request_timeout": "90s",
		"redis": {"addr": "localhost:6379", "ttl": "1h"}
	}`)
	t.Setenv("SERVER_ADDR", ":9100")
	t.Setenv("OPENAI_API_KEY", "env-key")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-5.2", cfg.LLM.Model)
	// explicit key in the file wins over the provider env var
	assert.Equal(t, "file-key", cfg.LLM.APIKey)
	assert.Equal(t, ":9100", cfg.ServerAddr)
	assert.Equal(t, 90*time.Second, cfg.RequestTimeout.Std())
	assert.Equal(t, time.Hour, cfg.Redis.TTL.Std())
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestLoad_GeminiKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("OPENAI_API_KEY", "openai-key")
	t.Setenv("GEMINI_API_KEY", "gemini-key")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "gemini-key", cfg.LLM.APIKey)
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.LLM.UtilityModel)
	assert.Equal(t, "Gemini", cfg.ProviderName())
}

func TestLoad_DeepSeekUtilityModel(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "deepseek")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "deepseek-chat", cfg.LLM.UtilityModel)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("bad json", func(t *testing.T) {
		clearEnv(t)
		_, err := Load(writeConfig(t, `{"llm":`))
		assert.Error(t, err)
	})

	t.Run("bad duration", func(t *testing.T) {
		clearEnv(t)
		_, err := Load(writeConfig(t, `{"request_timeout": 30}`))
		assert.Error(t, err)
	})

	t.Run("bad env duration", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("REQUEST_TIMEOUT", "soon")
		_, err := Load("")
		assert.ErrorContains(t, err, "REQUEST_TIMEOUT")
	})

	t.Run("bad redis db", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("REDIS_DB", "one")
		_, err := Load("")
		assert.ErrorContains(t, err, "REDIS_DB")
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		llm     LLMConfig
		wantErr bool
	}{
		{"mock needs nothing", LLMConfig{Provider: "mock"}, false},
		{"openai with key", LLMConfig{Provider: "openai", APIKey: "k"}, false},
		{"openai without key", LLMConfig{Provider: "openai"}, true},
		{"deepseek without base url", LLMConfig{Provider: "deepseek", APIKey: "k"}, true},
		{"deepseek with base url", LLMConfig{Provider: "deepseek", APIKey: "k", BaseURL: "https://api.deepseek.com"}, false},
		{"unknown provider", LLMConfig{Provider: "claude", APIKey: "k"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Config{LLM: tt.llm}.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ProviderName(t *testing.T) {
	assert.Equal(t, "OpenAI", Config{LLM: LLMConfig{Provider: "openai"}}.ProviderName())
	assert.Equal(t, "DeepSeek", Config{LLM: LLMConfig{Provider: "deepseek"}}.ProviderName())
	assert.Equal(t, "OpenAI", Config{LLM: LLMConfig{Provider: "mock"}}.ProviderName())
}
