package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultPath is where the optional JSON config is looked up.
const DefaultPath = "config/config.json"

// Config holds the service settings. Values come from the JSON file first,
// then environment variables override them.
type Config struct {
	LLM               LLMConfig   `json:"llm"`
	ServerAddr        string      `json:"server_addr,omitempty"`
	UnsplashAccessKey string      `json:"unsplash_access_key,omitempty"`
	Redis             RedisConfig `json:"redis"`
	RequestTimeout    Duration    `json:"request_timeout,omitempty"`
	LogLevel          string      `json:"log_level,omitempty"`
}

// LLMConfig selects the model provider.
type LLMConfig struct {
	Provider     string `json:"provider,omitempty"`
	Model        string `json:"model,omitempty"`
	UtilityModel string `json:"utility_model,omitempty"`
	APIKey       string `json:"api_key,omitempty"`
	BaseURL      string `json:"base_url,omitempty"`
}

// RedisConfig enables the image-search cache when Addr is set.
type RedisConfig struct {
	Addr     string   `json:"addr,omitempty"`
	Password string   `json:"password,omitempty"`
	DB       int      `json:"db,omitempty"`
	TTL      Duration `json:"ttl,omitempty"`
}

// Duration is a time.Duration that reads "90s"-style strings from JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string like \"30s\": %w", err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Load reads path (a missing file is fine), .env, and the environment.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := json.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.LLM.Provider, "LLM_PROVIDER")
	setString(&c.LLM.Model, "LLM_MODEL")
	setString(&c.LLM.UtilityModel, "LLM_UTILITY_MODEL")
	setString(&c.LLM.BaseURL, "LLM_BASE_URL")
	setString(&c.UnsplashAccessKey, "UNSPLASH_ACCESS_KEY")
	setString(&c.Redis.Addr, "REDIS_ADDR")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	setString(&c.ServerAddr, "SERVER_ADDR")
	setString(&c.LogLevel, "LOG_LEVEL")

	// provider-specific credential only when none was configured explicitly
	if c.LLM.APIKey == "" {
		key := "OPENAI_API_KEY"
		if strings.EqualFold(c.LLM.Provider, "gemini") {
			key = "GEMINI_API_KEY"
		}
		setString(&c.LLM.APIKey, key)
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		c.Redis.DB = n
	}
	if err := setDuration(&c.Redis.TTL, "IMAGE_CACHE_TTL"); err != nil {
		return err
	}
	return setDuration(&c.RequestTimeout, "REQUEST_TIMEOUT")
}

func (c *Config) applyDefaults() {
	if c.LLM.Provider == "" {
		c.LLM.Provider = "openai"
	}
	c.LLM.Provider = strings.ToLower(c.LLM.Provider)
	if c.LLM.UtilityModel == "" {
		switch c.LLM.Provider {
		case "gemini":
			c.LLM.UtilityModel = "gemini-2.5-flash-lite"
		case "deepseek":
			c.LLM.UtilityModel = "deepseek-chat"
		default:
			c.LLM.UtilityModel = "gpt-4o-mini"
		}
	}
	if c.ServerAddr == "" {
		c.ServerAddr = ":8080"
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = Duration(5 * time.Minute)
	}
	if c.Redis.TTL <= 0 {
		c.Redis.TTL = Duration(24 * time.Hour)
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks that the selected provider can be reached.
func (c Config) Validate() error {
	switch c.LLM.Provider {
	case "mock":
		return nil
	case "openai", "gemini":
	case "deepseek":
		// DeepSeek 은 OpenAI 호환 엔드포인트라 base_url 이 필요하다.
		if c.LLM.BaseURL == "" {
			return errors.New("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
	default:
		return fmt.Errorf("llm provider %s not supported", c.LLM.Provider)
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("API key missing for llm provider %s; set llm.api_key or the provider env var", c.LLM.Provider)
	}
	return nil
}

// ProviderName is the display name used in client-facing error messages.
func (c Config) ProviderName() string {
	switch c.LLM.Provider {
	case "gemini":
		return "Gemini"
	case "deepseek":
		return "DeepSeek"
	default:
		return "OpenAI"
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = Duration(d)
	return nil
}
