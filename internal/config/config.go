package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates every setting the service reads from the environment.
type Config struct {
	Server    ServerConfig
	AI        AIConfig
	Database  DatabaseConfig
	Storage   StorageConfig
	RateLimit RateLimitConfig
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	rateLimit, err := loadRateLimitConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:    server,
		AI:        ai,
		Database:  DatabaseConfig{URL: strings.TrimSpace(os.Getenv("DB_URL"))},
		Storage:   loadStorageConfig(),
		RateLimit: rateLimit,
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// ProviderConfig holds credentials for one chat-completion provider.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Enabled reports whether the provider has usable credentials.
func (p ProviderConfig) Enabled() bool {
	return p.APIKey != "" && p.Model != ""
}

// AIConfig describes the model provider chain. Anthropic is tried first,
// then OpenAI.
type AIConfig struct {
	Anthropic   ProviderConfig
	OpenAI      ProviderConfig
	MaxTokens   int
	Temperature *float64
}

// Enabled reports whether at least one provider is configured.
func (c AIConfig) Enabled() bool {
	return c.Anthropic.Enabled() || c.OpenAI.Enabled()
}

func loadAIConfig() (AIConfig, error) {
	temperature, err := parseOptionalFloatEnv("AI_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}

	maxTokens := 1024
	if override, err := parseOptionalIntEnv("AI_MAX_TOKENS"); err != nil {
		return AIConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return AIConfig{}, fmt.Errorf("AI_MAX_TOKENS must be positive, got %d", *override)
		}
		maxTokens = *override
	}

	return AIConfig{
		Anthropic: ProviderConfig{
			APIKey:  strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")),
			Model:   getEnvOrDefault("ANTHROPIC_MODEL", "claude-3-5-sonnet-20241022"),
			BaseURL: strings.TrimSpace(os.Getenv("ANTHROPIC_BASE_URL")),
		},
		OpenAI: ProviderConfig{
			APIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
			Model:   getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
			BaseURL: strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}, nil
}

// DatabaseConfig selects the session store backend. An empty URL keeps the
// in-memory store.
type DatabaseConfig struct {
	URL string
}

// StorageConfig describes the R2-compatible bucket for rendered resumes.
type StorageConfig struct {
	AccountID string
	AccessKey string
	SecretKey string
	Bucket    string
}

// Enabled reports whether every storage credential is present.
func (c StorageConfig) Enabled() bool {
	return c.AccountID != "" && c.AccessKey != "" && c.SecretKey != "" && c.Bucket != ""
}

func loadStorageConfig() StorageConfig {
	return StorageConfig{
		AccountID: strings.TrimSpace(os.Getenv("R2_ACCOUNT_ID")),
		AccessKey: strings.TrimSpace(os.Getenv("R2_ACCESS_KEY_ID")),
		SecretKey: strings.TrimSpace(os.Getenv("R2_SECRET_ACCESS_KEY")),
		Bucket:    strings.TrimSpace(os.Getenv("R2_BUCKET_NAME")),
	}
}

// RateLimitConfig bounds requests per client IP within a sliding window.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

func loadRateLimitConfig() (RateLimitConfig, error) {
	requests := 60
	if override, err := parseOptionalIntEnv("RATE_LIMIT_REQUESTS"); err != nil {
		return RateLimitConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return RateLimitConfig{}, fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", *override)
		}
		requests = *override
	}

	window := time.Minute
	if override, err := parseOptionalIntEnv("RATE_LIMIT_WINDOW_SECONDS"); err != nil {
		return RateLimitConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return RateLimitConfig{}, fmt.Errorf("RATE_LIMIT_WINDOW_SECONDS must be positive, got %d", *override)
		}
		window = time.Duration(*override) * time.Second
	}

	return RateLimitConfig{Requests: requests, Window: window}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
