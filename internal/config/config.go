package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"

	DefaultGroqModel   = "llama-3.1-8b-instant"
	DefaultGeminiModel = "gemini-1.5-flash"
)

type Config struct {
	// Server
	Port     string `env:"PORT"      envDefault:"8080"`
	Env      string `env:"ENV"       envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LLM provider
	Provider     string `env:"LLM_PROVIDER" envDefault:"groq"`
	BaseURL      string `env:"LLM_BASE_URL"`
	Model        string `env:"LLM_MODEL"`
	GroqAPIKey   string `env:"GROQ_API_KEY"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	// Redis (optional, shares the in-flight guard between instances)
	RedisURL string `env:"REDIS_URL"`

	// Requests per minute per client IP on the summarize routes
	SummarizeRateLimit int `env:"SUMMARIZE_RATE_LIMIT" envDefault:"20"`
}

// Error reports a configuration problem that prevents the summarizer from
// being used. The server still starts so the page can show it.
type Error struct {
	Key     string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	return parse(env.Options{})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if err := cfg.validate(); err != nil {
		return &cfg, err
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel(cfg.Provider)
	}

	return &cfg, nil
}

// APIKey returns the credential of the selected provider.
func (c *Config) APIKey() string {
	if c.Provider == ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.GroqAPIKey
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) validate() error {
	switch c.Provider {
	case ProviderGroq:
		if c.GroqAPIKey == "" {
			return &Error{Key: "GROQ_API_KEY", Message: "GROQ_API_KEY is not set in your environment. Please add it to your .env file."}
		}
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return &Error{Key: "GEMINI_API_KEY", Message: "GEMINI_API_KEY is not set in your environment. Please add it to your .env file."}
		}
	default:
		return &Error{Key: "LLM_PROVIDER", Message: fmt.Sprintf("LLM_PROVIDER %q is not supported. Use %q or %q.", c.Provider, ProviderGroq, ProviderGemini)}
	}
	return nil
}

func defaultModel(provider string) string {
	if provider == ProviderGemini {
		return DefaultGeminiModel
	}
	return DefaultGroqModel
}
