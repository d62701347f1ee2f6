package config

import (
	"errors"
	"testing"

	"github.com/caarlos0/env/v11"
)

func parseEnv(t *testing.T, vars map[string]string) (*Config, error) {
	t.Helper()
	return parse(env.Options{Environment: vars})
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := parseEnv(t, map[string]string{"GROQ_API_KEY": "gsk_test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected port 8080, got %q", cfg.Port)
	}
	if cfg.Provider != ProviderGroq {
		t.Errorf("Expected provider %q, got %q", ProviderGroq, cfg.Provider)
	}
	if cfg.Model != DefaultGroqModel {
		t.Errorf("Expected model %q, got %q", DefaultGroqModel, cfg.Model)
	}
	if cfg.SummarizeRateLimit != 20 {
		t.Errorf("Expected rate limit 20, got %d", cfg.SummarizeRateLimit)
	}
	if cfg.APIKey() != "gsk_test" {
		t.Errorf("Expected groq key, got %q", cfg.APIKey())
	}
}

func TestParse_MissingCredential(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		wantKey string
	}{
		{"groq default", map[string]string{}, "GROQ_API_KEY"},
		{"gemini selected", map[string]string{"LLM_PROVIDER": "gemini", "GROQ_API_KEY": "gsk"}, "GEMINI_API_KEY"},
		{"unknown provider", map[string]string{"LLM_PROVIDER": "other"}, "LLM_PROVIDER"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := parseEnv(t, tc.vars)

			var cfgErr *Error
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *config.Error, got %v", err)
			}
			if cfgErr.Key != tc.wantKey {
				t.Errorf("Expected key %q, got %q", tc.wantKey, cfgErr.Key)
			}
			if cfg == nil {
				t.Fatalf("expected partial config alongside the error")
			}
		})
	}
}

func TestParse_GeminiProvider(t *testing.T) {
	cfg, err := parseEnv(t, map[string]string{
		"LLM_PROVIDER":   " Gemini ",
		"GEMINI_API_KEY": "AIza-test",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Model != DefaultGeminiModel {
		t.Errorf("Expected model %q, got %q", DefaultGeminiModel, cfg.Model)
	}
	if cfg.APIKey() != "AIza-test" {
		t.Errorf("Expected gemini key, got %q", cfg.APIKey())
	}
}

func TestParse_ModelOverride(t *testing.T) {
	cfg, err := parseEnv(t, map[string]string{
		"GROQ_API_KEY": "gsk",
		"LLM_MODEL":    "llama-3.3-70b-versatile",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != "llama-3.3-70b-versatile" {
		t.Errorf("Expected overridden model, got %q", cfg.Model)
	}
}

func TestParse_InvalidRateLimit(t *testing.T) {
	_, err := parseEnv(t, map[string]string{
		"GROQ_API_KEY":         "gsk",
		"SUMMARIZE_RATE_LIMIT": "abc",
	})
	if err == nil {
		t.Fatal("Expected parse error for non-numeric rate limit")
	}

	var cfgErr *Error
	if errors.As(err, &cfgErr) {
		t.Fatalf("parse failures should not be reported as missing credentials")
	}
}

func TestIsProduction(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"", false},
		{"development", false},
		{"production", true},
	}

	for _, tc := range tests {
		vars := map[string]string{"GROQ_API_KEY": "gsk"}
		if tc.env != "" {
			vars["ENV"] = tc.env
		}
		cfg, err := parseEnv(t, vars)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := cfg.IsProduction(); got != tc.want {
			t.Errorf("ENV=%q: expected IsProduction %v, got %v", tc.env, tc.want, got)
		}
	}
}
