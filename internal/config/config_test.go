// README: Config loader tests.
package config

import (
	"testing"
	"time"
)

func TestLoadRequiresGeminiKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error when GEMINI_API_KEY is unset")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("WANDERPLAN_HTTP_ADDR", "")
	t.Setenv("WANDERPLAN_AI_MAX_RETRIES", "")
	t.Setenv("WANDERPLAN_AI_RETRY_DELAY_MS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("HTTP.Addr = %q", cfg.HTTP.Addr)
	}
	if cfg.AI.MaxRetries != 3 {
		t.Errorf("AI.MaxRetries = %d, want 3", cfg.AI.MaxRetries)
	}
	if cfg.AI.InitialDelay != 2*time.Second {
		t.Errorf("AI.InitialDelay = %s, want 2s", cfg.AI.InitialDelay)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("WANDERPLAN_AI_MAX_RETRIES", "5")
	t.Setenv("WANDERPLAN_AI_RETRY_DELAY_MS", "250")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AI.MaxRetries != 5 {
		t.Errorf("AI.MaxRetries = %d, want 5", cfg.AI.MaxRetries)
	}
	if cfg.AI.InitialDelay != 250*time.Millisecond {
		t.Errorf("AI.InitialDelay = %s, want 250ms", cfg.AI.InitialDelay)
	}
}
