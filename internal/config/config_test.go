package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ManifestPath != "assets/manifest.yaml" {
		t.Errorf("expected default manifest path, got %s", cfg.ManifestPath)
	}
	if cfg.HTTPPort != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.HTTPPort)
	}
	if cfg.SpeechRate != 0.85 {
		t.Errorf("expected default rate 0.85, got %f", cfg.SpeechRate)
	}
	if cfg.SpeechPitch != 1.1 {
		t.Errorf("expected default pitch 1.1, got %f", cfg.SpeechPitch)
	}
	if cfg.SpeechVolume != 1.0 {
		t.Errorf("expected default volume 1.0, got %f", cfg.SpeechVolume)
	}
	if cfg.SpeechLang != "en-US" {
		t.Errorf("expected default lang en-US, got %s", cfg.SpeechLang)
	}
	if cfg.PollInterval != 200*time.Millisecond {
		t.Errorf("expected default poll interval 200ms, got %v", cfg.PollInterval)
	}
	if cfg.SplashDelay != 2200*time.Millisecond {
		t.Errorf("expected default splash delay 2.2s, got %v", cfg.SplashDelay)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("expected default log format text, got %s", cfg.LogFormat)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MANIFEST_PATH", "/data/words.yaml")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SPEECH_RATE", "1.2")
	t.Setenv("SPLASH_DELAY", "500ms")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ManifestPath != "/data/words.yaml" {
		t.Errorf("expected overridden manifest path, got %s", cfg.ManifestPath)
	}
	if cfg.HTTPPort != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.HTTPPort)
	}
	if cfg.SpeechRate != 1.2 {
		t.Errorf("expected rate 1.2, got %f", cfg.SpeechRate)
	}
	if cfg.SplashDelay != 500*time.Millisecond {
		t.Errorf("expected splash delay 500ms, got %v", cfg.SplashDelay)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("expected log format json, got %s", cfg.LogFormat)
	}
}

func TestLoad_InvalidEnvFallsBackToDefault(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-number")
	t.Setenv("SPEECH_RATE", "fast")
	t.Setenv("SPLASH_DELAY", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPPort != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.HTTPPort)
	}
	if cfg.SpeechRate != 0.85 {
		t.Errorf("expected default rate 0.85, got %f", cfg.SpeechRate)
	}
	if cfg.SplashDelay != 2200*time.Millisecond {
		t.Errorf("expected default splash delay, got %v", cfg.SplashDelay)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			ManifestPath: "assets/manifest.yaml",
			HTTPPort:     8080,
			SpeechRate:   0.85,
			SpeechPitch:  1.1,
			SpeechVolume: 1.0,
			PollInterval: 200 * time.Millisecond,
			SplashDelay:  2200 * time.Millisecond,
			LogLevel:     "info",
			LogFormat:    "text",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty manifest path", func(c *Config) { c.ManifestPath = "" }, true},
		{"port too low", func(c *Config) { c.HTTPPort = 0 }, true},
		{"port too high", func(c *Config) { c.HTTPPort = 70000 }, true},
		{"zero rate", func(c *Config) { c.SpeechRate = 0 }, true},
		{"negative pitch", func(c *Config) { c.SpeechPitch = -1 }, true},
		{"volume above one", func(c *Config) { c.SpeechVolume = 1.5 }, true},
		{"zero poll interval", func(c *Config) { c.PollInterval = 0 }, true},
		{"negative splash delay", func(c *Config) { c.SplashDelay = -time.Second }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, true},
		{"auto log format", func(c *Config) { c.LogFormat = "auto" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAuthDisabled(t *testing.T) {
	cfg := &Config{}
	if !cfg.AuthDisabled() {
		t.Error("expected auth disabled with empty token")
	}

	cfg.BearerToken = "secret"
	if cfg.AuthDisabled() {
		t.Error("expected auth enabled with token set")
	}
}
