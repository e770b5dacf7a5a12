package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// Catalog settings
	ManifestPath string

	// HTTP settings
	HTTPPort    int
	BearerToken string

	// Speech settings
	EspeakPath     string
	PreferredVoice string
	SpeechLang     string
	SpeechRate     float64
	SpeechPitch    float64
	SpeechVolume   float64
	PollInterval   time.Duration

	// Navigation settings
	SplashDelay time.Duration

	// Logging settings
	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables with sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		// Catalog settings
		ManifestPath: getEnvString("MANIFEST_PATH", "assets/manifest.yaml"),

		// HTTP settings
		HTTPPort:    getEnvInt("HTTP_PORT", 8080),
		BearerToken: os.Getenv("BEARER_TOKEN"),

		// Speech settings
		EspeakPath:     getEnvString("ESPEAK_PATH", "espeak-ng"),
		PreferredVoice: getEnvString("PREFERRED_VOICE", "Google US English"),
		SpeechLang:     getEnvString("SPEECH_LANG", "en-US"),
		SpeechRate:     getEnvFloat("SPEECH_RATE", 0.85),
		SpeechPitch:    getEnvFloat("SPEECH_PITCH", 1.1),
		SpeechVolume:   getEnvFloat("SPEECH_VOLUME", 1.0),
		PollInterval:   getEnvDuration("SPEAKING_POLL_INTERVAL", 200*time.Millisecond),

		// Navigation settings
		SplashDelay: getEnvDuration("SPLASH_DELAY", 2200*time.Millisecond),

		// Logging settings
		LogLevel:  getEnvString("LOG_LEVEL", "info"),
		LogFormat: getEnvString("LOG_FORMAT", "text"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// AuthDisabled returns true if bearer token authentication is disabled.
func (c *Config) AuthDisabled() bool {
	return c.BearerToken == ""
}

// Validate checks that configuration values are usable.
func (c *Config) Validate() error {
	if c.ManifestPath == "" {
		return errors.New("MANIFEST_PATH must not be empty")
	}

	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return errors.New("HTTP_PORT must be between 1 and 65535")
	}

	if c.SpeechRate <= 0 || c.SpeechRate > 4 {
		return errors.New("SPEECH_RATE must be in (0, 4]")
	}

	if c.SpeechPitch <= 0 || c.SpeechPitch > 2 {
		return errors.New("SPEECH_PITCH must be in (0, 2]")
	}

	if c.SpeechVolume < 0 || c.SpeechVolume > 1 {
		return errors.New("SPEECH_VOLUME must be in [0, 1]")
	}

	if c.PollInterval <= 0 {
		return errors.New("SPEAKING_POLL_INTERVAL must be positive")
	}

	if c.SplashDelay < 0 {
		return errors.New("SPLASH_DELAY must be non-negative")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		return errors.New("LOG_LEVEL must be one of: debug, info, warn, error")
	}

	validLogFormats := map[string]bool{"text": true, "json": true, "auto": true}
	if !validLogFormats[c.LogFormat] {
		return errors.New("LOG_FORMAT must be one of: text, json, auto")
	}

	return nil
}

// getEnvString returns the environment variable value or a default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the environment variable as an int or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvFloat returns the environment variable as a float64 or a default.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

// getEnvDuration returns the environment variable as a duration or a default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
