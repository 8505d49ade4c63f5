package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything read from the environment. It is built once at
// process start and passed into the services; nothing re-reads the
// environment per request.
type Config struct {
	// Record store credentials.
	AirtableToken  string
	AirtableBaseID string

	// Destination of the analysis workflow webhook.
	WebhookURL string

	Port string

	// Applied to every outbound call (record store and webhook).
	OutboundTimeout time.Duration

	// Permissive CORS is the default because the public frontend is served
	// from another origin. Deployments can tighten it via env.
	AllowAllOrigins  bool
	AllowCredentials bool

	// Debug gates the config-presence route. Never on by default.
	Debug bool
}

func Load() *Config {
	cfg := &Config{
		AirtableToken:    os.Getenv("AIRTABLE_TOKEN"),
		AirtableBaseID:   os.Getenv("AIRTABLE_BASE_ID"),
		WebhookURL:       os.Getenv("ANALYSIS_WEBHOOK_URL"),
		Port:             os.Getenv("PORT"),
		OutboundTimeout:  30 * time.Second,
		AllowAllOrigins:  true,
		AllowCredentials: true,
		Debug:            os.Getenv("APP_DEBUG") == "true",
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if v := os.Getenv("OUTBOUND_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.OutboundTimeout = time.Duration(secs) * time.Second
		}
	}

	if v := os.Getenv("CORS_ALLOW_ALL_ORIGINS"); v != "" {
		cfg.AllowAllOrigins = v == "true"
	}
	if v := os.Getenv("CORS_ALLOW_CREDENTIALS"); v != "" {
		cfg.AllowCredentials = v == "true"
	}

	return cfg
}
