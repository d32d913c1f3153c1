package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type SMTPConfig struct {
	Host          string
	Port          string
	User          string
	Pass          string
	From          string
	FromName      string
	TLSMode       string // "", "tls", "starttls"
	SkipVerifyTLS bool
}

type ChatConfig struct {
	Endpoint string // LLM completion endpoint; empty disables the chatbot
	APIKey   string
	Model    string
	Timeout  time.Duration
}

type Config struct {
	Addr       string
	DBDSN      string
	SessionTTL time.Duration

	SMTP SMTPConfig
	Chat ChatConfig
}

// Load reads configuration from the environment. The .env file, if any, is
// loaded by the caller before this runs.
func Load() (Config, error) {
	cfg := Config{
		Addr:       envOr("ADDR", ":8080"),
		DBDSN:      os.Getenv("DB_DSN"),
		SessionTTL: envDuration("SESSION_TTL", 7*24*time.Hour),
		SMTP: SMTPConfig{
			Host:          envOr("SMTP_HOST", "localhost"),
			Port:          envOr("SMTP_PORT", "1025"),
			User:          os.Getenv("SMTP_USER"),
			Pass:          os.Getenv("SMTP_PASS"),
			From:          envOr("SMTP_FROM", "no-reply@trendify.local"),
			FromName:      envOr("SMTP_FROM_NAME", "Trendify"),
			TLSMode:       os.Getenv("SMTP_TLS_MODE"),
			SkipVerifyTLS: envBool("SMTP_SKIP_VERIFY_TLS"),
		},
		Chat: ChatConfig{
			Endpoint: os.Getenv("CHAT_API_ENDPOINT"),
			APIKey:   os.Getenv("CHAT_API_KEY"),
			Model:    envOr("CHAT_MODEL", "gpt-4o-mini"),
			Timeout:  envDuration("CHAT_TIMEOUT", 30*time.Second),
		},
	}

	if cfg.DBDSN == "" {
		return Config{}, fmt.Errorf("config: DB_DSN is required")
	}
	return cfg, nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envBool(k string) bool {
	b, _ := strconv.ParseBool(os.Getenv(k))
	return b
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
