package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port         string `mapstructure:"PORT"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	SessionName  string `mapstructure:"SESSION_NAME"`
	Secret       string `mapstructure:"SESSION_SECRET"`
	SiteURL      string `mapstructure:"SITE_URL"`
	PostsPerPage int    `mapstructure:"POSTS_PER_PAGE"`
	CacheTTLSecs int    `mapstructure:"CACHE_TTL_SECONDS"`
	MediaDir     string `mapstructure:"MEDIA_DIR"`
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     string `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPass     string `mapstructure:"SMTP_PASS"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`
}

var loaded *Config

// Get returns the process-wide config, reading the environment on first use.
// cmd/server loads .env beforehand so env vars are already populated.
func Get() *Config {
	if loaded == nil {
		loaded = load()
	}
	return loaded
}

func load() *Config {
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_URL",
		"host=localhost user=postgres password=postgres dbname=yatube port=5432 sslmode=disable")
	viper.SetDefault("SESSION_NAME", "yatube_session")
	viper.SetDefault("SESSION_SECRET", "secret_key_change_me")
	viper.SetDefault("SITE_URL", "http://localhost:8080")
	viper.SetDefault("POSTS_PER_PAGE", 10)
	viper.SetDefault("CACHE_TTL_SECONDS", 20)
	viper.SetDefault("MEDIA_DIR", "./media")

	// viper only unmarshals env-backed keys that have defaults or were bound;
	// SMTP settings have no sane defaults, so bind them explicitly.
	for _, key := range []string{"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "SMTP_FROM"} {
		if err := viper.BindEnv(key); err != nil {
			log.Fatalf("Failed to bind env var %s: %v", key, err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("Unable to decode config into struct, %v", err)
	}

	return &cfg
}

// CacheTTL is the page-cache entry lifetime.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSecs) * time.Second
}
