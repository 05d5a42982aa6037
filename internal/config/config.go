package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable, e.g. SENTIMENT_PORT.
const Prefix = "SENTIMENT"

// Config represents application configuration. The sections are embedded
// so every variable sits directly under Prefix.
type Config struct {
	ServerConfig
	LexiconConfig
	LoggingConfig
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"PORT" default:"8080"`
	PublicURL       string        `envconfig:"PUBLIC_URL" required:"false"`
	MaxInputLength  int           `envconfig:"MAX_INPUT_LENGTH" default:"500"`
	GinMode         string        `envconfig:"GIN_MODE" default:"release"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"5s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// LexiconConfig points at optional replacement data files. Empty paths
// select the data bundled with the binary.
type LexiconConfig struct {
	Path        string `envconfig:"LEXICON_PATH" required:"false"`
	EmojiPath   string `envconfig:"EMOJI_PATH" required:"false"`
	OverlayPath string `envconfig:"LEXICON_OVERLAY" required:"false"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"console"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	if c.ServerConfig.Port < 1 || c.ServerConfig.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	if c.ServerConfig.MaxInputLength < 1 {
		return fmt.Errorf("max_input_length must be positive")
	}

	switch c.ServerConfig.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("gin_mode must be one of debug, release or test")
	}

	switch c.LoggingConfig.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn or error")
	}
	switch c.LoggingConfig.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log_format must be console or json")
	}

	if c.ServerConfig.ReadTimeout <= 0 || c.ServerConfig.WriteTimeout <= 0 || c.ServerConfig.ShutdownTimeout <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}

	return nil
}

// Addr returns the listen address of the HTTP server.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// BaseURL returns the URL clients use to reach the server. PublicURL wins
// when set.
func (c *ServerConfig) BaseURL() string {
	if c.PublicURL != "" {
		return c.PublicURL
	}
	host := c.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(c.Port))
}
