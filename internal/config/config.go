// Package config loads the uszipcode command line configuration.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/andreiashu/uszipcode"
)

// Config holds the command line configuration.
type Config struct {
	// Dataset configuration
	DBFilePath    string `envconfig:"USZIPCODE_DB_FILE" yaml:"db_file"`
	DownloadURL   string `envconfig:"USZIPCODE_DOWNLOAD_URL" yaml:"download_url"`
	Comprehensive bool   `envconfig:"USZIPCODE_COMPREHENSIVE" yaml:"comprehensive"`

	// Search defaults
	Search SearchConfig `yaml:"search"`

	// Logging configuration
	Log LogConfig `yaml:"log"`
}

// SearchConfig holds defaults for search commands.
type SearchConfig struct {
	MinSimilarity int     `envconfig:"USZIPCODE_MIN_SIMILARITY" yaml:"min_similarity"`
	Returns       int     `envconfig:"USZIPCODE_RETURNS" yaml:"returns"`
	Radius        float64 `envconfig:"USZIPCODE_RADIUS" yaml:"radius"`
	ZipcodeType   string  `envconfig:"USZIPCODE_ZIPCODE_TYPE" yaml:"zipcode_type"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `envconfig:"USZIPCODE_LOG_LEVEL" yaml:"level"`
	Format string `envconfig:"USZIPCODE_LOG_FORMAT" yaml:"format"`
}

// Load loads configuration from defaults, then the YAML file at configPath
// (if any), then the environment.
func Load(configPath string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("processing env config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func setDefaults(cfg *Config) {
	cfg.Search = SearchConfig{
		MinSimilarity: uszipcode.DefaultMinSimilarity,
		Returns:       uszipcode.DefaultLimit,
		Radius:        uszipcode.DefaultSearchRadius,
		ZipcodeType:   string(uszipcode.Standard),
	}
	cfg.Log = LogConfig{
		Level:  "warn",
		Format: "text",
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var errs []string

	if c.Search.MinSimilarity < 0 || c.Search.MinSimilarity > 100 {
		errs = append(errs, "min_similarity must be between 0 and 100")
	}
	if c.Search.Returns < 0 {
		errs = append(errs, "returns must not be negative")
	}
	if c.Search.Radius <= 0 {
		errs = append(errs, "radius must be positive")
	}
	if _, err := uszipcode.ParseZipcodeType(c.Search.ZipcodeType); err != nil {
		errs = append(errs, fmt.Sprintf("invalid zipcode_type: %s", c.Search.ZipcodeType))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("invalid log level: %s (must be debug, info, warn, or error)", c.Log.Level))
	}
	validFormats := map[string]bool{"text": true, "json": true, "auto": true}
	if !validFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("invalid log format: %s (must be text, json, or auto)", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// ZipcodeType returns the parsed default zipcode type.
func (c *Config) ZipcodeType() uszipcode.ZipcodeType {
	t, _ := uszipcode.ParseZipcodeType(c.Search.ZipcodeType)
	return t
}

// NewLogger builds the slog logger described by the log settings.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	switch c.Log.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.logFormat(w) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// logFormat resolves "auto" to text on a terminal and json otherwise.
func (c *Config) logFormat(w io.Writer) string {
	if c.Log.Format != "auto" {
		return c.Log.Format
	}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return "text"
	}
	return "json"
}

// EngineOptions translates the configuration into search engine options.
func (c *Config) EngineOptions(logger *slog.Logger) []uszipcode.Option {
	opts := []uszipcode.Option{
		uszipcode.WithMinSimilarity(c.Search.MinSimilarity),
		uszipcode.WithLogger(logger),
	}
	if c.DBFilePath != "" {
		opts = append(opts, uszipcode.WithDBFilePath(c.DBFilePath))
	}
	if c.DownloadURL != "" {
		opts = append(opts, uszipcode.WithDownloadURL(c.DownloadURL))
	}
	if c.Comprehensive {
		opts = append(opts, uszipcode.WithComprehensive())
	}
	return opts
}
