package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"advocates/internal/eventbus"
)

// ErrInvalidConfig is returned when a configuration fails validation
var ErrInvalidConfig = errors.New("invalid config")

// Duration is a time.Duration written as "300ms" in TOML
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the standard library duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config represents the application configuration
type Config struct {
	Version int           `toml:"version"`
	Source  SourceConfig  `toml:"source"`
	Search  SearchConfig  `toml:"search"`
	UI      UISettings    `toml:"ui"`
	Logging LoggingConfig `toml:"logging"`
	Server  ServerConfig  `toml:"server"`
}

// SourceConfig selects where the advocate dataset comes from.
// File wins over URL when both are set.
type SourceConfig struct {
	URL     string   `toml:"url"`
	File    string   `toml:"file"`
	Timeout Duration `toml:"timeout"`
}

// SearchConfig holds search behaviour settings
type SearchConfig struct {
	Debounce Duration `toml:"debounce"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AltScreen bool `toml:"alt_screen"`
	ShowHelp  bool `toml:"show_help"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
	File  string `toml:"file"`  // TUI log file; the terminal belongs to the UI
	Env   string `toml:"env"`   // prod or dev
}

// ServerConfig holds settings for the advocates API server
type ServerConfig struct {
	Addr            string   `toml:"addr"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "advocates", "config.toml")
}

// NewConfigService creates a config service for the default path
func NewConfigService() ConfigService {
	return NewConfigServiceAt(DefaultPath())
}

// NewConfigServiceAt creates a config service bound to a specific file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigServiceAt(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path.
// Keys absent from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Source: SourceConfig{
			URL:     "http://localhost:3000/api/advocates",
			Timeout: Duration(10 * time.Second),
		},
		Search: SearchConfig{
			Debounce: Duration(300 * time.Millisecond),
		},
		UI: UISettings{
			AltScreen: true,
			ShowHelp:  true,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "advocates.log",
			Env:   "dev",
		},
		Server: ServerConfig{
			Addr:            ":3000",
			ReadTimeout:     Duration(5 * time.Second),
			WriteTimeout:    Duration(10 * time.Second),
			ShutdownTimeout: Duration(5 * time.Second),
		},
	}
}

// Validate checks the configuration for values the application cannot run with
func (c *Config) Validate() error {
	if c.Search.Debounce <= 0 {
		return fmt.Errorf("%w: search.debounce must be positive, got %s", ErrInvalidConfig, c.Search.Debounce.Std())
	}
	if c.Source.Timeout < 0 {
		return fmt.Errorf("%w: source.timeout must not be negative", ErrInvalidConfig)
	}
	if c.Source.File == "" {
		if c.Source.URL == "" {
			return fmt.Errorf("%w: one of source.url or source.file is required", ErrInvalidConfig)
		}
		u, err := url.Parse(c.Source.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: source.url %q is not an absolute URL", ErrInvalidConfig, c.Source.URL)
		}
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	switch c.Logging.Env {
	case "", "dev", "prod":
	default:
		return fmt.Errorf("%w: logging.env %q", ErrInvalidConfig, c.Logging.Env)
	}
	return nil
}
