package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Version     int            `toml:"version"`
	DatasetPath string         `toml:"dataset_path,omitempty"` // empty means the built-in people
	Search      SearchSettings `toml:"search"`
	UISettings  UISettings     `toml:"ui"`
}

// SearchSettings controls the type-ahead behaviour
type SearchSettings struct {
	DebounceMS     int    `toml:"debounce_ms"`
	BlurGraceMS    int    `toml:"blur_grace_ms"`
	MaxSuggestions int    `toml:"max_suggestions"` // 0 shows every match
	Placeholder    string `toml:"placeholder"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelp bool `toml:"show_help"`
}

// Debounce returns the quiescence window before a query is committed
func (s SearchSettings) Debounce() time.Duration {
	return time.Duration(s.DebounceMS) * time.Millisecond
}

// BlurGrace returns the delay before the dropdown closes on blur
func (s SearchSettings) BlurGrace() time.Duration {
	return time.Duration(s.BlurGraceMS) * time.Millisecond
}

// Validate checks that the configuration values are usable
func (c *Config) Validate() error {
	if c.Search.DebounceMS < 0 {
		return fmt.Errorf("search.debounce_ms must not be negative, got %d", c.Search.DebounceMS)
	}
	if c.Search.BlurGraceMS < 0 {
		return fmt.Errorf("search.blur_grace_ms must not be negative, got %d", c.Search.BlurGraceMS)
	}
	if c.Search.MaxSuggestions < 0 {
		return fmt.Errorf("search.max_suggestions must not be negative, got %d", c.Search.MaxSuggestions)
	}
	return nil
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
	filePath string
}

// NewConfigService creates a config service rooted in the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "peoplefinder", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service bound to a specific file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when
// the file does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys missing
// from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
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

// LoadOrCreate loads the service's config file. When there is none yet
// the defaults are written there first, so users have a file to edit. A
// failed write is logged and the defaults are still returned.
func LoadOrCreate(svc ConfigService) (*Config, error) {
	if _, err := os.Stat(svc.Path()); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := svc.Save(cfg); err != nil {
			log.Printf("Failed to save config: %v", err)
			return cfg, nil
		}
		log.Printf("Created config at %s", svc.Path())
	}
	return svc.Load()
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Search: SearchSettings{
			DebounceMS:  300,
			BlurGraceMS: 100,
			Placeholder: "Enter a part of the name",
		},
		UISettings: UISettings{
			ShowHelp: true,
		},
	}
}
