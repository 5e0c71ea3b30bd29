package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// DefaultBackendURL is the local development address of the catalog backend
const DefaultBackendURL = "http://localhost:8001"

// Environment variables read by ApplyEnv
const (
	EnvBackendURL = "BACKEND_URL"
	EnvTimeout    = "EXCELSEARCH_TIMEOUT"
	EnvLanguage   = "EXCELSEARCH_LANG"
	EnvLogFile    = "EXCELSEARCH_LOG_FILE"
	EnvStartDir   = "EXCELSEARCH_DIR"
)

// Config represents the application configuration
type Config struct {
	Version        int        `toml:"version"`
	BackendURL     string     `toml:"backend_url"`
	RequestTimeout string     `toml:"request_timeout"` // Go duration; "0" disables the deadline
	Language       string     `toml:"language"`        // "tr" or "en"
	StartDir       string     `toml:"start_dir"`       // where the file picker opens
	LogFile        string     `toml:"log_file"`
	UISettings     UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowProductCode bool `toml:"show_product_code"`
	ShowUploadDate  bool `toml:"show_upload_date"`
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

// NewConfigService creates a config service backed by the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "excelsearch", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service reading and writing path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to defaults when the file is missing
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys absent from the
// file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
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

// ApplyEnv overlays environment settings on cfg. Process environment wins
// over values read from envFiles; missing env files are skipped.
func ApplyEnv(cfg *Config, envFiles ...string) error {
	fileEnv := make(map[string]string)
	for _, f := range envFiles {
		values, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to read env file %s: %w", f, err)
		}
		for k, v := range values {
			if _, seen := fileEnv[k]; !seen {
				fileEnv[k] = v
			}
		}
	}

	lookup := func(key string) (string, bool) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v, true
		}
		v := strings.TrimSpace(fileEnv[key])
		return v, v != ""
	}

	if v, ok := lookup(EnvBackendURL); ok {
		cfg.BackendURL = v
	}
	if v, ok := lookup(EnvTimeout); ok {
		cfg.RequestTimeout = v
	}
	if v, ok := lookup(EnvLanguage); ok {
		cfg.Language = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup(EnvStartDir); ok {
		cfg.StartDir = v
	}
	return nil
}

// Timeout returns the parsed request timeout. Validate must have passed.
func (c *Config) Timeout() time.Duration {
	d, err := parseTimeout(c.RequestTimeout)
	if err != nil {
		return 0
	}
	return d
}

// Validate checks the configuration for values the client cannot work with
func (c *Config) Validate() error {
	u, err := url.Parse(c.BackendURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("backend URL must be an absolute http(s) address, got %q", c.BackendURL)
	}

	if _, err := parseTimeout(c.RequestTimeout); err != nil {
		return err
	}

	switch c.Language {
	case "tr", "en":
	default:
		return fmt.Errorf("language must be 'tr' or 'en', got: %s", c.Language)
	}

	return nil
}

func parseTimeout(s string) (time.Duration, error) {
	if s == "" || s == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid request timeout %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("request timeout must not be negative, got %s", s)
	}
	return d, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	startDir, err := os.UserHomeDir()
	if err != nil {
		startDir = "."
	}

	return &Config{
		Version:        1,
		BackendURL:     DefaultBackendURL,
		RequestTimeout: "30s",
		Language:       "tr",
		StartDir:       startDir,
		LogFile:        "excelsearch.log",
		UISettings: UISettings{
			ShowProductCode: true,
			ShowUploadDate:  false,
		},
	}
}
