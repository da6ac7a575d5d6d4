// Package config handles XDG configuration directory, file paths, and
// environment overrides.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

const (
	// AppName is the application directory name.
	AppName = "workable"

	// TokenFile is the stored session token filename.
	TokenFile = "token"

	// IdentityFile is the stored identity record filename.
	IdentityFile = "identity.json"

	// DefaultAPIURL is the backend base URL when none is configured.
	DefaultAPIURL = "http://localhost:8080"

	// DefaultTimeout is the per-call budget for backend requests.
	DefaultTimeout = 10 * time.Second

	// DefaultWeatherTimeout is the budget for a weather lookup.
	DefaultWeatherTimeout = 15 * time.Second
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// APIURL is the backend base URL.
	APIURL string

	// Timeout is the per-call budget for backend requests.
	Timeout time.Duration

	// WeatherTimeout is the budget for a weather lookup.
	WeatherTimeout time.Duration

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/workable or $HOME/.config/workable.
// Reads WORKABLE_API_URL, WORKABLE_TIMEOUT and WORKABLE_WEATHER_TIMEOUT from
// the environment, after loading a .env file when one is present.
func New(configDir string) (*Config, error) {
	// A missing .env is fine; explicit environment always wins because
	// godotenv never overwrites set variables.
	_ = godotenv.Load()

	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:            dir,
		APIURL:         getEnvString("WORKABLE_API_URL", DefaultAPIURL),
		Timeout:        getEnvDuration("WORKABLE_TIMEOUT", DefaultTimeout),
		WeatherTimeout: getEnvDuration("WORKABLE_WEATHER_TIMEOUT", DefaultWeatherTimeout),
	}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// TokenPath returns the path to the stored session token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// IdentityPath returns the path to the stored identity file.
func (c *Config) IdentityPath() string {
	return filepath.Join(c.Dir, IdentityFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
