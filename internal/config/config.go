package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DatabaseConfig holds settings for the local document database.
type DatabaseConfig struct {
	// Directory is where the database file lives. Empty means the
	// default data directory under the user's home.
	Directory string `mapstructure:"directory" yaml:"directory"`

	// Filename is the SQLite database file name.
	Filename string `mapstructure:"filename" yaml:"filename"`
}

// UserConfig identifies whose task collections this client works on.
type UserConfig struct {
	ID string `mapstructure:"id" yaml:"id"`
}

// DisplayConfig holds rendering preferences.
type DisplayConfig struct {
	// TimeFormat is the layout used when printing timestamps.
	TimeFormat string `mapstructure:"time_format" yaml:"time_format"`
}

// Config is the top-level application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	User     UserConfig     `mapstructure:"user" yaml:"user"`
	Display  DisplayConfig  `mapstructure:"display" yaml:"display"`
}

// DefaultConfigPath returns the default path for the configuration
// file, located at ~/.config/task-tracker/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "task-tracker", "config.yaml")
}

func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Directory: defaultDataDirectory(),
			Filename:  "tracker.db",
		},
		User: UserConfig{
			ID: defaultUserID(),
		},
		Display: DisplayConfig{
			TimeFormat: "15:04",
		},
	}
}

func defaultDataDirectory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "task-tracker")
}

// defaultUserID falls back to the OS user name so a fresh install
// works without any configuration.
func defaultUserID() string {
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "default"
}

// Load reads configuration from the given YAML file path using Viper.
// Missing files resolve to defaults; TRACKER_* environment variables
// override both file values and defaults (TRACKER_USER_ID,
// TRACKER_DATABASE_DIRECTORY, and so on).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("TRACKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := defaultConfig()
	v.SetDefault("database.directory", defaults.Database.Directory)
	v.SetDefault("database.filename", defaults.Database.Filename)
	v.SetDefault("user.id", defaults.User.ID)
	v.SetDefault("display.time_format", defaults.Display.TimeFormat)

	if err := v.ReadInConfig(); err != nil {
		_, pathErr := err.(*os.PathError)
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !pathErr && !notFound {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that would break the
// store at runtime.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.User.ID) == "" {
		return fmt.Errorf("user.id must not be empty")
	}
	if strings.Contains(c.User.ID, "/") {
		return fmt.Errorf("user.id must not contain '/'")
	}
	if strings.TrimSpace(c.Database.Filename) == "" {
		return fmt.Errorf("database.filename must not be empty")
	}
	return nil
}

// DatabasePath returns the full path of the SQLite database file,
// creating the data directory if needed.
func (c *Config) DatabasePath() (string, error) {
	if err := os.MkdirAll(c.Database.Directory, 0o755); err != nil {
		return "", fmt.Errorf("creating data directory %s: %w", c.Database.Directory, err)
	}
	return filepath.Join(c.Database.Directory, c.Database.Filename), nil
}
