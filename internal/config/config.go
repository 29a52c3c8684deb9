package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration options for the reporting application.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Display  DisplayConfig  `mapstructure:"display"`
	Export   ExportConfig   `mapstructure:"export"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Dir      string `mapstructure:"dir"`
	Filename string `mapstructure:"filename"`
}

// DisplayConfig holds display formatting configuration.
type DisplayConfig struct {
	DateFormat string `mapstructure:"date_format"`
}

// ExportConfig holds report export configuration.
type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from an optional rigreport.yaml (working
// directory or ~/.rigreport), applies RIGREPORT_* environment overrides,
// and falls back to defaults for anything unset.
func Load() (*Config, error) {
	v := viper.New()

	homeDir, _ := os.UserHomeDir()
	setDefaults(v, homeDir)

	v.SetConfigName("rigreport")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if homeDir != "" {
		v.AddConfigPath(filepath.Join(homeDir, ".rigreport"))
	}

	v.SetEnvPrefix("RIGREPORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, homeDir string) {
	dataDir := filepath.Join(homeDir, ".rigreport")
	v.SetDefault("database.dir", dataDir)
	v.SetDefault("database.filename", "rigreport.db")
	v.SetDefault("display.date_format", "2006-01-02")
	v.SetDefault("export.dir", dataDir)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// GetDatabasePath returns the full path to the database file.
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}
	if c.Export.Dir == "" {
		return &ConfigError{Field: "export.dir", Message: "export directory cannot be empty"}
	}
	if c.Log.Level == "" {
		return &ConfigError{Field: "log.level", Message: "log level cannot be empty"}
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return &ConfigError{Field: "log.format", Message: "log format must be console or json"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
