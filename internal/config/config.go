package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Config holds the configuration for the MyShowList server.
type Config struct {
	// Listen is the address the server will listen on.
	Listen string `yaml:"listen" mapstructure:"listen"`
	// LogLevel is the log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	// Database holds the database configuration.
	Database *DatabaseConfig `yaml:"database" mapstructure:"database"`
	// Auth holds the token configuration.
	Auth *AuthConfig `yaml:"auth" mapstructure:"auth"`
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	// Path is the path of the sqlite database file.
	Path string `yaml:"path" mapstructure:"path"`
}

// AuthConfig holds the token configuration.
type AuthConfig struct {
	// Secret is the process-wide token signing secret.
	Secret string `yaml:"secret" mapstructure:"secret"`
	// TokenExpiry is the token validity window in minutes.
	TokenExpiry int `yaml:"token_expiry" mapstructure:"token_expiry"`
}

// Load reads the configuration from the given file, or from the default
// search paths if path is empty. Environment variables with the MYSHOWLIST_
// prefix override file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix("MYSHOWLIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.myshowlist")
		v.AddConfigPath("/etc/myshowlist")
	}

	if err := v.ReadInConfig(); err != nil {
		// If no config file is found, use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		log.Debug("Using config file", "file", v.ConfigFileUsed())
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", "0.0.0.0:3000")
	v.SetDefault("log_level", "info")

	v.SetDefault("database.path", "./data/myshowlist.db")

	v.SetDefault("auth.secret", "")
	// The expiry is given in minutes, 1440 is a day.
	v.SetDefault("auth.token_expiry", 1440)
}

func validateConfig(c *Config) error {
	if c.Auth == nil || c.Auth.Secret == "" {
		return errors.New("auth.secret is required")
	}
	if c.Auth.TokenExpiry <= 0 {
		return errors.New("auth.token_expiry must be positive")
	}
	return nil
}
