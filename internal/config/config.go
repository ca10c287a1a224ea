// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		Directory      string `mapstructure:"directory" yaml:"directory"`
		CategoriesFile string `mapstructure:"categories_file" yaml:"categories_file"`
		LedgerFile     string `mapstructure:"ledger_file" yaml:"ledger_file"`
	} `mapstructure:"data" yaml:"data"`

	Report struct {
		Currency string `mapstructure:"currency" yaml:"currency"`
	} `mapstructure:"report" yaml:"report"`
}

// CategoriesPath returns the full path of the category rules document.
func (c *Config) CategoriesPath() string {
	return filepath.Join(c.Data.Directory, c.Data.CategoriesFile)
}

// LedgerPath returns the full path of the ledger snapshot file.
func (c *Config) LedgerPath() string {
	return filepath.Join(c.Data.Directory, c.Data.LedgerFile)
}

// Initialize loads the configuration hierarchically: defaults, then an
// optional config file, then LEDGER_-prefixed environment variables.
func Initialize() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.bank-ledger")
	v.AddConfigPath(".bank-ledger")
	v.AddConfigPath(".")

	v.SetEnvPrefix("LEDGER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars on a broken config file
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.directory", "data")
	v.SetDefault("data.categories_file", "categories.yaml")
	v.SetDefault("data.ledger_file", "ledger.csv")

	v.SetDefault("report.currency", "AED")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Data.CategoriesFile == "" {
		return fmt.Errorf("data.categories_file must not be empty")
	}
	if config.Data.LedgerFile == "" {
		return fmt.Errorf("data.ledger_file must not be empty")
	}

	return nil
}

var envOnce sync.Once

// LoadEnv loads environment variables from a .env file if one exists in the
// current or parent directory.
func LoadEnv() {
	envOnce.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}
		_ = godotenv.Load(envFile)
	})
}
