package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	API    APIConfig    `mapstructure:"api"`
	Tenant TenantConfig `mapstructure:"tenant"`
	Log    LogConfig    `mapstructure:"log"`
}

type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	MockMode       bool   `mapstructure:"mock_mode"`
}

type TenantConfig struct {
	ID string `mapstructure:"id"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.posadmin")

	viper.SetEnvPrefix("POS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("api.base_url", "http://localhost:8080/api")
	viper.SetDefault("api.timeout_seconds", 30)
	viper.SetDefault("api.mock_mode", false)
	viper.SetDefault("tenant.id", "")
	viper.SetDefault("log.level", "info")

	// Try to read config file
	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, use defaults and environment variables
	}

	// Override with environment variables
	if baseURL := os.Getenv("POS_API_BASE_URL"); baseURL != "" {
		viper.Set("api.base_url", baseURL)
	}

	if mock := os.Getenv("POS_MOCK_MODE"); mock != "" {
		viper.Set("api.mock_mode", mock == "true" || mock == "1")
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
