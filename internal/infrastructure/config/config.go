package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string           `mapstructure:"environment"`
	LogLevel    string           `mapstructure:"log_level"`
	Server      ServerConfig     `mapstructure:"server"`
	Dataset     DatasetConfig    `mapstructure:"dataset"`
	Investment  InvestmentConfig `mapstructure:"investment"`
}

type ServerConfig struct {
	Port            int      `mapstructure:"port"`
	Host            string   `mapstructure:"host"`
	ReadTimeout     int      `mapstructure:"read_timeout"`
	WriteTimeout    int      `mapstructure:"write_timeout"`
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	RateLimitPerMin int      `mapstructure:"rate_limit_per_min"`
}

// DatasetConfig points at the two read-only JSON datasets loaded at startup.
// ReloadSchedule is a cron expression; empty disables scheduled reloads.
type DatasetConfig struct {
	MetricsFile    string `mapstructure:"metrics_file"`
	NavFile        string `mapstructure:"nav_file"`
	ReloadSchedule string `mapstructure:"reload_schedule"`
}

// InvestmentConfig bounds the investment comparison inputs.
type InvestmentConfig struct {
	MinAmount     float64 `mapstructure:"min_amount"`
	MaxAmount     float64 `mapstructure:"max_amount"`
	MinAgeDays    int     `mapstructure:"min_age_days"`
	SearchMaxHits int     `mapstructure:"search_max_hits"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")

	// Set defaults
	setDefaults()

	// Read from config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("environment", "development")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.read_timeout", 15)
	viper.SetDefault("server.write_timeout", 15)
	viper.SetDefault("server.allowed_origins", []string{"*"})
	viper.SetDefault("server.rate_limit_per_min", 120)

	// Dataset defaults
	viper.SetDefault("dataset.metrics_file", "data/scheme_metrics_merged.json")
	viper.SetDefault("dataset.nav_file", "data/parent_scheme_nav.json")
	viper.SetDefault("dataset.reload_schedule", "")

	// Investment comparison bounds
	viper.SetDefault("investment.min_amount", 500.0)
	viper.SetDefault("investment.max_amount", 100000000.0)
	viper.SetDefault("investment.min_age_days", 30)
	viper.SetDefault("investment.search_max_hits", 20)
}

func validate(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}
	if config.Dataset.MetricsFile == "" {
		return fmt.Errorf("dataset.metrics_file is required")
	}
	if config.Dataset.NavFile == "" {
		return fmt.Errorf("dataset.nav_file is required")
	}
	if config.Investment.MinAmount <= 0 {
		return fmt.Errorf("investment.min_amount must be positive")
	}
	if config.Investment.MaxAmount < config.Investment.MinAmount {
		return fmt.Errorf("investment.max_amount must be >= min_amount")
	}
	if config.Investment.MinAgeDays < 0 {
		return fmt.Errorf("investment.min_age_days must not be negative")
	}
	return nil
}
