package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// ProSync specifics
	Storage     StorageConfig
	Calendar    CalendarConfig
	Suggestions SuggestionsConfig
	RateLimit   RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StorageConfig locates the JSON snapshot file holding the task collection.
type StorageConfig struct {
	Path string
}

// CalendarConfig controls how due dates are bucketed into calendar days.
type CalendarConfig struct {
	Timezone string
}

// SuggestionsConfig configures the Gemini-backed suggestion endpoint.
// An empty APIKey disables the endpoint entirely.
type SuggestionsConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// ProSync specifics
	cfg.Storage.Path = viper.GetString("storage.path")
	if storagePath := viper.GetString("storage_path"); storagePath != "" {
		cfg.Storage.Path = storagePath
	}

	cfg.Calendar.Timezone = viper.GetString("calendar.timezone")

	cfg.Suggestions.APIKey = viper.GetString("suggestions.api_key")
	cfg.Suggestions.Model = viper.GetString("suggestions.model")
	cfg.Suggestions.Timeout = viper.GetDuration("suggestions.timeout")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Suggestions.APIKey = geminiKey
	}

	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("storage.path", "data/tasks.json")
	viper.SetDefault("calendar.timezone", "UTC")
	viper.SetDefault("suggestions.timeout", "30s")
	viper.SetDefault("rate_limit.per_min", 60)
}
