package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config holds the environment-level settings of the console. The file base
// URL is the static origin attachment download links are composed from.
type Config struct {
	APIBaseURL  string
	FileBaseURL string
	Timeout     time.Duration
	LogPath     string
}

// Load reads the optional app.yaml config file and applies environment
// overrides. A missing config file is fine; defaults target a local backend.
func Load() (*Config, error) {
	viper.SetDefault("api.base_url", "http://localhost:5000/api")
	viper.SetDefault("api.timeout", "30s")
	viper.SetDefault("files.base_url", "http://localhost:5000")
	viper.SetDefault("log.path", "./app.log")

	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		APIBaseURL:  getEnv("NOTICE_API_BASE_URL", viper.GetString("api.base_url")),
		FileBaseURL: getEnv("NOTICE_FILE_BASE_URL", viper.GetString("files.base_url")),
		Timeout:     viper.GetDuration("api.timeout"),
		LogPath:     viper.GetString("log.path"),
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
