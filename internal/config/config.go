package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Adzuna   AdzunaConfig
	Gemini   GeminiConfig
	Redis    RedisConfig
	Database DatabaseConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

// AdzunaConfig holds the job source credentials. AppID and AppKey are
// required before the feed can be served; the client refuses to start a fetch
// without them.
type AdzunaConfig struct {
	BaseURL        string
	Country        string
	AppID          string
	AppKey         string
	ResultsPerPage int
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// DatabaseConfig is optional: when URL is empty the application log falls
// back to Redis or memory.
type DatabaseConfig struct {
	URL string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "hiresense")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("ADZUNA_BASE_URL", "https://api.adzuna.com/v1/api/jobs")
	v.SetDefault("ADZUNA_COUNTRY", "in")
	v.SetDefault("ADZUNA_RESULTS_PER_PAGE", 20)
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("REDIS_PORT", "6379")

	var missing []string
	req := func(key string) string {
		val := strings.TrimSpace(v.GetString(key))
		if val == "" {
			missing = append(missing, key)
		}
		return val
	}
	opt := func(key string) string {
		return strings.TrimSpace(v.GetString(key))
	}

	cfg := Config{
		App: AppConfig{
			AppName:     opt("APP_NAME"),
			Environment: opt("APP_ENV"),
			HTTPPort:    req("HTTP_PORT"),
		},
		Adzuna: AdzunaConfig{
			BaseURL:        opt("ADZUNA_BASE_URL"),
			Country:        opt("ADZUNA_COUNTRY"),
			AppID:          opt("ADZUNA_APP_ID"),
			AppKey:         opt("ADZUNA_APP_KEY"),
			ResultsPerPage: v.GetInt("ADZUNA_RESULTS_PER_PAGE"),
		},
		Gemini: GeminiConfig{
			APIKey: opt("GEMINI_API_KEY"),
			Model:  opt("GEMINI_MODEL"),
		},
		Redis: RedisConfig{
			Host:     opt("REDIS_HOST"),
			Port:     opt("REDIS_PORT"),
			Password: opt("REDIS_PASSWORD"),
		},
		Database: DatabaseConfig{
			URL: opt("DATABASE_URL"),
		},
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}
