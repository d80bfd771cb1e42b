package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	StorePostgres = "postgres"
	StoreFile     = "file"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName   string
	HTTPPort      string
	StoreBackend  string
	PostgresDSN   string
	DataFilePath  string
	Timezone      string
	MaxTextLength int
	PublicDir     string
}

// Load reads configuration from the environment. Invalid values are returned
// as errors so the process refuses to serve traffic instead of failing per
// request.
func Load() (Config, error) {
	cfg := Config{
		ServiceName:  envString("SERVICE_NAME", "today-banner"),
		HTTPPort:     envString("HTTP_PORT", "8080"),
		StoreBackend: strings.ToLower(envString("BANNER_STORE", StoreFile)),
		PostgresDSN:  os.Getenv("POSTGRES_DSN"),
		DataFilePath: envString("BANNER_DATA_FILE", "data/state.json"),
		Timezone:     envString("RESET_TIMEZONE", "Asia/Seoul"),
		PublicDir:    envString("PUBLIC_DIR", "public"),
	}

	maxLength, err := envInt("BANNER_MAX_TEXT_LENGTH", 40)
	if err != nil {
		return Config{}, err
	}
	if maxLength <= 0 {
		return Config{}, fmt.Errorf("BANNER_MAX_TEXT_LENGTH must be positive, got %d", maxLength)
	}
	cfg.MaxTextLength = maxLength

	switch cfg.StoreBackend {
	case StorePostgres:
		if strings.TrimSpace(cfg.PostgresDSN) == "" {
			return Config{}, fmt.Errorf("POSTGRES_DSN is required when BANNER_STORE=%s", StorePostgres)
		}
	case StoreFile:
	default:
		return Config{}, fmt.Errorf("BANNER_STORE must be %q or %q, got %q", StorePostgres, StoreFile, cfg.StoreBackend)
	}

	return cfg, nil
}

func envString(name string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback
	}
	return value
}

func envInt(name string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, raw)
	}
	return value, nil
}
