package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/xxxsen/common/logger"
)

type Config struct {
	Port            int              `json:"port"`
	UsersPath       string           `json:"users_path"`
	SessionSecret   string           `json:"session_secret"`
	SessionTTLHours int              `json:"session_ttl_hours"`
	TemplatesGlob   string           `json:"templates_glob"`
	StaticDir       string           `json:"static_dir"`
	CORSAllowlist   []string         `json:"cors_allowlist"`
	LogConfig       logger.LogConfig `json:"log_config"`
}

type envOverrides struct {
	SessionSecret string `env:"WEBGATE_SESSION_SECRET"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if overrides.SessionSecret != "" {
		cfg.SessionSecret = overrides.SessionSecret
	}
	if cfg.Port == 0 {
		return nil, fmt.Errorf("port is required")
	}
	if cfg.UsersPath == "" {
		return nil, fmt.Errorf("users_path is required")
	}
	// No baked-in fallback secret: a gateway signing sessions with a
	// well-known default is worse than refusing to start.
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("session secret is required: set session_secret or WEBGATE_SESSION_SECRET")
	}
	if cfg.SessionTTLHours == 0 {
		cfg.SessionTTLHours = 72
	}
	if cfg.TemplatesGlob == "" {
		cfg.TemplatesGlob = "web/templates/*.html"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "web/static"
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	return &cfg, nil
}
