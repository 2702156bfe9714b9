package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration.
var Config AppConfig

const defaultPort = 5008

// Load reads, validates and applies overrides to the application
// configuration. A missing config.yml is not an error; defaults and the
// environment carry a stock deployment.
func Load() error {
	cfg, err := loadFile([]string{"config.yml", "./config/config.yml"})
	if err != nil {
		return err
	}

	// .env into the environment, then env overrides (ignore if missing).
	_ = godotenv.Load()
	if err := applyEnv(&cfg); err != nil {
		return err
	}

	applyDefaults(&cfg)

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	Config = cfg
	return nil
}

func loadFile(paths []string) (AppConfig, error) {
	var cfg AppConfig
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", p, err)
		}
		return cfg, nil
	}
	// No config file; defaults apply.
	return cfg, nil
}

func applyEnv(cfg *AppConfig) error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 {
			return fmt.Errorf("invalid PORT: %q", v)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("NATS_URL"); v != "" {
		cfg.NATS.URL = v
	}
	if v := os.Getenv("METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}
	return nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Tracker.ArrivalThresholdMeters == 0 {
		cfg.Tracker.ArrivalThresholdMeters = 100
	}
	if cfg.Tracker.DriftThresholdMeters == 0 {
		cfg.Tracker.DriftThresholdMeters = 2000
	}
	if cfg.Tracker.DepartedThresholdMeters == 0 {
		cfg.Tracker.DepartedThresholdMeters = 50
	}
	if cfg.Tracker.AverageSpeedKPH == 0 {
		cfg.Tracker.AverageSpeedKPH = 25
	}
	if cfg.Broadcast.SubscriberBuffer == 0 {
		cfg.Broadcast.SubscriberBuffer = 16
	}
	if cfg.NATS.SubjectPrefix == "" {
		cfg.NATS.SubjectPrefix = "bus"
	}
}
