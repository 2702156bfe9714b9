package config

import (
	"os"
	"path/filepath"
	"testing"
)

func loadFrom(t *testing.T, yml string) AppConfig {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := loadFile([]string{path})
	if err != nil {
		t.Fatalf("loadFile: %v", err)
	}
	applyDefaults(&cfg)
	return cfg
}

func TestDefaultsApplyWithoutFile(t *testing.T) {
	cfg, err := loadFile([]string{filepath.Join(t.TempDir(), "missing.yml")})
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	applyDefaults(&cfg)

	if cfg.Server.Port != defaultPort {
		t.Errorf("port = %d, want %d", cfg.Server.Port, defaultPort)
	}
	if cfg.Tracker.ArrivalThresholdMeters != 100 ||
		cfg.Tracker.DriftThresholdMeters != 2000 ||
		cfg.Tracker.DepartedThresholdMeters != 50 ||
		cfg.Tracker.AverageSpeedKPH != 25 {
		t.Errorf("tracker defaults wrong: %+v", cfg.Tracker)
	}
	if cfg.Broadcast.SubscriberBuffer != 16 {
		t.Errorf("subscriber buffer = %d, want 16", cfg.Broadcast.SubscriberBuffer)
	}
	if cfg.NATS.SubjectPrefix != "bus" {
		t.Errorf("subject prefix = %q, want bus", cfg.NATS.SubjectPrefix)
	}
}

func TestFileValuesSurviveDefaults(t *testing.T) {
	cfg := loadFrom(t, `
server:
  port: 9090
tracker:
  arrivalThresholdMeters: 150
  averageSpeedKPH: 30
nats:
  url: nats://localhost:4222
  subjectPrefix: fleet
`)

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Tracker.ArrivalThresholdMeters != 150 {
		t.Errorf("arrival threshold = %v, want 150", cfg.Tracker.ArrivalThresholdMeters)
	}
	if cfg.Tracker.AverageSpeedKPH != 30 {
		t.Errorf("speed = %v, want 30", cfg.Tracker.AverageSpeedKPH)
	}
	// Unset fields still pick up defaults.
	if cfg.Tracker.DriftThresholdMeters != 2000 {
		t.Errorf("drift threshold = %v, want 2000", cfg.Tracker.DriftThresholdMeters)
	}
	if cfg.NATS.URL != "nats://localhost:4222" || cfg.NATS.SubjectPrefix != "fleet" {
		t.Errorf("nats config wrong: %+v", cfg.NATS)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7001")
	t.Setenv("NATS_URL", "nats://10.0.0.1:4222")
	t.Setenv("METRICS_ADDR", ":9102")

	var cfg AppConfig
	if err := applyEnv(&cfg); err != nil {
		t.Fatalf("applyEnv: %v", err)
	}
	if cfg.Server.Port != 7001 {
		t.Errorf("port = %d, want 7001", cfg.Server.Port)
	}
	if cfg.NATS.URL != "nats://10.0.0.1:4222" {
		t.Errorf("nats url = %q", cfg.NATS.URL)
	}
	if cfg.Metrics.Addr != ":9102" {
		t.Errorf("metrics addr = %q", cfg.Metrics.Addr)
	}
}

func TestInvalidPortEnvRejected(t *testing.T) {
	tests := []struct {
		name string
		port string
	}{
		{name: "non-numeric", port: "eighty"},
		{name: "zero", port: "0"},
		{name: "negative", port: "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.port)
			var cfg AppConfig
			if err := applyEnv(&cfg); err == nil {
				t.Errorf("PORT=%q accepted", tt.port)
			}
		})
	}
}
