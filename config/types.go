package config

// ServerConfig contains the HTTP/websocket listen settings.
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// TrackerConfig contains the tracking policy thresholds. Zero values are
// replaced with the deployed defaults at load time.
type TrackerConfig struct {
	ArrivalThresholdMeters  float64 `yaml:"arrivalThresholdMeters" validate:"gte=0"`
	DriftThresholdMeters    float64 `yaml:"driftThresholdMeters" validate:"gte=0"`
	DepartedThresholdMeters float64 `yaml:"departedThresholdMeters" validate:"gte=0"`
	AverageSpeedKPH         float64 `yaml:"averageSpeedKPH" validate:"gte=0"`
}

// BroadcastConfig contains fan-out tuning.
type BroadcastConfig struct {
	// SubscriberBuffer is the per-subscriber channel depth before
	// messages are dropped for that subscriber.
	SubscriberBuffer int `yaml:"subscriberBuffer" validate:"gte=0"`
}

// NATSConfig configures the optional update mirror. An empty URL
// disables it.
type NATSConfig struct {
	URL           string `yaml:"url" validate:"omitempty,uri"`
	SubjectPrefix string `yaml:"subjectPrefix"`
}

// MetricsConfig configures the Prometheus endpoint. An empty address
// disables the metrics server.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Server    ServerConfig    `yaml:"server" validate:"required"`
	Tracker   TrackerConfig   `yaml:"tracker"`
	Broadcast BroadcastConfig `yaml:"broadcast"`
	NATS      NATSConfig      `yaml:"nats"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}
