package config

import "time"

// Observability holds all configurations related to metrics and tracing.
type Observability struct {
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
}

// MetricsConfig configures the OTLP metrics exporter.
type MetricsConfig struct {
	Enable         bool              `yaml:"enable"`
	Endpoint       string            `yaml:"endpoint"`
	Headers        map[string]string `yaml:"headers"`
	ExportInterval time.Duration     `yaml:"exportInterval"`
}

// TracingConfig configures the OTLP trace exporter.
type TracingConfig struct {
	Enable       bool              `yaml:"enable"`
	Endpoint     string            `yaml:"endpoint"`
	Headers      map[string]string `yaml:"headers"`
	Sampler      string            `yaml:"sampler"`
	SamplingRate float64           `yaml:"samplingRate"`
}
