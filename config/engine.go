package config

import "time"

// Engine groups configuration of all engine subsystems.
type Engine struct {
	// Replacer configures the buffer-pool victim-selection policy.
	Replacer ReplacerCfg `yaml:"replacer"`

	// Sketch configures the cardinality estimators handed out by the engine.
	Sketch SketchCfg `yaml:"sketch"`

	// IsTelemetryLogsEnabled turns the periodic stat logging worker on.
	IsTelemetryLogsEnabled bool `yaml:"stat_logs_enabled"`

	// TelemetryLogsInterval is the period of the stat logging worker.
	// Defaults to 5s when unset.
	TelemetryLogsInterval time.Duration `yaml:"stat_logs_interval"`
}
