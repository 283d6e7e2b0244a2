package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// AdjustConfig normalizes values that are derived or have hard floors.
func (cfg *Engine) AdjustConfig() {
	if cfg.Replacer.K < 1 {
		cfg.Replacer.K = 1
	}
	if cfg.Sketch.LeadingBits < 0 {
		cfg.Sketch.LeadingBits = 0
	}
	if cfg.TelemetryLogsInterval <= 0 {
		cfg.TelemetryLogsInterval = 5 * time.Second
	}
}

func LoadConfig(path string) (*Engine, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config yaml file %s: %w", path, err)
	}

	var cfg *Engine
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml from %s: %w", path, err)
	}
	cfg.AdjustConfig()

	return cfg, nil
}
