package config

// SketchCfg configures HyperLogLog estimators built through the engine.
type SketchCfg struct {
	// LeadingBits is the number of leading hash bits used as the register
	// index; the estimator keeps 2^LeadingBits registers. Higher values
	// lower the estimation error at the cost of memory. Negative values
	// are clamped to 0 (a single register).
	LeadingBits int16 `yaml:"leading_bits"`
}
