package config

// ReplacerCfg configures the LRU-K frame replacer.
type ReplacerCfg struct {
	// Frames is the maximum number of frames the replacer will ever track.
	// Frame ids must stay below this capacity.
	Frames uint64 `yaml:"frames"`

	// K is the access-history depth of the policy: a victim is picked by
	// the distance to its k-th most recent access. K=1 degenerates to
	// classic LRU. Values below 1 are raised to 1 during initialization.
	K uint64 `yaml:"k"`
}
