package config

// OutputConfig holds settings related to what the probe prints.
type OutputConfig struct {
	// SVGDir receives one attack-map SVG per position when non-empty.
	SVGDir string `env:"ATTACK_PROBE_SVG_DIR"`

	// Stats prints table statistics after the run.
	Stats bool

	// ShowBoard prints the board diagram under each report line.
	ShowBoard bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{}
}
