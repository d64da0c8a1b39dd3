package module

import "polyglot/internal/platform/config"

// Options holds configuration settings for the labels module
type Options struct {
	HardLimit int
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	lf := cfg.Prefix("CORE_LABELS_")
	return Options{
		HardLimit: lf.MayInt("HARD_LIMIT", 100),
	}
}
