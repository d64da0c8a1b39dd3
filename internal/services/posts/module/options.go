package module

import (
	"polyglot/internal/platform/config"
)

// Options configures the posts module
type Options struct {
	HardLimit int
}

// FromConfig reads options from config.Conf
func FromConfig(cfg config.Conf) Options {
	pf := cfg.Prefix("CORE_POSTS_")
	return Options{
		HardLimit: pf.MayInt("HARD_LIMIT", 5000),
	}
}
