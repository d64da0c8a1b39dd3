package module

import (
	modkit "polyglot/internal/modkit"
	mmodule "polyglot/internal/modkit/module"
	"polyglot/internal/services/detect/domain"
	labelsdom "polyglot/internal/services/labels/domain"
	postsdom "polyglot/internal/services/posts/domain"
)

// WithDepsModules extracts the required ports from dependency modules so
// callers never touch MustPortsOf in main
func WithDepsModules(posts mmodule.Module, labels mmodule.Module) modkit.Option {
	return modkit.WithPorts(domain.Ports{
		Posts:  mmodule.MustPortsOf[postsdom.ReaderPort](posts),
		Labels: mmodule.MustPortsOf[labelsdom.WriterPort](labels),
	})
}
