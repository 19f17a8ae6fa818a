package launcher

import (
	"github.com/aretw0/introspection"
)

// State implements introspection.Introspectable.
func (l *OS) State() any {
	return map[string]any{
		"goos":  l.GOOS,
		"allow": l.Allow,
	}
}

// ComponentType implements introspection.Component.
func (l *OS) ComponentType() string {
	return "launcher"
}

var _ introspection.Introspectable = (*OS)(nil)
var _ introspection.Component = (*OS)(nil)
