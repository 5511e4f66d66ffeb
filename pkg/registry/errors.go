package registry

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formstrap/pkg/hierarchy"
)

// ErrNoRenderer is matched by every resolution failure.
var ErrNoRenderer = errors.New("registry: no renderer found")

// ResolutionError reports that no renderer is registered anywhere along the
// ancestry of Kind. It signals a missing registration, not a transient
// condition, and is never retried.
type ResolutionError struct {
	Kind *hierarchy.Kind
}

func (e *ResolutionError) Error() string {
	if e.Kind == nil {
		return "registry: no renderer found for element without kind"
	}
	return fmt.Sprintf("registry: no renderer found for kind %q", e.Kind.Name())
}

// Unwrap lets errors.Is match ErrNoRenderer.
func (e *ResolutionError) Unwrap() error {
	return ErrNoRenderer
}

// IsNoRenderer reports whether err is a resolution failure.
func IsNoRenderer(err error) bool {
	return errors.Is(err, ErrNoRenderer)
}
