// Package bootstrap maps form elements onto Bootstrap 5 markup. The renderer
// functions are registered against the built-in kinds by Register; callers
// can register more specific renderers on top of them.
package bootstrap

import (
	"fmt"
	"sync"

	"github.com/goliatone/go-formstrap/pkg/hierarchy"
	"github.com/goliatone/go-formstrap/pkg/model"
	"github.com/goliatone/go-formstrap/pkg/render"
)

// Registration pairs a kind with the renderer registered for it.
type Registration struct {
	Kind     *hierarchy.Kind
	Renderer render.RendererFunc
}

// Registrations returns the Bootstrap renderer table in registration order.
// Checkbox and select fields are handled by RenderField.
func Registrations() []Registration {
	return []Registration{
		{Kind: model.FormKind, Renderer: RenderForm},
		{Kind: model.FieldKind, Renderer: RenderField},
		{Kind: model.SubmitFieldKind, Renderer: RenderSubmit},
		{Kind: model.HiddenFieldKind, Renderer: RenderHidden},
	}
}

// Register adds the Bootstrap renderers to reg.
func Register(reg *render.Registry) error {
	if reg == nil {
		return fmt.Errorf("bootstrap: registry is nil")
	}
	for _, entry := range Registrations() {
		if err := reg.Register(entry.Kind, entry.Renderer); err != nil {
			return fmt.Errorf("bootstrap: register %s: %w", entry.Kind.Name(), err)
		}
	}
	return nil
}

// NewRegistry returns a fresh registry holding the Bootstrap renderers.
func NewRegistry() *render.Registry {
	reg := render.NewRegistry()
	if err := Register(reg); err != nil {
		panic(err)
	}
	return reg
}

var defaultRegistry = sync.OnceValue(NewRegistry)

// DefaultRegistry returns the shared registry built on first use. Treat it as
// read-only; register custom renderers on a NewRegistry instead.
func DefaultRegistry() *render.Registry {
	return defaultRegistry()
}
