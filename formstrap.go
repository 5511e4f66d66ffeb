// Package formstrap renders form models into Bootstrap 5 markup. It wires
// the Bootstrap renderers into a rendering context; the subpackages hold the
// kind lattice (pkg/hierarchy), the renderer registry (pkg/registry), the
// override records (pkg/options) and the reference form model (pkg/forms).
package formstrap

import (
	"html/template"

	"github.com/goliatone/go-formstrap/pkg/model"
	"github.com/goliatone/go-formstrap/pkg/options"
	"github.com/goliatone/go-formstrap/pkg/render"
	"github.com/goliatone/go-formstrap/pkg/renderers/bootstrap"
)

// Context aliases render.Context so callers can configure rendering from the
// top-level module.
type Context = render.Context

// FieldOptions aliases options.FieldOptions.
type FieldOptions = options.FieldOptions

// FormOptions aliases options.FormOptions.
type FormOptions = options.FormOptions

// Preset aliases options.Preset for callers loading YAML presets.
type Preset = options.Preset

// DefaultRegistry returns the shared registry holding the Bootstrap
// renderers.
func DefaultRegistry() *render.Registry {
	return bootstrap.DefaultRegistry()
}

// NewRegistry returns a fresh Bootstrap registry that callers can extend with
// renderers for their own kinds.
func NewRegistry() *render.Registry {
	return bootstrap.NewRegistry()
}

// NewContext creates a rendering context backed by the default Bootstrap
// registry.
func NewContext(opts ...render.Option) *Context {
	return render.New(DefaultRegistry(), opts...)
}

// Render renders element with the default Bootstrap configuration.
func Render(element model.Element) (template.HTML, error) {
	return NewContext().Render(element)
}
