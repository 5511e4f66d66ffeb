package template

import (
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formstrap/pkg/model"
	"github.com/goliatone/go-formstrap/pkg/render"
)

// DefaultFilterName is the filter name used by Register.
const DefaultFilterName = "formstrap"

// Filter returns a pongo2 filter rendering its input through ctx. The input
// must be a model.Element. An optional string parameter names a field of the
// input form to render on its own.
func Filter(ctx *render.Context) pongo2.FilterFunction {
	return func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		if ctx == nil {
			return nil, filterError(fmt.Errorf("rendering context is nil"))
		}
		element, err := elementFor(in, param)
		if err != nil {
			return nil, filterError(err)
		}
		html, err := ctx.Render(element)
		if err != nil {
			return nil, filterError(err)
		}
		return pongo2.AsSafeValue(string(html)), nil
	}
}

// Register installs Filter(ctx) under DefaultFilterName.
func Register(ctx *render.Context) error {
	return RegisterFilter(DefaultFilterName, ctx)
}

// RegisterFilter installs Filter(ctx) under name. pongo2 filters are global,
// so registering an existing name replaces the previous context.
func RegisterFilter(name string, ctx *render.Context) error {
	name = strings.TrimSpace(name)
	if name == "" || ctx == nil {
		return fmt.Errorf("template: filter name and context required")
	}
	if pongo2.FilterExists(name) {
		return pongo2.ReplaceFilter(name, Filter(ctx))
	}
	return pongo2.RegisterFilter(name, Filter(ctx))
}

func elementFor(in *pongo2.Value, param *pongo2.Value) (model.Element, error) {
	if in == nil || in.IsNil() {
		return nil, fmt.Errorf("nothing to render")
	}
	element, ok := in.Interface().(model.Element)
	if !ok {
		return nil, fmt.Errorf("cannot render %T", in.Interface())
	}

	name := ""
	if param != nil && !param.IsNil() {
		name = strings.TrimSpace(param.String())
	}
	if name == "" {
		return element, nil
	}

	form, ok := element.(model.Form)
	if !ok {
		return nil, fmt.Errorf("field %q requested from a %s", name, element.Kind().Name())
	}
	for _, field := range form.Fields() {
		if field.Name() == name {
			return field, nil
		}
	}
	return nil, fmt.Errorf("form has no field %q", name)
}

func filterError(err error) *pongo2.Error {
	return &pongo2.Error{Sender: "filter:" + DefaultFilterName, OrigError: err}
}
