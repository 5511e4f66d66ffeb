package model

import (
	"html/template"

	"github.com/goliatone/go-formstrap/pkg/hierarchy"
	"github.com/goliatone/go-formstrap/pkg/markup"
)

// Element is anything that can be rendered: a form or a field.
type Element interface {
	Kind() *hierarchy.Kind
}

// Form is an ordered collection of fields. Fields are rendered in the order
// returned.
type Form interface {
	Element
	Fields() []Field
}

// Field is a single form input.
type Field interface {
	Element
	Name() string
	// Label returns the label text; empty means the field has no label.
	Label() string
	Description() string
	Errors() []string
	Widget() Widget
}

// Widget turns a field plus HTML attributes into the bare input markup.
// Attributes passed by the renderer win over the field's own attributes.
type Widget interface {
	Render(field Field, attrs markup.Attrs) (template.HTML, error)
}

// WidgetFunc adapts a function into a Widget.
type WidgetFunc func(field Field, attrs markup.Attrs) (template.HTML, error)

// Render calls the underlying function.
func (fn WidgetFunc) Render(field Field, attrs markup.Attrs) (template.HTML, error) {
	return fn(field, attrs)
}

// Valuer is implemented by fields that carry a submitted or initial value.
type Valuer interface {
	Value() string
}

// Checker is implemented by boolean fields.
type Checker interface {
	Checked() bool
}

// Choice is one option of a select field.
type Choice struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Chooser is implemented by fields offering a fixed set of choices.
type Chooser interface {
	Choices() []Choice
}

// Attributer is implemented by fields carrying their own extra attributes,
// such as a placeholder.
type Attributer interface {
	RenderKw() markup.Attrs
}
