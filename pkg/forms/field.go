// Package forms is a ready-made implementation of the model interfaces:
// ordered forms and fields for the built-in kinds, each wired to a default
// widget, plus YAML form definitions.
package forms

import (
	"slices"
	"strings"

	"github.com/goliatone/go-formstrap/pkg/hierarchy"
	"github.com/goliatone/go-formstrap/pkg/markup"
	"github.com/goliatone/go-formstrap/pkg/model"
	"github.com/goliatone/go-formstrap/pkg/widgets"
)

// Field implements model.Field along with the optional Valuer, Checker,
// Chooser and Attributer capabilities.
type Field struct {
	kind        *hierarchy.Kind
	name        string
	label       string
	description string
	errors      []string
	widget      model.Widget
	value       string
	checked     bool
	choices     []model.Choice
	renderKw    markup.Attrs
}

// FieldOption configures a Field at construction.
type FieldOption func(*Field)

// WithDescription sets the help text.
func WithDescription(description string) FieldOption {
	return func(f *Field) {
		f.description = description
	}
}

// WithErrors sets the validation errors.
func WithErrors(errors ...string) FieldOption {
	return func(f *Field) {
		f.errors = append([]string(nil), errors...)
	}
}

// WithValue sets the current value.
func WithValue(value string) FieldOption {
	return func(f *Field) {
		f.value = value
	}
}

// WithChecked marks a boolean field as checked.
func WithChecked(checked bool) FieldOption {
	return func(f *Field) {
		f.checked = checked
	}
}

// WithChoices sets the options offered by a select field.
func WithChoices(choices ...model.Choice) FieldOption {
	return func(f *Field) {
		f.choices = slices.Clone(choices)
	}
}

// WithRenderKw sets extra attributes passed to the widget, such as a
// placeholder. Attributes supplied by renderers win on conflicts.
func WithRenderKw(attrs markup.Attrs) FieldOption {
	return func(f *Field) {
		f.renderKw = attrs.Clone()
	}
}

// WithWidget replaces the default widget.
func WithWidget(widget model.Widget) FieldOption {
	return func(f *Field) {
		if widget != nil {
			f.widget = widget
		}
	}
}

// WithKind replaces the kind, for fields that mix in custom kinds.
func WithKind(kind *hierarchy.Kind) FieldOption {
	return func(f *Field) {
		if kind != nil {
			f.kind = kind
		}
	}
}

// NewField builds a field of an arbitrary kind.
func NewField(kind *hierarchy.Kind, widget model.Widget, name, label string, options ...FieldOption) *Field {
	field := &Field{
		kind:   kind,
		name:   strings.TrimSpace(name),
		label:  label,
		widget: widget,
	}
	for _, opt := range options {
		if opt != nil {
			opt(field)
		}
	}
	return field
}

// NewStringField builds a text input field.
func NewStringField(name, label string, options ...FieldOption) *Field {
	return NewField(model.StringFieldKind, widgets.Input{Type: "text"}, name, label, options...)
}

// NewEmailField builds an email input field.
func NewEmailField(name, label string, options ...FieldOption) *Field {
	return NewField(model.EmailFieldKind, widgets.Input{Type: "email"}, name, label, options...)
}

// NewPasswordField builds a password input field; its value is never echoed.
func NewPasswordField(name, label string, options ...FieldOption) *Field {
	return NewField(model.PasswordFieldKind, widgets.Input{Type: "password", HideValue: true}, name, label, options...)
}

// NewTextAreaField builds a textarea field.
func NewTextAreaField(name, label string, options ...FieldOption) *Field {
	return NewField(model.TextAreaFieldKind, widgets.TextArea{}, name, label, options...)
}

// NewHiddenField builds a hidden input field.
func NewHiddenField(name string, options ...FieldOption) *Field {
	return NewField(model.HiddenFieldKind, widgets.Input{Type: "hidden"}, name, "", options...)
}

// NewIntegerField builds a number input field.
func NewIntegerField(name, label string, options ...FieldOption) *Field {
	return NewField(model.IntegerFieldKind, widgets.Input{Type: "number"}, name, label, options...)
}

// NewBooleanField builds a checkbox field.
func NewBooleanField(name, label string, options ...FieldOption) *Field {
	return NewField(model.BooleanFieldKind, widgets.Checkbox{}, name, label, options...)
}

// NewSubmitField builds a submit button; the label is the button caption.
func NewSubmitField(name, label string, options ...FieldOption) *Field {
	return NewField(model.SubmitFieldKind, widgets.Submit{}, name, label, options...)
}

// NewSelectField builds a select field.
func NewSelectField(name, label string, choices []model.Choice, options ...FieldOption) *Field {
	options = append([]FieldOption{WithChoices(choices...)}, options...)
	return NewField(model.SelectFieldKind, widgets.Select{}, name, label, options...)
}

func (f *Field) Kind() *hierarchy.Kind   { return f.kind }
func (f *Field) Name() string            { return f.name }
func (f *Field) Label() string           { return f.label }
func (f *Field) Description() string     { return f.description }
func (f *Field) Errors() []string        { return slices.Clone(f.errors) }
func (f *Field) Widget() model.Widget    { return f.widget }
func (f *Field) Value() string           { return f.value }
func (f *Field) Checked() bool           { return f.checked }
func (f *Field) Choices() []model.Choice { return slices.Clone(f.choices) }
func (f *Field) RenderKw() markup.Attrs  { return f.renderKw.Clone() }

// AddError appends a validation error.
func (f *Field) AddError(message string) {
	if trimmed := strings.TrimSpace(message); trimmed != "" {
		f.errors = append(f.errors, trimmed)
	}
}

// SetValue replaces the current value.
func (f *Field) SetValue(value string) {
	f.value = value
}
