package forms

import (
	"fmt"

	"github.com/goliatone/go-formstrap/pkg/hierarchy"
	"github.com/goliatone/go-formstrap/pkg/model"
)

// Form implements model.Form. Fields keep insertion order, which is also the
// render order.
type Form struct {
	kind   *hierarchy.Kind
	fields []model.Field
	index  map[string]int
}

// NewForm builds a form of kind model.FormKind. It panics on duplicate field
// names; use Add to handle the error.
func NewForm(fields ...model.Field) *Form {
	return NewFormOf(model.FormKind, fields...)
}

// NewFormOf builds a form of a custom kind.
func NewFormOf(kind *hierarchy.Kind, fields ...model.Field) *Form {
	if kind == nil {
		kind = model.FormKind
	}
	form := &Form{kind: kind, index: make(map[string]int)}
	for _, field := range fields {
		if err := form.Add(field); err != nil {
			panic(err)
		}
	}
	return form
}

// Add appends a field. Names must be unique within a form.
func (f *Form) Add(field model.Field) error {
	if field == nil {
		return fmt.Errorf("forms: field is nil")
	}
	name := field.Name()
	if name == "" {
		return fmt.Errorf("forms: field name is required")
	}
	if _, exists := f.index[name]; exists {
		return fmt.Errorf("forms: field %q already defined", name)
	}
	f.index[name] = len(f.fields)
	f.fields = append(f.fields, field)
	return nil
}

// Kind implements model.Element.
func (f *Form) Kind() *hierarchy.Kind { return f.kind }

// Fields returns the fields in declaration order.
func (f *Form) Fields() []model.Field {
	out := make([]model.Field, len(f.fields))
	copy(out, f.fields)
	return out
}

// Field looks a field up by name.
func (f *Form) Field(name string) (model.Field, bool) {
	idx, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.fields[idx], true
}
