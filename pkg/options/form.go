package options

import "github.com/goliatone/go-formstrap/pkg/markup"

// FormOptions controls the <form> element. Empty Method, Action, Enctype and
// Class are omitted from the markup. When Enabled is false only the rendered
// fields are emitted.
type FormOptions struct {
	Method  string
	Action  string
	Enctype string
	Class   string
	Attrs   markup.Attrs
	Enabled bool
}

// DefaultFormOptions returns a POST form with the wrapper enabled.
func DefaultFormOptions() FormOptions {
	return FormOptions{
		Method:  "post",
		Enabled: true,
	}
}

// FormOption replaces one named form option.
type FormOption func(*FormOptions)

// With returns a copy of o with opts applied in order.
func (o FormOptions) With(opts ...FormOption) FormOptions {
	out := o
	out.Attrs = o.Attrs.Clone()
	for _, opt := range opts {
		if opt != nil {
			opt(&out)
		}
	}
	return out
}

func Method(method string) FormOption {
	return func(o *FormOptions) { o.Method = method }
}

func Action(action string) FormOption {
	return func(o *FormOptions) { o.Action = action }
}

func Enctype(enctype string) FormOption {
	return func(o *FormOptions) { o.Enctype = enctype }
}

func FormClass(class string) FormOption {
	return func(o *FormOptions) { o.Class = class }
}

func FormAttrs(attrs markup.Attrs) FormOption {
	return func(o *FormOptions) { o.Attrs = attrs.Clone() }
}

func FormEnabled(enabled bool) FormOption {
	return func(o *FormOptions) { o.Enabled = enabled }
}
