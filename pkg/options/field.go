package options

import "github.com/goliatone/go-formstrap/pkg/markup"

// FieldOptions controls how a single field is laid out. Values are immutable
// in practice: With returns a new record and never touches the receiver. An
// empty class means the class attribute is omitted.
type FieldOptions struct {
	// Outermost layer around the field.
	RowClass   string
	RowAttrs   markup.Attrs
	RowEnabled bool

	// Layer inside the row, the usual Bootstrap "mb-3" spacing div.
	WrapperClass   string
	WrapperAttrs   markup.Attrs
	WrapperEnabled bool

	// Layer around input, help and error, excluding the label. Used by
	// horizontal layouts ("col-sm-10").
	FieldWrapperClass   string
	FieldWrapperAttrs   markup.Attrs
	FieldWrapperEnabled bool

	FieldClass         string
	FieldCheckboxClass string
	FieldSelectClass   string
	FieldInvalidClass  string
	FieldAttrs         markup.Attrs
	SubmitFieldClass   string

	LabelClass         string
	LabelCheckboxClass string
	LabelAttrs         markup.Attrs
	LabelEnabled       bool
	// LabelFirst places the label before the input. Checkboxes ignore it.
	LabelFirst bool

	CheckboxWrapperClass   string
	CheckboxWrapperAttrs   markup.Attrs
	CheckboxWrapperEnabled bool

	HelpClass   string
	HelpAttrs   markup.Attrs
	HelpEnabled bool

	ErrorClass     string
	ErrorAttrs     markup.Attrs
	ErrorSeparator string
}

// DefaultFieldOptions returns the Bootstrap 5 field defaults.
func DefaultFieldOptions() FieldOptions {
	return FieldOptions{
		RowClass:               "row",
		RowEnabled:             false,
		WrapperClass:           "mb-3",
		WrapperEnabled:         true,
		FieldWrapperEnabled:    false,
		FieldClass:             "form-control",
		FieldCheckboxClass:     "form-check-input",
		FieldSelectClass:       "form-select",
		FieldInvalidClass:      "is-invalid",
		SubmitFieldClass:       "btn btn-primary",
		LabelClass:             "form-label",
		LabelCheckboxClass:     "form-check-label",
		LabelEnabled:           true,
		LabelFirst:             true,
		CheckboxWrapperClass:   "form-check",
		CheckboxWrapperEnabled: true,
		HelpClass:              "form-text",
		HelpEnabled:            true,
		ErrorClass:             "invalid-feedback",
		ErrorSeparator:         ", ",
	}
}

// FieldOption replaces one named option.
type FieldOption func(*FieldOptions)

// With returns a copy of o with opts applied in order. Attribute maps are
// cloned so the copy shares no storage with o.
func (o FieldOptions) With(opts ...FieldOption) FieldOptions {
	out := o.Clone()
	for _, opt := range opts {
		if opt != nil {
			opt(&out)
		}
	}
	return out
}

// Clone returns a deep copy.
func (o FieldOptions) Clone() FieldOptions {
	out := o
	out.RowAttrs = o.RowAttrs.Clone()
	out.WrapperAttrs = o.WrapperAttrs.Clone()
	out.FieldWrapperAttrs = o.FieldWrapperAttrs.Clone()
	out.FieldAttrs = o.FieldAttrs.Clone()
	out.LabelAttrs = o.LabelAttrs.Clone()
	out.CheckboxWrapperAttrs = o.CheckboxWrapperAttrs.Clone()
	out.HelpAttrs = o.HelpAttrs.Clone()
	out.ErrorAttrs = o.ErrorAttrs.Clone()
	return out
}

func RowClass(class string) FieldOption {
	return func(o *FieldOptions) { o.RowClass = class }
}

func RowAttrs(attrs markup.Attrs) FieldOption {
	return func(o *FieldOptions) { o.RowAttrs = attrs.Clone() }
}

func RowEnabled(enabled bool) FieldOption {
	return func(o *FieldOptions) { o.RowEnabled = enabled }
}

func WrapperClass(class string) FieldOption {
	return func(o *FieldOptions) { o.WrapperClass = class }
}

func WrapperAttrs(attrs markup.Attrs) FieldOption {
	return func(o *FieldOptions) { o.WrapperAttrs = attrs.Clone() }
}

func WrapperEnabled(enabled bool) FieldOption {
	return func(o *FieldOptions) { o.WrapperEnabled = enabled }
}

func FieldWrapperClass(class string) FieldOption {
	return func(o *FieldOptions) { o.FieldWrapperClass = class }
}

func FieldWrapperAttrs(attrs markup.Attrs) FieldOption {
	return func(o *FieldOptions) { o.FieldWrapperAttrs = attrs.Clone() }
}

func FieldWrapperEnabled(enabled bool) FieldOption {
	return func(o *FieldOptions) { o.FieldWrapperEnabled = enabled }
}

func FieldClass(class string) FieldOption {
	return func(o *FieldOptions) { o.FieldClass = class }
}

func FieldCheckboxClass(class string) FieldOption {
	return func(o *FieldOptions) { o.FieldCheckboxClass = class }
}

func FieldSelectClass(class string) FieldOption {
	return func(o *FieldOptions) { o.FieldSelectClass = class }
}

func FieldInvalidClass(class string) FieldOption {
	return func(o *FieldOptions) { o.FieldInvalidClass = class }
}

func FieldAttrs(attrs markup.Attrs) FieldOption {
	return func(o *FieldOptions) { o.FieldAttrs = attrs.Clone() }
}

func SubmitFieldClass(class string) FieldOption {
	return func(o *FieldOptions) { o.SubmitFieldClass = class }
}

func LabelClass(class string) FieldOption {
	return func(o *FieldOptions) { o.LabelClass = class }
}

func LabelCheckboxClass(class string) FieldOption {
	return func(o *FieldOptions) { o.LabelCheckboxClass = class }
}

func LabelAttrs(attrs markup.Attrs) FieldOption {
	return func(o *FieldOptions) { o.LabelAttrs = attrs.Clone() }
}

func LabelEnabled(enabled bool) FieldOption {
	return func(o *FieldOptions) { o.LabelEnabled = enabled }
}

func LabelFirst(first bool) FieldOption {
	return func(o *FieldOptions) { o.LabelFirst = first }
}

func CheckboxWrapperClass(class string) FieldOption {
	return func(o *FieldOptions) { o.CheckboxWrapperClass = class }
}

func CheckboxWrapperAttrs(attrs markup.Attrs) FieldOption {
	return func(o *FieldOptions) { o.CheckboxWrapperAttrs = attrs.Clone() }
}

func CheckboxWrapperEnabled(enabled bool) FieldOption {
	return func(o *FieldOptions) { o.CheckboxWrapperEnabled = enabled }
}

func HelpClass(class string) FieldOption {
	return func(o *FieldOptions) { o.HelpClass = class }
}

func HelpAttrs(attrs markup.Attrs) FieldOption {
	return func(o *FieldOptions) { o.HelpAttrs = attrs.Clone() }
}

func HelpEnabled(enabled bool) FieldOption {
	return func(o *FieldOptions) { o.HelpEnabled = enabled }
}

func ErrorClass(class string) FieldOption {
	return func(o *FieldOptions) { o.ErrorClass = class }
}

func ErrorAttrs(attrs markup.Attrs) FieldOption {
	return func(o *FieldOptions) { o.ErrorAttrs = attrs.Clone() }
}

func ErrorSeparator(separator string) FieldOption {
	return func(o *FieldOptions) { o.ErrorSeparator = separator }
}
