package model

import "github.com/goliatone/go-formstrap/pkg/hierarchy"

// Built-in kinds. Parents are listed in declaration order.
var (
	FormKind          = hierarchy.New("Form")
	FieldKind         = hierarchy.New("Field")
	StringFieldKind   = hierarchy.New("StringField", FieldKind)
	EmailFieldKind    = hierarchy.New("EmailField", StringFieldKind)
	PasswordFieldKind = hierarchy.New("PasswordField", StringFieldKind)
	TextAreaFieldKind = hierarchy.New("TextAreaField", StringFieldKind)
	HiddenFieldKind   = hierarchy.New("HiddenField", StringFieldKind)
	IntegerFieldKind  = hierarchy.New("IntegerField", FieldKind)
	BooleanFieldKind  = hierarchy.New("BooleanField", FieldKind)
	SubmitFieldKind   = hierarchy.New("SubmitField", BooleanFieldKind)
	SelectFieldKind   = hierarchy.New("SelectField", FieldKind)
)

// IsCheckbox reports whether field renders as a checkbox. Submit buttons
// derive from BooleanField but are not checkboxes.
func IsCheckbox(field Element) bool {
	kind := field.Kind()
	return kind.Is(BooleanFieldKind) && !kind.Is(SubmitFieldKind)
}

// IsSelect reports whether field renders as a select box.
func IsSelect(field Element) bool {
	return field.Kind().Is(SelectFieldKind)
}
