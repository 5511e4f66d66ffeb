// Package options holds the form and field option records and the
// field-wise merge applied to them. Options come from code (functional
// setters), YAML presets or go-theme tokens; all three produce the same
// setters, so a source only replaces the options it names.
package options
