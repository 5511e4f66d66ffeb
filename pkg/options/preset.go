package options

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Preset is a bundle of overrides: form options, default field options and
// per-field options. Only keys present in the source become options, so
// applying a preset replaces exactly what it names.
type Preset struct {
	Form         []FormOption
	DefaultField []FieldOption
	Fields       map[string][]FieldOption
}

type presetFile struct {
	Form         map[string]any            `yaml:"form"`
	DefaultField map[string]any            `yaml:"default_field"`
	Fields       map[string]map[string]any `yaml:"fields"`
}

// LoadPreset parses a YAML preset:
//
//	form:
//	  action: /login
//	default_field:
//	  row_enabled: true
//	  label_class: col-sm-2 col-form-label
//	fields:
//	  email:
//	    field_attrs: {autocomplete: email}
//
// A null class value omits that class attribute.
func LoadPreset(data []byte) (Preset, error) {
	var doc presetFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Preset{}, fmt.Errorf("options: parse preset: %w", err)
	}

	preset := Preset{}
	for _, key := range sortedKeys(doc.Form) {
		opt, err := ParseFormOption(key, doc.Form[key])
		if err != nil {
			return Preset{}, err
		}
		preset.Form = append(preset.Form, opt)
	}

	defaults, err := parseFieldOptions(doc.DefaultField)
	if err != nil {
		return Preset{}, fmt.Errorf("%w (default_field)", err)
	}
	preset.DefaultField = defaults

	for _, name := range sortedKeys(doc.Fields) {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return Preset{}, fmt.Errorf("options: preset defines a field with an empty name")
		}
		opts, err := parseFieldOptions(doc.Fields[name])
		if err != nil {
			return Preset{}, fmt.Errorf("%w (field %s)", err, trimmed)
		}
		preset.AddField(trimmed, opts...)
	}
	return preset, nil
}

// AddField appends options for the named field.
func (p *Preset) AddField(name string, opts ...FieldOption) {
	if p.Fields == nil {
		p.Fields = make(map[string][]FieldOption)
	}
	p.Fields[name] = append(p.Fields[name], opts...)
}

// Empty reports whether the preset carries no options.
func (p Preset) Empty() bool {
	return len(p.Form) == 0 && len(p.DefaultField) == 0 && len(p.Fields) == 0
}

func parseFieldOptions(raw map[string]any) ([]FieldOption, error) {
	var out []FieldOption
	for _, key := range sortedKeys(raw) {
		opt, err := ParseFieldOption(key, raw[key])
		if err != nil {
			return nil, err
		}
		out = append(out, opt)
	}
	return out, nil
}
