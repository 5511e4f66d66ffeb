package options

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Theme token namespaces. Tokens outside them (colors, spacing) are ignored.
const (
	FormTokenPrefix   = "formstrap.form."
	FieldTokenPrefix  = "formstrap.field."
	FieldsTokenPrefix = "formstrap.fields."
)

// FromSelection derives a preset from a go-theme selection. Manifest tokens
// apply first and the selected variant's tokens override them.
//
//	formstrap.form.class          -> form class
//	formstrap.field.wrapper_class -> default field option
//	formstrap.fields.email.label_first -> option for field "email"
func FromSelection(selection *theme.Selection) (Preset, error) {
	if selection == nil || selection.Manifest == nil {
		return Preset{}, nil
	}
	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	for key, value := range selection.Manifest.Tokens {
		tokens[key] = value
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}
	preset, err := FromTokens(tokens)
	if err != nil {
		return Preset{}, fmt.Errorf("%w (theme %s/%s)", err, selection.Theme, selection.Variant)
	}
	return preset, nil
}

// FromTokens derives a preset from flat theme tokens. Attribute options
// cannot be expressed as tokens.
func FromTokens(tokens map[string]string) (Preset, error) {
	preset := Preset{}
	for _, token := range sortedKeys(tokens) {
		value := tokens[token]
		switch {
		case strings.HasPrefix(token, FormTokenPrefix):
			opt, err := tokenFormOption(strings.TrimPrefix(token, FormTokenPrefix), value)
			if err != nil {
				return Preset{}, err
			}
			preset.Form = append(preset.Form, opt)
		case strings.HasPrefix(token, FieldTokenPrefix):
			opt, err := tokenFieldOption(strings.TrimPrefix(token, FieldTokenPrefix), value)
			if err != nil {
				return Preset{}, err
			}
			preset.DefaultField = append(preset.DefaultField, opt)
		case strings.HasPrefix(token, FieldsTokenPrefix):
			rest := strings.TrimPrefix(token, FieldsTokenPrefix)
			dot := strings.LastIndex(rest, ".")
			if dot <= 0 || dot == len(rest)-1 {
				return Preset{}, fmt.Errorf("options: malformed field token %q", token)
			}
			opt, err := tokenFieldOption(rest[dot+1:], value)
			if err != nil {
				return Preset{}, err
			}
			preset.AddField(rest[:dot], opt)
		}
	}
	return preset, nil
}

func tokenFieldOption(key, value string) (FieldOption, error) {
	if entry, ok := fieldKeys[key]; ok && entry.attrs != nil {
		return nil, fmt.Errorf("options: field option %q cannot be set from a theme token", key)
	}
	return ParseFieldOption(key, value)
}

func tokenFormOption(key, value string) (FormOption, error) {
	if entry, ok := formKeys[key]; ok && entry.attrs != nil {
		return nil, fmt.Errorf("options: form option %q cannot be set from a theme token", key)
	}
	return ParseFormOption(key, value)
}
