package options

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-formstrap/pkg/markup"
)

// optionKey converts a raw configuration value into one option. Exactly one
// of the setters is non-nil.
type optionKey[O any] struct {
	text  func(string) O
	flag  func(bool) O
	attrs func(markup.Attrs) O
}

var fieldKeys = map[string]optionKey[FieldOption]{
	"row_class":                {text: RowClass},
	"row_attrs":                {attrs: RowAttrs},
	"row_enabled":              {flag: RowEnabled},
	"wrapper_class":            {text: WrapperClass},
	"wrapper_attrs":            {attrs: WrapperAttrs},
	"wrapper_enabled":          {flag: WrapperEnabled},
	"field_wrapper_class":      {text: FieldWrapperClass},
	"field_wrapper_attrs":      {attrs: FieldWrapperAttrs},
	"field_wrapper_enabled":    {flag: FieldWrapperEnabled},
	"field_class":              {text: FieldClass},
	"field_checkbox_class":     {text: FieldCheckboxClass},
	"field_select_class":       {text: FieldSelectClass},
	"field_invalid_class":      {text: FieldInvalidClass},
	"field_attrs":              {attrs: FieldAttrs},
	"submit_field_class":       {text: SubmitFieldClass},
	"label_class":              {text: LabelClass},
	"label_checkbox_class":     {text: LabelCheckboxClass},
	"label_attrs":              {attrs: LabelAttrs},
	"label_enabled":            {flag: LabelEnabled},
	"label_first":              {flag: LabelFirst},
	"checkbox_wrapper_class":   {text: CheckboxWrapperClass},
	"checkbox_wrapper_attrs":   {attrs: CheckboxWrapperAttrs},
	"checkbox_wrapper_enabled": {flag: CheckboxWrapperEnabled},
	"help_class":               {text: HelpClass},
	"help_attrs":               {attrs: HelpAttrs},
	"help_enabled":             {flag: HelpEnabled},
	"error_class":              {text: ErrorClass},
	"error_attrs":              {attrs: ErrorAttrs},
	"error_separator":          {text: ErrorSeparator},
}

var formKeys = map[string]optionKey[FormOption]{
	"method":  {text: Method},
	"action":  {text: Action},
	"enctype": {text: Enctype},
	"class":   {text: FormClass},
	"attrs":   {attrs: FormAttrs},
	"enabled": {flag: FormEnabled},
}

// FieldOptionKeys lists the configuration keys understood for fields.
func FieldOptionKeys() []string {
	return sortedKeys(fieldKeys)
}

// FormOptionKeys lists the configuration keys understood for forms.
func FormOptionKeys() []string {
	return sortedKeys(formKeys)
}

// ParseFieldOption converts a configuration entry into a FieldOption. A nil
// value clears a class or attribute option.
func ParseFieldOption(key string, value any) (FieldOption, error) {
	return parseOption(fieldKeys, "field", key, value)
}

// ParseFormOption converts a configuration entry into a FormOption.
func ParseFormOption(key string, value any) (FormOption, error) {
	return parseOption(formKeys, "form", key, value)
}

func parseOption[O any](keys map[string]optionKey[O], scope, key string, value any) (O, error) {
	var zero O
	normalized := strings.ToLower(strings.TrimSpace(key))
	entry, ok := keys[normalized]
	if !ok {
		return zero, fmt.Errorf("options: unknown %s option %q", scope, key)
	}

	switch {
	case entry.text != nil:
		switch v := value.(type) {
		case nil:
			return entry.text(""), nil
		case string:
			return entry.text(v), nil
		default:
			return zero, fmt.Errorf("options: %s option %q expects a string, got %T", scope, key, value)
		}
	case entry.flag != nil:
		switch v := value.(type) {
		case bool:
			return entry.flag(v), nil
		case string:
			parsed, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return zero, fmt.Errorf("options: %s option %q expects a boolean: %w", scope, key, err)
			}
			return entry.flag(parsed), nil
		default:
			return zero, fmt.Errorf("options: %s option %q expects a boolean, got %T", scope, key, value)
		}
	default:
		attrs, err := toAttrs(value)
		if err != nil {
			return zero, fmt.Errorf("options: %s option %q: %w", scope, key, err)
		}
		return entry.attrs(attrs), nil
	}
}

func toAttrs(value any) (markup.Attrs, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case markup.Attrs:
		return v.Clone(), nil
	case map[string]string:
		return markup.Attrs(v).Clone(), nil
	case map[string]any:
		out := make(markup.Attrs, len(v))
		for key, raw := range v {
			switch item := raw.(type) {
			case nil:
				out[key] = ""
			case string:
				out[key] = item
			case bool, int, int64, float64:
				out[key] = fmt.Sprint(item)
			default:
				return nil, fmt.Errorf("attribute %q has unsupported value %T", key, raw)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expects an attribute map, got %T", value)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
