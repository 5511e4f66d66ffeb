package forms

import (
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formstrap/pkg/markup"
	"github.com/goliatone/go-formstrap/pkg/model"
	"github.com/goliatone/go-formstrap/pkg/widgets"
)

// LoadOption configures form loading.
type LoadOption func(*loadConfig)

type loadConfig struct {
	widgets *widgets.Registry
}

// WithWidgetRegistry resolves `widget:` overrides against reg instead of the
// built-in widget set.
func WithWidgetRegistry(reg *widgets.Registry) LoadOption {
	return func(cfg *loadConfig) {
		if reg != nil {
			cfg.widgets = reg
		}
	}
}

type definitionFile struct {
	Fields []fieldDefinition `yaml:"fields"`
}

type fieldDefinition struct {
	Name        string            `yaml:"name"`
	Type        string            `yaml:"type"`
	Label       string            `yaml:"label"`
	Description string            `yaml:"description"`
	Value       string            `yaml:"value"`
	Checked     bool              `yaml:"checked"`
	Errors      []string          `yaml:"errors"`
	Attrs       map[string]string `yaml:"attrs"`
	Choices     []model.Choice    `yaml:"choices"`
	Widget      string            `yaml:"widget"`
}

type fieldConstructor func(def fieldDefinition, options []FieldOption) *Field

var constructors = map[string]fieldConstructor{
	"string": func(def fieldDefinition, options []FieldOption) *Field {
		return NewStringField(def.Name, def.Label, options...)
	},
	"email": func(def fieldDefinition, options []FieldOption) *Field {
		return NewEmailField(def.Name, def.Label, options...)
	},
	"password": func(def fieldDefinition, options []FieldOption) *Field {
		return NewPasswordField(def.Name, def.Label, options...)
	},
	"textarea": func(def fieldDefinition, options []FieldOption) *Field {
		return NewTextAreaField(def.Name, def.Label, options...)
	},
	"hidden": func(def fieldDefinition, options []FieldOption) *Field {
		return NewHiddenField(def.Name, options...)
	},
	"integer": func(def fieldDefinition, options []FieldOption) *Field {
		return NewIntegerField(def.Name, def.Label, options...)
	},
	"boolean": func(def fieldDefinition, options []FieldOption) *Field {
		return NewBooleanField(def.Name, def.Label, options...)
	},
	"submit": func(def fieldDefinition, options []FieldOption) *Field {
		return NewSubmitField(def.Name, def.Label, options...)
	},
	"select": func(def fieldDefinition, options []FieldOption) *Field {
		return NewSelectField(def.Name, def.Label, def.Choices, options...)
	},
}

var typeAliases = map[string]string{
	"":         "string",
	"text":     "string",
	"checkbox": "boolean",
	"number":   "integer",
}

// Load builds a form from a YAML definition:
//
//	fields:
//	  - name: email
//	    type: email
//	    label: Email
//	    attrs: {placeholder: you@example.com}
func Load(data []byte, options ...LoadOption) (*Form, error) {
	cfg := loadConfig{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.widgets == nil {
		cfg.widgets = widgets.NewRegistry()
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("forms: definition is empty")
	}
	var doc definitionFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("forms: parse definition: %w", err)
	}

	form := NewForm()
	for idx, def := range doc.Fields {
		field, err := buildField(def, cfg)
		if err != nil {
			return nil, fmt.Errorf("forms: field %d: %w", idx, err)
		}
		if err := form.Add(field); err != nil {
			return nil, err
		}
	}
	return form, nil
}

// LoadFS reads and loads a definition from fsys.
func LoadFS(fsys fs.FS, path string, options ...LoadOption) (*Form, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("forms: read %s: %w", path, err)
	}
	form, err := Load(data, options...)
	if err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, path)
	}
	return form, nil
}

func buildField(def fieldDefinition, cfg loadConfig) (*Field, error) {
	def.Name = strings.TrimSpace(def.Name)
	if def.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	typ := strings.ToLower(strings.TrimSpace(def.Type))
	if alias, ok := typeAliases[typ]; ok {
		typ = alias
	}
	construct, ok := constructors[typ]
	if !ok {
		return nil, fmt.Errorf("unknown type %q for field %q", def.Type, def.Name)
	}

	options := []FieldOption{
		WithDescription(def.Description),
		WithValue(def.Value),
		WithChecked(def.Checked),
		WithErrors(def.Errors...),
		WithRenderKw(markup.Attrs(def.Attrs)),
	}
	if name := strings.TrimSpace(def.Widget); name != "" {
		widget, ok := cfg.widgets.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown widget %q for field %q", name, def.Name)
		}
		options = append(options, WithWidget(widget))
	}
	return construct(def, options), nil
}
