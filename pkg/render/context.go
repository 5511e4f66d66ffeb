package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/charmbracelet/log"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formstrap/pkg/markup"
	"github.com/goliatone/go-formstrap/pkg/model"
	"github.com/goliatone/go-formstrap/pkg/options"
	"github.com/goliatone/go-formstrap/pkg/registry"
)

// RendererFunc renders one element. Implementations must be pure: everything
// they need comes from the context configuration and the element, and child
// elements are rendered through ctx.Render.
type RendererFunc func(ctx *Context, element model.Element) (template.HTML, error)

// Registry is the renderer registry a Context resolves against.
type Registry = registry.Registry[RendererFunc]

// NewRegistry creates an empty renderer registry.
func NewRegistry(opts ...registry.Option) *Registry {
	return registry.New[RendererFunc](opts...)
}

// Option configures a Context at construction.
type Option func(*Context)

// WithLogger routes resolution diagnostics to logger. Contexts discard logs
// by default.
func WithLogger(logger *log.Logger) Option {
	return func(c *Context) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHelpPolicy sanitizes help text with policy instead of escaping it,
// allowing limited inline markup in field descriptions.
func WithHelpPolicy(policy *bluemonday.Policy) Option {
	return func(c *Context) {
		c.helpPolicy = policy
	}
}

// WithDefaultFieldOptions replaces the context-wide field defaults.
func WithDefaultFieldOptions(opts options.FieldOptions) Option {
	return func(c *Context) {
		c.defaultField = opts.Clone()
	}
}

// WithFormOptions replaces the form options.
func WithFormOptions(opts options.FormOptions) Option {
	return func(c *Context) {
		c.form = opts.With()
	}
}

// Context resolves renderers for elements and holds the configuration they
// render with. Configuration methods return the context so calls chain:
//
//	html, err := ctx.Form(options.Action("/login")).
//		DefaultField(options.RowEnabled(true)).
//		Field("remember", options.LabelFirst(false)).
//		Render(form)
//
// A Context must not be configured concurrently. Rendering does not mutate it.
type Context struct {
	registry     *Registry
	defaultField options.FieldOptions
	fields       map[string]options.FieldOptions
	form         options.FormOptions
	logger       *log.Logger
	helpPolicy   *bluemonday.Policy
}

// New creates a context resolving against reg. A nil registry behaves as an
// empty one: every Render fails with a resolution error.
func New(reg *Registry, opts ...Option) *Context {
	if reg == nil {
		reg = NewRegistry()
	}
	ctx := &Context{
		registry:     reg,
		defaultField: options.DefaultFieldOptions(),
		fields:       make(map[string]options.FieldOptions),
		form:         options.DefaultFormOptions(),
		logger:       log.New(io.Discard),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(ctx)
		}
	}
	return ctx
}

// Render resolves the renderer for element's kind and invokes it. A
// resolution failure is returned unchanged (see registry.ErrNoRenderer).
func (c *Context) Render(element model.Element) (template.HTML, error) {
	if element == nil {
		return "", fmt.Errorf("render: element is nil")
	}
	kind := element.Kind()
	renderer, match, err := c.registry.ResolveMatch(kind)
	if err != nil {
		c.logger.Warn("no renderer registered", "kind", kind.Name(), "element", fmt.Sprintf("%T", element))
		return "", err
	}
	c.logger.Debug("resolved renderer",
		"kind", kind.Name(),
		"registered_for", match.Kind.Name(),
		"chain", match.Chain,
		"depth", match.Depth,
	)
	return renderer(c, element)
}

// Form merges opts into the form options.
func (c *Context) Form(opts ...options.FormOption) *Context {
	c.form = c.form.With(opts...)
	return c
}

// Field merges opts into the options stored for name. A field without stored
// options starts from a copy of the current defaults; from then on it no
// longer follows DefaultField changes.
func (c *Context) Field(name string, opts ...options.FieldOption) *Context {
	current, ok := c.fields[name]
	if !ok {
		current = c.defaultField
	}
	c.fields[name] = current.With(opts...)
	return c
}

// Fields applies Field to every name.
func (c *Context) Fields(names []string, opts ...options.FieldOption) *Context {
	for _, name := range names {
		c.Field(name, opts...)
	}
	return c
}

// DefaultField merges opts into the context-wide field defaults. Fields
// without stored options see the change.
func (c *Context) DefaultField(opts ...options.FieldOption) *Context {
	c.defaultField = c.defaultField.With(opts...)
	return c
}

// ApplyPreset applies a preset's form, default and per-field options, in
// that order.
func (c *Context) ApplyPreset(preset options.Preset) *Context {
	c.Form(preset.Form...)
	c.DefaultField(preset.DefaultField...)
	for name, opts := range preset.Fields {
		c.Field(name, opts...)
	}
	return c
}

// FieldOptions returns the effective options for the named field: its stored
// options when present, the defaults otherwise.
func (c *Context) FieldOptions(name string) options.FieldOptions {
	if opts, ok := c.fields[name]; ok {
		return opts.Clone()
	}
	return c.defaultField.Clone()
}

// DefaultFieldOptions returns the context-wide field defaults.
func (c *Context) DefaultFieldOptions() options.FieldOptions {
	return c.defaultField.Clone()
}

// FormOptions returns the form options.
func (c *Context) FormOptions() options.FormOptions {
	return c.form.With()
}

// Registry returns the registry the context resolves against.
func (c *Context) Registry() *Registry {
	return c.registry
}

// Logger returns the context logger.
func (c *Context) Logger() *log.Logger {
	return c.logger
}

// HelpText turns a field description into markup: sanitized when a help
// policy is configured, escaped otherwise.
func (c *Context) HelpText(text string) template.HTML {
	if c.helpPolicy != nil {
		return template.HTML(c.helpPolicy.Sanitize(text))
	}
	return markup.Escape(text)
}

// Clone returns an independent copy sharing the registry, logger and help
// policy. Configuration changes on either side do not affect the other.
func (c *Context) Clone() *Context {
	clone := &Context{
		registry:     c.registry,
		defaultField: c.defaultField.Clone(),
		fields:       make(map[string]options.FieldOptions, len(c.fields)),
		form:         c.form.With(),
		logger:       c.logger,
		helpPolicy:   c.helpPolicy,
	}
	for name, opts := range c.fields {
		clone.fields[name] = opts.Clone()
	}
	return clone
}
