package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formstrap/pkg/model"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetText     = "text"
	WidgetEmail    = "email"
	WidgetPassword = "password"
	WidgetNumber   = "number"
	WidgetHidden   = "hidden"
	WidgetCheckbox = "checkbox"
	WidgetSubmit   = "submit"
	WidgetSelect   = "select"
	WidgetTextArea = "textarea"
)

// Registry maps widget names to widgets so form definitions can pick a widget
// by name. Names are case-insensitive; the latest registration for a name
// wins.
type Registry struct {
	mu      sync.RWMutex
	widgets map[string]model.Widget
}

// NewRegistry constructs a registry with the built-in widgets registered.
func NewRegistry() *Registry {
	reg := &Registry{widgets: make(map[string]model.Widget)}
	reg.registerBuiltins()
	return reg
}

// Register associates widget with name. Empty names and nil widgets are
// ignored.
func (r *Registry) Register(name string, widget model.Widget) {
	if r == nil || widget == nil {
		return
	}
	key := normalize(name)
	if key == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.widgets[key] = widget
}

// Lookup returns the widget registered under name.
func (r *Registry) Lookup(name string) (model.Widget, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	widget, ok := r.widgets[normalize(name)]
	return widget, ok
}

// Names returns the registered widget names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.widgets))
	for name := range r.widgets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetText, Input{Type: "text"})
	r.Register(WidgetEmail, Input{Type: "email"})
	r.Register(WidgetPassword, Input{Type: "password", HideValue: true})
	r.Register(WidgetNumber, Input{Type: "number"})
	r.Register(WidgetHidden, Input{Type: "hidden"})
	r.Register(WidgetCheckbox, Checkbox{})
	r.Register(WidgetSubmit, Submit{})
	r.Register(WidgetSelect, Select{})
	r.Register(WidgetTextArea, TextArea{})
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
