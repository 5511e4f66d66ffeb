// Package markup holds the small HTML assembly helpers shared by widgets and
// renderers: attribute maps, class lists, element wrapping and escaping.
package markup

import (
	"html"
	"html/template"
	"sort"
	"strings"
)

// Attrs is a set of HTML attributes. Values are escaped when rendered.
type Attrs map[string]string

// booleanAttrs render as a bare name when their value is empty.
var booleanAttrs = map[string]struct{}{
	"checked":  {},
	"disabled": {},
	"multiple": {},
	"readonly": {},
	"required": {},
	"selected": {},
}

// Clone returns a copy, or nil for an empty set.
func (a Attrs) Clone() Attrs {
	if len(a) == 0 {
		return nil
	}
	out := make(Attrs, len(a))
	for key, value := range a {
		out[key] = value
	}
	return out
}

// SetIf sets key only when value is not empty. Absent configuration omits
// the attribute instead of emitting an empty one.
func (a Attrs) SetIf(key, value string) Attrs {
	if value == "" {
		return a
	}
	a[key] = value
	return a
}

// Merge combines attribute sets left to right; later sets win on key
// collisions. The inputs are never modified.
func Merge(layers ...Attrs) Attrs {
	out := make(Attrs)
	for _, layer := range layers {
		for key, value := range layer {
			out[key] = value
		}
	}
	return out
}

// String renders the attributes with a leading space, sorted by name.
func (a Attrs) String() string {
	if len(a) == 0 {
		return ""
	}
	keys := make([]string, 0, len(a))
	for key := range a {
		if strings.TrimSpace(key) == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for _, key := range keys {
		value := a[key]
		builder.WriteByte(' ')
		builder.WriteString(html.EscapeString(key))
		if _, ok := booleanAttrs[key]; ok && value == "" {
			continue
		}
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(value))
		builder.WriteByte('"')
	}
	return builder.String()
}

// Classes joins class lists, skipping empty entries.
func Classes(classes ...string) string {
	keep := make([]string, 0, len(classes))
	for _, class := range classes {
		if trimmed := strings.TrimSpace(class); trimmed != "" {
			keep = append(keep, trimmed)
		}
	}
	return strings.Join(keep, " ")
}

// Escape turns user text into markup.
func Escape(text string) template.HTML {
	return template.HTML(html.EscapeString(text))
}
