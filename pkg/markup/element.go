package markup

import (
	"html/template"
	"strings"
)

// Element wraps content in a tag carrying attrs.
func Element(tag string, attrs Attrs, content template.HTML) template.HTML {
	var builder strings.Builder
	builder.Grow(len(content) + len(tag)*2 + 16)
	builder.WriteByte('<')
	builder.WriteString(tag)
	builder.WriteString(attrs.String())
	builder.WriteByte('>')
	builder.WriteString(string(content))
	builder.WriteString("</")
	builder.WriteString(tag)
	builder.WriteByte('>')
	return template.HTML(builder.String())
}

// Void renders a tag without content or closing tag, such as input.
func Void(tag string, attrs Attrs) template.HTML {
	return template.HTML("<" + tag + attrs.String() + ">")
}

// Wrap is Element for layout layers: when enabled is false the content is
// returned unchanged. An empty class is omitted.
func Wrap(enabled bool, tag, class string, attrs Attrs, content template.HTML) template.HTML {
	if !enabled {
		return content
	}
	merged := Merge(Attrs{}.SetIf("class", class), attrs)
	return Element(tag, merged, content)
}

// Join concatenates markup fragments with sep.
func Join(sep string, parts ...template.HTML) template.HTML {
	raw := make([]string, len(parts))
	for idx, part := range parts {
		raw[idx] = string(part)
	}
	return template.HTML(strings.Join(raw, sep))
}
