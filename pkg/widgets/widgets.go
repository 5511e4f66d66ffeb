// Package widgets renders the bare input elements behind form fields. Widgets
// only produce the control itself; labels, help text and wrappers belong to
// the renderers.
package widgets

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/goliatone/go-formstrap/pkg/markup"
	"github.com/goliatone/go-formstrap/pkg/model"
)

// CheckboxValue is the value submitted by a checked checkbox.
const CheckboxValue = "y"

// Input renders an <input> of the given type. HideValue suppresses the value
// attribute, as password inputs do.
type Input struct {
	Type      string
	HideValue bool
}

// Render implements model.Widget.
func (w Input) Render(field model.Field, attrs markup.Attrs) (template.HTML, error) {
	if field == nil {
		return "", fmt.Errorf("widgets: input field is nil")
	}
	inputType := strings.TrimSpace(w.Type)
	if inputType == "" {
		inputType = "text"
	}
	base := baseAttrs(field)
	base["type"] = inputType
	if !w.HideValue {
		base["value"] = valueOf(field)
	}
	return markup.Void("input", markup.Merge(base, renderKw(field), attrs)), nil
}

// Checkbox renders a checkbox input, checked when the field reports so.
type Checkbox struct{}

// Render implements model.Widget.
func (Checkbox) Render(field model.Field, attrs markup.Attrs) (template.HTML, error) {
	if field == nil {
		return "", fmt.Errorf("widgets: checkbox field is nil")
	}
	base := baseAttrs(field)
	base["type"] = "checkbox"
	base["value"] = CheckboxValue
	if checker, ok := field.(model.Checker); ok && checker.Checked() {
		base["checked"] = ""
	}
	return markup.Void("input", markup.Merge(base, renderKw(field), attrs)), nil
}

// Submit renders a submit input using the field label as its caption.
type Submit struct{}

// Render implements model.Widget.
func (Submit) Render(field model.Field, attrs markup.Attrs) (template.HTML, error) {
	if field == nil {
		return "", fmt.Errorf("widgets: submit field is nil")
	}
	base := baseAttrs(field)
	base["type"] = "submit"
	base["value"] = field.Label()
	return markup.Void("input", markup.Merge(base, renderKw(field), attrs)), nil
}

// Select renders a <select> listing the field's choices. The choice whose
// value equals the field value is selected.
type Select struct{}

// Render implements model.Widget.
func (Select) Render(field model.Field, attrs markup.Attrs) (template.HTML, error) {
	if field == nil {
		return "", fmt.Errorf("widgets: select field is nil")
	}
	var choices []model.Choice
	if chooser, ok := field.(model.Chooser); ok {
		choices = chooser.Choices()
	}
	current := valueOf(field)

	options := make([]template.HTML, 0, len(choices))
	for _, choice := range choices {
		optionAttrs := markup.Attrs{"value": choice.Value}
		if choice.Value == current {
			optionAttrs["selected"] = ""
		}
		options = append(options, markup.Element("option", optionAttrs, markup.Escape(choice.Label)))
	}
	return markup.Element("select", markup.Merge(baseAttrs(field), renderKw(field), attrs), markup.Join("", options...)), nil
}

// TextArea renders a <textarea> holding the escaped field value.
type TextArea struct{}

// Render implements model.Widget.
func (TextArea) Render(field model.Field, attrs markup.Attrs) (template.HTML, error) {
	if field == nil {
		return "", fmt.Errorf("widgets: textarea field is nil")
	}
	return markup.Element("textarea", markup.Merge(baseAttrs(field), renderKw(field), attrs), markup.Escape(valueOf(field))), nil
}

func baseAttrs(field model.Field) markup.Attrs {
	return markup.Attrs{
		"id":   field.Name(),
		"name": field.Name(),
	}
}

func valueOf(field model.Field) string {
	if valuer, ok := field.(model.Valuer); ok {
		return valuer.Value()
	}
	return ""
}

func renderKw(field model.Field) markup.Attrs {
	if attributer, ok := field.(model.Attributer); ok {
		return attributer.RenderKw()
	}
	return nil
}
