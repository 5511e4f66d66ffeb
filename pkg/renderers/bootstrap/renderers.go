package bootstrap

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/goliatone/go-formstrap/pkg/markup"
	"github.com/goliatone/go-formstrap/pkg/model"
	"github.com/goliatone/go-formstrap/pkg/options"
	"github.com/goliatone/go-formstrap/pkg/render"
)

// RenderForm renders every field in declaration order and wraps them in a
// <form> element unless form rendering is disabled.
func RenderForm(ctx *render.Context, element model.Element) (template.HTML, error) {
	form, ok := element.(model.Form)
	if !ok {
		return "", fmt.Errorf("bootstrap: form renderer cannot render %T", element)
	}

	fields := form.Fields()
	parts := make([]template.HTML, 0, len(fields))
	for _, field := range fields {
		html, err := ctx.Render(field)
		if err != nil {
			return "", err
		}
		parts = append(parts, html)
	}
	content := markup.Join("\n", parts...)

	opts := ctx.FormOptions()
	if !opts.Enabled {
		return content, nil
	}
	attrs := markup.Attrs{}.
		SetIf("method", opts.Method).
		SetIf("action", opts.Action).
		SetIf("enctype", opts.Enctype).
		SetIf("class", opts.Class)
	return markup.Element("form", markup.Merge(attrs, opts.Attrs), content), nil
}

// RenderField renders a visible field: input, help and errors, then the
// label, then the checkbox, inner and row wrappers.
func RenderField(ctx *render.Context, element model.Element) (template.HTML, error) {
	field, ok := element.(model.Field)
	if !ok {
		return "", fmt.Errorf("bootstrap: field renderer cannot render %T", element)
	}
	opts := ctx.FieldOptions(field.Name())
	checkbox := model.IsCheckbox(field)
	errs := field.Errors()

	class := opts.FieldClass
	switch {
	case checkbox:
		class = opts.FieldCheckboxClass
	case model.IsSelect(field):
		class = opts.FieldSelectClass
	}
	if len(errs) > 0 {
		class = markup.Classes(class, opts.FieldInvalidClass)
	}

	input, err := renderWidget(field, markup.Attrs{}.SetIf("class", class), opts.FieldAttrs)
	if err != nil {
		return "", err
	}

	content := input
	if description := field.Description(); description != "" && opts.HelpEnabled {
		helpAttrs := markup.Merge(markup.Attrs{}.SetIf("class", opts.HelpClass), opts.HelpAttrs)
		content += markup.Element("div", helpAttrs, ctx.HelpText(description))
	}
	if len(errs) > 0 {
		errorAttrs := markup.Merge(markup.Attrs{}.SetIf("class", opts.ErrorClass), opts.ErrorAttrs)
		content += markup.Element("div", errorAttrs, markup.Escape(strings.Join(errs, opts.ErrorSeparator)))
	}
	content = markup.Wrap(opts.FieldWrapperEnabled, "div", opts.FieldWrapperClass, opts.FieldWrapperAttrs, content)

	if label := field.Label(); opts.LabelEnabled && label != "" {
		labelClass := opts.LabelClass
		if checkbox {
			labelClass = opts.LabelCheckboxClass
		}
		labelAttrs := markup.Merge(markup.Attrs{"for": field.Name()}.SetIf("class", labelClass), opts.LabelAttrs)
		labelHTML := markup.Element("label", labelAttrs, markup.Escape(label))
		if opts.LabelFirst && !checkbox {
			content = labelHTML + content
		} else {
			content += labelHTML
		}
	}

	if checkbox {
		content = markup.Wrap(opts.CheckboxWrapperEnabled, "div", opts.CheckboxWrapperClass, opts.CheckboxWrapperAttrs, content)
	}
	return wrapRow(opts, content), nil
}

// RenderSubmit renders a submit button inside the same wrappers as a field,
// without label, help or errors.
func RenderSubmit(ctx *render.Context, element model.Element) (template.HTML, error) {
	field, ok := element.(model.Field)
	if !ok {
		return "", fmt.Errorf("bootstrap: submit renderer cannot render %T", element)
	}
	opts := ctx.FieldOptions(field.Name())

	button, err := renderWidget(field, markup.Attrs{}.SetIf("class", opts.SubmitFieldClass), opts.FieldAttrs)
	if err != nil {
		return "", err
	}
	content := markup.Wrap(opts.FieldWrapperEnabled, "div", opts.FieldWrapperClass, opts.FieldWrapperAttrs, button)
	return wrapRow(opts, content), nil
}

// RenderHidden renders only the input; hidden fields need no layout.
func RenderHidden(ctx *render.Context, element model.Element) (template.HTML, error) {
	field, ok := element.(model.Field)
	if !ok {
		return "", fmt.Errorf("bootstrap: hidden renderer cannot render %T", element)
	}
	opts := ctx.FieldOptions(field.Name())
	return renderWidget(field, opts.FieldAttrs)
}

// renderWidget merges attrs left to right (later wins) and renders the
// field's widget with them.
func renderWidget(field model.Field, attrs ...markup.Attrs) (template.HTML, error) {
	widget := field.Widget()
	if widget == nil {
		return "", fmt.Errorf("bootstrap: field %q has no widget", field.Name())
	}
	html, err := widget.Render(field, markup.Merge(attrs...))
	if err != nil {
		return "", fmt.Errorf("bootstrap: render widget for field %q: %w", field.Name(), err)
	}
	return html, nil
}

func wrapRow(opts options.FieldOptions, content template.HTML) template.HTML {
	content = markup.Wrap(opts.WrapperEnabled, "div", opts.WrapperClass, opts.WrapperAttrs, content)
	return markup.Wrap(opts.RowEnabled, "div", opts.RowClass, opts.RowAttrs, content)
}
