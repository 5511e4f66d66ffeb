package template_test

import (
	"strings"
	"testing"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formstrap/pkg/forms"
	"github.com/goliatone/go-formstrap/pkg/options"
	"github.com/goliatone/go-formstrap/pkg/render"
	"github.com/goliatone/go-formstrap/pkg/render/template"
	"github.com/goliatone/go-formstrap/pkg/renderers/bootstrap"
)

func newContext() *render.Context {
	return render.New(bootstrap.NewRegistry()).Form(options.FormEnabled(false))
}

func execute(t *testing.T, source string, data pongo2.Context) (string, error) {
	t.Helper()
	tpl, err := pongo2.FromString(source)
	if err != nil {
		t.Fatalf("parse template: %v", err)
	}
	return tpl.Execute(data)
}

func loginForm() *forms.Form {
	return forms.NewForm(
		forms.NewEmailField("email", "Email"),
		forms.NewSubmitField("submit", "Sign in"),
	)
}

func TestFilter_RendersFormUnescaped(t *testing.T) {
	if err := template.Register(newContext()); err != nil {
		t.Fatalf("register: %v", err)
	}

	out, err := execute(t, `<main>{{ form|formstrap }}</main>`, pongo2.Context{"form": loginForm()})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out, `<main><div class="mb-3"><label class="form-label" for="email">Email</label>`) {
		t.Fatalf("expected unescaped form markup, got %s", out)
	}
	if !strings.Contains(out, `value="Sign in"`) {
		t.Fatalf("expected submit button, got %s", out)
	}
}

func TestFilter_RendersSingleField(t *testing.T) {
	if err := template.RegisterFilter("formstrap_field", newContext()); err != nil {
		t.Fatalf("register: %v", err)
	}

	out, err := execute(t, `{{ form|formstrap_field:"submit" }}`, pongo2.Context{"form": loginForm()})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := `<div class="mb-3"><input class="btn btn-primary" id="submit" name="submit" type="submit" value="Sign in"></div>`
	if out != want {
		t.Fatalf("unexpected field markup\nwant: %s\n got: %s", want, out)
	}

	if _, err := execute(t, `{{ form|formstrap_field:"missing" }}`, pongo2.Context{"form": loginForm()}); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestFilter_ReplacesContext(t *testing.T) {
	if err := template.RegisterFilter("formstrap_replace", newContext()); err != nil {
		t.Fatalf("register: %v", err)
	}
	compact := newContext().DefaultField(options.WrapperClass("mb-1"))
	if err := template.RegisterFilter("formstrap_replace", compact); err != nil {
		t.Fatalf("replace: %v", err)
	}

	out, err := execute(t, `{{ field|formstrap_replace }}`, pongo2.Context{"field": forms.NewStringField("name", "")})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out, `<div class="mb-1">`) {
		t.Fatalf("expected the replacement context, got %s", out)
	}
}

func TestFilter_Errors(t *testing.T) {
	if err := template.RegisterFilter("formstrap_errors", newContext()); err != nil {
		t.Fatalf("register: %v", err)
	}

	cases := map[string]pongo2.Context{
		"not an element": {"value": "plain"},
		"nil input":      {"value": nil},
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := execute(t, `{{ value|formstrap_errors }}`, data); err == nil {
				t.Fatalf("expected filter error")
			}
		})
	}

	if _, err := execute(t, `{{ value|formstrap_errors:"x" }}`, pongo2.Context{"value": forms.NewStringField("x", "")}); err == nil {
		t.Fatalf("expected error when selecting a field from a field")
	}

	if err := template.RegisterFilter(" ", newContext()); err == nil {
		t.Fatalf("expected error for empty filter name")
	}
	if err := template.RegisterFilter("formstrap_nil", nil); err == nil {
		t.Fatalf("expected error for nil context")
	}
}
