package markup

import (
	"html/template"
	"testing"
)

func TestAttrsString(t *testing.T) {
	cases := []struct {
		name  string
		attrs Attrs
		want  string
	}{
		{name: "empty", attrs: nil, want: ""},
		{name: "sorted", attrs: Attrs{"name": "email", "class": "form-control", "id": "email"}, want: ` class="form-control" id="email" name="email"`},
		{name: "escaped", attrs: Attrs{"title": `"quoted" <b>`}, want: ` title="&#34;quoted&#34; &lt;b&gt;"`},
		{name: "boolean bare", attrs: Attrs{"checked": "", "value": ""}, want: ` checked value=""`},
		{name: "boolean with value", attrs: Attrs{"disabled": "disabled"}, want: ` disabled="disabled"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.attrs.String(); got != tc.want {
				t.Fatalf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMergeLaterWins(t *testing.T) {
	base := Attrs{"class": "a", "id": "x"}
	override := Attrs{"class": "b"}

	merged := Merge(base, nil, override)
	if merged["class"] != "b" || merged["id"] != "x" {
		t.Fatalf("unexpected merge result %v", merged)
	}
	if base["class"] != "a" {
		t.Fatalf("merge mutated its input")
	}
}

func TestSetIfSkipsEmpty(t *testing.T) {
	attrs := Attrs{}.SetIf("class", "").SetIf("method", "post")
	if _, ok := attrs["class"]; ok {
		t.Fatalf("empty class should be omitted")
	}
	if attrs["method"] != "post" {
		t.Fatalf("expected method to be set")
	}
}

func TestClasses(t *testing.T) {
	if got := Classes("form-control", "", "  is-invalid "); got != "form-control is-invalid" {
		t.Fatalf("Classes() = %q", got)
	}
	if got := Classes("", " "); got != "" {
		t.Fatalf("Classes() = %q, want empty", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	original := Attrs{"a": "1"}
	clone := original.Clone()
	clone["a"] = "2"
	if original["a"] != "1" {
		t.Fatalf("clone shares storage with original")
	}
	if Attrs(nil).Clone() != nil {
		t.Fatalf("expected nil clone of empty attrs")
	}
}

func TestElementHelpers(t *testing.T) {
	got := Element("div", Attrs{"class": "mb-3"}, Escape("a < b"))
	if want := template.HTML(`<div class="mb-3">a &lt; b</div>`); got != want {
		t.Fatalf("Element() = %q, want %q", got, want)
	}

	if got := Void("input", Attrs{"type": "text"}); got != `<input type="text">` {
		t.Fatalf("Void() = %q", got)
	}

	if got := Wrap(false, "div", "row", nil, "<p></p>"); got != "<p></p>" {
		t.Fatalf("disabled Wrap should return content, got %q", got)
	}
	if got := Wrap(true, "div", "", nil, "x"); got != "<div>x</div>" {
		t.Fatalf("Wrap without class = %q", got)
	}
	if got := Wrap(true, "div", "row", Attrs{"attr": "X"}, "x"); got != `<div attr="X" class="row">x</div>` {
		t.Fatalf("Wrap with attrs = %q", got)
	}

	if got := Join("\n", "a", "b"); got != "a\nb" {
		t.Fatalf("Join() = %q", got)
	}
}
