package registry

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formstrap/pkg/hierarchy"
)

func TestRegistry_SpecificOverridesGeneral(t *testing.T) {
	field := hierarchy.New("Field")
	stringField := hierarchy.New("StringField", field)
	emailField := hierarchy.New("EmailField", stringField)

	reg := New[string]()
	reg.MustRegister(field, "field")

	got, err := reg.Resolve(emailField)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "field" {
		t.Fatalf("expected general renderer, got %q", got)
	}

	reg.MustRegister(emailField, "email")
	got, err = reg.Resolve(emailField)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "email" {
		t.Fatalf("expected specific renderer, got %q", got)
	}

	got, err = reg.Resolve(stringField)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "field" {
		t.Fatalf("sibling path should still see the general renderer, got %q", got)
	}
}

func TestRegistry_NewestRegistrationWins(t *testing.T) {
	form := hierarchy.New("Form")

	reg := New[string]()
	reg.MustRegister(form, "first")
	reg.MustRegister(form, "second")

	got, err := reg.Resolve(form)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "second" {
		t.Fatalf("expected most recent registration, got %q", got)
	}
}

func TestRegistry_MissingRendererFails(t *testing.T) {
	known := hierarchy.New("Known")
	unknown := hierarchy.New("Unknown")

	reg := New[string]()
	reg.MustRegister(known, "known")

	_, err := reg.Resolve(unknown)
	if err == nil {
		t.Fatalf("expected resolution failure")
	}
	if !errors.Is(err, ErrNoRenderer) || !IsNoRenderer(err) {
		t.Fatalf("expected ErrNoRenderer, got %v", err)
	}
	var resolution *ResolutionError
	if !errors.As(err, &resolution) {
		t.Fatalf("expected *ResolutionError, got %T", err)
	}
	if resolution.Kind != unknown {
		t.Fatalf("expected error to carry the unresolved kind, got %v", resolution.Kind)
	}
	if want := `registry: no renderer found for kind "Unknown"`; err.Error() != want {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestRegistry_FallsBackToShallowerNode(t *testing.T) {
	a := hierarchy.New("A")
	b := hierarchy.New("B", a)
	c := hierarchy.New("C", b)

	reg := New[string]()
	reg.MustRegister(a, "a")
	reg.MustRegister(c, "c")

	got, match, err := reg.ResolveMatch(b)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "a" {
		t.Fatalf("expected fallback to A, got %q", got)
	}
	if diff := cmp.Diff(Match{Kind: a, Chain: 0, Depth: 1}, match, cmp.Comparer(sameKind)); diff != "" {
		t.Fatalf("match mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_FailsFastOnFirstExhaustedChain(t *testing.T) {
	a := hierarchy.New("A")
	b := hierarchy.New("B", a)
	mixedIn := hierarchy.New("MixedIn")
	c := hierarchy.New("C", mixedIn, b)

	reg := New[string]()
	reg.MustRegister(a, "a")

	if _, err := reg.Resolve(c); !errors.Is(err, ErrNoRenderer) {
		t.Fatalf("expected failure on the MixedIn chain, got %v", err)
	}
	if reg.Has(c) {
		t.Fatalf("Has should mirror Resolve")
	}

	fallthroughReg := New[string](WithChainFallthrough())
	fallthroughReg.MustRegister(a, "a")
	got, match, err := fallthroughReg.ResolveMatch(c)
	if err != nil {
		t.Fatalf("resolve with fallthrough: %v", err)
	}
	if got != "a" || match.Chain != 1 || match.Depth != 1 {
		t.Fatalf("unexpected fallthrough result %q %+v", got, match)
	}
}

func TestRegistry_MultipleParentsReachRendererOnEveryChain(t *testing.T) {
	a := hierarchy.New("A")
	b := hierarchy.New("B", a)
	mixedIn := hierarchy.New("MixedIn")
	c := hierarchy.New("C", mixedIn, b)
	d := hierarchy.New("D", c)

	reg := New[string]()
	reg.MustRegister(c, "c")

	got, match, err := reg.ResolveMatch(d)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "c" || match.Kind != c || match.Chain != 0 || match.Depth != 2 {
		t.Fatalf("unexpected result %q %+v", got, match)
	}
}

func TestRegistry_RootCatchAll(t *testing.T) {
	anything := hierarchy.New("Anything")

	reg := New[string]()
	reg.MustRegister(hierarchy.Root, "root")

	got, match, err := reg.ResolveMatch(anything)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "root" || match.Depth != 0 || match.Kind != hierarchy.Root {
		t.Fatalf("unexpected result %q %+v", got, match)
	}
}

func TestRegistry_RegisterValidation(t *testing.T) {
	reg := New[func()]()
	if err := reg.Register(nil, func() {}); err == nil {
		t.Fatalf("expected error for nil kind")
	}
	if err := reg.Register(hierarchy.New("Form"), nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustRegister to panic")
		}
	}()
	reg.MustRegister(nil, func() {})
}

func TestRegistry_ResolveNilKind(t *testing.T) {
	reg := New[string]()
	reg.MustRegister(hierarchy.Root, "root")
	if _, err := reg.Resolve(nil); !IsNoRenderer(err) {
		t.Fatalf("expected resolution failure for nil kind, got %v", err)
	}
}

func TestRegistry_Kinds(t *testing.T) {
	form := hierarchy.New("Form")
	field := hierarchy.New("Field")

	reg := New[string]()
	reg.MustRegister(form, "form")
	reg.MustRegister(field, "field")
	reg.MustRegister(form, "form-again")

	got := reg.Kinds()
	if len(got) != 2 || got[0] != form || got[1] != field {
		t.Fatalf("unexpected kinds %v", got)
	}
}

func sameKind(a, b *hierarchy.Kind) bool {
	return a == b
}
