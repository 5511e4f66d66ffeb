// Package hierarchy declares element kinds and enumerates the ancestor chains
// a kind reaches the universal root through. A kind may declare several
// parents, so the kinds form a lattice rather than a tree; renderer dispatch
// walks every root-reaching path instead of relying on Go's method sets.
package hierarchy

import (
	"fmt"
	"strings"
)

// Kind identifies an element type. Kinds are compared by pointer identity;
// two kinds declared with the same name are still distinct.
type Kind struct {
	name    string
	parents []*Kind
}

// Root is the universal base kind. Every chain ends at Root.
var Root = &Kind{name: "root"}

// New declares a kind with the given parents, kept in declaration order. A
// kind declared without parents derives directly from Root. Parents must be
// declared before their children, which keeps the graph acyclic.
func New(name string, parents ...*Kind) *Kind {
	kind := &Kind{name: strings.TrimSpace(name)}
	for idx, parent := range parents {
		if parent == nil {
			panic(fmt.Sprintf("hierarchy: parent %d of kind %q is nil", idx, kind.name))
		}
		kind.parents = append(kind.parents, parent)
	}
	if len(kind.parents) == 0 {
		kind.parents = []*Kind{Root}
	}
	return kind
}

// Name returns the declared name.
func (k *Kind) Name() string {
	if k == nil {
		return ""
	}
	return k.name
}

// String implements fmt.Stringer.
func (k *Kind) String() string {
	return k.Name()
}

// Parents returns a copy of the declared parents. Root has none.
func (k *Kind) Parents() []*Kind {
	if k == nil || len(k.parents) == 0 {
		return nil
	}
	out := make([]*Kind, len(k.parents))
	copy(out, k.parents)
	return out
}

// Is reports whether other is k itself or appears anywhere in k's ancestry.
func (k *Kind) Is(other *Kind) bool {
	if k == nil || other == nil {
		return false
	}
	if k == other {
		return true
	}
	for _, parent := range k.parents {
		if parent.Is(other) {
			return true
		}
	}
	return false
}
