package registry

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/goliatone/go-formstrap/pkg/hierarchy"
)

// node is one kind in one ancestor chain. Children are keyed by kind identity.
type node[R any] struct {
	kind      *hierarchy.Kind
	renderers []R
	children  map[*hierarchy.Kind]*node[R]
}

func newNode[R any](kind *hierarchy.Kind) *node[R] {
	return &node[R]{
		kind:     kind,
		children: make(map[*hierarchy.Kind]*node[R]),
	}
}

// Match describes where a renderer was found during resolution.
type Match struct {
	// Kind is the kind the renderer was registered for.
	Kind *hierarchy.Kind
	// Chain is the index of the ancestor chain that produced the match.
	Chain int
	// Depth is the trie depth of the matching node; 0 is the root.
	Depth int
}

// Option configures a Registry.
type Option func(*config)

type config struct {
	fallthroughChains bool
}

// WithChainFallthrough makes Resolve try the next ancestor chain when a chain
// yields no renderer, instead of failing on the first exhausted chain.
func WithChainFallthrough() Option {
	return func(cfg *config) {
		cfg.fallthroughChains = true
	}
}

// Registry associates renderers of type R with kinds. It is a trie over
// ancestor chains rooted at hierarchy.Root: registering for a kind makes the
// renderer reachable from every chain of that kind, and resolution picks the
// renderer registered closest to the concrete kind.
//
// Registries are meant to be populated once at startup. Reads and writes are
// guarded, but resolution results observed during a concurrent registration
// depend on ordering.
type Registry[R any] struct {
	mu    sync.RWMutex
	root  *node[R]
	kinds []*hierarchy.Kind
	cfg   config
}

// New creates an empty registry.
func New[R any](options ...Option) *Registry[R] {
	reg := &Registry[R]{root: newNode[R](hierarchy.Root)}
	for _, opt := range options {
		if opt != nil {
			opt(&reg.cfg)
		}
	}
	return reg
}

// Register attaches renderer to kind. Renderers registered later for the
// same kind take precedence over earlier ones.
func (r *Registry[R]) Register(kind *hierarchy.Kind, renderer R) error {
	if kind == nil {
		return fmt.Errorf("registry: kind is required")
	}
	if isNil(renderer) {
		return fmt.Errorf("registry: renderer for kind %q is nil", kind.Name())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, chain := range hierarchy.Chains(kind) {
		current := r.root
		// The last entry of every chain is Root, which the trie root stands for.
		for idx := len(chain) - 2; idx >= 0; idx-- {
			step := chain[idx]
			child, ok := current.children[step]
			if !ok {
				child = newNode[R](step)
				current.children[step] = child
			}
			current = child
		}
		current.renderers = append(current.renderers, renderer)
	}

	r.trackKind(kind)
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry[R]) MustRegister(kind *hierarchy.Kind, renderer R) {
	if err := r.Register(kind, renderer); err != nil {
		panic(err)
	}
}

// Resolve returns the most specific renderer for kind.
func (r *Registry[R]) Resolve(kind *hierarchy.Kind) (R, error) {
	renderer, _, err := r.ResolveMatch(kind)
	return renderer, err
}

// ResolveMatch is Resolve plus details on where the renderer was found.
//
// Each ancestor chain is walked from the root towards the concrete kind,
// stopping at the first kind without a trie node. The visited nodes are then
// scanned deepest first, newest registration first. Unless the registry was
// built WithChainFallthrough, a chain that yields nothing ends resolution with
// a *ResolutionError.
func (r *Registry[R]) ResolveMatch(kind *hierarchy.Kind) (R, Match, error) {
	var zero R
	if kind == nil {
		return zero, Match{}, &ResolutionError{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for chainIdx, chain := range hierarchy.Chains(kind) {
		visited := []*node[R]{r.root}
		current := r.root
		for idx := len(chain) - 2; idx >= 0; idx-- {
			child, ok := current.children[chain[idx]]
			if !ok {
				break
			}
			current = child
			visited = append(visited, current)
		}

		for depth := len(visited) - 1; depth >= 0; depth-- {
			candidate := visited[depth]
			if count := len(candidate.renderers); count > 0 {
				return candidate.renderers[count-1], Match{
					Kind:  candidate.kind,
					Chain: chainIdx,
					Depth: depth,
				}, nil
			}
		}

		if !r.cfg.fallthroughChains {
			break
		}
	}
	return zero, Match{}, &ResolutionError{Kind: kind}
}

// Has reports whether a renderer can be resolved for kind.
func (r *Registry[R]) Has(kind *hierarchy.Kind) bool {
	_, _, err := r.ResolveMatch(kind)
	return err == nil
}

// Kinds returns the kinds that received a registration, in first
// registration order.
func (r *Registry[R]) Kinds() []*hierarchy.Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*hierarchy.Kind, len(r.kinds))
	copy(out, r.kinds)
	return out
}

func (r *Registry[R]) trackKind(kind *hierarchy.Kind) {
	for _, existing := range r.kinds {
		if existing == kind {
			return
		}
	}
	r.kinds = append(r.kinds, kind)
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
