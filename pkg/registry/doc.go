// Package registry implements most-specific-wins dispatch over the kind
// lattice declared in package hierarchy. Renderers are stored in a trie keyed
// by kind identity, built from every ancestor chain of the registered kind.
package registry
