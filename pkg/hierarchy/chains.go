package hierarchy

import "strings"

// Chain is one root-reaching path through the parents of a kind, ordered
// from the kind itself to Root.
type Chain []*Kind

// Names returns the kind names along the chain.
func (c Chain) Names() []string {
	names := make([]string, len(c))
	for idx, kind := range c {
		names[idx] = kind.Name()
	}
	return names
}

// String renders the chain as "C > B > A > root".
func (c Chain) String() string {
	return strings.Join(c.Names(), " > ")
}

// Chains enumerates every ancestor chain of kind. Parents are visited in
// declaration order and the chains of each parent are concatenated in that
// order. Paths sharing a suffix (diamonds) are all reported; nothing is
// de-duplicated. Root yields the single chain {Root}; a nil kind yields none.
func Chains(kind *Kind) []Chain {
	if kind == nil {
		return nil
	}
	if kind == Root {
		return []Chain{{Root}}
	}

	var chains []Chain
	for _, parent := range kind.parents {
		for _, tail := range Chains(parent) {
			chain := make(Chain, 0, len(tail)+1)
			chain = append(chain, kind)
			chain = append(chain, tail...)
			chains = append(chains, chain)
		}
	}
	return chains
}
