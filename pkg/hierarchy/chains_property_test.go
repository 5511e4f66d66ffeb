//go:build property

package hierarchy

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestChainsProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("every chain starts at the kind and ends at root", prop.ForAll(
		func(seed int64, size int) bool {
			kinds := randomLattice(seed, size)
			for _, kind := range kinds {
				for _, chain := range Chains(kind) {
					if chain[0] != kind || chain[len(chain)-1] != Root {
						return false
					}
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(1, 8),
	))

	properties.Property("consecutive chain entries are child and parent", prop.ForAll(
		func(seed int64, size int) bool {
			for _, kind := range randomLattice(seed, size) {
				for _, chain := range Chains(kind) {
					for idx := 0; idx < len(chain)-1; idx++ {
						if !isDirectParent(chain[idx], chain[idx+1]) {
							return false
						}
					}
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(1, 8),
	))

	properties.Property("chain count equals number of root paths", prop.ForAll(
		func(seed int64, size int) bool {
			memo := make(map[*Kind]int)
			for _, kind := range randomLattice(seed, size) {
				if len(Chains(kind)) != pathCount(kind, memo) {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(1, 8),
	))

	properties.TestingRun(t)
}

// randomLattice declares size kinds, each picking up to three parents among
// the kinds declared before it.
func randomLattice(seed int64, size int) []*Kind {
	rng := rand.New(rand.NewSource(seed))
	kinds := make([]*Kind, 0, size)
	for idx := 0; idx < size; idx++ {
		var parents []*Kind
		if len(kinds) > 0 {
			count := rng.Intn(4)
			for p := 0; p < count; p++ {
				parents = append(parents, kinds[rng.Intn(len(kinds))])
			}
		}
		kinds = append(kinds, New(fmt.Sprintf("K%d", idx), parents...))
	}
	return kinds
}

func isDirectParent(child, parent *Kind) bool {
	for _, candidate := range child.parents {
		if candidate == parent {
			return true
		}
	}
	return false
}

func pathCount(kind *Kind, memo map[*Kind]int) int {
	if kind == Root {
		return 1
	}
	if count, ok := memo[kind]; ok {
		return count
	}
	total := 0
	for _, parent := range kind.parents {
		total += pathCount(parent, memo)
	}
	memo[kind] = total
	return total
}
