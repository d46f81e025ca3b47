// Package constraint provides convenience constructors for the relation
// kinds understood by the solver.
package constraint

import (
	"cmp"

	"github.com/constraint-framework/backtrack/pkg/csp"
)

// Tuples returns a constraint permitting exactly the given value tuples
// over the scope, in scope order.
func Tuples[V cmp.Ordered](scope []csp.Identifier, rows [][]V) csp.Constraint[V] {
	return csp.NewConstraint(scope, csp.Tuples(rows))
}

// Predicate returns a constraint checked by fn, which receives the scope
// values in scope order once the full scope is assigned.
func Predicate[V cmp.Ordered](scope []csp.Identifier, fn func(values []V) bool) csp.Constraint[V] {
	return csp.NewConstraint(scope, csp.Predicate(fn))
}

// AllDifferent returns a constraint requiring all scope values to be
// pairwise distinct. It is checked against the assigned subset of the
// scope, so partial assignments are pruned as soon as a duplicate appears.
func AllDifferent[V cmp.Ordered](scope ...csp.Identifier) csp.Constraint[V] {
	return csp.NewConstraint(scope, csp.AllDifferent[V]())
}

// AllDifferentTuples returns an all-different constraint expressed as an
// explicit tuple set: every permutation of len(scope) distinct values drawn
// from universe. The explicit form lets arc consistency reason about
// support across the whole scope, at the cost of enumerating the
// permutations, so it only suits small scopes.
func AllDifferentTuples[V cmp.Ordered](scope []csp.Identifier, universe []V) csp.Constraint[V] {
	var rows [][]V
	used := make([]bool, len(universe))
	tuple := make([]V, 0, len(scope))
	var permute func()
	permute = func() {
		if len(tuple) == len(scope) {
			row := make([]V, len(tuple))
			copy(row, tuple)
			rows = append(rows, row)
			return
		}
		for i, v := range universe {
			if used[i] {
				continue
			}
			used[i] = true
			tuple = append(tuple, v)
			permute()
			tuple = tuple[:len(tuple)-1]
			used[i] = false
		}
	}
	permute()
	return Tuples(scope, rows)
}

// NotEqual returns a binary constraint requiring a and b to take different
// values.
func NotEqual[V cmp.Ordered](a, b csp.Identifier) csp.Constraint[V] {
	return Predicate([]csp.Identifier{a, b}, func(values []V) bool {
		return values[0] != values[1]
	})
}

// Equal returns a binary constraint requiring a and b to take the same
// value.
func Equal[V cmp.Ordered](a, b csp.Identifier) csp.Constraint[V] {
	return Predicate([]csp.Identifier{a, b}, func(values []V) bool {
		return values[0] == values[1]
	})
}
