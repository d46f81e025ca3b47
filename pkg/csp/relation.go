package csp

import (
	"cmp"
	"fmt"
	"slices"
)

type relationKind uint8

const (
	relationTuples relationKind = iota + 1
	relationPredicate
	relationAllDifferent
)

// Relation decides which value combinations a constraint permits. It is a
// tagged variant with a single evaluator rather than an interface hierarchy:
//
//   - Tuples: an explicit set of permitted value tuples, in scope order.
//   - Predicate: an opaque check over the scope values, in scope order.
//   - AllDifferent: pairwise distinctness over the assigned subset of the
//     scope.
//
// Tuple and predicate relations are vacuously satisfied while any scope
// variable is unassigned; all-different rejects a duplicate as soon as it
// appears.
type Relation[V cmp.Ordered] struct {
	kind      relationKind
	tuples    [][]V
	predicate func(values []V) bool
}

// Tuples returns a relation permitting exactly the given value tuples. The
// rows are copied and kept in lexicographic order.
func Tuples[V cmp.Ordered](rows [][]V) Relation[V] {
	sorted := make([][]V, 0, len(rows))
	for _, row := range rows {
		sorted = append(sorted, slices.Clone(row))
	}
	slices.SortFunc(sorted, compareTuple[V])
	return Relation[V]{kind: relationTuples, tuples: sorted}
}

// Predicate returns a relation defined by fn, which receives the scope
// values in scope order.
func Predicate[V cmp.Ordered](fn func(values []V) bool) Relation[V] {
	return Relation[V]{kind: relationPredicate, predicate: fn}
}

// AllDifferent returns a relation requiring all scope values to be pairwise
// distinct. Unlike Predicate it is checked against the assigned subset of
// the scope, so a duplicate is detected without waiting for the full scope.
func AllDifferent[V cmp.Ordered]() Relation[V] {
	return Relation[V]{kind: relationAllDifferent}
}

// IsExplicit reports whether the relation is an explicit tuple set.
func (r Relation[V]) IsExplicit() bool {
	return r.kind == relationTuples
}

// PermittedTuples returns the explicit tuple set in lexicographic order, or
// nil for predicate and all-different relations. The result is shared and
// must not be mutated.
func (r Relation[V]) PermittedTuples() [][]V {
	if r.kind != relationTuples {
		return nil
	}
	return r.tuples
}

// allows evaluates a fully-assigned scope tuple.
func (r Relation[V]) allows(values []V) bool {
	switch r.kind {
	case relationTuples:
		_, found := slices.BinarySearchFunc(r.tuples, values, compareTuple[V])
		return found
	case relationPredicate:
		return r.predicate(values)
	case relationAllDifferent:
		return allDistinct(values)
	default:
		return true
	}
}

func (r Relation[V]) String() string {
	switch r.kind {
	case relationTuples:
		return fmt.Sprintf("tuples(%d)", len(r.tuples))
	case relationPredicate:
		return "predicate"
	case relationAllDifferent:
		return "all-different"
	default:
		return "unspecified"
	}
}

func compareTuple[V cmp.Ordered](a, b []V) int {
	return slices.Compare(a, b)
}

func allDistinct[V cmp.Ordered](values []V) bool {
	for i := 0; i < len(values); i++ {
		for j := i + 1; j < len(values); j++ {
			if values[i] == values[j] {
				return false
			}
		}
	}
	return true
}

// Constraint couples a non-empty ordered scope with the relation its values
// must satisfy.
type Constraint[V cmp.Ordered] struct {
	scope    []Identifier
	relation Relation[V]
}

// NewConstraint builds a constraint over the given scope. Scope validity is
// checked when the constraint is added to a Model.
func NewConstraint[V cmp.Ordered](scope []Identifier, relation Relation[V]) Constraint[V] {
	return Constraint[V]{scope: slices.Clone(scope), relation: relation}
}

// Scope returns the constraint's scope in declaration order. The result is
// shared and must not be mutated.
func (c Constraint[V]) Scope() []Identifier {
	return c.scope
}

// Relation returns the constraint's relation.
func (c Constraint[V]) Relation() Relation[V] {
	return c.relation
}

// Involves reports whether id is part of the constraint's scope.
func (c Constraint[V]) Involves(id Identifier) bool {
	return slices.Contains(c.scope, id)
}

// Satisfied reports whether the assignment satisfies the constraint.
// All-different relations are checked against the assigned subset of the
// scope; tuple and predicate relations are vacuously satisfied until every
// scope variable is assigned.
func (c Constraint[V]) Satisfied(assignment Assignment[V]) bool {
	if c.relation.kind == relationAllDifferent {
		assigned := make([]V, 0, len(c.scope))
		for _, id := range c.scope {
			if v, ok := assignment[id]; ok {
				assigned = append(assigned, v)
			}
		}
		return allDistinct(assigned)
	}

	values := make([]V, len(c.scope))
	for i, id := range c.scope {
		v, ok := assignment[id]
		if !ok {
			return true
		}
		values[i] = v
	}
	return c.relation.allows(values)
}

func (c Constraint[V]) String() string {
	return fmt.Sprintf("constraint(%v, %s)", c.scope, c.relation)
}
