package csp

import (
	"cmp"
	"slices"
)

// Model is a constraint satisfaction problem: a set of variables, a finite
// domain per variable, and a list of constraints over variable subsets.
//
// A Model is built once and then borrowed read-only by the solver; the
// solver works on its own copy of the domains and never mutates the Model.
// Model is not safe for concurrent mutation.
type Model[V cmp.Ordered] struct {
	variables   []Identifier
	domains     map[Identifier][]V
	constraints []Constraint[V]
	byVariable  map[Identifier][]int
	neighbors   map[Identifier][]Identifier
}

// NewModel returns an empty model.
func NewModel[V cmp.Ordered]() *Model[V] {
	return &Model[V]{
		domains:    map[Identifier][]V{},
		byVariable: map[Identifier][]int{},
	}
}

// AddVariable registers a variable with a non-empty domain. Duplicate values
// are dropped, preserving first occurrence; the remaining order is the
// variable's natural value order. Re-adding a variable replaces its domain.
func (m *Model[V]) AddVariable(id Identifier, domain ...V) error {
	if len(domain) == 0 {
		return NewModelError("variable %q must have a non-empty domain", id)
	}
	deduped := make([]V, 0, len(domain))
	for _, v := range domain {
		if !slices.Contains(deduped, v) {
			deduped = append(deduped, v)
		}
	}
	if _, exists := m.domains[id]; !exists {
		m.variables = append(m.variables, id)
	}
	m.domains[id] = deduped
	return nil
}

// AddConstraint registers a constraint. The scope must be non-empty and may
// only reference variables already added to the model.
func (m *Model[V]) AddConstraint(c Constraint[V]) error {
	if len(c.scope) == 0 {
		return NewModelError("constraint scope must not be empty")
	}
	for _, id := range c.scope {
		if _, ok := m.domains[id]; !ok {
			return NewModelError("constraint references unknown variable %q", id)
		}
	}
	index := len(m.constraints)
	m.constraints = append(m.constraints, c)
	seen := map[Identifier]bool{}
	for _, id := range c.scope {
		if seen[id] {
			continue
		}
		seen[id] = true
		m.byVariable[id] = append(m.byVariable[id], index)
	}
	m.neighbors = nil
	return nil
}

// Variables returns the variable identifiers in declaration order. The
// result is shared and must not be mutated.
func (m *Model[V]) Variables() []Identifier {
	return m.variables
}

// VariableCount returns the number of variables.
func (m *Model[V]) VariableCount() int {
	return len(m.variables)
}

// Domain returns the declared domain of id in natural order, or nil for an
// unknown variable. The result is shared and must not be mutated.
func (m *Model[V]) Domain(id Identifier) []V {
	return m.domains[id]
}

// Constraints returns all constraints in declaration order. The result is
// shared and must not be mutated.
func (m *Model[V]) Constraints() []Constraint[V] {
	return m.constraints
}

// ConstraintCount returns the number of constraints.
func (m *Model[V]) ConstraintCount() int {
	return len(m.constraints)
}

// ConstraintsOn returns the constraints whose scope includes id.
func (m *Model[V]) ConstraintsOn(id Identifier) []Constraint[V] {
	indices := m.byVariable[id]
	out := make([]Constraint[V], len(indices))
	for i, ci := range indices {
		out[i] = m.constraints[ci]
	}
	return out
}

// IsConsistent reports whether assigning id=v is compatible with the given
// partial assignment: every constraint touching id must be satisfied by
// assignment plus the candidate pair. The assignment is restored before
// returning.
func (m *Model[V]) IsConsistent(id Identifier, v V, assignment Assignment[V]) bool {
	prev, had := assignment[id]
	assignment[id] = v
	ok := true
	for _, ci := range m.byVariable[id] {
		if !m.constraints[ci].Satisfied(assignment) {
			ok = false
			break
		}
	}
	if had {
		assignment[id] = prev
	} else {
		delete(assignment, id)
	}
	return ok
}

// IsComplete reports whether every variable is assigned.
func (m *Model[V]) IsComplete(assignment Assignment[V]) bool {
	return len(assignment) == len(m.variables)
}

// IsSolution reports whether the assignment is complete and satisfies every
// constraint.
func (m *Model[V]) IsSolution(assignment Assignment[V]) bool {
	if !m.IsComplete(assignment) {
		return false
	}
	for _, c := range m.constraints {
		if !c.Satisfied(assignment) {
			return false
		}
	}
	return true
}

// Neighbors returns the adjacency derived from shared constraint scopes:
// each variable maps to the sorted set of variables it shares at least one
// constraint with. The map is computed once and cached until the next
// AddConstraint. The result is shared and must not be mutated.
func (m *Model[V]) Neighbors() map[Identifier][]Identifier {
	if m.neighbors != nil {
		return m.neighbors
	}
	sets := make(map[Identifier]map[Identifier]bool, len(m.variables))
	for _, id := range m.variables {
		sets[id] = map[Identifier]bool{}
	}
	for _, c := range m.constraints {
		for _, a := range c.scope {
			for _, b := range c.scope {
				if a != b {
					sets[a][b] = true
				}
			}
		}
	}
	neighbors := make(map[Identifier][]Identifier, len(m.variables))
	for id, set := range sets {
		adjacent := make([]Identifier, 0, len(set))
		for other := range set {
			adjacent = append(adjacent, other)
		}
		slices.Sort(adjacent)
		neighbors[id] = adjacent
	}
	m.neighbors = neighbors
	return neighbors
}
