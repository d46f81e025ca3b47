package solver

import "github.com/constraint-framework/backtrack/pkg/csp"

// applyInference runs the configured techniques, in their fixed order,
// after id was assigned. It returns false as soon as any technique empties
// an unassigned variable's domain; the caller rolls back every pruning made
// here, including by techniques that had already succeeded.
func (r *search[V]) applyInference(id csp.Identifier) bool {
	if len(r.solver.techniques) == 0 {
		return true
	}
	var reduced []csp.Identifier
	for _, technique := range r.solver.techniques {
		switch technique {
		case ForwardChecking:
			r.metrics.ForwardCheckCalls++
			ok, shrunk := r.forwardCheck(id)
			if !ok {
				return false
			}
			reduced = shrunk
		case ConstraintPropagation:
			seeds := reduced
			if len(seeds) == 0 {
				seeds = r.neighbors[id]
			}
			if !r.propagate(seeds) {
				return false
			}
		case ArcConsistency:
			if !r.arcConsistency() {
				return false
			}
		}
	}
	return true
}

// forwardCheck prunes, from every unassigned neighbor of id, the values
// inconsistent with the new assignment. It reports failure when a neighbor
// domain empties, along with the neighbors whose domains shrank.
func (r *search[V]) forwardCheck(id csp.Identifier) (bool, []csp.Identifier) {
	var shrunk []csp.Identifier
	for _, neighbor := range r.neighbors[id] {
		if r.assigned(neighbor) {
			continue
		}
		before := r.domains.size(neighbor)
		for _, v := range r.domains.snapshot(neighbor) {
			if !r.consistent(neighbor, v) {
				r.domains.remove(neighbor, v)
			}
		}
		if r.domains.size(neighbor) < before {
			shrunk = append(shrunk, neighbor)
		}
		if r.domains.empty(neighbor) {
			return false, shrunk
		}
	}
	return true, shrunk
}

// propagate drains a worklist seeded with the given variables. Popping a
// variable re-examines its unassigned neighbors, removing values that lost
// support; any neighbor whose domain shrank is re-enqueued. Terminates on
// an empty queue or an emptied domain.
func (r *search[V]) propagate(seeds []csp.Identifier) bool {
	queue := make([]csp.Identifier, len(seeds))
	copy(queue, seeds)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if r.assigned(current) {
			continue
		}
		for _, neighbor := range r.neighbors[current] {
			if r.assigned(neighbor) {
				continue
			}
			revised, ok := r.revise(neighbor, current)
			if !ok {
				return false
			}
			if revised {
				r.metrics.PropagationSteps++
				queue = append(queue, neighbor)
			}
		}
	}
	return true
}

type arc struct {
	from, to csp.Identifier
}

// arcConsistency enforces AC-3: the queue starts with every ordered
// neighbor pair, and whenever revising shrinks Xi (without emptying it),
// the arcs (Xk, Xi) for all neighbors Xk != Xj are re-enqueued, since Xi's
// shrink may have invalidated their support.
func (r *search[V]) arcConsistency() bool {
	var queue []arc
	for _, xi := range r.order {
		for _, xj := range r.neighbors[xi] {
			queue = append(queue, arc{from: xi, to: xj})
		}
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		revised, ok := r.revise(current.from, current.to)
		if !ok {
			return false
		}
		if revised {
			r.metrics.ArcRevisions++
			for _, xk := range r.neighbors[current.from] {
				if xk != current.to {
					queue = append(queue, arc{from: xk, to: current.from})
				}
			}
		}
	}
	return true
}

// revise removes from xi's domain every value without a supporting value in
// xj's current domain. The second result is false when xi's domain empties.
func (r *search[V]) revise(xi, xj csp.Identifier) (bool, bool) {
	revised := false
	for _, v := range r.domains.snapshot(xi) {
		if !r.hasSupport(xi, v, xj) {
			r.domains.remove(xi, v)
			revised = true
		}
	}
	if r.domains.empty(xi) {
		return revised, false
	}
	return revised, true
}

// hasSupport reports whether some value in xj's current domain is
// compatible with xi=v.
func (r *search[V]) hasSupport(xi csp.Identifier, v V, xj csp.Identifier) bool {
	for _, w := range r.domains.snapshot(xj) {
		if r.pairConsistent(xi, v, xj, w) {
			return true
		}
	}
	return false
}

// pairConsistent checks xi=v against xj=w on top of the current
// assignment. Predicate and all-different relations are evaluated through
// the ordinary consistency check; explicit tuple relations additionally
// require a permitted tuple whose remaining positions are still available
// in the current domains, which is what lets arc consistency refute
// instances that pairwise checks cannot.
func (r *search[V]) pairConsistent(xi csp.Identifier, v V, xj csp.Identifier, w V) bool {
	prevI, hadI := r.assignment[xi]
	prevJ, hadJ := r.assignment[xj]
	r.assignment[xi] = v
	defer func() {
		if hadI {
			r.assignment[xi] = prevI
		} else {
			delete(r.assignment, xi)
		}
		if hadJ {
			r.assignment[xj] = prevJ
		} else {
			delete(r.assignment, xj)
		}
	}()

	if !r.consistent(xj, w) {
		return false
	}
	r.assignment[xj] = w
	if !r.consistent(xi, v) {
		return false
	}

	for _, c := range r.model.ConstraintsOn(xi) {
		if !c.Relation().IsExplicit() || !c.Involves(xj) {
			continue
		}
		if !r.tupleSupport(c, xi, xj) {
			return false
		}
	}
	return true
}

// tupleSupport reports whether some permitted tuple of c matches the
// current assignment on assigned scope positions and stays within the
// current domains on unassigned ones.
func (r *search[V]) tupleSupport(c csp.Constraint[V], xi, xj csp.Identifier) bool {
	scope := c.Scope()
tuples:
	for _, tuple := range c.Relation().PermittedTuples() {
		if len(tuple) != len(scope) {
			continue
		}
		for k, id := range scope {
			if assigned, ok := r.assignment[id]; ok {
				if tuple[k] != assigned {
					continue tuples
				}
				continue
			}
			if !r.domains.contains(id, tuple[k]) {
				continue tuples
			}
		}
		return true
	}
	return false
}
