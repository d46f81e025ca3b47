package solver

import (
	"cmp"
	"sort"

	"github.com/constraint-framework/backtrack/pkg/csp"
)

type candidate[V cmp.Ordered] struct {
	id     csp.Identifier
	legal  []V
	degree int
}

// selectVariable picks the next unassigned variable and returns it together
// with its legal values (the FILTER step). Candidates are scanned in
// canonical order, which doubles as the final tie-break, so repeated solves
// expand identical trees. An empty identifier means every variable is
// assigned; an empty legal slice means the branch is dead.
func (r *search[V]) selectVariable() (csp.Identifier, []V) {
	if r.solver.selection == SelectStatic {
		for _, id := range r.order {
			if r.assigned(id) {
				continue
			}
			r.metrics.VariableSelections++
			return id, r.legalValues(id)
		}
		return "", nil
	}

	candidates := make([]candidate[V], 0, len(r.order))
	for _, id := range r.order {
		if r.assigned(id) {
			continue
		}
		candidates = append(candidates, candidate[V]{
			id:     id,
			legal:  r.legalValues(id),
			degree: r.unassignedDegree(id),
		})
	}
	if len(candidates) == 0 {
		return "", nil
	}
	r.metrics.VariableSelections++

	// Degree narrows first, then MRV over the survivors; remaining ties
	// fall back to the canonical scan order.
	if r.solver.selection.usesDegree() {
		r.metrics.DegreeApplications++
		maxDegree := candidates[0].degree
		for _, c := range candidates[1:] {
			if c.degree > maxDegree {
				maxDegree = c.degree
			}
		}
		candidates = filterCandidates(candidates, func(c candidate[V]) bool {
			return c.degree == maxDegree
		})
	}
	if r.solver.selection.usesMRV() {
		r.metrics.MRVApplications++
		minLegal := len(candidates[0].legal)
		for _, c := range candidates[1:] {
			if len(c.legal) < minLegal {
				minLegal = len(c.legal)
			}
		}
		candidates = filterCandidates(candidates, func(c candidate[V]) bool {
			return len(c.legal) == minLegal
		})
	}
	return candidates[0].id, candidates[0].legal
}

func filterCandidates[V cmp.Ordered](candidates []candidate[V], keep func(candidate[V]) bool) []candidate[V] {
	out := candidates[:0]
	for _, c := range candidates {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// unassignedDegree counts id's neighbors not yet assigned.
func (r *search[V]) unassignedDegree(id csp.Identifier) int {
	degree := 0
	for _, neighbor := range r.neighbors[id] {
		if !r.assigned(neighbor) {
			degree++
		}
	}
	return degree
}

// orderValues applies LCV when configured: each legal value is scored by
// how many values across unassigned neighbor domains it would render
// inconsistent, and values are tried least-constraining first. The sort is
// stable, so equal scores keep the natural domain order. Ordering never
// prunes.
func (r *search[V]) orderValues(id csp.Identifier, legal []V) []V {
	if r.solver.ordering != OrderLCV || len(legal) < 2 {
		return legal
	}
	r.metrics.LCVApplications++

	impacts := make([]int, len(legal))
	for i, v := range legal {
		impacts[i] = r.valueImpact(id, v)
	}
	indices := make([]int, len(legal))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return impacts[indices[a]] < impacts[indices[b]]
	})
	ordered := make([]V, len(legal))
	for i, idx := range indices {
		ordered[i] = legal[idx]
	}
	return ordered
}

// valueImpact tentatively assigns id=v and counts, over every unassigned
// neighbor, how many of its current domain values become inconsistent.
// Conflicts are summed without deduplication across neighbors.
func (r *search[V]) valueImpact(id csp.Identifier, v V) int {
	r.assignment[id] = v
	impact := 0
	for _, neighbor := range r.neighbors[id] {
		if r.assigned(neighbor) {
			continue
		}
		for _, w := range r.domains.snapshot(neighbor) {
			if !r.consistent(neighbor, w) {
				impact++
			}
		}
	}
	delete(r.assignment, id)
	return impact
}
