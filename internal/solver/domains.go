package solver

import (
	"cmp"

	"github.com/constraint-framework/backtrack/pkg/csp"
)

// removal is one trail entry: value number idx of variable id was pruned.
type removal struct {
	id  csp.Identifier
	idx int
}

// varDomain keeps a variable's working domain as the fixed natural-order
// value slice plus an activity mask, so that undo restores the exact
// original iteration order without copying.
type varDomain[V cmp.Ordered] struct {
	values []V
	active []bool
	live   int
}

// domainStore holds the solver-local working domains and the removal
// trail. The trail is the only undo mechanism: every pruning pushes an
// entry, and rolling back to a mark replays them in reverse.
type domainStore[V cmp.Ordered] struct {
	vars    map[csp.Identifier]*varDomain[V]
	trail   []removal
	metrics *csp.Metrics
}

func newDomainStore[V cmp.Ordered](model *csp.Model[V], metrics *csp.Metrics) *domainStore[V] {
	vars := make(map[csp.Identifier]*varDomain[V], model.VariableCount())
	for _, id := range model.Variables() {
		values := model.Domain(id)
		active := make([]bool, len(values))
		for i := range active {
			active[i] = true
		}
		vars[id] = &varDomain[V]{values: values, active: active, live: len(values)}
	}
	return &domainStore[V]{vars: vars, metrics: metrics}
}

// snapshot returns the live values of id in natural order. The slice is
// freshly allocated so callers may prune while iterating it.
func (d *domainStore[V]) snapshot(id csp.Identifier) []V {
	vd := d.vars[id]
	out := make([]V, 0, vd.live)
	for i, v := range vd.values {
		if vd.active[i] {
			out = append(out, v)
		}
	}
	return out
}

func (d *domainStore[V]) size(id csp.Identifier) int {
	return d.vars[id].live
}

func (d *domainStore[V]) empty(id csp.Identifier) bool {
	return d.vars[id].live == 0
}

func (d *domainStore[V]) contains(id csp.Identifier, v V) bool {
	vd := d.vars[id]
	for i, other := range vd.values {
		if vd.active[i] && other == v {
			return true
		}
	}
	return false
}

// remove prunes v from id's domain, pushing the pruning onto the trail.
// Removing an already-pruned or unknown value is a no-op.
func (d *domainStore[V]) remove(id csp.Identifier, v V) {
	vd := d.vars[id]
	for i, other := range vd.values {
		if other == v {
			if vd.active[i] {
				vd.active[i] = false
				vd.live--
				d.trail = append(d.trail, removal{id: id, idx: i})
				d.metrics.DomainReductions++
			}
			return
		}
	}
}

// restrict prunes every value of id except v.
func (d *domainStore[V]) restrict(id csp.Identifier, v V) {
	for _, other := range d.snapshot(id) {
		if other != v {
			d.remove(id, other)
		}
	}
}

// mark returns the current trail position.
func (d *domainStore[V]) mark() int {
	return len(d.trail)
}

// undo rolls the domains back to a previously taken mark by replaying the
// trail in reverse.
func (d *domainStore[V]) undo(mark int) {
	for i := len(d.trail) - 1; i >= mark; i-- {
		entry := d.trail[i]
		vd := d.vars[entry.id]
		vd.active[entry.idx] = true
		vd.live++
	}
	d.trail = d.trail[:mark]
}
