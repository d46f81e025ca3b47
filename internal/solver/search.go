package solver

import (
	"cmp"
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/constraint-framework/backtrack/pkg/csp"
)

// search is the working state of one solve: the borrowed model, the
// solver-local domain copies and trail, and the growing assignment. It is
// created per solve and discarded afterwards.
type search[V cmp.Ordered] struct {
	solver     *Solver[V]
	model      *csp.Model[V]
	order      []csp.Identifier
	neighbors  map[csp.Identifier][]csp.Identifier
	domains    *domainStore[V]
	assignment csp.Assignment[V]
	metrics    *csp.Metrics

	startedAt time.Time
	depth     int

	counting   bool
	countLimit int
	solutions  int
}

func newSearch[V cmp.Ordered](s *Solver[V], model *csp.Model[V]) (*search[V], error) {
	metrics := &csp.Metrics{
		TotalVariables:   model.VariableCount(),
		TotalConstraints: model.ConstraintCount(),
	}
	r := &search[V]{
		solver:     s,
		model:      model,
		order:      canonicalOrder(model),
		neighbors:  model.Neighbors(),
		domains:    newDomainStore(model, metrics),
		assignment: csp.Assignment[V]{},
		metrics:    metrics,
	}
	if err := r.seed(s.initial); err != nil {
		return nil, err
	}
	return r, nil
}

// canonicalOrder is the deterministic total order on variable identity used
// for static selection and for heuristic tie-breaking.
func canonicalOrder[V cmp.Ordered](model *csp.Model[V]) []csp.Identifier {
	order := slices.Clone(model.Variables())
	slices.Sort(order)
	return order
}

// seed applies a validated initial assignment: every seeded variable must
// exist, its value must lie in its domain, and the seed must be consistent
// with what was seeded before it. Seeded domains are narrowed to the single
// value so inference sees them the way it sees search assignments.
func (r *search[V]) seed(initial csp.Assignment[V]) error {
	if len(initial) == 0 {
		return nil
	}
	ids := make([]csp.Identifier, 0, len(initial))
	for id := range initial {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		v := initial[id]
		if r.model.Domain(id) == nil {
			return csp.NewModelError("initial assignment references unknown variable %q", id)
		}
		if !slices.Contains(r.model.Domain(id), v) {
			return csp.NewModelError("initial assignment for %q uses value %v outside its domain", id, v)
		}
		if !r.model.IsConsistent(id, v, r.assignment) {
			return csp.NewModelError("initial assignment is inconsistent for variable %q", id)
		}
		r.assignment[id] = v
		r.domains.restrict(id, v)
	}
	r.metrics.InitialAssignmentSize = len(initial)
	return nil
}

func (r *search[V]) run() (bool, error) {
	r.startedAt = time.Now()
	r.sampleMemory()
	found, err := r.backtrack()
	r.metrics.Elapsed = time.Since(r.startedAt)
	r.sampleMemory()
	return found, err
}

// backtrack is one node of the search: select a variable, filter its legal
// values, order them, and try each with inference ahead of the recursive
// descent. Every pruning made during a try is rolled back via the trail
// before the next value, so domains are bitwise-identical on any failed
// branch.
func (r *search[V]) backtrack() (bool, error) {
	r.metrics.Attempts++
	r.depth++
	if r.depth > r.metrics.MaxDepth {
		r.metrics.MaxDepth = r.depth
	}
	defer func() { r.depth-- }()

	if r.solver.maxAttempts > 0 && r.metrics.Attempts > r.solver.maxAttempts {
		return false, csp.ErrAttemptsExceeded
	}
	r.observe(csp.EventExpand)
	if n := r.solver.progressInterval; n > 0 && r.metrics.Attempts%n == 0 {
		r.sampleMemory()
		r.observe(csp.EventProgress)
	}

	if r.model.IsComplete(r.assignment) {
		if r.counting {
			r.solutions++
			// Report the subtree as failed so enumeration continues,
			// unless the cap has been reached.
			return r.countLimit > 0 && r.solutions >= r.countLimit, nil
		}
		return true, nil
	}

	id, legal := r.selectVariable()
	if id == "" || len(legal) == 0 {
		r.observe(csp.EventBacktrack)
		return false, nil
	}

	for _, v := range r.orderValues(id, legal) {
		mark := r.domains.mark()
		r.assignment[id] = v
		r.domains.restrict(id, v)

		if r.applyInference(id) {
			found, err := r.backtrack()
			if err != nil {
				r.domains.undo(mark)
				delete(r.assignment, id)
				return false, err
			}
			if found {
				r.domains.undo(mark)
				return true, nil
			}
		} else {
			r.observe(csp.EventInferenceFailure)
		}

		r.domains.undo(mark)
		delete(r.assignment, id)
	}

	r.observe(csp.EventBacktrack)
	return false, nil
}

// consistent is the instrumented consistency check. The counter advances by
// the full constraint count per check, which keeps the metric comparable
// across models regardless of how constraints are indexed internally.
func (r *search[V]) consistent(id csp.Identifier, v V) bool {
	r.metrics.ConstraintChecks += int64(r.model.ConstraintCount())
	return r.model.IsConsistent(id, v, r.assignment)
}

// legalValues filters id's current domain against the assignment, in
// natural order.
func (r *search[V]) legalValues(id csp.Identifier) []V {
	values := r.domains.snapshot(id)
	legal := make([]V, 0, len(values))
	for _, v := range values {
		if r.consistent(id, v) {
			legal = append(legal, v)
		}
	}
	return legal
}

func (r *search[V]) assigned(id csp.Identifier) bool {
	_, ok := r.assignment[id]
	return ok
}

func (r *search[V]) sampleMemory() {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	if stats.HeapAlloc > r.metrics.PeakHeapBytes {
		r.metrics.PeakHeapBytes = stats.HeapAlloc
	}
}

func (r *search[V]) observe(event csp.Event) {
	r.solver.tracer.Trace(&position[V]{run: r, event: event})
}

// position is the read-only snapshot handed to tracers.
type position[V cmp.Ordered] struct {
	run   *search[V]
	event csp.Event
}

func (p *position[V]) Event() csp.Event     { return p.event }
func (p *position[V]) Attempts() int64      { return p.run.metrics.Attempts }
func (p *position[V]) Depth() int           { return p.run.depth }
func (p *position[V]) Assigned() int        { return len(p.run.assignment) }
func (p *position[V]) TotalVariables() int  { return p.run.metrics.TotalVariables }
func (p *position[V]) Elapsed() time.Duration {
	return time.Since(p.run.startedAt)
}

func (p *position[V]) AttemptsPerSecond() float64 {
	elapsed := p.Elapsed().Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(p.run.metrics.Attempts) / elapsed
}

func (p *position[V]) PercentAssigned() float64 {
	total := p.run.metrics.TotalVariables
	if total == 0 {
		return 100
	}
	return float64(len(p.run.assignment)) / float64(total) * 100
}

func (p *position[V]) HeuristicFlags() string {
	s := p.run.solver
	return fmt.Sprintf("M%sD%sL%s",
		flag(s.selection.usesMRV()),
		flag(s.selection.usesDegree()),
		flag(s.ordering == OrderLCV))
}

func (p *position[V]) InferenceFlags() string {
	enabled := map[Technique]bool{}
	for _, t := range p.run.solver.techniques {
		enabled[t] = true
	}
	return fmt.Sprintf("FC%sP%sAC%s",
		flag(enabled[ForwardChecking]),
		flag(enabled[ConstraintPropagation]),
		flag(enabled[ArcConsistency]))
}

func flag(on bool) string {
	if on {
		return "1"
	}
	return "0"
}
