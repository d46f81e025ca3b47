package solver

import (
	"cmp"

	"github.com/constraint-framework/backtrack/pkg/csp"
)

// Solver is a backtracking CSP search engine configured with a variable
// selection strategy, a value ordering, and a chain of inference
// techniques. One Solver may be reused across solves, but a single solve
// owns its working state exclusively and a Solver must not be shared
// between goroutines mid-solve.
type Solver[V cmp.Ordered] struct {
	selection        SelectionStrategy
	ordering         ValueOrdering
	techniques       []Technique
	progressInterval int64
	maxAttempts      int64
	initial          csp.Assignment[V]
	tracer           csp.Tracer
}

// Option configures a Solver.
type Option[V cmp.Ordered] func(s *Solver[V]) error

// New builds a Solver from the given options. Configuration problems are
// reported before any search starts.
func New[V cmp.Ordered](options ...Option[V]) (*Solver[V], error) {
	s := &Solver[V]{}
	for _, option := range append(options, defaults[V]()...) {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// WithSelectionStrategy sets the variable selection strategy.
func WithSelectionStrategy[V cmp.Ordered](strategy SelectionStrategy) Option[V] {
	return func(s *Solver[V]) error {
		s.selection = strategy
		return nil
	}
}

// WithValueOrdering sets the value ordering.
func WithValueOrdering[V cmp.Ordered](ordering ValueOrdering) Option[V] {
	return func(s *Solver[V]) error {
		s.ordering = ordering
		return nil
	}
}

// WithTechniques sets the inference chain. The techniques run in their
// fixed execution order independent of the order given here.
func WithTechniques[V cmp.Ordered](techniques ...Technique) Option[V] {
	return func(s *Solver[V]) error {
		names := make([]string, len(techniques))
		for i, t := range techniques {
			names[i] = t.String()
		}
		parsed, err := ParseTechniques(names...)
		if err != nil {
			return err
		}
		s.techniques = parsed
		return nil
	}
}

// WithTechniqueNames sets the inference chain from configuration names,
// failing closed on unknown names.
func WithTechniqueNames[V cmp.Ordered](names ...string) Option[V] {
	return func(s *Solver[V]) error {
		parsed, err := ParseTechniques(names...)
		if err != nil {
			return err
		}
		s.techniques = parsed
		return nil
	}
}

// WithProgressInterval makes the solver emit a progress snapshot to the
// tracer every n attempts. Zero disables progress reporting.
func WithProgressInterval[V cmp.Ordered](n int64) Option[V] {
	return func(s *Solver[V]) error {
		if n < 0 {
			return csp.NewConfigurationError("progress interval must not be negative, got %d", n)
		}
		s.progressInterval = n
		return nil
	}
}

// WithMaxAttempts bounds the search to n attempts; the solve returns
// csp.ErrAttemptsExceeded when the ceiling is reached. Zero means
// unbounded.
func WithMaxAttempts[V cmp.Ordered](n int64) Option[V] {
	return func(s *Solver[V]) error {
		if n < 0 {
			return csp.NewConfigurationError("attempt ceiling must not be negative, got %d", n)
		}
		s.maxAttempts = n
		return nil
	}
}

// WithInitialAssignment seeds the search with pre-assigned variables. The
// seed is validated against the model when a solve starts.
func WithInitialAssignment[V cmp.Ordered](assignment csp.Assignment[V]) Option[V] {
	return func(s *Solver[V]) error {
		s.initial = assignment.Clone()
		return nil
	}
}

// WithTracer sets the search observer.
func WithTracer[V cmp.Ordered](t csp.Tracer) Option[V] {
	return func(s *Solver[V]) error {
		s.tracer = t
		return nil
	}
}

func defaults[V cmp.Ordered]() []Option[V] {
	return []Option[V]{
		func(s *Solver[V]) error {
			if s.tracer == nil {
				s.tracer = csp.DefaultTracer{}
			}
			return nil
		},
	}
}

// Solve runs the search and returns the first complete consistent
// assignment. Metrics are returned in every case. A nil assignment with
// csp.ErrNoSolution means the tree was exhausted; csp.ErrAttemptsExceeded
// means the configured attempt ceiling was hit first. A model without
// variables resolves trivially to an empty assignment.
func (s *Solver[V]) Solve(model *csp.Model[V]) (csp.Assignment[V], *csp.Metrics, error) {
	run, err := newSearch(s, model)
	if err != nil {
		return nil, &csp.Metrics{}, err
	}
	found, err := run.run()
	if err != nil {
		return nil, run.metrics, err
	}
	if !found {
		return nil, run.metrics, csp.ErrNoSolution
	}
	run.metrics.SolutionFound = true
	return run.assignment.Clone(), run.metrics, nil
}

// CountSolutions explores the whole tree and counts complete consistent
// assignments, stopping early once limit is reached. A limit of zero or
// less counts exhaustively.
func (s *Solver[V]) CountSolutions(model *csp.Model[V], limit int) (int, *csp.Metrics, error) {
	run, err := newSearch(s, model)
	if err != nil {
		return 0, &csp.Metrics{}, err
	}
	run.counting = true
	run.countLimit = limit
	if _, err := run.run(); err != nil {
		return run.solutions, run.metrics, err
	}
	run.metrics.SolutionFound = run.solutions > 0
	return run.solutions, run.metrics, nil
}
