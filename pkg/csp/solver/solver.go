// Package solver exposes the backtracking engine behind the configuration
// vocabulary callers use: named variable-selection strategies, value
// orderings, and inference techniques. All names are validated up front so
// a misconfigured solver fails before any node is expanded.
package solver

import (
	"cmp"

	"github.com/constraint-framework/backtrack/internal/solver"
	"github.com/constraint-framework/backtrack/pkg/csp"
)

// Config selects the strategies for a Solver.
//
//   - VariableSelection: "static" (default), "mrv", "degree", "mrv+degree"
//   - ValueOrdering: "natural" (default), "lcv"
//   - Inference: any subset of "forward_checking",
//     "constraint_propagation", "arc_consistency"
//   - ProgressInterval: emit a progress snapshot to the tracer every N
//     attempts; 0 disables
//   - MaxAttempts: abort with csp.ErrAttemptsExceeded after N attempts;
//     0 means unbounded
//   - Tracer: search observer; nil means no observation
type Config struct {
	VariableSelection string
	ValueOrdering     string
	Inference         []string
	ProgressInterval  int64
	MaxAttempts       int64
	Tracer            csp.Tracer
}

// Solver solves models of value type V with a fixed strategy configuration.
// It is stateless between calls; each solve owns its working state.
type Solver[V cmp.Ordered] struct {
	selection        solver.SelectionStrategy
	ordering         solver.ValueOrdering
	techniques       []solver.Technique
	progressInterval int64
	maxAttempts      int64
	tracer           csp.Tracer
}

// New validates cfg and returns a Solver. Unknown strategy, ordering, or
// technique names are rejected with csp.ConfigurationError.
func New[V cmp.Ordered](cfg Config) (*Solver[V], error) {
	selection, err := solver.ParseSelectionStrategy(cfg.VariableSelection)
	if err != nil {
		return nil, err
	}
	ordering, err := solver.ParseValueOrdering(cfg.ValueOrdering)
	if err != nil {
		return nil, err
	}
	techniques, err := solver.ParseTechniques(cfg.Inference...)
	if err != nil {
		return nil, err
	}
	if cfg.ProgressInterval < 0 {
		return nil, csp.NewConfigurationError("progress interval must not be negative, got %d", cfg.ProgressInterval)
	}
	if cfg.MaxAttempts < 0 {
		return nil, csp.NewConfigurationError("attempt ceiling must not be negative, got %d", cfg.MaxAttempts)
	}
	return &Solver[V]{
		selection:        selection,
		ordering:         ordering,
		techniques:       techniques,
		progressInterval: cfg.ProgressInterval,
		maxAttempts:      cfg.MaxAttempts,
		tracer:           cfg.Tracer,
	}, nil
}

// Solve searches for a complete consistent assignment of model. The
// returned metrics describe the search whether or not it succeeded; a nil
// assignment comes with csp.ErrNoSolution or csp.ErrAttemptsExceeded.
func (s *Solver[V]) Solve(model *csp.Model[V]) (csp.Assignment[V], *csp.Metrics, error) {
	return s.SolveFrom(model, nil)
}

// SolveFrom is Solve with some variables pre-assigned. Each seeded pair
// must name a known variable, use an in-domain value, and be consistent
// with the rest of the seed; violations are rejected as csp.ModelError
// before search.
func (s *Solver[V]) SolveFrom(model *csp.Model[V], seed csp.Assignment[V]) (csp.Assignment[V], *csp.Metrics, error) {
	engine, err := s.newEngine(seed)
	if err != nil {
		return nil, &csp.Metrics{}, err
	}
	return engine.Solve(model)
}

// CountSolutions explores the full tree and counts complete consistent
// assignments, stopping early at limit; limit <= 0 counts exhaustively.
func (s *Solver[V]) CountSolutions(model *csp.Model[V], limit int) (int, *csp.Metrics, error) {
	engine, err := s.newEngine(nil)
	if err != nil {
		return 0, &csp.Metrics{}, err
	}
	return engine.CountSolutions(model, limit)
}

func (s *Solver[V]) newEngine(seed csp.Assignment[V]) (*solver.Solver[V], error) {
	options := []solver.Option[V]{
		solver.WithSelectionStrategy[V](s.selection),
		solver.WithValueOrdering[V](s.ordering),
		solver.WithTechniques[V](s.techniques...),
		solver.WithProgressInterval[V](s.progressInterval),
		solver.WithMaxAttempts[V](s.maxAttempts),
	}
	if s.tracer != nil {
		options = append(options, solver.WithTracer[V](s.tracer))
	}
	if len(seed) > 0 {
		options = append(options, solver.WithInitialAssignment[V](seed))
	}
	return solver.New[V](options...)
}
