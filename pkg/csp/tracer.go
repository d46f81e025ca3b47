package csp

import "time"

// Event identifies the point in the search at which a tracer is invoked.
type Event uint8

const (
	// EventExpand fires when a node is expanded.
	EventExpand Event = iota
	// EventBacktrack fires when a branch is abandoned.
	EventBacktrack
	// EventInferenceFailure fires when an inference technique empties a
	// domain and the current value is rolled back.
	EventInferenceFailure
	// EventProgress fires every progress-interval attempts.
	EventProgress
)

func (e Event) String() string {
	switch e {
	case EventExpand:
		return "expand"
	case EventBacktrack:
		return "backtrack"
	case EventInferenceFailure:
		return "inference-failure"
	case EventProgress:
		return "progress"
	default:
		return "unknown"
	}
}

// SearchPosition is a read-only snapshot of the search handed to a Tracer.
type SearchPosition interface {
	Event() Event
	Attempts() int64
	Depth() int
	Assigned() int
	TotalVariables() int
	Elapsed() time.Duration
	AttemptsPerSecond() float64
	PercentAssigned() float64
	// HeuristicFlags renders the active heuristics, e.g. "M1D1L0".
	HeuristicFlags() string
	// InferenceFlags renders the active techniques, e.g. "FC1P0AC1".
	InferenceFlags() string
}

// Tracer observes the search. Implementations must not assume they can
// influence control flow; the solver ignores them entirely when deciding
// what to do next. The solver itself performs no I/O.
type Tracer interface {
	Trace(p SearchPosition)
}

// DefaultTracer ignores everything.
type DefaultTracer struct{}

func (DefaultTracer) Trace(_ SearchPosition) {}
