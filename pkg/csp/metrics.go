package csp

import "time"

// Metrics records what a single solve did. It is observation only: solver
// outcomes are identical whether or not anyone reads it. Constraint checks
// count the full constraint list per consistency check, mirroring the
// dominant-cost accounting of the original comparisons.
type Metrics struct {
	Attempts           int64
	MaxDepth           int
	VariableSelections int64
	MRVApplications    int64
	DegreeApplications int64
	LCVApplications    int64

	ForwardCheckCalls int64
	PropagationSteps  int64
	ArcRevisions      int64

	ConstraintChecks int64
	DomainReductions int64

	TotalVariables        int
	TotalConstraints      int
	InitialAssignmentSize int

	SolutionFound bool
	Elapsed       time.Duration
	PeakHeapBytes uint64
}

// ChecksPerAttempt returns the average constraint checks per attempt.
func (m *Metrics) ChecksPerAttempt() float64 {
	if m.Attempts == 0 {
		return 0
	}
	return float64(m.ConstraintChecks) / float64(m.Attempts)
}

// SelectionsPerAttempt returns the average variable selections per attempt.
func (m *Metrics) SelectionsPerAttempt() float64 {
	if m.Attempts == 0 {
		return 0
	}
	return float64(m.VariableSelections) / float64(m.Attempts)
}

// Fields returns the metrics as a field→value record that a caller may
// serialize as needed.
func (m *Metrics) Fields() map[string]any {
	return map[string]any{
		"attempts":                m.Attempts,
		"max_depth":               m.MaxDepth,
		"variable_selections":     m.VariableSelections,
		"mrv_applications":        m.MRVApplications,
		"degree_applications":     m.DegreeApplications,
		"lcv_applications":        m.LCVApplications,
		"forward_check_calls":     m.ForwardCheckCalls,
		"propagation_steps":       m.PropagationSteps,
		"arc_revisions":           m.ArcRevisions,
		"constraint_checks":       m.ConstraintChecks,
		"domain_reductions":       m.DomainReductions,
		"total_variables":         m.TotalVariables,
		"total_constraints":       m.TotalConstraints,
		"initial_assignment_size": m.InitialAssignmentSize,
		"solution_found":          m.SolutionFound,
		"elapsed_seconds":         m.Elapsed.Seconds(),
		"peak_heap_bytes":         m.PeakHeapBytes,
		"checks_per_attempt":      m.ChecksPerAttempt(),
		"selections_per_attempt":  m.SelectionsPerAttempt(),
	}
}
