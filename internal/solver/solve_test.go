package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/constraint-framework/backtrack/pkg/csp"
	"github.com/constraint-framework/backtrack/pkg/csp/constraint"
)

// australiaModel is the classic three-coloring of the Australian states and
// territories.
func australiaModel(t testing.TB) *csp.Model[string] {
	t.Helper()
	colors := []string{"red", "green", "blue"}
	regions := []csp.Identifier{"WA", "NT", "SA", "QLD", "NSW", "VIC", "TAS"}
	borders := [][2]csp.Identifier{
		{"WA", "NT"}, {"WA", "SA"}, {"NT", "SA"}, {"NT", "QLD"},
		{"SA", "QLD"}, {"SA", "NSW"}, {"SA", "VIC"}, {"QLD", "NSW"},
		{"NSW", "VIC"}, {"VIC", "TAS"},
	}

	model := csp.NewModel[string]()
	for _, region := range regions {
		require.NoError(t, model.AddVariable(region, colors...))
	}
	for _, border := range borders {
		require.NoError(t, model.AddConstraint(constraint.NotEqual[string](border[0], border[1])))
	}
	return model
}

// triangleModel is three mutually adjacent variables over the given values.
func triangleModel(t testing.TB, values ...int) *csp.Model[int] {
	t.Helper()
	model := csp.NewModel[int]()
	for _, id := range []csp.Identifier{"x", "y", "z"} {
		require.NoError(t, model.AddVariable(id, values...))
	}
	require.NoError(t, model.AddConstraint(constraint.NotEqual[int]("x", "y")))
	require.NoError(t, model.AddConstraint(constraint.NotEqual[int]("y", "z")))
	require.NoError(t, model.AddConstraint(constraint.NotEqual[int]("x", "z")))
	return model
}

func TestSolveAustralia(t *testing.T) {
	type tc struct {
		Name       string
		Selection  SelectionStrategy
		Ordering   ValueOrdering
		Techniques []Technique
	}

	for _, tt := range []tc{
		{Name: "static natural"},
		{Name: "mrv", Selection: SelectMRV},
		{Name: "degree", Selection: SelectDegree},
		{Name: "mrv+degree lcv", Selection: SelectMRVDegree, Ordering: OrderLCV},
		{Name: "forward checking", Techniques: []Technique{ForwardChecking}},
		{Name: "propagation", Techniques: []Technique{ConstraintPropagation}},
		{Name: "arc consistency", Techniques: []Technique{ArcConsistency}},
		{
			Name:       "everything",
			Selection:  SelectMRVDegree,
			Ordering:   OrderLCV,
			Techniques: []Technique{ForwardChecking, ConstraintPropagation, ArcConsistency},
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			model := australiaModel(t)
			s, err := New[string](
				WithSelectionStrategy[string](tt.Selection),
				WithValueOrdering[string](tt.Ordering),
				WithTechniques[string](tt.Techniques...),
			)
			require.NoError(t, err)

			solution, metrics, err := s.Solve(model)
			require.NoError(t, err)
			assert.True(t, model.IsSolution(solution))
			assert.True(t, metrics.SolutionFound)
			assert.Less(t, metrics.Attempts, int64(50))
			assert.Equal(t, 7, metrics.TotalVariables)
			assert.Equal(t, 10, metrics.TotalConstraints)
			assert.Positive(t, metrics.ConstraintChecks)
		})
	}
}

func TestSolveIsDeterministic(t *testing.T) {
	s, err := New[string](
		WithSelectionStrategy[string](SelectMRVDegree),
		WithValueOrdering[string](OrderLCV),
		WithTechniques[string](ForwardChecking),
	)
	require.NoError(t, err)

	first, firstMetrics, err := s.Solve(australiaModel(t))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		next, nextMetrics, err := s.Solve(australiaModel(t))
		require.NoError(t, err)
		assert.Equal(t, first, next)
		assert.Equal(t, firstMetrics.Attempts, nextMetrics.Attempts)
		assert.Equal(t, firstMetrics.ConstraintChecks, nextMetrics.ConstraintChecks)
	}
}

func TestSolveNoSolution(t *testing.T) {
	// two values cannot three-color a triangle
	model := triangleModel(t, 1, 2)
	s, err := New[int]()
	require.NoError(t, err)

	solution, metrics, err := s.Solve(model)
	assert.ErrorIs(t, err, csp.ErrNoSolution)
	assert.Nil(t, solution)
	assert.False(t, metrics.SolutionFound)
	assert.Positive(t, metrics.Attempts)
	// the caller's model is never mutated by a solve
	assert.Equal(t, []int{1, 2}, model.Domain("x"))
}

func TestSolveEmptyModel(t *testing.T) {
	s, err := New[int]()
	require.NoError(t, err)

	solution, metrics, err := s.Solve(csp.NewModel[int]())
	require.NoError(t, err)
	assert.Empty(t, solution)
	assert.True(t, metrics.SolutionFound)
	assert.Equal(t, int64(1), metrics.Attempts)
}

func TestSolveMaxAttempts(t *testing.T) {
	s, err := New[string](WithMaxAttempts[string](3))
	require.NoError(t, err)

	solution, metrics, err := s.Solve(australiaModel(t))
	assert.ErrorIs(t, err, csp.ErrAttemptsExceeded)
	assert.Nil(t, solution)
	assert.Equal(t, int64(4), metrics.Attempts)
}

func TestSolveWithInitialAssignment(t *testing.T) {
	seed := csp.Assignment[string]{"SA": "red", "WA": "green"}
	s, err := New[string](WithInitialAssignment[string](seed))
	require.NoError(t, err)

	model := australiaModel(t)
	solution, metrics, err := s.Solve(model)
	require.NoError(t, err)
	assert.True(t, model.IsSolution(solution))
	assert.Equal(t, "red", solution["SA"])
	assert.Equal(t, "green", solution["WA"])
	assert.Equal(t, 2, metrics.InitialAssignmentSize)
}

func TestSolveRejectsBadSeeds(t *testing.T) {
	type tc struct {
		Name string
		Seed csp.Assignment[string]
	}

	for _, tt := range []tc{
		{Name: "unknown variable", Seed: csp.Assignment[string]{"NZ": "red"}},
		{Name: "value outside domain", Seed: csp.Assignment[string]{"SA": "purple"}},
		{Name: "inconsistent pair", Seed: csp.Assignment[string]{"SA": "red", "NT": "red"}},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			s, err := New[string](WithInitialAssignment[string](tt.Seed))
			require.NoError(t, err)

			_, _, err = s.Solve(australiaModel(t))
			var modelErr *csp.ModelError
			assert.ErrorAs(t, err, &modelErr)
		})
	}
}

func TestSolveValidatesOptions(t *testing.T) {
	var confErr *csp.ConfigurationError

	_, err := New[int](WithTechniqueNames[int]("bogus"))
	assert.ErrorAs(t, err, &confErr)

	_, err = New[int](WithProgressInterval[int](-1))
	assert.ErrorAs(t, err, &confErr)

	_, err = New[int](WithMaxAttempts[int](-5))
	assert.ErrorAs(t, err, &confErr)
}

func TestCountSolutions(t *testing.T) {
	// 3 colors on a triangle permit 3! proper colorings
	s, err := New[int]()
	require.NoError(t, err)

	count, metrics, err := s.CountSolutions(triangleModel(t, 1, 2, 3), 0)
	require.NoError(t, err)
	assert.Equal(t, 6, count)
	assert.True(t, metrics.SolutionFound)

	count, _, err = s.CountSolutions(triangleModel(t, 1, 2, 3), 4)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	count, metrics, err = s.CountSolutions(triangleModel(t, 1, 2), 0)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.False(t, metrics.SolutionFound)
}

// recordingTracer collects the events it sees.
type recordingTracer struct {
	events []csp.Event
}

func (r *recordingTracer) Trace(p csp.SearchPosition) {
	r.events = append(r.events, p.Event())
}

func TestSolveTracesProgress(t *testing.T) {
	tracer := &recordingTracer{}
	s, err := New[string](
		WithTracer[string](tracer),
		WithProgressInterval[string](2),
	)
	require.NoError(t, err)

	_, metrics, err := s.Solve(australiaModel(t))
	require.NoError(t, err)

	var expands, progress int64
	for _, event := range tracer.events {
		switch event {
		case csp.EventExpand:
			expands++
		case csp.EventProgress:
			progress++
		}
	}
	assert.Equal(t, metrics.Attempts, expands)
	assert.Equal(t, metrics.Attempts/2, progress)
}
