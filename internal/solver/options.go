package solver

import (
	"slices"
	"strings"

	"github.com/constraint-framework/backtrack/pkg/csp"
)

// SelectionStrategy decides which unassigned variable the search expands
// next.
type SelectionStrategy int

const (
	// SelectStatic walks variables in canonical identifier order.
	SelectStatic SelectionStrategy = iota
	// SelectMRV picks a variable with the fewest legal values.
	SelectMRV
	// SelectDegree picks a variable with the most unassigned neighbors.
	SelectDegree
	// SelectMRVDegree filters by degree first, then applies MRV to the
	// survivors.
	SelectMRVDegree
)

func (s SelectionStrategy) String() string {
	switch s {
	case SelectMRV:
		return "mrv"
	case SelectDegree:
		return "degree"
	case SelectMRVDegree:
		return "mrv+degree"
	default:
		return "static"
	}
}

func (s SelectionStrategy) usesMRV() bool {
	return s == SelectMRV || s == SelectMRVDegree
}

func (s SelectionStrategy) usesDegree() bool {
	return s == SelectDegree || s == SelectMRVDegree
}

// ParseSelectionStrategy resolves a configuration name. The empty string
// means static order.
func ParseSelectionStrategy(name string) (SelectionStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "static":
		return SelectStatic, nil
	case "mrv":
		return SelectMRV, nil
	case "degree":
		return SelectDegree, nil
	case "mrv+degree", "degree+mrv":
		return SelectMRVDegree, nil
	default:
		return SelectStatic, csp.NewConfigurationError("unknown variable selection strategy %q", name)
	}
}

// ValueOrdering decides the order in which a variable's legal values are
// tried.
type ValueOrdering int

const (
	// OrderNatural tries values in their natural (sorted) domain order.
	OrderNatural ValueOrdering = iota
	// OrderLCV tries the least-constraining value first.
	OrderLCV
)

func (o ValueOrdering) String() string {
	if o == OrderLCV {
		return "lcv"
	}
	return "natural"
}

// ParseValueOrdering resolves a configuration name. The empty string means
// natural order.
func ParseValueOrdering(name string) (ValueOrdering, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "natural":
		return OrderNatural, nil
	case "lcv":
		return OrderLCV, nil
	default:
		return OrderNatural, csp.NewConfigurationError("unknown value ordering %q", name)
	}
}

// Technique is one inference pass run after each assignment. Techniques
// compose; whatever set is configured runs in the order forward checking,
// constraint propagation, arc consistency.
type Technique int

const (
	ForwardChecking Technique = iota
	ConstraintPropagation
	ArcConsistency
)

func (t Technique) String() string {
	switch t {
	case ForwardChecking:
		return "forward_checking"
	case ConstraintPropagation:
		return "constraint_propagation"
	case ArcConsistency:
		return "arc_consistency"
	default:
		return "unknown"
	}
}

// ParseTechniques resolves configuration names into a deduplicated
// technique set in execution order. Unknown names fail closed with
// csp.ConfigurationError.
func ParseTechniques(names ...string) ([]Technique, error) {
	seen := map[Technique]bool{}
	var techniques []Technique
	for _, name := range names {
		var t Technique
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "forward_checking", "fc":
			t = ForwardChecking
		case "constraint_propagation", "propagation", "cp":
			t = ConstraintPropagation
		case "arc_consistency", "ac3", "ac":
			t = ArcConsistency
		default:
			return nil, csp.NewConfigurationError("unknown inference technique %q", name)
		}
		if !seen[t] {
			seen[t] = true
			techniques = append(techniques, t)
		}
	}
	slices.Sort(techniques)
	return techniques, nil
}
