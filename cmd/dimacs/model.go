package dimacs

import (
	"fmt"

	"github.com/constraint-framework/backtrack/pkg/csp"
	"github.com/constraint-framework/backtrack/pkg/csp/constraint"
)

// VariableID returns the identifier of the boolean variable numbered n
// (1-based, following the DIMACS convention).
func VariableID(n int) csp.Identifier {
	return csp.Identifier(fmt.Sprint(n))
}

// NewModel converts a parsed DIMACS problem into a boolean constraint
// model: one {0, 1} valued variable per declared variable, and one
// disjunction predicate per clause.
func NewModel(dimacs *Dimacs) (*csp.Model[int], error) {
	model := csp.NewModel[int]()
	for n := 1; n <= dimacs.NumVariables(); n++ {
		if err := model.AddVariable(VariableID(n), 0, 1); err != nil {
			return nil, err
		}
	}

	for _, clause := range dimacs.Clauses() {
		// a variable may occur several times in one clause, but constraint
		// scopes hold each variable once
		scope := make([]csp.Identifier, 0, len(clause))
		position := make(map[int]int, len(clause))
		for _, lit := range clause {
			n := lit
			if n < 0 {
				n = -n
			}
			if _, seen := position[n]; !seen {
				position[n] = len(scope)
				scope = append(scope, VariableID(n))
			}
		}

		// the clause holds when at least one literal does: value 1 for a
		// positive literal, 0 for a negative one
		literals := make([][2]int, 0, len(clause))
		for _, lit := range clause {
			n, want := lit, 1
			if n < 0 {
				n, want = -n, 0
			}
			literals = append(literals, [2]int{position[n], want})
		}

		disjunction := constraint.Predicate(scope, func(values []int) bool {
			for _, lit := range literals {
				if values[lit[0]] == lit[1] {
					return true
				}
			}
			return false
		})
		if err := model.AddConstraint(disjunction); err != nil {
			return nil, err
		}
	}
	return model, nil
}
