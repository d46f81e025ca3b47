// Package nqueens builds the n-queens puzzle as a constraint model. Each
// queen owns one column; the variable value is the row it sits in.
package nqueens

import (
	"fmt"

	"github.com/constraint-framework/backtrack/pkg/csp"
	"github.com/constraint-framework/backtrack/pkg/csp/constraint"
)

// QueenID returns the identifier of the queen in the given column (1-based).
func QueenID(col int) csp.Identifier {
	return csp.Identifier(fmt.Sprintf("queen_%02d", col))
}

// NewBoard returns a model placing n queens on an n by n board so that no
// two attack each other.
func NewBoard(n int) (*csp.Model[int], error) {
	if n < 1 {
		return nil, csp.NewModelError("board size must be at least 1, got %d", n)
	}

	rows := make([]int, n)
	for i := range rows {
		rows[i] = i + 1
	}

	model := csp.NewModel[int]()
	for col := 1; col <= n; col++ {
		if err := model.AddVariable(QueenID(col), rows...); err != nil {
			return nil, err
		}
	}

	for a := 1; a <= n; a++ {
		for b := a + 1; b <= n; b++ {
			gap := b - a
			attacks := constraint.Predicate(
				[]csp.Identifier{QueenID(a), QueenID(b)},
				func(values []int) bool {
					if values[0] == values[1] {
						return false
					}
					diff := values[0] - values[1]
					if diff < 0 {
						diff = -diff
					}
					return diff != gap
				},
			)
			if err := model.AddConstraint(attacks); err != nil {
				return nil, err
			}
		}
	}
	return model, nil
}
