package sudoku

import (
	"fmt"

	"github.com/constraint-framework/backtrack/pkg/csp"
	"github.com/constraint-framework/backtrack/pkg/csp/constraint"
)

// CellID names the variable for the cell at the given 1-based row and
// column.
func CellID(row, col int) csp.Identifier {
	return csp.Identifier(fmt.Sprintf("cell_%d_%d", row, col))
}

// SamplePuzzle is a moderately difficult puzzle with 30 pre-filled cells
// and a unique solution, keyed by 1-based (row, col).
func SamplePuzzle() map[[2]int]int {
	return map[[2]int]int{
		{1, 1}: 5, {1, 2}: 3, {1, 5}: 7,
		{2, 1}: 6, {2, 4}: 1, {2, 5}: 9, {2, 6}: 5,
		{3, 2}: 9, {3, 3}: 8, {3, 8}: 6,
		{4, 1}: 8, {4, 5}: 6, {4, 9}: 3,
		{5, 1}: 4, {5, 4}: 8, {5, 6}: 3, {5, 9}: 1,
		{6, 1}: 7, {6, 5}: 2, {6, 9}: 6,
		{7, 2}: 6, {7, 7}: 2, {7, 8}: 8,
		{8, 4}: 4, {8, 5}: 1, {8, 6}: 9, {8, 9}: 5,
		{9, 5}: 8, {9, 8}: 7, {9, 9}: 9,
	}
}

// NewSudoku models a 9x9 Sudoku grid: 81 cell variables with digit domains
// and 27 all-different constraints (rows, columns, boxes). Pre-filled cells
// have their domain narrowed to the given digit.
func NewSudoku(puzzle map[[2]int]int) (*csp.Model[int], error) {
	model := csp.NewModel[int]()

	for row := 1; row <= 9; row++ {
		for col := 1; col <= 9; col++ {
			if digit, ok := puzzle[[2]int{row, col}]; ok {
				if err := model.AddVariable(CellID(row, col), digit); err != nil {
					return nil, err
				}
				continue
			}
			if err := model.AddVariable(CellID(row, col), 1, 2, 3, 4, 5, 6, 7, 8, 9); err != nil {
				return nil, err
			}
		}
	}

	for row := 1; row <= 9; row++ {
		scope := make([]csp.Identifier, 0, 9)
		for col := 1; col <= 9; col++ {
			scope = append(scope, CellID(row, col))
		}
		if err := model.AddConstraint(constraint.AllDifferent[int](scope...)); err != nil {
			return nil, err
		}
	}

	for col := 1; col <= 9; col++ {
		scope := make([]csp.Identifier, 0, 9)
		for row := 1; row <= 9; row++ {
			scope = append(scope, CellID(row, col))
		}
		if err := model.AddConstraint(constraint.AllDifferent[int](scope...)); err != nil {
			return nil, err
		}
	}

	for boxRow := 0; boxRow < 3; boxRow++ {
		for boxCol := 0; boxCol < 3; boxCol++ {
			scope := make([]csp.Identifier, 0, 9)
			for row := 1; row <= 3; row++ {
				for col := 1; col <= 3; col++ {
					scope = append(scope, CellID(boxRow*3+row, boxCol*3+col))
				}
			}
			if err := model.AddConstraint(constraint.AllDifferent[int](scope...)); err != nil {
				return nil, err
			}
		}
	}

	return model, nil
}
