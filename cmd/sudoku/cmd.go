package sudoku

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/constraint-framework/backtrack/cmd/options"
	"github.com/constraint-framework/backtrack/pkg/csp"
	"github.com/constraint-framework/backtrack/pkg/csp/solver"
)

func NewSudokuCommand() *cobra.Command {
	strategy := &options.Strategy{
		Selection: "mrv+degree",
		Ordering:  "lcv",
		Inference: []string{"forward_checking", "arc_consistency"},
	}
	cmd := &cobra.Command{
		Use:   "sudoku",
		Short: "Solves a sample sudoku board",
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(strategy)
		},
	}
	strategy.Bind(cmd)
	return cmd
}

func solve(strategy *options.Strategy) error {
	model, err := NewSudoku(SamplePuzzle())
	if err != nil {
		return err
	}

	so, err := solver.New[int](strategy.Config())
	if err != nil {
		return err
	}

	solution, metrics, err := so.Solve(model)
	switch {
	case errors.Is(err, csp.ErrNoSolution):
		fmt.Println("no solution found")
	case err != nil:
		return err
	default:
		for row := 1; row <= 9; row++ {
			for col := 1; col <= 9; col++ {
				fmt.Printf("%d", solution[CellID(row, col)])
				if col != 9 {
					fmt.Printf(" ")
				}
			}
			fmt.Printf("\n")
		}
	}

	options.PrintMetrics(metrics)
	return nil
}
