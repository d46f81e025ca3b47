package nqueens

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/constraint-framework/backtrack/cmd/options"
	"github.com/constraint-framework/backtrack/pkg/csp"
	"github.com/constraint-framework/backtrack/pkg/csp/solver"
)

func NewNQueensCommand() *cobra.Command {
	strategy := &options.Strategy{
		Selection: "mrv",
		Inference: []string{"forward_checking"},
	}
	var size int
	cmd := &cobra.Command{
		Use:   "nqueens",
		Short: "Places n queens on an n by n board",
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(size, strategy)
		},
	}
	cmd.Flags().IntVar(&size, "n", 8, "board size")
	strategy.Bind(cmd)
	return cmd
}

func solve(n int, strategy *options.Strategy) error {
	model, err := NewBoard(n)
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
		for row := 1; row <= n; row++ {
			for col := 1; col <= n; col++ {
				if solution[QueenID(col)] == row {
					fmt.Printf("Q")
				} else {
					fmt.Printf(".")
				}
				if col != n {
					fmt.Printf(" ")
				}
			}
			fmt.Printf("\n")
		}
	}

	options.PrintMetrics(metrics)
	return nil
}
