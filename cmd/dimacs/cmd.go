package dimacs

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/constraint-framework/backtrack/cmd/options"
	"github.com/constraint-framework/backtrack/pkg/csp"
	"github.com/constraint-framework/backtrack/pkg/csp/solver"
)

func NewDimacsCommand() *cobra.Command {
	strategy := &options.Strategy{
		Selection: "mrv",
		Inference: []string{"forward_checking"},
	}
	cmd := &cobra.Command{
		Use:   "solve <path>",
		Short: "Solves a sat problem given in dimacs format",
		Long: `Solves a sat problem given in dimacs format. For instance:
c
c this is a comment
c header: p cnf <number of variable> <number of clauses>
p cnf 2 2
c clauses end in zero, negative means 'not'
c 0 (zero) is not a valid literal
1 2 0
1 -2 0
c cnf: (1 or 2) and (1 or not 2)
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(args[0], strategy)
		},
	}
	strategy.Bind(cmd)
	return cmd
}

func solve(path string, strategy *options.Strategy) error {
	dimacsFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening dimacs file (%s): %w", path, err)
	}
	defer dimacsFile.Close()

	dimacs, err := NewDimacs(dimacsFile)
	if err != nil {
		return fmt.Errorf("error parsing dimacs file (%s): %w", path, err)
	}

	model, err := NewModel(dimacs)
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
		fmt.Println("solution found:")
		names := make([]int, 0, len(solution))
		for id := range solution {
			n, convErr := strconv.Atoi(string(id))
			if convErr != nil {
				return convErr
			}
			names = append(names, n)
		}
		sort.Ints(names)
		for _, n := range names {
			fmt.Printf("%d = %t\n", n, solution[VariableID(n)] == 1)
		}
	}

	options.PrintMetrics(metrics)
	return nil
}
